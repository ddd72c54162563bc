package screen

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

// memClient is an in-memory collection of programs.
type memClient struct {
	mu        sync.Mutex
	items     []models.Program
	nextID    int64
	lastImage *models.StagedFile
	listErr   error
	saveErr   error
	listCalls int
	// inFlight runs inside Create and Update, before they return.
	inFlight func()
}

func (m *memClient) List(ctx context.Context) ([]models.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	return slices.Clone(m.items), nil
}

func (m *memClient) Create(ctx context.Context, rec models.Program, img *models.StagedFile) (models.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return models.Program{}, m.saveErr
	}
	if m.inFlight != nil {
		m.inFlight()
	}
	m.nextID++
	rec.ID = m.nextID
	m.items = append(m.items, rec)
	m.lastImage = img
	return rec, nil
}

func (m *memClient) Update(ctx context.Context, id int64, rec models.Program, img *models.StagedFile) (models.Program, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return models.Program{}, m.saveErr
	}
	for i := range m.items {
		if m.items[i].ID == id {
			rec.ID = id
			m.items[i] = rec
			m.lastImage = img
			return rec, nil
		}
	}
	return models.Program{}, fmt.Errorf("update: %w", common.ErrorNotFound)
}

func (m *memClient) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i := slices.IndexFunc(m.items, func(p models.Program) bool { return p.ID == id })
	if i < 0 {
		return fmt.Errorf("delete: %w", common.ErrorNotFound)
	}
	m.items = slices.Delete(m.items, i, i+1)
	return nil
}

func newScreen(t *testing.T, seed ...models.Program) (*Screen[models.Program], *memClient) {
	t.Helper()
	c := &memClient{items: seed, nextID: int64(len(seed))}
	s := New[models.Program]("programs", c, nil, logging.Discard())
	require.NoError(t, s.Mount(context.Background()))
	return s, c
}

func TestMount_LoadsCollection(t *testing.T) {
	s, c := newScreen(t, models.Program{ID: 1, Title: "A", Description: "a"})

	assert.Equal(t, Idle, s.State())
	assert.Len(t, s.Items(), 1)
	assert.Equal(t, 1, c.listCalls)
}

func TestSave_AddAppendsAndRefetches(t *testing.T) {
	s, c := newScreen(t, models.Program{ID: 1, Title: "A", Description: "a"})
	ctx := context.Background()

	s.OpenAdd()
	assert.Equal(t, AddOpen, s.State())
	d, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, models.Program{}, d.Record)

	require.NoError(t, s.Edit(func(p *models.Program) {
		p.Title = "Beasiswa"
		p.Description = "Pendidikan"
	}))
	img := &models.StagedFile{Name: "b.png", ContentType: "image/png", Data: []byte{1}}
	require.NoError(t, s.StageImage(img))
	require.NoError(t, s.Save(ctx))

	assert.Equal(t, Idle, s.State())
	_, ok = s.Draft()
	assert.False(t, ok)
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "Beasiswa", items[1].Title)
	assert.Equal(t, img, c.lastImage)
	assert.Equal(t, 2, c.listCalls)
}

func TestSave_KeepsDraftOpenedDuringRequest(t *testing.T) {
	s, c := newScreen(t, models.Program{ID: 1, Title: "A", Description: "a"})

	s.OpenAdd()
	require.NoError(t, s.Edit(func(p *models.Program) {
		p.Title = "Beasiswa"
		p.Description = "Pendidikan"
	}))
	c.inFlight = func() { require.NoError(t, s.OpenEdit(1)) }

	require.NoError(t, s.Save(context.Background()))

	assert.Equal(t, EditOpen, s.State())
	d, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, int64(1), d.ID)
	assert.Equal(t, "A", d.Record.Title)
	assert.Len(t, s.Items(), 2)
}

func TestSave_ValidationKeepsDraft(t *testing.T) {
	s, c := newScreen(t)

	s.OpenAdd()
	require.NoError(t, s.Edit(func(p *models.Program) { p.Title = "Only title" }))

	err := s.Save(context.Background())
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Equal(t, AddOpen, s.State())
	d, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, "Only title", d.Record.Title)
	assert.Equal(t, err, s.Err())
	assert.Empty(t, c.items, "nothing was sent")
}

func TestSave_RemoteFailureKeepsDraft(t *testing.T) {
	s, c := newScreen(t, models.Program{ID: 1, Title: "A", Description: "a"})
	c.saveErr = errBoom

	require.NoError(t, s.OpenEdit(1))
	require.NoError(t, s.Edit(func(p *models.Program) { p.Title = "B" }))

	err := s.Save(context.Background())
	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, EditOpen, s.State())
	d, _ := s.Draft()
	assert.Equal(t, "B", d.Record.Title)
	assert.Equal(t, "A", s.Items()[0].Title)
}

func TestOpenEdit_CopiesRecordAndResetsImage(t *testing.T) {
	s, c := newScreen(t, models.Program{ID: 7, Title: "A", Description: "a", ImageURL: "http://x/a.png"})

	require.NoError(t, s.OpenEdit(7))
	d, ok := s.Draft()
	require.True(t, ok)
	assert.Equal(t, int64(7), d.ID)
	assert.Nil(t, d.Image)
	assert.Equal(t, "http://x/a.png", d.Record.ImageURL)

	// the draft is a copy
	require.NoError(t, s.Edit(func(p *models.Program) { p.Title = "changed" }))
	assert.Equal(t, "A", s.Items()[0].Title)

	require.NoError(t, s.Save(context.Background()))
	assert.Equal(t, "changed", s.Items()[0].Title)
	assert.Nil(t, c.lastImage)
}

func TestOpenEdit_UnknownID(t *testing.T) {
	s, _ := newScreen(t)
	assert.ErrorIs(t, s.OpenEdit(42), common.ErrorNotFound)
	assert.Equal(t, Idle, s.State())
}

func TestCancel(t *testing.T) {
	s, _ := newScreen(t)
	s.OpenAdd()
	s.Cancel()

	assert.Equal(t, Idle, s.State())
	_, ok := s.Draft()
	assert.False(t, ok)
	assert.Error(t, s.Save(context.Background()))
	assert.Error(t, s.Edit(func(*models.Program) {}))
	assert.Error(t, s.StageImage(nil))
}

func TestDelete_RequiresConfirmation(t *testing.T) {
	s, c := newScreen(t, models.Program{ID: 1, Title: "A", Description: "a"})

	require.NoError(t, s.Delete(context.Background(), 1, false))
	assert.Len(t, c.items, 1)
	assert.Equal(t, 1, c.listCalls)
}

func TestDelete_TwiceFailsAndKeepsCollection(t *testing.T) {
	s, _ := newScreen(t,
		models.Program{ID: 1, Title: "A", Description: "a"},
		models.Program{ID: 2, Title: "B", Description: "b"},
	)
	ctx := context.Background()

	require.NoError(t, s.Delete(ctx, 1, true))
	after := s.Items()
	require.Len(t, after, 1)
	assert.Equal(t, int64(2), after[0].ID)

	err := s.Delete(ctx, 1, true)
	require.ErrorIs(t, err, common.ErrorNotFound)
	assert.Equal(t, after, s.Items())
	assert.Equal(t, err, s.Err())

	s.ClearError()
	assert.NoError(t, s.Err())
}

func TestRefresh_FailureKeepsCollection(t *testing.T) {
	s, c := newScreen(t, models.Program{ID: 1, Title: "A", Description: "a"})
	c.listErr = errBoom

	require.ErrorIs(t, s.Refresh(context.Background()), errBoom)
	assert.Len(t, s.Items(), 1)
}

func TestSearch(t *testing.T) {
	s, _ := newScreen(t,
		models.Program{ID: 1, Title: "Beasiswa", Description: "Pendidikan"},
		models.Program{ID: 2, Title: "Pangan", Description: "Sembako"},
	)

	s.Search("PENDIDIKAN")
	assert.Equal(t, "PENDIDIKAN", s.Query())
	vis := s.Visible()
	require.Len(t, vis, 1)
	assert.Equal(t, int64(1), vis[0].ID)

	s.Search("")
	assert.Len(t, s.Visible(), 2)
}

func TestNew_TypedDefaults(t *testing.T) {
	c := &txClient{}
	s := New[models.Transaction]("transactions", c, func() models.Transaction {
		return models.Transaction{Status: models.StatusPending}
	}, logging.Discard())

	s.OpenAdd()
	d, _ := s.Draft()
	assert.Equal(t, models.StatusPending, d.Record.Status)
	assert.Equal(t, "transactions", s.Name())
}

func TestConcurrentUse(t *testing.T) {
	s, _ := newScreen(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.OpenAdd()
			_ = s.Edit(func(p *models.Program) {
				p.Title = fmt.Sprintf("P%d", i)
				p.Description = "d"
			})
			_ = s.Save(ctx)
			_ = s.Visible()
		}(i)
	}
	wg.Wait()

	require.NoError(t, s.Refresh(ctx))
	assert.NotEmpty(t, s.Items())
}

type txClient struct{}

func (txClient) List(context.Context) ([]models.Transaction, error) { return nil, nil }
func (txClient) Create(_ context.Context, r models.Transaction, _ *models.StagedFile) (models.Transaction, error) {
	return r, nil
}
func (txClient) Update(_ context.Context, _ int64, r models.Transaction, _ *models.StagedFile) (models.Transaction, error) {
	return r, nil
}
func (txClient) Delete(context.Context, int64) error { return nil }
