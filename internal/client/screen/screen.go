// Package screen implements the list-edit workflow shared by every content
// type: load the collection, search it locally, add or edit one record
// through a draft, and delete with confirmation. Each mutation is followed
// by a full reload.
package screen

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/fundunity/cmsdash/internal/common"
	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
)

type State int

const (
	Idle State = iota
	AddOpen
	EditOpen
)

func (s State) String() string {
	switch s {
	case AddOpen:
		return "add"
	case EditOpen:
		return "edit"
	}
	return "idle"
}

// Client is the remote collection behind a screen.
type Client[T models.Record] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T, img *models.StagedFile) (T, error)
	Update(ctx context.Context, id int64, rec T, img *models.StagedFile) (T, error)
	Delete(ctx context.Context, id int64) error
}

// Draft is the record being added or edited. Image is a staged upload;
// nil keeps the current image.
type Draft[T models.Record] struct {
	ID     int64
	Record T
	Image  *models.StagedFile
}

// Screen is safe for concurrent use. Remote calls run outside the lock, so
// the collection reflects whichever fetch completed last.
type Screen[T models.Record] struct {
	name     string
	client   Client[T]
	newDraft func() T
	log      logging.Logger

	mu    sync.Mutex
	items []T
	state State
	draft *Draft[T]
	query string
	err   error
}

// New builds a screen. newDraft returns the typed defaults of an empty
// record; nil means the zero value.
func New[T models.Record](name string, c Client[T], newDraft func() T, log logging.Logger) *Screen[T] {
	if newDraft == nil {
		newDraft = func() T {
			var zero T
			return zero
		}
	}
	return &Screen[T]{name: name, client: c, newDraft: newDraft, log: log.With("screen", name)}
}

func (s *Screen[T]) Name() string { return s.name }

// Mount loads the collection; it is the same as Refresh.
func (s *Screen[T]) Mount(ctx context.Context) error {
	return s.Refresh(ctx)
}

// Refresh re-fetches the collection. On failure the previous collection is
// kept.
func (s *Screen[T]) Refresh(ctx context.Context) error {
	items, err := s.client.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.err = err
		s.log.Warn(ctx, "list failed", "error", err)
		return err
	}
	s.items = items
	return nil
}

// Items returns a copy of the collection in server order.
func (s *Screen[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Search sets the filter used by Visible.
func (s *Screen[T]) Search(query string) {
	s.mu.Lock()
	s.query = query
	s.mu.Unlock()
}

func (s *Screen[T]) Query() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query
}

// Visible is the collection narrowed by the current query.
func (s *Screen[T]) Visible() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(Filter(s.items, s.query))
}

func (s *Screen[T]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Err is the last surfaced error, or nil.
func (s *Screen[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Screen[T]) ClearError() {
	s.mu.Lock()
	s.err = nil
	s.mu.Unlock()
}

// Draft returns a copy of the open draft.
func (s *Screen[T]) Draft() (Draft[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return Draft[T]{}, false
	}
	return *s.draft, true
}

// OpenAdd starts a new record from typed defaults.
func (s *Screen[T]) OpenAdd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = &Draft[T]{Record: s.newDraft()}
	s.state = AddOpen
	s.err = nil
}

// OpenEdit copies record id from the collection into a draft.
func (s *Screen[T]) OpenEdit(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := slices.IndexFunc(s.items, func(it T) bool { return it.GetID() == id })
	if i < 0 {
		return fmt.Errorf("%s %d: %w", s.name, id, common.ErrorNotFound)
	}
	s.draft = &Draft[T]{ID: id, Record: s.items[i]}
	s.state = EditOpen
	s.err = nil
	return nil
}

// Edit applies fn to the draft record.
func (s *Screen[T]) Edit(fn func(rec *T)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return errNoDraft
	}
	fn(&s.draft.Record)
	return nil
}

// StageImage attaches a file to the draft; nil removes the staged file.
func (s *Screen[T]) StageImage(f *models.StagedFile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return errNoDraft
	}
	s.draft.Image = f
	return nil
}

// Cancel discards the draft.
func (s *Screen[T]) Cancel() {
	s.mu.Lock()
	s.draft = nil
	s.state = Idle
	s.mu.Unlock()
}

var errNoDraft = fmt.Errorf("%w: no record is open", common.ErrorValidation)

// Save validates the draft and sends it. On failure the draft stays open.
// After a successful save the sent draft is closed and the collection is
// reloaded; a reload error is returned but the draft is already closed.
func (s *Screen[T]) Save(ctx context.Context) error {
	s.mu.Lock()
	if s.draft == nil {
		s.mu.Unlock()
		return errNoDraft
	}
	sent := s.draft
	d, state := *sent, s.state
	s.mu.Unlock()

	if err := d.Record.Validate(); err != nil {
		s.setErr(err)
		return err
	}

	var err error
	if state == AddOpen {
		_, err = s.client.Create(ctx, d.Record, d.Image)
	} else {
		_, err = s.client.Update(ctx, d.ID, d.Record, d.Image)
	}
	if err != nil {
		s.setErr(err)
		s.log.Warn(ctx, "save failed", "state", state, "id", d.ID, "error", err)
		return err
	}

	s.mu.Lock()
	// a draft opened while the request was in flight stays open
	if s.draft == sent {
		s.draft = nil
		s.state = Idle
	}
	s.err = nil
	s.mu.Unlock()

	s.log.Info(ctx, "record saved", "state", state, "id", d.ID)
	return s.Refresh(ctx)
}

// Delete removes record id when confirm is true; otherwise it does nothing.
func (s *Screen[T]) Delete(ctx context.Context, id int64, confirm bool) error {
	if !confirm {
		return nil
	}

	if err := s.client.Delete(ctx, id); err != nil {
		s.setErr(err)
		s.log.Warn(ctx, "delete failed", "id", id, "error", err)
		return err
	}

	s.log.Info(ctx, "record deleted", "id", id)
	return s.Refresh(ctx)
}

func (s *Screen[T]) setErr(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}
