package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fundunity/cmsdash/internal/logging"
	"github.com/fundunity/cmsdash/internal/models"
	"github.com/fundunity/cmsdash/internal/server/auth"
	"github.com/fundunity/cmsdash/internal/server/imagestore"
	"github.com/fundunity/cmsdash/internal/server/repositories/repomanager"
	"github.com/fundunity/cmsdash/internal/server/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type testAPI struct {
	srv   *HTTPServer
	token string
	dir   string
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctx := context.Background()
	log := logging.Discard()
	rm := repomanager.NewInMemoryRepositoryManager()

	us := services.NewUserService(rm.Users(), testSecret, time.Hour, log)
	_, err := us.EnsureAdmin(ctx, "admin@fundunity.id", "admin123")
	require.NoError(t, err)

	dir := t.TempDir()
	store, err := imagestore.NewLocalStore(dir, "http://cms.test")
	require.NoError(t, err)

	res := Resources{
		AboutUs:      services.NewContentService("aboutus", rm.AboutUs(), log).WithImages(store, services.AboutUsImage, 1920),
		Sliders:      services.NewContentService("imageslider", rm.Sliders(), log).WithImages(store, services.SliderImage, 1920),
		Programs:     services.NewContentService("program", rm.Programs(), log).WithImages(store, services.ProgramImage, 1920),
		Partners:     services.NewContentService("ourpartner", rm.Partners(), log).WithImages(store, services.PartnerImage, 1920),
		Transactions: services.NewContentService("transaction", rm.Transactions(), log),
	}

	srv := NewHTTPServer("127.0.0.1:0", log, us, res, dir)

	_, profile, err := us.Login(ctx, "admin@fundunity.id", "admin123")
	require.NoError(t, err)
	token, err := auth.GenerateToken(profile.ID, []byte(testSecret), time.Hour)
	require.NoError(t, err)

	return &testAPI{srv: srv, token: token, dir: dir}
}

func (a *testAPI) do(t *testing.T, req *http.Request, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	if authed {
		req.Header.Set("Authorization", "Bearer "+a.token)
	}
	rec := httptest.NewRecorder()
	a.srv.Handler().ServeHTTP(rec, req)
	return rec
}

func jsonRequest(t *testing.T, method, url string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, url, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func formRequest(t *testing.T, method, url string, fields map[string]string, img []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if img != nil {
		w, err := mw.CreateFormFile("image", "photo.png")
		require.NoError(t, err)
		_, err = w.Write(img)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	return buf.Bytes()
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, jsonRequest(t, http.MethodPost, "/v1/content/login",
		map[string]string{"email": "admin@fundunity.id", "password": "admin123"}), false)
	require.Equal(t, http.StatusOK, rec.Code)

	out := decode[loginResponse](t, rec)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "admin@fundunity.id", out.User.Email)

	rec = api.do(t, jsonRequest(t, http.MethodPost, "/v1/content/login",
		map[string]string{"email": "admin@fundunity.id", "password": "nope"}), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", decode[errorResponse](t, rec).Message)

	req := httptest.NewRequest(http.MethodPost, "/v1/content/login", strings.NewReader("{"))
	rec = api.do(t, req, false)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthRequiredForMutations(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, formRequest(t, http.MethodPost, "/v1/content/program",
		map[string]string{"title": "t", "description": "d"}, nil), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := formRequest(t, http.MethodPost, "/v1/content/program", map[string]string{"title": "t", "description": "d"}, nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec = api.do(t, req, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	expired, err := auth.GenerateToken(1, []byte(testSecret), -time.Minute)
	require.NoError(t, err)
	req = httptest.NewRequest(http.MethodDelete, "/v1/content/program/1", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec = api.do(t, req, false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "token expired", decode[errorResponse](t, rec).Message)

	rec = api.do(t, httptest.NewRequest(http.MethodGet, "/v1/content/program", nil), false)
	assert.Equal(t, http.StatusOK, rec.Code, "reads are public")
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestFormResourceLifecycle(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, formRequest(t, http.MethodPost, "/v1/content/aboutus",
		map[string]string{"nama": "Visi", "description": "Membantu"}, pngBytes(t)), true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	created := decode[models.AboutUs](t, rec)
	assert.Equal(t, int64(1), created.ID)
	assert.True(t, strings.HasPrefix(created.ImageURL, "http://cms.test/uploads/aboutus/"), created.ImageURL)

	// the stored file is served back
	path := strings.TrimPrefix(created.ImageURL, "http://cms.test")
	rec = api.do(t, httptest.NewRequest(http.MethodGet, path, nil), false)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, formRequest(t, http.MethodPut, "/v1/content/aboutus/1",
		map[string]string{"nama": "Visi baru", "description": "Membantu"}, nil), true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decode[models.AboutUs](t, rec)
	assert.Equal(t, "Visi baru", updated.Nama)
	assert.Equal(t, created.ImageURL, updated.ImageURL)

	rec = api.do(t, httptest.NewRequest(http.MethodGet, "/v1/content/aboutus", nil), false)
	list := decode[[]models.AboutUs](t, rec)
	require.Len(t, list, 1)
	assert.Equal(t, updated, list[0])

	rec = api.do(t, httptest.NewRequest(http.MethodDelete, "/v1/content/aboutus/1", nil), true)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = api.do(t, httptest.NewRequest(http.MethodGet, "/v1/content/aboutus/1", nil), false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not found", decode[errorResponse](t, rec).Message)
}

func TestFormResourceErrors(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, formRequest(t, http.MethodPost, "/v1/content/ourpartner", map[string]string{}, nil), true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[errorResponse](t, rec)
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "name", body.Errors[0].Field)

	rec = api.do(t, formRequest(t, http.MethodPost, "/v1/content/ourpartner",
		map[string]string{"name": "Bank"}, []byte("not an image")), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, formRequest(t, http.MethodPut, "/v1/content/ourpartner/99",
		map[string]string{"name": "Bank"}, nil), true)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, httptest.NewRequest(http.MethodDelete, "/v1/content/ourpartner/abc", nil), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, httptest.NewRequest(http.MethodGet, "/v1/content/unknown", nil), false)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTransactionResource(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, jsonRequest(t, http.MethodPost, "/api/v1/content/transaction",
		map[string]any{"nama": "Budi", "email": "budi@mail.id", "amount": 50000}), true)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	tx := decode[models.Transaction](t, rec)
	assert.Equal(t, models.StatusPending, tx.Status)

	rec = api.do(t, jsonRequest(t, http.MethodPut, "/api/v1/content/transaction/1",
		map[string]any{"nama": "Budi", "email": "budi@mail.id", "amount": 50000, "status": "BERHASIL"}), true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, models.StatusSuccess, decode[models.Transaction](t, rec).Status)

	rec = api.do(t, jsonRequest(t, http.MethodPost, "/api/v1/content/transaction",
		map[string]any{"nama": "Budi", "email": "budi@mail.id", "amount": 1, "status": "refunded"}), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, jsonRequest(t, http.MethodPost, "/api/v1/content/transaction",
		map[string]any{"nama": "Budi", "email": "budi", "amount": 0}), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Len(t, decode[errorResponse](t, rec).Errors, 2)

	rec = api.do(t, httptest.NewRequest(http.MethodGet, "/api/v1/content/transaction", nil), false)
	assert.Len(t, decode[[]models.Transaction](t, rec), 1)
}

func TestUpdateAccount(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, jsonRequest(t, http.MethodPut, "/v1/content/account",
		map[string]string{"email": "new@fundunity.id"}), true)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "new@fundunity.id", decode[models.User](t, rec).Email)

	rec = api.do(t, jsonRequest(t, http.MethodPut, "/v1/content/account",
		map[string]string{"password": "123"}), true)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = api.do(t, jsonRequest(t, http.MethodPut, "/v1/content/account",
		map[string]string{"email": "x@y.z"}), false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, jsonRequest(t, http.MethodPost, "/v1/content/login",
		map[string]string{"email": "new@fundunity.id", "password": "admin123"}), false)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRun_StopsOnCancel(t *testing.T) {
	api := newTestAPI(t)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- api.srv.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
