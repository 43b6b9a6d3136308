package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/peopleregistry/backend/internal/common/config"
	commonerrors "github.com/peopleregistry/backend/internal/common/errors"
	"github.com/peopleregistry/backend/internal/common/logger"
	"github.com/peopleregistry/backend/internal/person/codec"
)

type mockService struct {
	createFunc  func(ctx context.Context, body []byte) (codec.PersonDocument, error)
	getByIDFunc func(ctx context.Context, id string) (codec.PersonDocument, error)
	searchFunc  func(ctx context.Context, term string) ([]codec.PersonDocument, error)
	countFunc   func(ctx context.Context) (int64, error)
}

func (m *mockService) Create(ctx context.Context, body []byte) (codec.PersonDocument, error) {
	return m.createFunc(ctx, body)
}

func (m *mockService) GetByID(ctx context.Context, id string) (codec.PersonDocument, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockService) Search(ctx context.Context, term string) ([]codec.PersonDocument, error) {
	return m.searchFunc(ctx, term)
}

func (m *mockService) Count(ctx context.Context) (int64, error) {
	return m.countFunc(ctx)
}

func newTestHandler(t *testing.T, svc *mockService) http.Handler {
	t.Helper()

	log, err := logger.New(t.TempDir(), "people-test", "error")
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}

	cfg := config.APIConfig{
		HTTPPort:       "8080",
		DatabaseURL:    "postgres://localhost/test",
		RequestTimeout: 5 * time.Second,
		SearchTimeout:  5 * time.Second,
	}

	return NewHandler(svc, cfg, log)
}

func testDocument(id string) codec.PersonDocument {
	doc := codec.PersonDocument{
		Apelido:    "zeh",
		Nome:       "Jose",
		Nascimento: "2000-01-01",
		Stack:      []string{"C#", "Node"},
	}
	if id != "" {
		doc.ID = &id
	}
	return doc
}

func TestCreatePerson(t *testing.T) {
	svc := &mockService{
		createFunc: func(_ context.Context, body []byte) (codec.PersonDocument, error) {
			return testDocument("3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01"), nil
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/pessoas", strings.NewReader(`{"apelido":"zeh","nome":"Jose","nascimento":"2000-01-01","stack":["C#","Node"]}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != "/pessoas/3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01" {
		t.Errorf("unexpected Location header: %q", loc)
	}

	var doc codec.PersonDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("expected a JSON body, got %v", err)
	}
	if doc.ID == nil || *doc.ID != "3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01" {
		t.Errorf("unexpected body id: %v", doc.ID)
	}
}

func TestCreatePerson_ValidationReject(t *testing.T) {
	svc := &mockService{
		createFunc: func(_ context.Context, _ []byte) (codec.PersonDocument, error) {
			return codec.PersonDocument{}, commonerrors.ErrUsernameTooLong
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/pessoas", strings.NewReader(`{"apelido":"way-too-long"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreatePerson_InvalidJSON(t *testing.T) {
	svc := &mockService{
		createFunc: func(_ context.Context, _ []byte) (codec.PersonDocument, error) {
			return codec.PersonDocument{}, commonerrors.ErrInvalidPersonPayload
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/pessoas", strings.NewReader(`not json`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCreatePerson_DuplicateUsername(t *testing.T) {
	svc := &mockService{
		createFunc: func(_ context.Context, _ []byte) (codec.PersonDocument, error) {
			return codec.PersonDocument{}, commonerrors.ErrUsernameTaken
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodPost, "/pessoas", strings.NewReader(`{"apelido":"zeh","nome":"Jose","nascimento":"2000-01-01"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSearchPeople(t *testing.T) {
	var gotTerm string
	svc := &mockService{
		searchFunc: func(_ context.Context, term string) ([]codec.PersonDocument, error) {
			gotTerm = term
			return []codec.PersonDocument{testDocument("3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01")}, nil
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/pessoas?t=node", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotTerm != "node" {
		t.Errorf("expected term node, got %q", gotTerm)
	}

	var docs []codec.PersonDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &docs); err != nil {
		t.Fatalf("expected a JSON array, got %v", err)
	}
	if len(docs) != 1 || docs[0].Apelido != "zeh" {
		t.Errorf("unexpected results: %+v", docs)
	}
}

func TestSearchPeople_MissingTerm(t *testing.T) {
	svc := &mockService{
		searchFunc: func(_ context.Context, _ string) ([]codec.PersonDocument, error) {
			t.Fatal("service must not be reached without a term")
			return nil, nil
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/pessoas", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetPerson(t *testing.T) {
	svc := &mockService{
		getByIDFunc: func(_ context.Context, id string) (codec.PersonDocument, error) {
			return testDocument(id), nil
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/pessoas/3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var doc codec.PersonDocument
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("expected a JSON body, got %v", err)
	}
	if doc.ID == nil || *doc.ID != "3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01" {
		t.Errorf("unexpected id: %v", doc.ID)
	}
}

func TestGetPerson_NotFound(t *testing.T) {
	svc := &mockService{
		getByIDFunc: func(_ context.Context, _ string) (codec.PersonDocument, error) {
			return codec.PersonDocument{}, commonerrors.ErrPersonNotFound
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/pessoas/3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetPerson_InvalidID(t *testing.T) {
	svc := &mockService{
		getByIDFunc: func(_ context.Context, _ string) (codec.PersonDocument, error) {
			t.Fatal("service must not be reached for a malformed id")
			return codec.PersonDocument{}, nil
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/pessoas/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestGetPerson_TrailingSegments(t *testing.T) {
	svc := &mockService{
		getByIDFunc: func(_ context.Context, _ string) (codec.PersonDocument, error) {
			t.Fatal("service must not be reached for a path with extra segments")
			return codec.PersonDocument{}, nil
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/pessoas/3f6c0a9e-1d1f-4f4b-8f22-6b9f1f6a2c01/extra", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCountPeople(t *testing.T) {
	svc := &mockService{
		countFunc: func(_ context.Context) (int64, error) {
			return 42, nil
		},
	}
	handler := newTestHandler(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/contagem-pessoas", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Errorf("expected text/plain, got %q", ct)
	}
	if body := rec.Body.String(); body != "42" {
		t.Errorf("expected a bare count, got %q", body)
	}
}

func TestPeople_MethodNotAllowed(t *testing.T) {
	handler := newTestHandler(t, &mockService{})

	req := httptest.NewRequest(http.MethodDelete, "/pessoas", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d: %s", rec.Code, rec.Body.String())
	}
}
