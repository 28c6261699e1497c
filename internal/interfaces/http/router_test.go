package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FilingDesk/internal/application/documents"
	appfiling "github.com/turtacn/FilingDesk/internal/application/filing"
	domain "github.com/turtacn/FilingDesk/internal/domain/filing"
	"github.com/turtacn/FilingDesk/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FilingDesk/internal/interfaces/http/handlers"
	"github.com/turtacn/FilingDesk/pkg/errors"
)

type textRenderer struct{}

func (textRenderer) Render(_ context.Context, vm documents.ViewModel) (*documents.Artifact, error) {
	return &documents.Artifact{
		Name:        vm.ArtifactBase + ".txt",
		ContentType: "text/plain",
		Data:        []byte(vm.Heading),
	}, nil
}

type fakeArtifactRepo struct {
	artifacts map[string]*documents.Artifact
}

func (f *fakeArtifactRepo) Get(_ context.Context, key string) (*documents.Artifact, error) {
	a, ok := f.artifacts[key]
	if !ok {
		return nil, errors.New(errors.ErrCodeArtifactNotFound, "artifact not found: "+key)
	}
	return a, nil
}

func (f *fakeArtifactRepo) PresignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	if _, ok := f.artifacts[key]; !ok {
		return "", errors.New(errors.ErrCodeArtifactNotFound, "artifact not found: "+key)
	}
	return "https://objects.example/" + key, nil
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	records := domain.NewService(domain.NewMemoryRepository(), nil, logging.NewNopLogger())
	set := documents.NewSet(documents.FirmProfile{FirmName: "Rao & Menon IP Services"})
	orchestrator := appfiling.NewOrchestrator(
		records, set, textRenderer{}, nil, nil, nil, logging.NewNopLogger())

	artifacts := &fakeArtifactRepo{artifacts: map[string]*documents.Artifact{
		"artifacts/CoverLetter_D-99.txt": {
			Name:        "CoverLetter_D-99.txt",
			ContentType: "text/plain",
			Data:        []byte("Covering Letter"),
		},
	}}

	return NewRouter(RouterConfig{
		FilingHandler:   handlers.NewFilingHandler(records, nil),
		DocumentHandler: handlers.NewDocumentHandler(orchestrator, nil),
		ArtifactHandler: handlers.NewArtifactHandler(artifacts),
		HealthHandler:   handlers.NewHealthHandler(nil),
		Mode:            gin.TestMode,
	})
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/readyz", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFilingLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/filings",
		map[string]string{"docket_number": "IN-2024-0042"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate creation conflicts.
	w = doJSON(t, router, http.MethodPost, "/api/v1/filings",
		map[string]string{"docket_number": "IN-2024-0042"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// A fee-dependent edit returns the recomputed breakdown inline.
	w = doJSON(t, router, http.MethodPut, "/api/v1/filings/IN-2024-0042/fields/applicant_category",
		map[string]string{"value": "other"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Fees struct {
				BasicFee int64 `json:"basic_fee"`
			} `json:"fee_breakdown"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(8000), resp.Data.Fees.BasicFee)

	w = doJSON(t, router, http.MethodGet, "/api/v1/filings/IN-2024-0042/fees", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/filings/IN-2024-0042", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/filings/IN-2024-0042", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListEntryEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/filings",
		map[string]string{"docket_number": "D-60"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/filings/D-60/lists/applicants/entries", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPut, "/api/v1/filings/D-60/lists/applicants/entries/1/fields/name",
		map[string]string{"value": "Acme Pharma Ltd"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Removing down to one entry is allowed, removing the last is not.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/filings/D-60/lists/applicants/entries/0", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/filings/D-60/lists/applicants/entries/0", nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodDelete, "/api/v1/filings/D-60/lists/applicants/entries/nope", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDocumentEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/filings",
		map[string]string{"docket_number": "D-61"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/document-kinds", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/v1/filings/D-61/documents/cover_letter/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var preview struct {
		Data struct {
			Empty   bool   `json:"empty"`
			Heading string `json:"heading"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preview))
	assert.False(t, preview.Data.Empty)
	assert.Equal(t, "Covering Letter", preview.Data.Heading)

	w = doJSON(t, router, http.MethodPost, "/api/v1/filings/D-61/documents/grant_request", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "GrantRequest_D-61.txt")

	w = doJSON(t, router, http.MethodPost, "/api/v1/filings/D-61/documents/telefax", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// An unknown docket previews as the empty placeholder, not an error.
	w = doJSON(t, router, http.MethodGet, "/api/v1/filings/ghost/documents/cover_letter/preview", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &preview))
	assert.True(t, preview.Data.Empty)
}

func TestArtifactEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/artifacts/artifacts/CoverLetter_D-99.txt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Covering Letter", w.Body.String())
	assert.Contains(t, w.Header().Get("Content-Disposition"), "CoverLetter_D-99.txt")

	w = doJSON(t, router, http.MethodGet, "/api/v1/artifact-urls/artifacts/CoverLetter_D-99.txt", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var urlResp struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &urlResp))
	assert.Equal(t, "https://objects.example/artifacts/CoverLetter_D-99.txt", urlResp.Data.URL)

	w = doJSON(t, router, http.MethodGet, "/api/v1/artifacts/artifacts/absent.txt", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
