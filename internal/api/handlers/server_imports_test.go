package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

func multipartUpload(t *testing.T, fileName string, content []byte, importMethod string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	fw, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	if importMethod != "" {
		require.NoError(t, w.WriteField("importMethod", importMethod))
	}
	require.NoError(t, w.Close())
	return buf, w.FormDataContentType()
}

func TestReceivePackage_Created(t *testing.T) {
	pkgID := uuid.New()
	var gotFileName, gotActor string
	var gotMethod domain.ImportMethod
	svc := &fakeIntake{
		receive: func(_ context.Context, source io.Reader, fileName string,
			method domain.ImportMethod, actor string) (*domain.ReceiveResult, error) {
			_, _ = io.Copy(io.Discard, source)
			gotFileName, gotMethod, gotActor = fileName, method, actor
			return &domain.ReceiveResult{
				Package: &domain.ImportPackage{ID: pkgID, PackageNumber: "PKG-2026-000042", Status: domain.StatusPending},
			}, nil
		},
	}
	router := testRouter(svc, "rev-1")

	body, contentType := multipartUpload(t, "field-unit-7.uhc", []byte("sqlite-bytes"), "")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "field-unit-7.uhc", gotFileName)
	assert.Equal(t, domain.ImportManual, gotMethod)
	assert.Equal(t, "rev-1", gotActor)

	var resp domain.ReceiveResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, pkgID, resp.Package.ID)
}

func TestReceivePackage_DuplicateDeliveryReturns200(t *testing.T) {
	svc := &fakeIntake{
		receive: func(_ context.Context, _ io.Reader, _ string,
			_ domain.ImportMethod, _ string) (*domain.ReceiveResult, error) {
			return &domain.ReceiveResult{
				Package:            &domain.ImportPackage{ID: uuid.New(), Status: domain.StatusValidated},
				IsDuplicatePackage: true,
			}, nil
		},
	}
	router := testRouter(svc, "rev-1")

	body, contentType := multipartUpload(t, "again.uhc", []byte("same-bytes"), "NETWORK_SYNC")
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", body)
	req.Header.Set("Content-Type", contentType)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestReceivePackage_MissingFileField(t *testing.T) {
	router := testRouter(&fakeIntake{}, "rev-1")

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("importMethod", "MANUAL"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodeInvalidRequestField, resp["code"])
}

func TestListPackages_StatusFilter(t *testing.T) {
	var gotFilter intake.PackageFilter
	svc := &fakeIntake{
		list: func(_ context.Context, f intake.PackageFilter) (*domain.PackageList, error) {
			gotFilter = f
			return &domain.PackageList{Items: []*domain.ImportPackage{}, TotalCount: 0}, nil
		},
	}
	router := testRouter(svc, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports?status=REVIEWING_CONFLICTS&offset=20&limit=10", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, gotFilter.Status)
	assert.Equal(t, domain.StatusReviewingConflicts, *gotFilter.Status)
	assert.Equal(t, 20, gotFilter.Offset)
	assert.Equal(t, 10, gotFilter.Limit)
}

func TestListPackages_UnknownStatus(t *testing.T) {
	router := testRouter(&fakeIntake{}, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports?status=SHIPPED", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetPackage_InvalidID(t *testing.T) {
	router := testRouter(&fakeIntake{}, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/not-a-uuid", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodeInvalidRequestField, resp["code"])
}

func TestGetPackage_NotFoundEnvelope(t *testing.T) {
	id := uuid.New()
	svc := &fakeIntake{
		get: func(_ context.Context, gotID uuid.UUID) (*domain.ImportPackage, error) {
			return nil, apperrors.ErrPackageNotFound(gotID.String())
		},
	}
	router := testRouter(svc, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/"+id.String(), nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodePackageNotFound, resp["code"])
}

func TestCommitPackage_BusyEnvelope(t *testing.T) {
	svc := &fakeIntake{
		commit: func(_ context.Context, id uuid.UUID, _ string) (*domain.CommitReport, error) {
			return nil, apperrors.ErrPackageBusy(id.String())
		},
	}
	router := testRouter(svc, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+uuid.NewString()+"/commit", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodePackageBusy, resp["code"])
}

func TestCancelPackage_ForwardsBody(t *testing.T) {
	var gotReason, gotActor string
	var gotCleanup bool
	svc := &fakeIntake{
		cancel: func(_ context.Context, id uuid.UUID, reason, actor string, cleanup bool) (*domain.CancelResult, error) {
			gotReason, gotActor, gotCleanup = reason, actor, cleanup
			return &domain.CancelResult{PackageID: id, Status: domain.StatusCancelled}, nil
		},
	}
	router := testRouter(svc, "rev-9")

	body := bytes.NewBufferString(`{"reason":"collected twice","cleanup":true}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+uuid.NewString()+"/cancel", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "collected twice", gotReason)
	assert.Equal(t, "rev-9", gotActor)
	assert.True(t, gotCleanup)
}

func TestCancelPackage_EmptyBody(t *testing.T) {
	svc := &fakeIntake{
		cancel: func(_ context.Context, id uuid.UUID, reason, _ string, cleanup bool) (*domain.CancelResult, error) {
			require.Empty(t, reason)
			require.False(t, cleanup)
			return &domain.CancelResult{PackageID: id, Status: domain.StatusCancelled}, nil
		},
	}
	router := testRouter(svc, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+uuid.NewString()+"/cancel", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestStagedEntities_SummaryWithoutType(t *testing.T) {
	called := false
	svc := &fakeIntake{
		summary: func(_ context.Context, _ uuid.UUID) (*domain.StagedEntitySummary, error) {
			called = true
			return &domain.StagedEntitySummary{}, nil
		},
	}
	router := testRouter(svc, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/"+uuid.NewString()+"/staged-entities", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, called)
}

func TestStagedEntities_PageWithType(t *testing.T) {
	var gotType domain.EntityType
	var gotOffset, gotLimit int
	svc := &fakeIntake{
		page: func(_ context.Context, _ uuid.UUID, et domain.EntityType, offset, limit int) (*domain.StagedRowPage, error) {
			gotType, gotOffset, gotLimit = et, offset, limit
			return &domain.StagedRowPage{}, nil
		},
	}
	router := testRouter(svc, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/imports/"+uuid.NewString()+"/staged-entities?entityType=person&offset=10&limit=5", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.EntityPerson, gotType)
	assert.Equal(t, 10, gotOffset)
	assert.Equal(t, 5, gotLimit)
}

func TestStagedEntities_UnknownType(t *testing.T) {
	router := testRouter(&fakeIntake{}, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/imports/"+uuid.NewString()+"/staged-entities?entityType=parcel", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
