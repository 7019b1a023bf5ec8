package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

func TestListConflicts_EmptyListNotNull(t *testing.T) {
	router := testRouter(&fakeIntake{}, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/"+uuid.NewString()+"/conflicts", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.JSONEq(t, `[]`, string(resp["items"]))
}

func TestListConflicts_ReturnsCandidates(t *testing.T) {
	pkgID := uuid.New()
	master := uuid.New()
	svc := &fakeIntake{
		conflict: func(_ context.Context, id uuid.UUID) ([]*domain.Conflict, error) {
			return []*domain.Conflict{{
				ID:              uuid.New(),
				ImportPackageID: id,
				EntityType:      domain.ConflictPerson,
				Score:           100,
				Candidates:      []domain.Candidate{{EntityID: master, Score: 100}},
				Status:          domain.ConflictUnresolved,
			}}, nil
		},
	}
	router := testRouter(svc, "rev-1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/"+pkgID.String()+"/conflicts", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Items []domain.Conflict `json:"items"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Items, 1)
	assert.Equal(t, pkgID, resp.Items[0].ImportPackageID)
	require.Len(t, resp.Items[0].Candidates, 1)
	assert.Equal(t, master, resp.Items[0].Candidates[0].EntityID)
}

func TestResolveConflict_ForwardsDecision(t *testing.T) {
	conflictID := uuid.New()
	master := uuid.New()
	var gotReq domain.ResolveRequest
	var gotActor string
	svc := &fakeIntake{
		resolve: func(_ context.Context, id uuid.UUID, req domain.ResolveRequest, actor string) (*domain.ResolveResult, error) {
			require.Equal(t, conflictID, id)
			gotReq, gotActor = req, actor
			return &domain.ResolveResult{
				PackageStatus:  domain.StatusReadyToCommit,
				MergePerformed: true,
			}, nil
		},
	}
	router := testRouter(svc, "rev-2")

	body := bytes.NewBufferString(`{
		"resolution": "MERGE",
		"justification": "national id matches",
		"master_entity_id": "` + master.String() + `"
	}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conflicts/"+conflictID.String()+"/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, domain.ResolutionMerge, gotReq.Resolution)
	assert.Equal(t, "national id matches", gotReq.Justification)
	require.NotNil(t, gotReq.MasterEntityID)
	assert.Equal(t, master, *gotReq.MasterEntityID)
	assert.Equal(t, "rev-2", gotActor)

	var resp domain.ResolveResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.MergePerformed)
	assert.Equal(t, domain.StatusReadyToCommit, resp.PackageStatus)
}

func TestResolveConflict_UnknownResolution(t *testing.T) {
	router := testRouter(&fakeIntake{}, "rev-1")

	body := bytes.NewBufferString(`{"resolution":"DISCARD","justification":"nope"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conflicts/"+uuid.NewString()+"/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodeInvalidRequestField, resp["code"])
}

func TestResolveConflict_MalformedMasterID(t *testing.T) {
	router := testRouter(&fakeIntake{}, "rev-1")

	body := bytes.NewBufferString(`{"resolution":"MERGE","justification":"x","master_entity_id":"not-a-uuid"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conflicts/"+uuid.NewString()+"/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResolveConflict_AlreadyResolvedEnvelope(t *testing.T) {
	svc := &fakeIntake{
		resolve: func(_ context.Context, id uuid.UUID, _ domain.ResolveRequest, _ string) (*domain.ResolveResult, error) {
			return nil, apperrors.Conflict(apperrors.CodeConflictAlreadyResolved,
				"conflict was already resolved").
				WithParams(map[string]interface{}{"conflictId": id.String()})
		},
	}
	router := testRouter(svc, "rev-1")

	body := bytes.NewBufferString(`{"resolution":"KEEP_SEPARATE","justification":"different families"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/conflicts/"+uuid.NewString()+"/resolve", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.CodeConflictAlreadyResolved, resp["code"])
}
