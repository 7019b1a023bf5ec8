package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/domain"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

// ListConflicts handles GET /imports/{id}/conflicts.
func (s *Server) ListConflicts(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	conflicts, err := s.intake.Conflicts(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	if conflicts == nil {
		conflicts = []*domain.Conflict{}
	}
	c.JSON(http.StatusOK, gin.H{"items": conflicts})
}

type resolveBody struct {
	Resolution     string  `json:"resolution"`
	Justification  string  `json:"justification"`
	MasterEntityID *string `json:"master_entity_id"`
}

// ResolveConflict handles POST /conflicts/{id}/resolve.
func (s *Server) ResolveConflict(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	var body resolveBody
	if err := c.ShouldBindJSON(&body); err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"malformed resolve body"))
		return
	}

	resolution, ok := domain.ParseResolution(body.Resolution)
	if !ok {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"unknown resolution "+body.Resolution).
			WithFieldErrors([]apperrors.FieldError{{Field: "resolution", Code: "INVALID"}}))
		return
	}

	req := domain.ResolveRequest{
		Resolution:    resolution,
		Justification: body.Justification,
	}
	if body.MasterEntityID != nil {
		master, err := uuid.Parse(*body.MasterEntityID)
		if err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				"master_entity_id must be a UUID").
				WithFieldErrors([]apperrors.FieldError{{Field: "master_entity_id", Code: "INVALID"}}))
			return
		}
		req.MasterEntityID = &master
	}

	result, err := s.intake.Resolve(c.Request.Context(), id, req, actorFromCtx(c))
	respond(c, http.StatusOK, result, err)
}
