package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
	"uhc-registry.io/registry/internal/pkg/logger"
)

// ReceivePackage handles POST /imports: one multipart container upload.
func (s *Server) ReceivePackage(c *gin.Context) {
	ctx := c.Request.Context()
	actor := actorFromCtx(c)

	if s.maxUpload > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.maxUpload)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"multipart field 'file' is required").
			WithFieldErrors([]apperrors.FieldError{{Field: "file", Code: "REQUIRED"}}))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"uploaded file could not be read"))
		return
	}
	defer file.Close()

	method := domain.ParseImportMethod(c.PostForm("importMethod"))

	result, err := s.intake.Receive(ctx, file, fileHeader.Filename, method, actor)
	if err != nil {
		_ = c.Error(err)
		return
	}

	status := http.StatusCreated
	if result.IsDuplicatePackage {
		status = http.StatusOK
		logger.Info("Duplicate container delivery acknowledged",
			zap.String("package_id", result.Package.ID.String()),
			zap.String("file_name", fileHeader.Filename))
	}
	c.JSON(status, result)
}

// ListPackages handles GET /imports.
func (s *Server) ListPackages(c *gin.Context) {
	offset, limit := paginationParams(c)
	filter := intake.PackageFilter{Offset: offset, Limit: limit}

	if raw := c.Query("status"); raw != "" {
		status := domain.PackageStatus(raw)
		valid := false
		for _, v := range domain.PackageStatusValues() {
			if v == raw {
				valid = true
				break
			}
		}
		if !valid {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				"unknown package status "+raw))
			return
		}
		filter.Status = &status
	}

	list, err := s.intake.List(c.Request.Context(), filter)
	respond(c, http.StatusOK, list, err)
}

// GetPackage handles GET /imports/{id}.
func (s *Server) GetPackage(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	pkg, err := s.intake.Get(c.Request.Context(), id)
	respond(c, http.StatusOK, pkg, err)
}

// LoadPackage handles POST /imports/{id}/load.
func (s *Server) LoadPackage(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	report, err := s.intake.Load(c.Request.Context(), id, actorFromCtx(c))
	respond(c, http.StatusOK, report, err)
}

// ValidatePackage handles POST /imports/{id}/validate.
func (s *Server) ValidatePackage(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	summary, err := s.intake.Validate(c.Request.Context(), id, actorFromCtx(c))
	respond(c, http.StatusOK, summary, err)
}

// DetectDuplicates handles POST /imports/{id}/detect-duplicates.
func (s *Server) DetectDuplicates(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	report, err := s.intake.DetectDuplicates(c.Request.Context(), id, actorFromCtx(c))
	respond(c, http.StatusOK, report, err)
}

// CommitPackage handles POST /imports/{id}/commit.
func (s *Server) CommitPackage(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	report, err := s.intake.Commit(c.Request.Context(), id, actorFromCtx(c))
	respond(c, http.StatusOK, report, err)
}

type cancelBody struct {
	Reason  string `json:"reason"`
	Cleanup bool   `json:"cleanup"`
}

// CancelPackage handles POST /imports/{id}/cancel. Cancelling an already
// cancelled package succeeds and reports the original decision.
func (s *Server) CancelPackage(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	var body cancelBody
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&body); err != nil {
			_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
				"malformed cancel body"))
			return
		}
	}
	result, err := s.intake.Cancel(c.Request.Context(), id, body.Reason, actorFromCtx(c), body.Cleanup)
	respond(c, http.StatusOK, result, err)
}

// StagedEntities handles GET /imports/{id}/staged-entities. Without an
// entityType query it returns the per-type summary; with one it returns a
// row page of that type.
func (s *Server) StagedEntities(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	entityType := c.Query("entityType")
	if entityType == "" {
		summary, err := s.intake.StagedSummary(ctx, id)
		respond(c, http.StatusOK, summary, err)
		return
	}
	if !domain.ValidEntityType(entityType) {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"unknown entity type "+entityType))
		return
	}

	offset, limit := paginationParams(c)
	page, err := s.intake.StagedPage(ctx, id, domain.EntityType(entityType), offset, limit)
	respond(c, http.StatusOK, page, err)
}

// PackageReport handles GET /imports/{id}/report.
func (s *Server) PackageReport(c *gin.Context) {
	id, ok := packageIDParam(c)
	if !ok {
		return
	}
	report, err := s.intake.Report(c.Request.Context(), id)
	respond(c, http.StatusOK, report, err)
}
