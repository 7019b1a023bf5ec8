// Package handlers implements the HTTP surface of the intake pipeline.
//
// Every request is validated against the embedded OpenAPI contract by the
// router middleware before it reaches a handler; handlers report failures by
// pushing an error into the gin context and letting the error-handler
// middleware render the envelope.
package handlers

import (
	"context"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"uhc-registry.io/registry/ent"
	"uhc-registry.io/registry/internal/api/middleware"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	apperrors "uhc-registry.io/registry/internal/pkg/errors"
)

// IntakeService is the slice of the intake facade the HTTP surface drives.
type IntakeService interface {
	Receive(ctx context.Context, source io.Reader, fileName string,
		method domain.ImportMethod, actor string) (*domain.ReceiveResult, error)
	Load(ctx context.Context, packageID uuid.UUID, actor string) (*domain.LoadReport, error)
	Validate(ctx context.Context, packageID uuid.UUID, actor string) (*domain.ValidationSummary, error)
	DetectDuplicates(ctx context.Context, packageID uuid.UUID, actor string) (*domain.DetectionReport, error)
	Commit(ctx context.Context, packageID uuid.UUID, actor string) (*domain.CommitReport, error)
	Cancel(ctx context.Context, packageID uuid.UUID, reason, actor string, cleanup bool) (*domain.CancelResult, error)
	Resolve(ctx context.Context, conflictID uuid.UUID, req domain.ResolveRequest, actor string) (*domain.ResolveResult, error)
	Get(ctx context.Context, packageID uuid.UUID) (*domain.ImportPackage, error)
	List(ctx context.Context, f intake.PackageFilter) (*domain.PackageList, error)
	StagedSummary(ctx context.Context, packageID uuid.UUID) (*domain.StagedEntitySummary, error)
	StagedPage(ctx context.Context, packageID uuid.UUID,
		et domain.EntityType, offset, limit int) (*domain.StagedRowPage, error)
	Conflicts(ctx context.Context, packageID uuid.UUID) ([]*domain.Conflict, error)
	Report(ctx context.Context, packageID uuid.UUID) (*domain.CommitReport, error)
}

var _ IntakeService = (*intake.Service)(nil)

// Server implements all API handlers.
type Server struct {
	intake    IntakeService
	client    *ent.Client
	pool      *pgxpool.Pool
	maxUpload int64
}

// ServerDeps holds all dependencies for creating a Server. Manual DI, no
// Wire/Dig.
type ServerDeps struct {
	Intake    IntakeService
	EntClient *ent.Client
	Pool      *pgxpool.Pool
	// MaxUploadBytes caps the multipart upload body; zero disables the cap.
	MaxUploadBytes int64
}

// NewServer creates a new Server with all dependencies.
func NewServer(deps ServerDeps) *Server {
	return &Server{
		intake:    deps.Intake,
		client:    deps.EntClient,
		pool:      deps.Pool,
		maxUpload: deps.MaxUploadBytes,
	}
}

// RegisterRoutes wires the authenticated API routes onto the group.
func (s *Server) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/imports", s.ReceivePackage)
	rg.GET("/imports", s.ListPackages)
	rg.GET("/imports/:id", s.GetPackage)
	rg.POST("/imports/:id/load", s.LoadPackage)
	rg.POST("/imports/:id/validate", s.ValidatePackage)
	rg.POST("/imports/:id/detect-duplicates", s.DetectDuplicates)
	rg.POST("/imports/:id/commit", s.CommitPackage)
	rg.POST("/imports/:id/cancel", s.CancelPackage)
	rg.GET("/imports/:id/staged-entities", s.StagedEntities)
	rg.GET("/imports/:id/conflicts", s.ListConflicts)
	rg.GET("/imports/:id/report", s.PackageReport)
	rg.POST("/conflicts/:id/resolve", s.ResolveConflict)

	rg.GET("/notifications", s.ListNotifications)
	rg.GET("/notifications/unread-count", s.GetUnreadCount)
	rg.POST("/notifications/:id/read", s.MarkNotificationRead)
	rg.POST("/notifications/read-all", s.MarkAllNotificationsRead)
}

// RegisterHealth wires the unauthenticated probe routes.
func (s *Server) RegisterHealth(r gin.IRoutes) {
	r.GET("/health/live", s.GetLiveness)
	r.GET("/health/ready", s.GetReadiness)
}

// actorFromCtx extracts the authenticated user ID from the request context.
func actorFromCtx(c *gin.Context) string {
	return middleware.GetUserID(c.Request.Context())
}

// packageIDParam parses the :id path parameter as a UUID.
func packageIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		_ = c.Error(apperrors.BadRequest(apperrors.CodeInvalidRequestField,
			"id must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

func paginationParams(c *gin.Context) (offset, limit int) {
	offset, _ = strconv.Atoi(c.Query("offset"))
	if offset < 0 {
		offset = 0
	}
	limit, _ = strconv.Atoi(c.Query("limit"))
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return offset, limit
}

// respond writes the success payload unless the call failed, in which case
// the error-handler middleware renders the envelope.
func respond(c *gin.Context, status int, payload interface{}, err error) {
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(status, payload)
}
