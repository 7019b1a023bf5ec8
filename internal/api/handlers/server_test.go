package handlers

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"uhc-registry.io/registry/internal/api/middleware"
	"uhc-registry.io/registry/internal/domain"
	"uhc-registry.io/registry/internal/intake"
	"uhc-registry.io/registry/internal/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	_ = logger.Init("error", "json")
}

// fakeIntake stubs the intake facade with per-call hooks. Calls without a
// hook return zero values.
type fakeIntake struct {
	receive  func(ctx context.Context, source io.Reader, fileName string, method domain.ImportMethod, actor string) (*domain.ReceiveResult, error)
	list     func(ctx context.Context, f intake.PackageFilter) (*domain.PackageList, error)
	get      func(ctx context.Context, id uuid.UUID) (*domain.ImportPackage, error)
	cancel   func(ctx context.Context, id uuid.UUID, reason, actor string, cleanup bool) (*domain.CancelResult, error)
	resolve  func(ctx context.Context, id uuid.UUID, req domain.ResolveRequest, actor string) (*domain.ResolveResult, error)
	summary  func(ctx context.Context, id uuid.UUID) (*domain.StagedEntitySummary, error)
	page     func(ctx context.Context, id uuid.UUID, et domain.EntityType, offset, limit int) (*domain.StagedRowPage, error)
	commit   func(ctx context.Context, id uuid.UUID, actor string) (*domain.CommitReport, error)
	conflict func(ctx context.Context, id uuid.UUID) ([]*domain.Conflict, error)
}

func (f *fakeIntake) Receive(ctx context.Context, source io.Reader, fileName string,
	method domain.ImportMethod, actor string) (*domain.ReceiveResult, error) {
	if f.receive != nil {
		return f.receive(ctx, source, fileName, method, actor)
	}
	return &domain.ReceiveResult{Package: &domain.ImportPackage{}}, nil
}

func (f *fakeIntake) Load(ctx context.Context, id uuid.UUID, actor string) (*domain.LoadReport, error) {
	return &domain.LoadReport{PackageID: id}, nil
}

func (f *fakeIntake) Validate(ctx context.Context, id uuid.UUID, actor string) (*domain.ValidationSummary, error) {
	return &domain.ValidationSummary{}, nil
}

func (f *fakeIntake) DetectDuplicates(ctx context.Context, id uuid.UUID, actor string) (*domain.DetectionReport, error) {
	return &domain.DetectionReport{PackageID: id}, nil
}

func (f *fakeIntake) Commit(ctx context.Context, id uuid.UUID, actor string) (*domain.CommitReport, error) {
	if f.commit != nil {
		return f.commit(ctx, id, actor)
	}
	return &domain.CommitReport{PackageID: id}, nil
}

func (f *fakeIntake) Cancel(ctx context.Context, id uuid.UUID, reason, actor string, cleanup bool) (*domain.CancelResult, error) {
	if f.cancel != nil {
		return f.cancel(ctx, id, reason, actor, cleanup)
	}
	return &domain.CancelResult{PackageID: id}, nil
}

func (f *fakeIntake) Resolve(ctx context.Context, id uuid.UUID, req domain.ResolveRequest, actor string) (*domain.ResolveResult, error) {
	if f.resolve != nil {
		return f.resolve(ctx, id, req, actor)
	}
	return &domain.ResolveResult{}, nil
}

func (f *fakeIntake) Get(ctx context.Context, id uuid.UUID) (*domain.ImportPackage, error) {
	if f.get != nil {
		return f.get(ctx, id)
	}
	return &domain.ImportPackage{ID: id}, nil
}

func (f *fakeIntake) List(ctx context.Context, filter intake.PackageFilter) (*domain.PackageList, error) {
	if f.list != nil {
		return f.list(ctx, filter)
	}
	return &domain.PackageList{Items: []*domain.ImportPackage{}}, nil
}

func (f *fakeIntake) StagedSummary(ctx context.Context, id uuid.UUID) (*domain.StagedEntitySummary, error) {
	if f.summary != nil {
		return f.summary(ctx, id)
	}
	return &domain.StagedEntitySummary{}, nil
}

func (f *fakeIntake) StagedPage(ctx context.Context, id uuid.UUID,
	et domain.EntityType, offset, limit int) (*domain.StagedRowPage, error) {
	if f.page != nil {
		return f.page(ctx, id, et, offset, limit)
	}
	return &domain.StagedRowPage{}, nil
}

func (f *fakeIntake) Conflicts(ctx context.Context, id uuid.UUID) ([]*domain.Conflict, error) {
	if f.conflict != nil {
		return f.conflict(ctx, id)
	}
	return nil, nil
}

func (f *fakeIntake) Report(ctx context.Context, id uuid.UUID) (*domain.CommitReport, error) {
	return &domain.CommitReport{PackageID: id}, nil
}

// testRouter builds a router with the error envelope and a stub identity, the
// way the production chain does after JWT validation.
func testRouter(svc IntakeService, actor string) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(
			middleware.SetUserContext(c.Request.Context(), actor, actor, []string{"reviewer"}))
	})
	router.Use(middleware.ErrorHandler())
	s := NewServer(ServerDeps{Intake: svc})
	s.RegisterRoutes(router.Group("/api/v1"))
	return router
}
