package services

import (
	portsrepo "github.com/SscSPs/piecework_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/piecework_app/internal/core/ports/services"
	"github.com/SscSPs/piecework_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	options = append([]ServiceOption{WithLocation(cfg.Location)}, options...)

	return &portssvc.ServiceContainer{
		Catalog:    NewCatalogService(repos.SectionRepo, repos.ItemRepo, repos.UserRepo, options...),
		Worker:     NewWorkerService(repos.WorkerRepo, options...),
		WorkRecord: NewWorkRecordService(repos.WorkRecordRepo, repos.WorkerRepo, repos.SectionRepo, repos.ItemRepo, options...),
		Settlement: NewSettlementService(repos.WorkRecordRepo, options...),
		Reporting:  NewReportingService(repos.WorkRecordRepo, repos.WorkerRepo, options...),
		Auth: NewAuthService(repos.UserRepo, TokenConfig{
			Secret: cfg.JWTSecret,
			Expiry: cfg.JWTExpiryDuration,
			Issuer: cfg.JWTIssuer,
		}, options...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.CatalogSvcFacade    = (*catalogService)(nil)
	_ portssvc.WorkerSvcFacade     = (*workerService)(nil)
	_ portssvc.WorkRecordSvcFacade = (*workRecordService)(nil)
	_ portssvc.SettlementSvc       = (*settlementService)(nil)
	_ portssvc.ReportingSvc        = (*reportingService)(nil)
	_ portssvc.AuthSvcFacade       = (*authService)(nil)
)
