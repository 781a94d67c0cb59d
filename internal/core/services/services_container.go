package services

import (
	portsrepo "github.com/mwalto7/filevault/internal/core/ports/repositories"
	portssvc "github.com/mwalto7/filevault/internal/core/ports/services"
	"github.com/mwalto7/filevault/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	audit := NewAuditRecorder(repos.AuditRepo)

	return &portssvc.ServiceContainer{
		Auth: NewAuthService(cfg, repos.UserRepo, repos.TokenRepo, audit),
		File: NewFileService(repos.FileRepo, repos.BlobStore, audit),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade = (*authService)(nil)
	_ portssvc.FileSvcFacade = (*fileService)(nil)
)
