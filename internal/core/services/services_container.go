package services

import (
	portsrepo "github.com/SscSPs/videotube_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/videotube_backend/internal/core/ports/services"
	"github.com/SscSPs/videotube_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Token = NewTokenService(cfg)
	container.User = NewUserService(repos.UserRepo, cfg.BcryptCost)
	container.Session = NewSessionService(repos.UserRepo, container.Token,
		WithSessionBcryptCost(cfg.BcryptCost),
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.TokenSvcFacade   = (*tokenService)(nil)
	_ portssvc.SessionSvcFacade = (*sessionService)(nil)
	_ portssvc.UserSvcFacade    = (*userService)(nil)
)
