package services

import (
	portsrepo "github.com/docmarket/docmarket_backend/internal/core/ports/repositories"
	portssvc "github.com/docmarket/docmarket_backend/internal/core/ports/services"
)

// NewServiceContainer creates the service container with properly initialized
// dependencies.
func NewServiceContainer(repos *portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		User:       NewUserService(repos.UserRepo, repos.DocumentRepo, repos.CommentRepo),
		Document:   NewDocumentService(repos.DocumentRepo, repos.CommentRepo),
		Settlement: NewSettlementService(repos.LedgerRepo, repos.DocumentRepo, repos.UserRepo),
		Comment:    NewCommentService(repos.CommentRepo, repos.DocumentRepo),
		Demand:     NewDemandService(repos.DemandRepo),
		Community:  NewCommunityService(repos.PostRepo, repos.UserRepo),
	}
}
