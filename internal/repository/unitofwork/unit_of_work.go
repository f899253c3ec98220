package unitofwork

import (
	"context"

	"legal-assist-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	ChatSessionRepository() contract.ChatSessionRepository
	ChatMessageRepository() contract.ChatMessageRepository
	SessionCheckpointRepository() contract.SessionCheckpointRepository
	LawyerRepository() contract.LawyerRepository
	KnowledgeRepository() contract.KnowledgeRepository
	CrisisResourceRepository() contract.CrisisResourceRepository
	ActionTemplateRepository() contract.ActionTemplateRepository
}
