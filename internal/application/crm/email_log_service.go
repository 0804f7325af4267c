package crm

import (
	"context"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
)

// EmailLogService handles CRUD over the email audit table
type EmailLogService struct {
	repo crm.EmailLogRepository
}

// NewEmailLogService creates a new EmailLogService
func NewEmailLogService(repo crm.EmailLogRepository) *EmailLogService {
	return &EmailLogService{repo: repo}
}

// List returns email audit rows matching raw query-string filters
func (s *EmailLogService) List(ctx context.Context, params map[string]string, limit int) ([]crm.EmailLog, error) {
	filters, err := crm.EmailFilters.ParseFilters(params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, shared.ListQuery{Filters: filters, Limit: shared.ClampLimit(limit)})
}

// Get returns one email audit row by id
func (s *EmailLogService) Get(ctx context.Context, id int64) (*crm.EmailLog, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts an email audit row
func (s *EmailLogService) Create(ctx context.Context, email *crm.EmailLog) (*crm.EmailLog, error) {
	return s.repo.Create(ctx, email)
}

// Update applies a sparse field map to an email audit row
func (s *EmailLogService) Update(ctx context.Context, id int64, fields map[string]interface{}) ([]crm.EmailLog, error) {
	return s.repo.Update(ctx, id, fields)
}

// Delete removes an email audit row
func (s *EmailLogService) Delete(ctx context.Context, id int64) ([]crm.EmailLog, error) {
	return s.repo.Delete(ctx, id)
}
