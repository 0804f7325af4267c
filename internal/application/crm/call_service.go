package crm

import (
	"context"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
)

// CallService handles call CRUD operations
type CallService struct {
	repo crm.CallRepository
}

// NewCallService creates a new CallService
func NewCallService(repo crm.CallRepository) *CallService {
	return &CallService{repo: repo}
}

// List returns calls matching raw query-string filters
func (s *CallService) List(ctx context.Context, params map[string]string, limit int) ([]crm.Call, error) {
	filters, err := crm.CallFilters.ParseFilters(params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, shared.ListQuery{Filters: filters, Limit: shared.ClampLimit(limit)})
}

// Get returns one call by id
func (s *CallService) Get(ctx context.Context, id int64) (*crm.Call, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a call
func (s *CallService) Create(ctx context.Context, call *crm.Call) (*crm.Call, error) {
	return s.repo.Create(ctx, call)
}

// Update applies a sparse field map to a call
func (s *CallService) Update(ctx context.Context, id int64, fields map[string]interface{}) ([]crm.Call, error) {
	return s.repo.Update(ctx, id, fields)
}

// Delete removes a call
func (s *CallService) Delete(ctx context.Context, id int64) ([]crm.Call, error) {
	return s.repo.Delete(ctx, id)
}
