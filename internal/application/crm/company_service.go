package crm

import (
	"context"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
)

// CompanyService handles company CRUD operations
type CompanyService struct {
	repo crm.CompanyRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(repo crm.CompanyRepository) *CompanyService {
	return &CompanyService{repo: repo}
}

// List returns companies matching raw query-string filters
func (s *CompanyService) List(ctx context.Context, params map[string]string, limit int) ([]crm.Company, error) {
	filters, err := crm.CompanyFilters.ParseFilters(params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, shared.ListQuery{Filters: filters, Limit: shared.ClampLimit(limit)})
}

// Get returns one company by id
func (s *CompanyService) Get(ctx context.Context, id int64) (*crm.Company, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a company, applying pipeline defaults for omitted fields
func (s *CompanyService) Create(ctx context.Context, company *crm.Company) (*crm.Company, error) {
	if company.Name == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "name is required")
	}
	if company.Estado == nil {
		estado := crm.DefaultCompanyEstado
		company.Estado = &estado
	}
	if company.LeadStatus == nil {
		leadStatus := crm.DefaultCompanyLeadStatus
		company.LeadStatus = &leadStatus
	}
	return s.repo.Create(ctx, company)
}

// Update applies a sparse field map to a company
func (s *CompanyService) Update(ctx context.Context, id int64, fields map[string]interface{}) ([]crm.Company, error) {
	return s.repo.Update(ctx, id, fields)
}

// Delete removes a company
func (s *CompanyService) Delete(ctx context.Context, id int64) ([]crm.Company, error) {
	return s.repo.Delete(ctx, id)
}
