package crm

import (
	"context"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
)

// ContactService handles contact CRUD operations
type ContactService struct {
	repo crm.ContactRepository
}

// NewContactService creates a new ContactService
func NewContactService(repo crm.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// List returns contacts matching raw query-string filters
func (s *ContactService) List(ctx context.Context, params map[string]string, limit int) ([]crm.Contact, error) {
	filters, err := crm.ContactFilters.ParseFilters(params)
	if err != nil {
		return nil, err
	}
	return s.repo.List(ctx, shared.ListQuery{Filters: filters, Limit: shared.ClampLimit(limit)})
}

// Get returns one contact by id
func (s *ContactService) Get(ctx context.Context, id int64) (*crm.Contact, error) {
	return s.repo.FindByID(ctx, id)
}

// Create inserts a contact, defaulting the pipeline state when omitted
func (s *ContactService) Create(ctx context.Context, contact *crm.Contact) (*crm.Contact, error) {
	if contact.Nombre == nil || *contact.Nombre == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "nombre is required")
	}
	if contact.Estado == nil {
		estado := crm.DefaultContactEstado
		contact.Estado = &estado
	}
	return s.repo.Create(ctx, contact)
}

// Update applies a sparse field map to a contact
func (s *ContactService) Update(ctx context.Context, id int64, fields map[string]interface{}) ([]crm.Contact, error) {
	return s.repo.Update(ctx, id, fields)
}

// Delete removes a contact
func (s *ContactService) Delete(ctx context.Context, id int64) ([]crm.Contact, error) {
	return s.repo.Delete(ctx, id)
}
