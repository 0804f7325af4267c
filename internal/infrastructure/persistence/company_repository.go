package persistence

import (
	"context"
	"errors"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCompanyRepository implements crm.CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

var _ crm.CompanyRepository = (*GormCompanyRepository)(nil)

// NewGormCompanyRepository creates a new GORM-based company repository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// List returns companies matching the validated filter set
func (r *GormCompanyRepository) List(ctx context.Context, query shared.ListQuery) ([]crm.Company, error) {
	db := applyFilters(r.db.WithContext(ctx).Model(&crm.Company{}), query.Filters)
	var companies []crm.Company
	if err := db.Order("id").Limit(shared.ClampLimit(query.Limit)).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// FindByID returns a company by ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id int64) (*crm.Company, error) {
	var company crm.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// Create inserts a company and returns the stored row
func (r *GormCompanyRepository) Create(ctx context.Context, company *crm.Company) (*crm.Company, error) {
	if err := r.db.WithContext(ctx).Create(company).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, company.ID)
}

// Update applies a sparse field map and returns the rows that matched
func (r *GormCompanyRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) ([]crm.Company, error) {
	fields = sanitizeUpdate(fields)
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).Model(&crm.Company{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	var rows []crm.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a company and returns the rows that were deleted
func (r *GormCompanyRepository) Delete(ctx context.Context, id int64) ([]crm.Company, error) {
	var rows []crm.Company
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.db.WithContext(ctx).Delete(&crm.Company{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// ListNames returns up to limit company names, used as extraction context
func (r *GormCompanyRepository) ListNames(ctx context.Context, limit int) ([]string, error) {
	var names []string
	err := r.db.WithContext(ctx).Model(&crm.Company{}).Order("id").Limit(limit).Pluck("name", &names).Error
	if err != nil {
		return nil, err
	}
	return names, nil
}
