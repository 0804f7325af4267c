package persistence

import (
	"context"
	"errors"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
	"gorm.io/gorm"
)

// GormContactRepository implements crm.ContactRepository using GORM
type GormContactRepository struct {
	db *gorm.DB
}

var _ crm.ContactRepository = (*GormContactRepository)(nil)

// NewGormContactRepository creates a new GORM-based contact repository
func NewGormContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// List returns contacts matching the validated filter set
func (r *GormContactRepository) List(ctx context.Context, query shared.ListQuery) ([]crm.Contact, error) {
	db := applyFilters(r.db.WithContext(ctx).Model(&crm.Contact{}), query.Filters)
	var contacts []crm.Contact
	if err := db.Order("id").Limit(shared.ClampLimit(query.Limit)).Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

// FindByID returns a contact by ID
func (r *GormContactRepository) FindByID(ctx context.Context, id int64) (*crm.Contact, error) {
	var contact crm.Contact
	if err := r.db.WithContext(ctx).First(&contact, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &contact, nil
}

// Create inserts a contact and returns the stored row
func (r *GormContactRepository) Create(ctx context.Context, contact *crm.Contact) (*crm.Contact, error) {
	if err := r.db.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, contact.ID)
}

// Update applies a sparse field map and returns the rows that matched
func (r *GormContactRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) ([]crm.Contact, error) {
	fields = sanitizeUpdate(fields)
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).Model(&crm.Contact{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	var rows []crm.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a contact and returns the rows that were deleted
func (r *GormContactRepository) Delete(ctx context.Context, id int64) ([]crm.Contact, error) {
	var rows []crm.Contact
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.db.WithContext(ctx).Delete(&crm.Contact{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
