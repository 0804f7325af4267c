package persistence

import (
	"context"
	"errors"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
	"gorm.io/gorm"
)

// GormCallRepository implements crm.CallRepository using GORM
type GormCallRepository struct {
	db *gorm.DB
}

var _ crm.CallRepository = (*GormCallRepository)(nil)

// NewGormCallRepository creates a new GORM-based call repository
func NewGormCallRepository(db *gorm.DB) *GormCallRepository {
	return &GormCallRepository{db: db}
}

// List returns calls matching the validated filter set
func (r *GormCallRepository) List(ctx context.Context, query shared.ListQuery) ([]crm.Call, error) {
	db := applyFilters(r.db.WithContext(ctx).Model(&crm.Call{}), query.Filters)
	var calls []crm.Call
	if err := db.Order("id").Limit(shared.ClampLimit(query.Limit)).Find(&calls).Error; err != nil {
		return nil, err
	}
	return calls, nil
}

// FindByID returns a call by ID
func (r *GormCallRepository) FindByID(ctx context.Context, id int64) (*crm.Call, error) {
	var call crm.Call
	if err := r.db.WithContext(ctx).First(&call, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &call, nil
}

// Create inserts a call and returns the stored row
func (r *GormCallRepository) Create(ctx context.Context, call *crm.Call) (*crm.Call, error) {
	if err := r.db.WithContext(ctx).Create(call).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, call.ID)
}

// Update applies a sparse field map and returns the rows that matched
func (r *GormCallRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) ([]crm.Call, error) {
	fields = sanitizeUpdate(fields)
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).Model(&crm.Call{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	var rows []crm.Call
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes a call and returns the rows that were deleted
func (r *GormCallRepository) Delete(ctx context.Context, id int64) ([]crm.Call, error) {
	var rows []crm.Call
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.db.WithContext(ctx).Delete(&crm.Call{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
