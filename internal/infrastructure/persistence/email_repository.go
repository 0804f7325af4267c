package persistence

import (
	"context"
	"errors"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
	"gorm.io/gorm"
)

// GormEmailLogRepository implements crm.EmailLogRepository using GORM
type GormEmailLogRepository struct {
	db *gorm.DB
}

var _ crm.EmailLogRepository = (*GormEmailLogRepository)(nil)

// NewGormEmailLogRepository creates a new GORM-based email audit repository
func NewGormEmailLogRepository(db *gorm.DB) *GormEmailLogRepository {
	return &GormEmailLogRepository{db: db}
}

// List returns email audit rows matching the validated filter set
func (r *GormEmailLogRepository) List(ctx context.Context, query shared.ListQuery) ([]crm.EmailLog, error) {
	db := applyFilters(r.db.WithContext(ctx).Model(&crm.EmailLog{}), query.Filters)
	var emails []crm.EmailLog
	if err := db.Order("id").Limit(shared.ClampLimit(query.Limit)).Find(&emails).Error; err != nil {
		return nil, err
	}
	return emails, nil
}

// FindByID returns an email audit row by ID
func (r *GormEmailLogRepository) FindByID(ctx context.Context, id int64) (*crm.EmailLog, error) {
	var email crm.EmailLog
	if err := r.db.WithContext(ctx).First(&email, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &email, nil
}

// Create inserts an email audit row and returns the stored row
func (r *GormEmailLogRepository) Create(ctx context.Context, email *crm.EmailLog) (*crm.EmailLog, error) {
	if err := r.db.WithContext(ctx).Create(email).Error; err != nil {
		return nil, err
	}
	return r.FindByID(ctx, email.ID)
}

// Update applies a sparse field map and returns the rows that matched
func (r *GormEmailLogRepository) Update(ctx context.Context, id int64, fields map[string]interface{}) ([]crm.EmailLog, error) {
	fields = sanitizeUpdate(fields)
	if len(fields) > 0 {
		err := r.db.WithContext(ctx).Model(&crm.EmailLog{}).Where("id = ?", id).Updates(fields).Error
		if err != nil {
			return nil, err
		}
	}
	var rows []crm.EmailLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Delete removes an email audit row and returns the rows that were deleted
func (r *GormEmailLogRepository) Delete(ctx context.Context, id int64) ([]crm.EmailLog, error) {
	var rows []crm.EmailLog
	if err := r.db.WithContext(ctx).Where("id = ?", id).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return rows, nil
	}
	if err := r.db.WithContext(ctx).Delete(&crm.EmailLog{}, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
