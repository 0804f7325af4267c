package persistence

import (
	"context"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"gorm.io/gorm"
)

// GormSyncLogRepository implements crm.SyncLogRepository using GORM
type GormSyncLogRepository struct {
	db *gorm.DB
}

var _ crm.SyncLogRepository = (*GormSyncLogRepository)(nil)

// NewGormSyncLogRepository creates a new GORM-based sync audit repository
func NewGormSyncLogRepository(db *gorm.DB) *GormSyncLogRepository {
	return &GormSyncLogRepository{db: db}
}

// Create inserts a synchronization audit row
func (r *GormSyncLogRepository) Create(ctx context.Context, entry *crm.SyncLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}
