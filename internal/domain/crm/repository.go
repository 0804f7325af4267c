package crm

import (
	"context"

	"github.com/instrategy/salesflow/internal/domain/shared"
)

// CompanyRepository defines company persistence operations
type CompanyRepository interface {
	List(ctx context.Context, query shared.ListQuery) ([]Company, error)
	FindByID(ctx context.Context, id int64) (*Company, error)
	Create(ctx context.Context, company *Company) (*Company, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) ([]Company, error)
	Delete(ctx context.Context, id int64) ([]Company, error)
	ListNames(ctx context.Context, limit int) ([]string, error)
}

// ContactRepository defines contact persistence operations
type ContactRepository interface {
	List(ctx context.Context, query shared.ListQuery) ([]Contact, error)
	FindByID(ctx context.Context, id int64) (*Contact, error)
	Create(ctx context.Context, contact *Contact) (*Contact, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) ([]Contact, error)
	Delete(ctx context.Context, id int64) ([]Contact, error)
}

// CallRepository defines call persistence operations
type CallRepository interface {
	List(ctx context.Context, query shared.ListQuery) ([]Call, error)
	FindByID(ctx context.Context, id int64) (*Call, error)
	Create(ctx context.Context, call *Call) (*Call, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) ([]Call, error)
	Delete(ctx context.Context, id int64) ([]Call, error)
}

// EmailLogRepository defines email audit persistence operations
type EmailLogRepository interface {
	List(ctx context.Context, query shared.ListQuery) ([]EmailLog, error)
	FindByID(ctx context.Context, id int64) (*EmailLog, error)
	Create(ctx context.Context, email *EmailLog) (*EmailLog, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}) ([]EmailLog, error)
	Delete(ctx context.Context, id int64) ([]EmailLog, error)
}

// SyncLogRepository records synchronization outcomes
type SyncLogRepository interface {
	Create(ctx context.Context, entry *SyncLog) error
}
