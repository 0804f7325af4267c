package crm

import "time"

// Company is a tracked account. Column names follow the store's schema,
// which mixes Spanish operational fields with HubSpot-aligned English ones.
type Company struct {
	ID                int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt         time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	Name              string    `json:"name" gorm:"column:name"`
	ContactoPrincipal *string   `json:"contacto_principal,omitempty" gorm:"column:contacto_principal"`
	InteraccionesHoy  *int      `json:"interacciones_hoy,omitempty" gorm:"column:interacciones_hoy"`
	UltimaAccion      *string   `json:"ultima_accion,omitempty" gorm:"column:ultima_accion"`
	Responsable       *string   `json:"responsable,omitempty" gorm:"column:responsable"`
	Estado            *string   `json:"estado,omitempty" gorm:"column:estado"`
	TotalRevenue      *float64  `json:"total_revenue,omitempty" gorm:"column:total_revenue"`
	NetProfit         *float64  `json:"net_profit,omitempty" gorm:"column:net_profit"`
	Country           *string   `json:"country,omitempty" gorm:"column:country"`
	Sector            *string   `json:"sector,omitempty" gorm:"column:sector"`
	LeadStatus        *string   `json:"lead_status,omitempty" gorm:"column:lead_status"`
	HubspotID         *string   `json:"hubspot_id,omitempty" gorm:"column:hubspot_id"`
}

func (Company) TableName() string { return "companies" }

// Contact is a person attached to at most one company.
type Contact struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	CompanyID     *int64    `json:"company_id,omitempty" gorm:"column:company_id"`
	Nombre        *string   `json:"nombre,omitempty" gorm:"column:nombre"`
	Cargo         *string   `json:"cargo,omitempty" gorm:"column:cargo"`
	Email         *string   `json:"email,omitempty" gorm:"column:email"`
	Telefono      *string   `json:"telefono,omitempty" gorm:"column:telefono"`
	Fuente        *string   `json:"fuente,omitempty" gorm:"column:fuente"`
	Propietario   *string   `json:"propietario,omitempty" gorm:"column:propietario"`
	FechaCreacion *string   `json:"fecha_creacion,omitempty" gorm:"column:fecha_creacion"`
	Estado        *string   `json:"estado,omitempty" gorm:"column:estado"`
	FirstName     *string   `json:"first_name,omitempty" gorm:"column:first_name"`
	LastName      *string   `json:"last_name,omitempty" gorm:"column:last_name"`
	Country       *string   `json:"country,omitempty" gorm:"column:country"`
	Role          *string   `json:"role,omitempty" gorm:"column:role"`
	HubspotID     *string   `json:"hubspot_id,omitempty" gorm:"column:hubspot_id"`
}

func (Contact) TableName() string { return "contacts" }

// Call is a logged phone interaction.
type Call struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	ContactID     *int64    `json:"contact_id,omitempty" gorm:"column:contact_id"`
	CompanyID     *int64    `json:"company_id,omitempty" gorm:"column:company_id"`
	Asunto        *string   `json:"asunto,omitempty" gorm:"column:asunto"`
	Duracion      *int      `json:"duracion,omitempty" gorm:"column:duracion"`
	Resultado     *string   `json:"resultado,omitempty" gorm:"column:resultado"`
	SiguientePaso *string   `json:"siguiente_paso,omitempty" gorm:"column:siguiente_paso"`
	Responsable   *string   `json:"responsable,omitempty" gorm:"column:responsable"`
	Notas         *string   `json:"notas,omitempty" gorm:"column:notas"`
}

func (Call) TableName() string { return "calls" }

// EmailLog is the audit record written for every outbound email.
type EmailLog struct {
	ID          int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt   time.Time  `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	Asunto      *string    `json:"asunto,omitempty" gorm:"column:asunto"`
	Para        *string    `json:"para,omitempty" gorm:"column:para"`
	Plantilla   *string    `json:"plantilla,omitempty" gorm:"column:plantilla"`
	Estado      *string    `json:"estado,omitempty" gorm:"column:estado"`
	FechaHora   *time.Time `json:"fecha_hora,omitempty" gorm:"column:fecha_hora"`
	Responsable *string    `json:"responsable,omitempty" gorm:"column:responsable"`
}

func (EmailLog) TableName() string { return "emails" }

// SyncLog records the outcome of one HubSpot synchronization attempt.
type SyncLog struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt  time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
	EntityType string    `json:"entity_type" gorm:"column:entity_type"`
	EntityID   int64     `json:"entity_id" gorm:"column:entity_id"`
	HubspotID  string    `json:"hubspot_id" gorm:"column:hubspot_id"`
	Action     string    `json:"action" gorm:"column:action"`
	Success    bool      `json:"success" gorm:"column:success"`
	Message    *string   `json:"message,omitempty" gorm:"column:message"`
}

func (SyncLog) TableName() string { return "sync_logs" }

// Company defaults applied on create when the caller omits the fields.
const (
	DefaultCompanyEstado     = "Activo"
	DefaultCompanyLeadStatus = "No contactada"
	DefaultContactEstado     = "Nuevo"
)
