package crm

import "github.com/instrategy/salesflow/internal/domain/shared"

// Per-entity filter specifications. Only the columns listed here can be
// used as equality filters on the list endpoints.

var CompanyFilters = shared.FilterSpec{
	"id":                 shared.FieldInt,
	"name":               shared.FieldString,
	"contacto_principal": shared.FieldString,
	"interacciones_hoy":  shared.FieldInt,
	"ultima_accion":      shared.FieldString,
	"responsable":        shared.FieldString,
	"estado":             shared.FieldString,
	"total_revenue":      shared.FieldFloat,
	"net_profit":         shared.FieldFloat,
	"country":            shared.FieldString,
	"sector":             shared.FieldString,
	"lead_status":        shared.FieldString,
	"hubspot_id":         shared.FieldString,
}

var ContactFilters = shared.FilterSpec{
	"id":             shared.FieldInt,
	"company_id":     shared.FieldInt,
	"nombre":         shared.FieldString,
	"cargo":          shared.FieldString,
	"email":          shared.FieldString,
	"telefono":       shared.FieldString,
	"fuente":         shared.FieldString,
	"propietario":    shared.FieldString,
	"fecha_creacion": shared.FieldString,
	"estado":         shared.FieldString,
	"first_name":     shared.FieldString,
	"last_name":      shared.FieldString,
	"country":        shared.FieldString,
	"role":           shared.FieldString,
	"hubspot_id":     shared.FieldString,
}

var CallFilters = shared.FilterSpec{
	"id":             shared.FieldInt,
	"contact_id":     shared.FieldInt,
	"company_id":     shared.FieldInt,
	"asunto":         shared.FieldString,
	"duracion":       shared.FieldInt,
	"resultado":      shared.FieldString,
	"siguiente_paso": shared.FieldString,
	"responsable":    shared.FieldString,
	"notas":          shared.FieldString,
}

var EmailFilters = shared.FilterSpec{
	"id":          shared.FieldInt,
	"asunto":      shared.FieldString,
	"para":        shared.FieldString,
	"plantilla":   shared.FieldString,
	"estado":      shared.FieldString,
	"responsable": shared.FieldString,
	"fecha_hora":  shared.FieldString,
}
