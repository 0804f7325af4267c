package crm

import (
	"strconv"
	"strings"
)

// HubSpot object types used by the sync endpoints.
const (
	ObjectCompanies = "companies"
	ObjectContacts  = "contacts"
)

// leadStatusToHubspot translates the local pipeline labels into the
// hs_lead_status internal values HubSpot expects.
var leadStatusToHubspot = map[string]string{
	"Nuevo":               "NEW",
	"Abierto":             "OPEN",
	"En curso":            "IN_PROGRESS",
	"Negocio abierto":     "OPEN_DEAL",
	"Sin calificar":       "UNQUALIFIED",
	"Intento de contacto": "ATTEMPTED_TO_CONTA",
	"Conectado":           "CONNECTED",
	"Mal momento":         "BAD_TIMING",
}

// MapLeadStatus returns the HubSpot internal value for a local lead
// status, falling back to NEW for unknown or absent labels.
func MapLeadStatus(status *string) string {
	if status == nil {
		return "NEW"
	}
	if v, ok := leadStatusToHubspot[*status]; ok {
		return v
	}
	return "NEW"
}

// CompanySync is the payload accepted by the company sync endpoint.
type CompanySync struct {
	ID           int64    `json:"id" binding:"required"`
	Name         string   `json:"name" binding:"required"`
	Country      *string  `json:"country"`
	Sector       *string  `json:"sector"`
	LeadStatus   *string  `json:"lead_status"`
	TotalRevenue *float64 `json:"total_revenue"`
	NetProfit    *float64 `json:"net_profit"`
	HubspotID    *string  `json:"hubspot_id"`
}

// ContactSync is the payload accepted by the contact sync endpoint.
type ContactSync struct {
	ID        int64   `json:"id" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	Nombre    *string `json:"nombre"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Telefono  *string `json:"telefono"`
	Cargo     *string `json:"cargo"`
	Country   *string `json:"country"`
	Estado    *string `json:"estado"`
	CompanyID *int64  `json:"company_id"`
	HubspotID *string `json:"hubspot_id"`
}

// CompanyProperties builds the HubSpot property map for a company write.
// Revenue figures are stringified; net_profit is sent only when present.
func CompanyProperties(in CompanySync) map[string]string {
	props := map[string]string{
		"name":           in.Name,
		"country":        deref(in.Country),
		"annualrevenue":  formatFloat(in.TotalRevenue),
		"industry":       deref(in.Sector),
		"hs_lead_status": MapLeadStatus(in.LeadStatus),
	}
	if in.NetProfit != nil {
		props["net_profit"] = formatFloat(in.NetProfit)
	}
	return StripEmpty(props)
}

// ContactProperties builds the HubSpot property map for a contact write.
// When explicit first/last names are absent, nombre is split on whitespace:
// first token becomes firstname, the remainder lastname.
func ContactProperties(in ContactSync) map[string]string {
	first := deref(in.FirstName)
	last := deref(in.LastName)
	if first == "" && last == "" {
		first, last = SplitName(deref(in.Nombre))
	}
	props := map[string]string{
		"firstname":      first,
		"lastname":       last,
		"country":        deref(in.Country),
		"jobtitle":       deref(in.Cargo),
		"email":          in.Email,
		"phone":          deref(in.Telefono),
		"hs_lead_status": MapLeadStatus(in.Estado),
	}
	return StripEmpty(props)
}

// SplitName splits a full name on whitespace. The first token is the
// given name, everything after it the family name.
func SplitName(nombre string) (string, string) {
	parts := strings.Fields(nombre)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// StripEmpty drops empty-string properties before a HubSpot write.
// A stringified zero ("0") is a real value and survives.
func StripEmpty(props map[string]string) map[string]string {
	out := make(map[string]string, len(props))
	for k, v := range props {
		if v == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
