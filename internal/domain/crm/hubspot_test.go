package crm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func TestMapLeadStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   *string
		expected string
	}{
		{"nil defaults to NEW", nil, "NEW"},
		{"known label", strPtr("En curso"), "IN_PROGRESS"},
		{"connected", strPtr("Conectado"), "CONNECTED"},
		{"bad timing", strPtr("Mal momento"), "BAD_TIMING"},
		{"unknown label defaults to NEW", strPtr("Cerrado"), "NEW"},
		{"empty label defaults to NEW", strPtr(""), "NEW"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapLeadStatus(tt.status))
		})
	}
}

func TestCompanyProperties(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		props := CompanyProperties(CompanySync{
			ID:           1,
			Name:         "Acme",
			Country:      strPtr("Chile"),
			Sector:       strPtr("Retail"),
			LeadStatus:   strPtr("Abierto"),
			TotalRevenue: f64Ptr(1500000),
			NetProfit:    f64Ptr(200000),
		})
		assert.Equal(t, "Acme", props["name"])
		assert.Equal(t, "Chile", props["country"])
		assert.Equal(t, "1500000", props["annualrevenue"])
		assert.Equal(t, "200000", props["net_profit"])
		assert.Equal(t, "Retail", props["industry"])
		assert.Equal(t, "OPEN", props["hs_lead_status"])
	})

	t.Run("nil and empty fields are stripped", func(t *testing.T) {
		props := CompanyProperties(CompanySync{ID: 2, Name: "Acme", Country: strPtr("")})
		assert.NotContains(t, props, "country")
		assert.NotContains(t, props, "annualrevenue")
		assert.NotContains(t, props, "net_profit")
		assert.NotContains(t, props, "industry")
	})

	t.Run("zero revenue survives stripping", func(t *testing.T) {
		props := CompanyProperties(CompanySync{ID: 3, Name: "Acme", TotalRevenue: f64Ptr(0), NetProfit: f64Ptr(0)})
		assert.Equal(t, "0", props["annualrevenue"])
		assert.Equal(t, "0", props["net_profit"])
	})
}

func TestContactProperties(t *testing.T) {
	t.Run("nombre split into first and last", func(t *testing.T) {
		props := ContactProperties(ContactSync{
			ID:     1,
			Email:  "juan@acme.cl",
			Nombre: strPtr("Juan Pérez"),
			Estado: strPtr("Conectado"),
		})
		assert.Equal(t, "Juan", props["firstname"])
		assert.Equal(t, "Pérez", props["lastname"])
		assert.Equal(t, "juan@acme.cl", props["email"])
		assert.Equal(t, "CONNECTED", props["hs_lead_status"])
	})

	t.Run("explicit names win over nombre", func(t *testing.T) {
		props := ContactProperties(ContactSync{
			ID:        2,
			Email:     "a@b.c",
			Nombre:    strPtr("Ignored Name"),
			FirstName: strPtr("Ana"),
			LastName:  strPtr("García Soto"),
		})
		assert.Equal(t, "Ana", props["firstname"])
		assert.Equal(t, "García Soto", props["lastname"])
	})

	t.Run("single token nombre has no lastname", func(t *testing.T) {
		props := ContactProperties(ContactSync{ID: 3, Email: "a@b.c", Nombre: strPtr("Cher")})
		assert.Equal(t, "Cher", props["firstname"])
		assert.NotContains(t, props, "lastname")
	})

	t.Run("multi token nombre joins the remainder", func(t *testing.T) {
		first, last := SplitName("María de los Ángeles Rojas")
		assert.Equal(t, "María", first)
		assert.Equal(t, "de los Ángeles Rojas", last)
	})
}
