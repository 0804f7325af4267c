package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/instrategy/salesflow/internal/application/crm"
	"github.com/instrategy/salesflow/internal/domain/crm"
)

// CompanyHandler handles company CRUD endpoints
type CompanyHandler struct {
	BaseHandler
	service *appcrm.CompanyService
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(service *appcrm.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

// List handles GET /companies
func (h *CompanyHandler) List(c *gin.Context) {
	filters, limit, err := listParams(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	companies, err := h.service.List(c.Request.Context(), filters, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, companies)
}

// Get handles GET /companies/:id
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "id must be an integer")
		return
	}

	company, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, company)
}

// Create handles POST /companies
func (h *CompanyHandler) Create(c *gin.Context) {
	var company crm.Company
	if err := c.ShouldBindJSON(&company); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &company)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PATCH /companies/:id
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "id must be an integer")
		return
	}

	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	rows, err := h.service.Update(c.Request.Context(), id, fields)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}

// Delete handles DELETE /companies/:id
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "id must be an integer")
		return
	}

	rows, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rows)
}
