package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/instrategy/salesflow/internal/application/crm"
	"github.com/instrategy/salesflow/internal/domain/crm"
)

// ContactHandler handles contact CRUD endpoints
type ContactHandler struct {
	BaseHandler
	service *appcrm.ContactService
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(service *appcrm.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// List handles GET /contacts
func (h *ContactHandler) List(c *gin.Context) {
	filters, limit, err := listParams(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	contacts, err := h.service.List(c.Request.Context(), filters, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contacts)
}

// Get handles GET /contacts/:id
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "id must be an integer")
		return
	}

	contact, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, contact)
}

// Create handles POST /contacts
func (h *ContactHandler) Create(c *gin.Context) {
	var contact crm.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &contact)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PATCH /contacts/:id
func (h *ContactHandler) Update(c *gin.Context) {
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

// Delete handles DELETE /contacts/:id
func (h *ContactHandler) Delete(c *gin.Context) {
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
