package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/instrategy/salesflow/internal/application/crm"
	"github.com/instrategy/salesflow/internal/domain/crm"
)

// CallHandler handles call log CRUD endpoints
type CallHandler struct {
	BaseHandler
	service *appcrm.CallService
}

// NewCallHandler creates a new CallHandler
func NewCallHandler(service *appcrm.CallService) *CallHandler {
	return &CallHandler{service: service}
}

// List handles GET /calls
func (h *CallHandler) List(c *gin.Context) {
	filters, limit, err := listParams(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	calls, err := h.service.List(c.Request.Context(), filters, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, calls)
}

// Get handles GET /calls/:id
func (h *CallHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "id must be an integer")
		return
	}

	call, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, call)
}

// Create handles POST /calls
func (h *CallHandler) Create(c *gin.Context) {
	var call crm.Call
	if err := c.ShouldBindJSON(&call); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), &call)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, created)
}

// Update handles PATCH /calls/:id
func (h *CallHandler) Update(c *gin.Context) {
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

// Delete handles DELETE /calls/:id
func (h *CallHandler) Delete(c *gin.Context) {
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
