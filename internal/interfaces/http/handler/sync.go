package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appcrm "github.com/instrategy/salesflow/internal/application/crm"
	"github.com/instrategy/salesflow/internal/domain/crm"
)

// SyncHandler handles HubSpot push and read-through endpoints
type SyncHandler struct {
	BaseHandler
	service *appcrm.SyncService
}

// NewSyncHandler creates a new SyncHandler
func NewSyncHandler(service *appcrm.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

// syncResponse is the body returned for a successful push
type syncResponse struct {
	Success     bool                      `json:"success"`
	HubspotID   string                    `json:"hubspot_id"`
	Action      string                    `json:"action"`
	Message     string                    `json:"message"`
	Association *appcrm.AssociationResult `json:"association,omitempty"`
	Audit       appcrm.AuditResult        `json:"audit"`
}

func newSyncResponse(entity string, result *appcrm.SyncResult) syncResponse {
	return syncResponse{
		Success:   true,
		HubspotID: result.HubspotID,
		Action:    result.Action,
		Message:   fmt.Sprintf("%s %s in HubSpot", entity, result.Action),
		Audit:     result.Audit,
	}
}

// SyncCompany handles POST /sync/empresa
func (h *SyncHandler) SyncCompany(c *gin.Context) {
	var input crm.CompanySync
	if err := c.ShouldBindJSON(&input); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	result, err := h.service.SyncCompany(c.Request.Context(), input)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, newSyncResponse("company", result))
}

// SyncContact handles POST /sync/contacto. An optional company_hubspot_id
// query parameter requests a best-effort association with that company.
func (h *SyncHandler) SyncContact(c *gin.Context) {
	var input crm.ContactSync
	if err := c.ShouldBindJSON(&input); err != nil {
		h.InvalidJSON(c, err)
		return
	}

	result, err := h.service.SyncContact(c.Request.Context(), input, c.Query("company_hubspot_id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	response := newSyncResponse("contact", result)
	response.Association = result.Association
	c.JSON(http.StatusOK, response)
}

// ListRemoteCompanies handles GET /hubspot/empresas
func (h *SyncHandler) ListRemoteCompanies(c *gin.Context) {
	objects, err := h.service.ListRemoteCompanies(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, objects)
}

// ListRemoteContacts handles GET /hubspot/contactos
func (h *SyncHandler) ListRemoteContacts(c *gin.Context) {
	objects, err := h.service.ListRemoteContacts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, objects)
}
