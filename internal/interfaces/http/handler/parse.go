package handler

import (
	"github.com/gin-gonic/gin"

	appcrm "github.com/instrategy/salesflow/internal/application/crm"
)

// ParseHandler handles text extraction endpoints
type ParseHandler struct {
	BaseHandler
	service *appcrm.ExtractionService
}

// NewParseHandler creates a new ParseHandler
func NewParseHandler(service *appcrm.ExtractionService) *ParseHandler {
	return &ParseHandler{service: service}
}

// parseRequest is the POST /parse request body. Type defaults to contacts.
type parseRequest struct {
	Text string `json:"text" form:"text"`
	Type string `json:"type" form:"type"`
}

// Parse handles POST /parse
func (h *ParseHandler) Parse(c *gin.Context) {
	var req parseRequest
	if err := c.ShouldBind(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}
	if req.Text == "" {
		h.BadRequest(c, "text is required")
		return
	}

	parseType := appcrm.ParseContacts
	if req.Type == string(appcrm.ParseCompanies) {
		parseType = appcrm.ParseCompanies
	}
	h.respond(c, h.service.Parse(c.Request.Context(), parseType, req.Text))
}

// ParseContacts handles POST /parse/contacts
func (h *ParseHandler) ParseContacts(c *gin.Context) {
	h.parseAs(c, appcrm.ParseContacts)
}

// ParseCompanies handles POST /parse/companies
func (h *ParseHandler) ParseCompanies(c *gin.Context) {
	h.parseAs(c, appcrm.ParseCompanies)
}

func (h *ParseHandler) parseAs(c *gin.Context, parseType appcrm.ParseType) {
	var req parseRequest
	if err := c.ShouldBind(&req); err != nil {
		h.InvalidJSON(c, err)
		return
	}
	if req.Text == "" {
		h.BadRequest(c, "text is required")
		return
	}
	h.respond(c, h.service.Parse(c.Request.Context(), parseType, req.Text))
}

// respond maps an extraction outcome onto the wire. A missing API key is
// a 200 with ok=false so clients can degrade instead of alerting.
func (h *ParseHandler) respond(c *gin.Context, outcome *appcrm.ParseOutcome) {
	status := outcome.HTTPStatus()

	if outcome.OK {
		if outcome.Parsed != nil {
			c.JSON(status, gin.H{"ok": true, "parsed": outcome.Parsed})
			return
		}
		c.JSON(status, gin.H{"ok": true, "parsed": nil, "raw": outcome.Raw})
		return
	}

	body := gin.H{"ok": false, "reason": outcome.Reason}
	if outcome.Message != "" {
		body["message"] = outcome.Message
	}
	if outcome.Reason == appcrm.ReasonGeminiError {
		body["status"] = outcome.Status
		body["body"] = outcome.Body
	}
	c.JSON(status, body)
}
