package router

import (
	"github.com/gin-gonic/gin"

	"github.com/instrategy/salesflow/internal/interfaces/http/handler"
)

// Handlers bundles everything the route table needs
type Handlers struct {
	System  *handler.SystemHandler
	Company *handler.CompanyHandler
	Contact *handler.ContactHandler
	Call    *handler.CallHandler
	Email   *handler.EmailHandler
	Sync    *handler.SyncHandler
	Parse   *handler.ParseHandler
}

// Setup builds the full route table on the engine
func Setup(engine *gin.Engine, h Handlers) {
	r := NewRouter(engine)

	r.Register(systemRoutes(h.System))
	r.Register(crudRoutes("companies", "/companies",
		h.Company.List, h.Company.Get, h.Company.Create, h.Company.Update, h.Company.Delete))
	r.Register(crudRoutes("contacts", "/contacts",
		h.Contact.List, h.Contact.Get, h.Contact.Create, h.Contact.Update, h.Contact.Delete))
	r.Register(crudRoutes("calls", "/calls",
		h.Call.List, h.Call.Get, h.Call.Create, h.Call.Update, h.Call.Delete))
	r.Register(emailRoutes(h.Email))
	r.Register(syncRoutes(h.Sync))
	r.Register(parseRoutes(h.Parse))

	r.Setup()
}

func systemRoutes(h *handler.SystemHandler) *DomainGroup {
	return NewDomainGroup("system", "/").
		GET("", h.Root).
		GET("/health", h.Health)
}

func crudRoutes(name, prefix string, list, get, create, update, remove gin.HandlerFunc) *DomainGroup {
	return NewDomainGroup(name, prefix).
		GET("", list).
		GET("/:id", get).
		POST("", create).
		PATCH("/:id", update).
		DELETE("/:id", remove)
}

func emailRoutes(h *handler.EmailHandler) *DomainGroup {
	// Fixed paths before the :id wildcard
	return NewDomainGroup("emails", "/emails").
		GET("", h.List).
		POST("", h.Create).
		POST("/send", h.Send).
		GET("/health", h.Health).
		GET("/:id", h.Get).
		PATCH("/:id", h.Update).
		DELETE("/:id", h.Delete)
}

func syncRoutes(h *handler.SyncHandler) *DomainGroup {
	dg := NewDomainGroup("sync", "")
	dg.POST("/sync/empresa", h.SyncCompany)
	dg.POST("/sync/contacto", h.SyncContact)
	dg.GET("/hubspot/empresas", h.ListRemoteCompanies)
	dg.GET("/hubspot/contactos", h.ListRemoteContacts)
	return dg
}

func parseRoutes(h *handler.ParseHandler) *DomainGroup {
	return NewDomainGroup("parse", "/parse").
		POST("", h.Parse).
		POST("/contacts", h.ParseContacts).
		POST("/companies", h.ParseCompanies)
}
