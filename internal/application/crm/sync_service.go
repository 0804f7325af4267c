package crm

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/instrategy/salesflow/internal/domain/crm"
	"github.com/instrategy/salesflow/internal/domain/shared"
	"github.com/instrategy/salesflow/internal/infrastructure/hubspot"
)

// HubSpotGateway is the slice of the HubSpot API the sync flow needs
type HubSpotGateway interface {
	Exists(ctx context.Context, objectType, id string) (bool, error)
	Create(ctx context.Context, objectType string, properties map[string]string) (string, error)
	Update(ctx context.Context, objectType, id string, properties map[string]string) error
	Associate(ctx context.Context, contactID, companyID string) error
	ListAll(ctx context.Context, objectType string, properties []string) ([]hubspot.Object, error)
}

// AssociationResult reports the best-effort contact-to-company link outcome
type AssociationResult struct {
	Attempted bool   `json:"attempted"`
	Linked    bool   `json:"linked"`
	Error     string `json:"error,omitempty"`
}

// AuditResult reports whether an audit row could be written
type AuditResult struct {
	Recorded bool   `json:"recorded"`
	Error    string `json:"error,omitempty"`
}

// SyncResult is the outcome of one push to HubSpot
type SyncResult struct {
	HubspotID   string
	Action      string
	Association *AssociationResult
	Audit       AuditResult
}

// Properties requested on HubSpot read-throughs.
var (
	remoteCompanyProperties = []string{"hs_object_id", "name", "city", "country"}
	remoteContactProperties = []string{"hs_object_id", "email", "firstname", "lastname", "phone"}
)

// SyncService pushes local records to HubSpot and reads remote ones back
type SyncService struct {
	gateway  HubSpotGateway
	syncLogs crm.SyncLogRepository
	logger   *zap.Logger
}

// NewSyncService creates a new SyncService
func NewSyncService(gateway HubSpotGateway, syncLogs crm.SyncLogRepository, logger *zap.Logger) *SyncService {
	return &SyncService{gateway: gateway, syncLogs: syncLogs, logger: logger}
}

// SyncCompany pushes one company to HubSpot, creating or updating by
// the presence of a linked hubspot_id
func (s *SyncService) SyncCompany(ctx context.Context, in crm.CompanySync) (*SyncResult, error) {
	return s.push(ctx, crm.ObjectCompanies, "company", in.ID, derefString(in.HubspotID), crm.CompanyProperties(in))
}

// SyncContact pushes one contact to HubSpot and, when a company hubspot
// id is given, links the two. The link is best effort: its failure is
// reported in the result, never as an error.
func (s *SyncService) SyncContact(ctx context.Context, in crm.ContactSync, companyHubspotID string) (*SyncResult, error) {
	result, err := s.push(ctx, crm.ObjectContacts, "contact", in.ID, derefString(in.HubspotID), crm.ContactProperties(in))
	if err != nil {
		return nil, err
	}

	if companyHubspotID != "" {
		assoc := &AssociationResult{Attempted: true}
		if err := s.gateway.Associate(ctx, result.HubspotID, companyHubspotID); err != nil {
			assoc.Error = err.Error()
			s.logger.Warn("contact association failed",
				zap.String("contact_hubspot_id", result.HubspotID),
				zap.String("company_hubspot_id", companyHubspotID),
				zap.Error(err))
		} else {
			assoc.Linked = true
		}
		result.Association = assoc
	}
	return result, nil
}

// ListRemoteCompanies pages through all HubSpot companies
func (s *SyncService) ListRemoteCompanies(ctx context.Context) ([]hubspot.Object, error) {
	objects, err := s.gateway.ListAll(ctx, crm.ObjectCompanies, remoteCompanyProperties)
	if err != nil {
		return nil, s.upstreamError(err)
	}
	return objects, nil
}

// ListRemoteContacts pages through all HubSpot contacts
func (s *SyncService) ListRemoteContacts(ctx context.Context) ([]hubspot.Object, error) {
	objects, err := s.gateway.ListAll(ctx, crm.ObjectContacts, remoteContactProperties)
	if err != nil {
		return nil, s.upstreamError(err)
	}
	return objects, nil
}

func (s *SyncService) push(ctx context.Context, objectType, entityType string, entityID int64, hubspotID string, props map[string]string) (*SyncResult, error) {
	result := &SyncResult{}

	if hubspotID != "" {
		exists, err := s.gateway.Exists(ctx, objectType, hubspotID)
		if err != nil {
			err = s.upstreamError(err)
			s.audit(ctx, entityType, entityID, hubspotID, "update", false, err.Error())
			return nil, err
		}
		if !exists {
			err := shared.NewDomainErrorf("NOT_FOUND",
				"%s %s no longer exists in HubSpot; sync without hubspot_id to create a new record",
				entityType, hubspotID)
			s.audit(ctx, entityType, entityID, hubspotID, "update", false, err.Message)
			return nil, err
		}
		if err := s.gateway.Update(ctx, objectType, hubspotID, props); err != nil {
			err = s.upstreamError(err)
			s.audit(ctx, entityType, entityID, hubspotID, "update", false, err.Error())
			return nil, err
		}
		result.HubspotID = hubspotID
		result.Action = "updated"
	} else {
		id, err := s.gateway.Create(ctx, objectType, props)
		if err != nil {
			err = s.upstreamError(err)
			s.audit(ctx, entityType, entityID, "", "create", false, err.Error())
			return nil, err
		}
		result.HubspotID = id
		result.Action = "created"
	}

	result.Audit = s.audit(ctx, entityType, entityID, result.HubspotID, result.Action, true, "")
	return result, nil
}

// upstreamError rewraps HubSpot failures so the handler layer returns
// the upstream status and body verbatim
func (s *SyncService) upstreamError(err error) error {
	var apiErr *hubspot.APIError
	if errors.As(err, &apiErr) {
		return shared.NewDomainErrorf("UPSTREAM_ERROR", "hubspot error %d: %s", apiErr.StatusCode, apiErr.Body)
	}
	return err
}

func (s *SyncService) audit(ctx context.Context, entityType string, entityID int64, hubspotID, action string, success bool, message string) AuditResult {
	entry := &crm.SyncLog{
		EntityType: entityType,
		EntityID:   entityID,
		HubspotID:  hubspotID,
		Action:     action,
		Success:    success,
	}
	if message != "" {
		entry.Message = &message
	}
	if err := s.syncLogs.Create(ctx, entry); err != nil {
		s.logger.Warn("sync audit insert failed",
			zap.String("entity_type", entityType),
			zap.Int64("entity_id", entityID),
			zap.Error(err))
		return AuditResult{Recorded: false, Error: err.Error()}
	}
	return AuditResult{Recorded: true}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
