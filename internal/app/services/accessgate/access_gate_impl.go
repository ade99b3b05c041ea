package accessgate

import (
	"context"
	"errors"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// accessGate is the single authorization decision point. It holds no state
// of its own; doctor visibility is answered by the relationship store on
// every call so a revocation takes effect on the next request. Every denial
// is the same error regardless of the reason.
type accessGate struct {
	RelationshipStore contracts.RelationshipStore
	Log               *zap.Logger
}

func NewAccessGate(relationshipStore contracts.RelationshipStore, logger *zap.Logger) contracts.AccessGate {
	return &accessGate{
		RelationshipStore: relationshipStore,
		Log:               logger,
	}
}

func (g *accessGate) Authorize(ctx context.Context, principal *models.Principal, action models.Action, target models.Target) error {
	if principal == nil || !principal.Role.Valid() {
		return exceptions.ErrAccessDenied(errors.New("no principal on request"))
	}

	if principal.Role == models.RoleAdmin {
		return nil
	}

	allowed, err := g.decide(ctx, principal, action, target)
	if err != nil {
		return err
	}
	if !allowed {
		g.logDenial(ctx, principal, action, target)
		return exceptions.ErrAccessDenied(errors.New("principal may not perform action on target"))
	}
	return nil
}

func (g *accessGate) decide(ctx context.Context, principal *models.Principal, action models.Action, target models.Target) (bool, error) {
	switch action {
	case models.ActionVerifyMedicalRecord:
		if principal.Role != models.RoleDoctor {
			return false, nil
		}
		return g.doctorSeesPatient(ctx, principal, target)

	case models.ActionCreateRelationship, models.ActionDeleteRelationship:
		// Only the patient manages their own doctor links.
		return principal.Role == models.RolePatient && principal.ProfileID == target.PatientProfileID, nil

	case models.ActionCreateRecommendation:
		if target.CreatorProfileID != "" {
			if principal.Role != models.RoleDoctor || principal.ProfileID != target.CreatorProfileID {
				return false, nil
			}
			return g.doctorSeesPatient(ctx, principal, target)
		}
		return g.baseVisibility(ctx, principal, target)

	case models.ActionReadPatient, models.ActionReadMedicalRecord, models.ActionWriteMedicalRecord:
		return g.baseVisibility(ctx, principal, target)

	case models.ActionWritePatient:
		// Profile edits stay with the owning patient.
		return principal.Role == models.RolePatient && principal.ProfileID == target.PatientProfileID, nil
	}

	return false, nil
}

// baseVisibility is the shared read rule: a patient sees their own data, a
// doctor sees a patient with an active relationship.
func (g *accessGate) baseVisibility(ctx context.Context, principal *models.Principal, target models.Target) (bool, error) {
	switch principal.Role {
	case models.RolePatient:
		return principal.ProfileID == target.PatientProfileID, nil
	case models.RoleDoctor:
		return g.doctorSeesPatient(ctx, principal, target)
	}
	return false, nil
}

func (g *accessGate) doctorSeesPatient(ctx context.Context, principal *models.Principal, target models.Target) (bool, error) {
	if target.PatientProfileID == "" {
		return false, nil
	}
	return g.RelationshipStore.ExistsActive(ctx, target.PatientProfileID, principal.ProfileID)
}

func (g *accessGate) logDenial(ctx context.Context, principal *models.Principal, action models.Action, target models.Target) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	g.Log.Warn("accessGate.Authorize denied",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProfileIDKey, principal.ProfileID),
		zap.String(constvars.LoggingRoleKey, string(principal.Role)),
		zap.String(constvars.LoggingActionKey, string(action)),
	)
}
