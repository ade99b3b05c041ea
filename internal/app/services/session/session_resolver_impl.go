package session

import (
	"context"
	"errors"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/app/models"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/exceptions"

	"go.uber.org/zap"
)

// sessionResolver builds the request Principal from a verified subject id.
// Role and profile id come from the profile tables on every call; nothing
// from the token beyond the subject id is trusted, and nothing is cached.
type sessionResolver struct {
	ProfileStore contracts.ProfileStore
	Log          *zap.Logger
}

func NewSessionResolver(profileStore contracts.ProfileStore, logger *zap.Logger) contracts.SessionResolver {
	return &sessionResolver{
		ProfileStore: profileStore,
		Log:          logger,
	}
}

func (s *sessionResolver) Resolve(ctx context.Context, subjectID string) (*models.Principal, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	profile, err := s.ProfileStore.ResolveSubject(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		s.Log.Warn("sessionResolver.Resolve found no profile for subject",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSubjectIDKey, subjectID),
		)
		return nil, exceptions.ErrProfileNotFound(errors.New("subject has no profile row"))
	}

	return &models.Principal{
		SubjectID:   subjectID,
		Role:        profile.Role,
		ProfileID:   profile.ProfileID,
		DisplayName: profile.DisplayName,
		Email:       profile.Email,
	}, nil
}
