package tokens

import (
	"context"
	"errors"
	"fmt"
	"neuroshield-service/internal/app/config"
	"neuroshield-service/internal/app/contracts"
	"neuroshield-service/internal/pkg/constvars"
	"neuroshield-service/internal/pkg/exceptions"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"
)

// tokenService signs and verifies HS256 session tokens. Claims carry only
// the subject id and timestamps; role is never embedded in the token.
type tokenService struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	Secret          []byte
	ExpTime         time.Duration
	RevocationOn    bool
	now             func() time.Time
}

func NewTokenService(
	logger *zap.Logger,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
) contracts.TokenService {
	return &tokenService{
		Log:             logger,
		RedisRepository: redisRepository,
		Secret:          []byte(internalConfig.JWT.Secret),
		ExpTime:         time.Duration(internalConfig.JWT.ExpTimeInHour) * time.Hour,
		RevocationOn:    internalConfig.JWT.RevocationEnabled,
		now:             time.Now,
	}
}

func (s *tokenService) Issue(ctx context.Context, subjectID string) (string, error) {
	now := s.now().UTC()
	claims := jwt.MapClaims{
		"sub": subjectID,
		"iat": now.Unix(),
		"exp": now.Add(s.ExpTime).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

func (s *tokenService) Verify(ctx context.Context, tokenString string) (string, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	subjectID, _ := claims["sub"].(string)
	if subjectID == "" {
		return "", exceptions.ErrTokenInvalidOrExpired(errors.New("token has no subject claim"))
	}

	if s.RevocationOn {
		issuedAt := int64(0)
		if iat, ok := claims["iat"].(float64); ok {
			issuedAt = int64(iat)
		}
		key := fmt.Sprintf(constvars.RedisRevokedTokenKeyFormat, subjectID, issuedAt)
		revoked, err := s.RedisRepository.Get(ctx, key)
		if err != nil {
			return "", err
		}
		if revoked != "" {
			return "", exceptions.ErrTokenInvalidOrExpired(errors.New("token has been revoked"))
		}
	}

	return subjectID, nil
}

func (s *tokenService) Revoke(ctx context.Context, tokenString string) error {
	if !s.RevocationOn {
		return nil
	}

	claims, err := s.parse(tokenString)
	if err != nil {
		return nil
	}

	subjectID, _ := claims["sub"].(string)
	issuedAt := int64(0)
	if iat, ok := claims["iat"].(float64); ok {
		issuedAt = int64(iat)
	}

	remaining := s.ExpTime
	if exp, ok := claims["exp"].(float64); ok {
		remaining = time.Unix(int64(exp), 0).Sub(s.now())
	}
	if remaining <= 0 {
		// The token is still accepted at the expiry instant itself; keep
		// the denylist entry around for that last second.
		remaining = time.Second
	}

	key := fmt.Sprintf(constvars.RedisRevokedTokenKeyFormat, subjectID, issuedAt)
	return s.RedisRepository.Set(ctx, key, "1", remaining)
}

// parse validates the signature and expiry and returns the raw claims.
// Expiry is checked against the service clock rather than the jwt
// package's global time source.
func (s *tokenService) parse(tokenString string) (jwt.MapClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	token, err := parser.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		return s.Secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("token claims are malformed")
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, errors.New("token has no expiry claim")
	}
	// Valid through the expiry instant itself; only strictly later fails.
	if s.now().After(time.Unix(int64(exp), 0)) {
		return nil, errors.New("token is expired")
	}

	return claims, nil
}
