package tokens

import (
	"context"
	"fmt"
	"neuroshield-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values map[string]string
	ttls   map[string]time.Duration
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{
		values: make(map[string]string),
		ttls:   make(map[string]time.Duration),
	}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	f.values[key] = fmt.Sprintf("%v", value)
	f.ttls[key] = exp
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func newTestTokenService(redis *fakeRedisRepository, revocationOn bool, clock func() time.Time) *tokenService {
	return &tokenService{
		Log:             zap.NewNop(),
		RedisRepository: redis,
		Secret:          []byte("test-signing-secret"),
		ExpTime:         24 * time.Hour,
		RevocationOn:    revocationOn,
		now:             clock,
	}
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	current := base
	svc := newTestTokenService(newFakeRedisRepository(), false, func() time.Time { return current })

	token, err := svc.Issue(ctx, "sub-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	t.Run("Fresh Token Verifies", func(t *testing.T) {
		subjectID, err := svc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "sub-1", subjectID)
	})

	t.Run("Token Valid Until Expiry", func(t *testing.T) {
		current = base.Add(24*time.Hour - time.Minute)
		subjectID, err := svc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "sub-1", subjectID)
	})

	t.Run("Token Valid At Expiry Instant", func(t *testing.T) {
		current = base.Add(24 * time.Hour)
		subjectID, err := svc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "sub-1", subjectID)
	})

	t.Run("Token Invalid Past Expiry", func(t *testing.T) {
		current = base.Add(24*time.Hour + time.Second)
		_, err := svc.Verify(ctx, token)
		require.Error(t, err)

		current = base.Add(25 * time.Hour)
		_, err = svc.Verify(ctx, token)
		require.Error(t, err)
	})
}

func TestTokenService_RejectsBadTokens(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
	svc := newTestTokenService(newFakeRedisRepository(), false, func() time.Time { return now })

	token, err := svc.Issue(ctx, "sub-1")
	require.NoError(t, err)

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := svc.Verify(ctx, "not-a-token")
		assert.Error(t, err)
	})

	t.Run("Tampered Signature", func(t *testing.T) {
		_, err := svc.Verify(ctx, token[:len(token)-4]+"AAAA")
		assert.Error(t, err)
	})

	t.Run("Wrong Signing Key", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub": "sub-1",
			"iat": now.Unix(),
			"exp": now.Add(time.Hour).Unix(),
		}
		forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("attacker-secret"))
		require.NoError(t, err)

		_, err = svc.Verify(ctx, forged)
		assert.Error(t, err)
	})

	t.Run("Missing Subject Claim", func(t *testing.T) {
		claims := jwt.MapClaims{
			"iat": now.Unix(),
			"exp": now.Add(time.Hour).Unix(),
		}
		anonymous, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(svc.Secret)
		require.NoError(t, err)

		_, err = svc.Verify(ctx, anonymous)
		assert.Error(t, err)
	})
}

func TestTokenService_Revocation(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Disabled Revoke Is A NoOp", func(t *testing.T) {
		redis := newFakeRedisRepository()
		svc := newTestTokenService(redis, false, func() time.Time { return now })

		token, err := svc.Issue(ctx, "sub-1")
		require.NoError(t, err)

		require.NoError(t, svc.Revoke(ctx, token))
		assert.Empty(t, redis.values, "disabled revocation must not touch the denylist")

		subjectID, err := svc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "sub-1", subjectID)
	})

	t.Run("Revoked Token Stops Verifying", func(t *testing.T) {
		redis := newFakeRedisRepository()
		svc := newTestTokenService(redis, true, func() time.Time { return now })

		token, err := svc.Issue(ctx, "sub-1")
		require.NoError(t, err)

		subjectID, err := svc.Verify(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "sub-1", subjectID)

		require.NoError(t, svc.Revoke(ctx, token))

		_, err = svc.Verify(ctx, token)
		assert.Error(t, err)
	})

	t.Run("Denylist Entry Expires With The Token", func(t *testing.T) {
		redis := newFakeRedisRepository()
		svc := newTestTokenService(redis, true, func() time.Time { return now })

		token, err := svc.Issue(ctx, "sub-1")
		require.NoError(t, err)
		require.NoError(t, svc.Revoke(ctx, token))

		key := fmt.Sprintf(constvars.RedisRevokedTokenKeyFormat, "sub-1", now.Unix())
		require.Contains(t, redis.values, key)
		assert.LessOrEqual(t, redis.ttls[key], 24*time.Hour)
		assert.Greater(t, redis.ttls[key], time.Duration(0))
	})

	t.Run("Revoking An Expired Token Does Nothing", func(t *testing.T) {
		redis := newFakeRedisRepository()
		current := now
		svc := newTestTokenService(redis, true, func() time.Time { return current })

		token, err := svc.Issue(ctx, "sub-1")
		require.NoError(t, err)

		current = now.Add(48 * time.Hour)
		require.NoError(t, svc.Revoke(ctx, token))
		assert.Empty(t, redis.values)
	})
}
