package auth

import (
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

func newTestService(secret string) *JWTService {
	return NewJWTService(JWTConfig{SecretKey: secret, AccessTokenExp: time.Hour})
}

func TestPasswordHashRoundTrip(t *testing.T) {
	digest, err := HashPassword("s3cret!")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret!", digest)

	assert.True(t, CheckPassword(digest, "s3cret!"))
	assert.False(t, CheckPassword(digest, "s3cret"))
	assert.False(t, CheckPassword(digest, ""))
	assert.False(t, CheckPassword("not-a-digest", "s3cret!"))
}

func TestPasswordHashIsSalted(t *testing.T) {
	first, err := HashPassword("same-password")
	require.NoError(t, err)
	second, err := HashPassword("same-password")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestIssueRequiresSecret(t *testing.T) {
	svc := newTestService("")
	_, err := svc.Issue(Claims{"student_id": 1}, 0)
	require.ErrorIs(t, err, apperrors.ErrConfiguration)

	_, err = svc.Verify("whatever")
	require.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestIssueAndVerify(t *testing.T) {
	svc := newTestService("secret")
	token, err := svc.Issue(Claims{"student_id": 7, "email": "a@b.co", "password": "hash"}, 0)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	id, ok := claims.String(IdentityClaim)
	require.True(t, ok)
	require.Equal(t, "7", id)
	require.Equal(t, "a@b.co", claims["email"])
	require.NotContains(t, claims, "password")
	require.Contains(t, claims, "iat")
	require.Contains(t, claims, "exp")

	exp, isFloat := claims["exp"].(float64)
	require.True(t, isFloat)
	iat := claims["iat"].(float64)
	require.Equal(t, float64(time.Hour/time.Second), exp-iat)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc := newTestService("secret")
	other := newTestService("other-secret")

	foreign, err := other.Issue(Claims{"student_id": 1}, 0)
	require.NoError(t, err)

	cases := map[string]string{
		"empty":         "",
		"malformed":     "not.a.jwt",
		"bad signature": foreign,
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(token)
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	svc := newTestService("secret")
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := svc.Issue(Claims{"student_id": 1}, time.Hour)
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshIssuesFreshTokenForSameIdentity(t *testing.T) {
	svc := newTestService("secret")
	svc.now = func() time.Time { return time.Now().Add(-30 * time.Minute) }
	token, err := svc.Issue(Claims{"student_id": 7, "name": "Ada"}, time.Hour)
	require.NoError(t, err)
	svc.now = time.Now

	refreshed, claims, err := svc.Refresh(token, "7")
	require.NoError(t, err)
	require.NotEqual(t, token, refreshed)
	require.NotContains(t, claims, "exp")
	require.Equal(t, "Ada", claims["name"])

	decoded, err := svc.Verify(refreshed)
	require.NoError(t, err)
	exp := int64(decoded["exp"].(float64))
	require.InDelta(t, time.Now().Add(time.Hour).Unix(), exp, 5)
}

func TestRefreshRejectsOtherIdentity(t *testing.T) {
	svc := newTestService("secret")
	token, err := svc.Issue(Claims{"student_id": 7}, 0)
	require.NoError(t, err)

	_, _, err = svc.Refresh(token, "8")
	require.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	require.True(t, errors.Is(err, ErrForbidden))
}

func TestClaimsString(t *testing.T) {
	claims := Claims{"a": "x", "b": float64(12), "c": 3, "d": int64(4), "e": nil}
	for key, want := range map[string]string{"a": "x", "b": "12", "c": "3", "d": "4"} {
		got, ok := claims.String(key)
		require.True(t, ok, key)
		require.Equal(t, want, got)
	}
	_, ok := claims.String("e")
	require.False(t, ok)
	_, ok = claims.String("missing")
	require.False(t, ok)
}

func TestNewSessionSuffixIsFourDigits(t *testing.T) {
	pattern := regexp.MustCompile(`^auth_token_\d{4}$`)
	for i := 0; i < 200; i++ {
		suffix, err := NewSessionSuffix()
		require.NoError(t, err)
		require.Regexp(t, pattern, CookieName(suffix))
	}
}

func TestCookieNameStripsFirstCommaSpace(t *testing.T) {
	require.Equal(t, "auth_token_1234", CookieName("1234"))
	require.Equal(t, "auth_token_1234", CookieName("12, 34"))
	require.Equal(t, "auth_token_12, 34", CookieName("1, 2, 34"))
	require.Equal(t, "auth_token_12,34", CookieName("12,34"))
}

func TestCookiePolicyFlags(t *testing.T) {
	now := time.Now()

	dev := CookiePolicy{TTL: time.Hour}.SessionCookie("1234", "tok", now)
	require.Equal(t, "auth_token_1234", dev.Name)
	require.False(t, dev.HttpOnly)
	require.False(t, dev.Secure)
	require.Equal(t, http.SameSiteStrictMode, dev.SameSite)
	require.WithinDuration(t, now.Add(time.Hour), dev.Expires, time.Second)

	prod := CookiePolicy{Production: true}.SessionCookie("1234", "tok", now)
	require.True(t, prod.HttpOnly)
	require.True(t, prod.Secure)
	require.Equal(t, http.SameSiteNoneMode, prod.SameSite)

	expired := CookiePolicy{}.ExpiredCookie("1234")
	require.Equal(t, -1, expired.MaxAge)
	require.Empty(t, expired.Value)
}
