package auth

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
)

// DefaultTokenTTL is used when no access token expiration is configured.
const DefaultTokenTTL = time.Hour

// IdentityClaim holds the account id inside a session token.
const IdentityClaim = "student_id"

// claims that are regenerated on every issue
var volatileClaims = []string{"iat", "exp", "nbf"}

// JWT errors
var (
	ErrInvalidToken  = apperrors.ErrTokenInvalid
	ErrMissingSecret = apperrors.NewCustomError(apperrors.ErrConfiguration, "Server configuration error: 'SECRET KEY' not defined.")
	ErrForbidden     = apperrors.NewForbiddenError("Forbidden: You are not authorized to access this resource.")
)

// Claims is the decoded payload of a session token.
type Claims map[string]interface{}

// String returns the claim as a string. Numbers decoded from JSON come back
// as float64 and are rendered without a fractional part.
func (c Claims) String(key string) (string, bool) {
	value, ok := c[key]
	if !ok || value == nil {
		return "", false
	}

	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case json.Number:
		return v.String(), true
	default:
		return fmt.Sprint(v), true
	}
}

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey      string
	AccessTokenExp time.Duration
	TokenIssuer    string
}

// JWTService issues and verifies session tokens
type JWTService struct {
	config JWTConfig
	now    func() time.Time
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	return &JWTService{
		config: config,
		now:    time.Now,
	}
}

// TokenTTL returns the lifetime of freshly issued tokens.
func (s *JWTService) TokenTTL() time.Duration {
	if s.config.AccessTokenExp <= 0 {
		return DefaultTokenTTL
	}
	return s.config.AccessTokenExp
}

// Issue signs claims (minus any password field) with iat and exp set from ttl.
func (s *JWTService) Issue(claims Claims, ttl time.Duration) (string, error) {
	if s.config.SecretKey == "" {
		return "", ErrMissingSecret
	}
	if ttl <= 0 {
		ttl = s.TokenTTL()
	}

	now := s.now()
	payload := jwt.MapClaims{}
	for key, value := range claims {
		if key == "password" {
			continue
		}
		payload[key] = value
	}
	payload["iat"] = now.Unix()
	payload["exp"] = now.Add(ttl).Unix()
	if s.config.TokenIssuer != "" {
		payload["iss"] = s.config.TokenIssuer
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, payload)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature, algorithm and expiry and returns the claim set.
func (s *JWTService) Verify(tokenString string) (Claims, error) {
	if s.config.SecretKey == "" {
		return nil, ErrMissingSecret
	}
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	}
	if s.config.TokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.TokenIssuer))
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.SecretKey), nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return Claims(mapClaims), nil
}

// Refresh re-issues a valid token for expectedID with a fresh expiry.
// The returned claims are the ones carried over into the new token.
func (s *JWTService) Refresh(tokenString, expectedID string) (string, Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return "", nil, err
	}

	for _, key := range volatileClaims {
		delete(claims, key)
	}

	id, ok := claims.String(IdentityClaim)
	if !ok || id != expectedID {
		return "", nil, ErrForbidden
	}

	token, err := s.Issue(claims, s.TokenTTL())
	if err != nil {
		return "", nil, err
	}
	return token, claims, nil
}
