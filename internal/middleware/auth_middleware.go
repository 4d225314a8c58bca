package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/pkg/apperrors"
	"github.com/yigit/devacademy/internal/pkg/auth"
	"github.com/yigit/devacademy/internal/pkg/logger"
)

// Context keys set by the session gate
const (
	AuthIDKey = "authId"
	ClaimsKey = "claims"
)

// legacyIDClaim is the identity claim of the old dual-role tokens
const legacyIDClaim = "id"

// SessionOptions configures what a session gate checks once the token is valid.
type SessionOptions struct {
	// ParamKey is a route parameter that must equal the identity claim
	ParamKey string
	// DecodedKey is the claim copied into the context as the authenticated id.
	// It is also the claim ParamKey is compared with, when set.
	DecodedKey string
	// BodyParam is a JSON body field that must equal the "id" claim.
	// Only used when neither ParamKey nor DecodedKey is set.
	BodyParam string
}

// TokenVerifier validates session tokens
type TokenVerifier interface {
	Verify(token string) (auth.Claims, error)
}

// AuthMiddleware guards routes with the cookie session selected by the end_token header
type AuthMiddleware struct {
	verifier TokenVerifier
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func abortWith(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(dto.NewErrorDetail(code, message)))
}

// SessionToken returns the token of the session selected by the end_token header.
// The error wraps ErrMissingSessionIdentifier or ErrMissingToken.
func SessionToken(c *gin.Context) (suffix string, token string, err error) {
	suffix = c.GetHeader(auth.SessionHeader)
	if suffix == "" {
		return "", "", apperrors.NewCustomError(apperrors.ErrMissingSessionIdentifier, "Authentication failed: Cookie identifier is missing.")
	}

	token, cookieErr := c.Cookie(auth.CookieName(suffix))
	if cookieErr != nil || token == "" {
		return suffix, "", apperrors.NewCustomError(apperrors.ErrMissingToken, "Authentication failed: No token provided.")
	}
	return suffix, token, nil
}

// Session returns a gate that only lets requests with a valid session through.
// It never touches persisted state.
func (m *AuthMiddleware) Session(opts SessionOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, token, err := SessionToken(c)
		if err != nil {
			code := dto.ErrorCodeMissingToken
			if errors.Is(err, apperrors.ErrMissingSessionIdentifier) {
				code = dto.ErrorCodeMissingSessionIdentifier
			}
			abortWith(c, http.StatusBadRequest, code, apperrors.Message(err, "Authentication failed"))
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			if errors.Is(err, apperrors.ErrConfiguration) {
				logger.Error().Err(err).Msg("Session token cannot be verified without a signing secret")
				abortWith(c, http.StatusInternalServerError, dto.ErrorCodeConfiguration, apperrors.Message(err, "Server configuration error"))
				return
			}
			abortWith(c, http.StatusForbidden, dto.ErrorCodeInvalidToken, "Authentication failed: Invalid or expired token.")
			return
		}
		c.Set(ClaimsKey, claims)

		if opts.DecodedKey != "" {
			if id, ok := claims.String(opts.DecodedKey); ok {
				c.Set(AuthIDKey, id)
			}
		}

		switch {
		case opts.ParamKey != "":
			claimKey := opts.ParamKey
			if opts.DecodedKey != "" {
				claimKey = opts.DecodedKey
			}
			claimID, _ := claims.String(claimKey)
			if paramID := c.Param(opts.ParamKey); paramID != claimID {
				logger.Warn().Str("tokenID", claimID).Str("paramID", paramID).Str("path", c.FullPath()).
					Msg("Authorization failure: session does not own the resource")
				abortWith(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Forbidden: You are not authorized to access this resource.")
				return
			}
		case opts.DecodedKey != "":
			// identity only
		case opts.BodyParam != "":
			if !bodyMatchesClaim(c, opts.BodyParam, claims) {
				abortWith(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Forbidden: You are not authorized to access this resource.")
				return
			}
		default:
			if !legacyOwnerMatches(c, claims) {
				abortWith(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Forbidden: Invalid token.")
				return
			}
		}

		c.Next()
	}
}

// bodyMatchesClaim compares a JSON body field with the "id" claim.
// The body is restored so handlers can bind it again.
func bodyMatchesClaim(c *gin.Context, field string, claims auth.Claims) bool {
	if c.Request.Body == nil {
		return false
	}
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return false
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(raw))

	body := auth.Claims{}
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		return false
	}

	want, ok := body.String(field)
	got, hasID := claims.String(legacyIDClaim)
	return ok && hasID && want == got
}

// legacyOwnerMatches checks the "id" claim against a userId or companyId route parameter.
//
// Deprecated: kept for routes of the old dual-role model; new routes set ParamKey.
func legacyOwnerMatches(c *gin.Context, claims auth.Claims) bool {
	id, ok := claims.String(legacyIDClaim)
	if !ok || id == "" {
		return false
	}
	logger.Warn().Str("path", c.FullPath()).Msg("Deprecated userId/companyId session check used")
	return id == c.Param("userId") || id == c.Param("companyId")
}

// AuthID returns the authenticated id stored by a gate with DecodedKey
func AuthID(c *gin.Context) (int64, bool) {
	raw, ok := c.Get(AuthIDKey)
	if !ok {
		return 0, false
	}
	s, ok := raw.(string)
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}
