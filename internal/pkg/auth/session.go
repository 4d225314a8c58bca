package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	// CookiePrefix starts the name of every session cookie.
	CookiePrefix = "auth_token_"
	// SessionHeader carries the suffix selecting which session cookie to read.
	SessionHeader = "end_token"
)

var suffixRange = big.NewInt(9000)

// NewSessionSuffix draws a random 4-digit cookie suffix (1000-9999).
// It is independent of the token and of the account.
func NewSessionSuffix() (string, error) {
	n, err := rand.Int(rand.Reader, suffixRange)
	if err != nil {
		return "", fmt.Errorf("failed to generate session suffix: %w", err)
	}
	return strconv.FormatInt(n.Int64()+1000, 10), nil
}

// CookieName derives the session cookie name from a client-supplied suffix.
//
// The first ", " sequence is dropped from the suffix before use; later ones are
// kept. Existing clients depend on this, so it stays, but it is a compatibility
// shim and not input validation.
func CookieName(suffix string) string {
	return CookiePrefix + strings.Replace(suffix, ", ", "", 1)
}

// CookiePolicy decides the flags of session cookies.
type CookiePolicy struct {
	Production bool
	TTL        time.Duration
}

// SessionCookie builds the cookie storing token under the suffix's name.
func (p CookiePolicy) SessionCookie(suffix, token string, now time.Time) *http.Cookie {
	ttl := p.TTL
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	cookie := &http.Cookie{
		Name:     CookieName(suffix),
		Value:    token,
		Path:     "/",
		Expires:  now.Add(ttl),
		HttpOnly: p.Production,
		Secure:   p.Production,
		SameSite: http.SameSiteStrictMode,
	}
	if p.Production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}

// ExpiredCookie builds a cookie that makes the browser drop the session.
func (p CookiePolicy) ExpiredCookie(suffix string) *http.Cookie {
	cookie := p.SessionCookie(suffix, "", time.Unix(0, 0))
	cookie.MaxAge = -1
	return cookie
}
