package middleware

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/devacademy/internal/app/models/dto"
	"github.com/yigit/devacademy/internal/pkg/auth"
)

const testSuffix = "4821"

type stubVerifier struct {
	claims auth.Claims
	err    error
}

func (v stubVerifier) Verify(token string) (auth.Claims, error) {
	if v.err != nil {
		return nil, v.err
	}
	if token != "good-token" {
		return nil, auth.ErrInvalidToken
	}
	return v.claims, nil
}

func init() {
	gin.SetMode(gin.TestMode)
}

func sessionRouter(verifier TokenVerifier, method, route string, opts SessionOptions, handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Handle(method, route, NewAuthMiddleware(verifier).Session(opts), handler)
	return r
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"authId": c.GetString(AuthIDKey)})
}

func sessionRequest(method, target, body string, withHeader, withCookie bool) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if withHeader {
		req.Header.Set(auth.SessionHeader, testSuffix)
	}
	if withCookie {
		req.AddCookie(&http.Cookie{Name: auth.CookieName(testSuffix), Value: "good-token"})
	}
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *dto.ErrorDetail {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestSessionMissingCredentials(t *testing.T) {
	r := sessionRouter(stubVerifier{claims: auth.Claims{"student_id": "7"}}, http.MethodGet, "/students/:student_id",
		SessionOptions{ParamKey: "student_id"}, okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/students/7", "", false, true))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Authentication failed: Cookie identifier is missing.", decodeError(t, w).Message)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/students/7", "", true, false))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Authentication failed: No token provided.", decodeError(t, w).Message)
}

func TestSessionRejectsInvalidToken(t *testing.T) {
	r := sessionRouter(stubVerifier{}, http.MethodGet, "/students/:student_id", SessionOptions{ParamKey: "student_id"}, okHandler)

	req := httptest.NewRequest(http.MethodGet, "/students/7", nil)
	req.Header.Set(auth.SessionHeader, testSuffix)
	req.AddCookie(&http.Cookie{Name: auth.CookieName(testSuffix), Value: "forged"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Authentication failed: Invalid or expired token.", decodeError(t, w).Message)
}

func TestSessionWithoutSecret(t *testing.T) {
	r := sessionRouter(stubVerifier{err: auth.ErrMissingSecret}, http.MethodGet, "/students/:student_id",
		SessionOptions{ParamKey: "student_id"}, okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/students/7", "", true, true))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestSessionParamOwnership(t *testing.T) {
	r := sessionRouter(stubVerifier{claims: auth.Claims{"student_id": float64(7)}}, http.MethodGet, "/students/:student_id",
		SessionOptions{ParamKey: "student_id", DecodedKey: "student_id"}, okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/students/7", "", true, true))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authId":"7"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/students/8", "", true, true))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden: You are not authorized to access this resource.", decodeError(t, w).Message)
}

func TestSessionDecodedKeyOnly(t *testing.T) {
	r := sessionRouter(stubVerifier{claims: auth.Claims{"student_id": "12"}}, http.MethodGet, "/me",
		SessionOptions{DecodedKey: "student_id"}, func(c *gin.Context) {
			id, ok := AuthID(c)
			require.True(t, ok)
			c.JSON(http.StatusOK, gin.H{"id": id})
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/me", "", true, true))
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":12}`, w.Body.String())
}

func TestSessionBodyParam(t *testing.T) {
	r := sessionRouter(stubVerifier{claims: auth.Claims{"id": float64(5)}}, http.MethodPost, "/orders",
		SessionOptions{BodyParam: "ownerId"}, func(c *gin.Context) {
			raw, err := io.ReadAll(c.Request.Body)
			require.NoError(t, err)
			c.String(http.StatusOK, string(raw))
		})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodPost, "/orders", `{"ownerId":5,"item":"x"}`, true, true))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"ownerId":5,"item":"x"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodPost, "/orders", `{"ownerId":6}`, true, true))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSessionLegacyFallback(t *testing.T) {
	r := sessionRouter(stubVerifier{claims: auth.Claims{"id": "3"}}, http.MethodGet, "/users/:userId", SessionOptions{}, okHandler)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/users/3", "", true, true))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, sessionRequest(http.MethodGet, "/users/4", "", true, true))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Forbidden: Invalid token.", decodeError(t, w).Message)
}

func TestSessionToken(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = sessionRequest(http.MethodPost, "/refresh", "", true, true)

	suffix, token, err := SessionToken(c)
	require.NoError(t, err)
	assert.Equal(t, testSuffix, suffix)
	assert.Equal(t, "good-token", token)
}

func TestAuthIDWithoutGate(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	_, ok := AuthID(c)
	assert.False(t, ok)

	c.Set(AuthIDKey, "abc")
	_, ok = AuthID(c)
	assert.False(t, ok)
}
