//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"roomfinder/internal/domain/user"
	"roomfinder/internal/handler/middleware"
	"roomfinder/internal/pkg/cookie"
	"roomfinder/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubValidator struct {
	tokens map[string]user.Role
	ids    map[string]uuid.UUID
}

func (v stubValidator) ValidateToken(token string) (uuid.UUID, user.Role, error) {
	role, ok := v.tokens[token]
	if !ok {
		return uuid.Nil, "", errors.New("bad token")
	}
	return v.ids[token], role, nil
}

func newValidator() stubValidator {
	return stubValidator{
		tokens: map[string]user.Role{"seller-token": user.RoleSeller, "taker-token": user.RoleTaker},
		ids:    map[string]uuid.UUID{"seller-token": uuid.New(), "taker-token": uuid.New()},
	}
}

func echoIdentity(c *gin.Context) {
	id := middleware.GetOptionalUserID(c)
	role, _ := middleware.GetUserRole(c)
	if id == nil {
		c.JSON(http.StatusOK, gin.H{"anonymous": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
}

func TestRequireAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	validator := newValidator()
	m := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	router.GET("/private", m.RequireAuth(), echoIdentity)

	t.Run("bearer header", func(t *testing.T) {
		var body map[string]any
		w := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "taker-token")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, validator.ids["taker-token"].String(), body["user_id"])
		assert.Equal(t, "Taker", body["role"])
	})

	t.Run("cookie wins over header", func(t *testing.T) {
		var body map[string]any
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: "seller-token"}}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/private", nil, cookies, "taker-token")
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		assert.Equal(t, "Seller", body["role"])
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/private", nil, "forged")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestOptionalAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(newValidator())

	router := gin.New()
	router.GET("/public", m.OptionalAuth(), echoIdentity)

	for _, tc := range []struct {
		name      string
		token     string
		anonymous bool
	}{
		{name: "no token", token: "", anonymous: true},
		{name: "invalid token degrades to anonymous", token: "forged", anonymous: true},
		{name: "valid token", token: "seller-token", anonymous: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var body map[string]any
			w := httptest.PerformRequest(t, router, http.MethodGet, "/public", nil, tc.token)
			httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
			_, anonymous := body["anonymous"]
			assert.Equal(t, tc.anonymous, anonymous)
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(newValidator())

	router := gin.New()
	router.POST("/purchase", m.RequireAuth(), m.RequireRole(user.RoleTaker), echoIdentity)
	router.POST("/unguarded", m.RequireRole(user.RoleTaker), echoIdentity)

	t.Run("allowed role", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPost, "/purchase", nil, "taker-token")
		require.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPost, "/purchase", nil, "seller-token")
		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "Insufficient permissions")
	})

	t.Run("used without RequireAuth", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodPost, "/unguarded", nil, "taker-token")
		httptest.AssertErrorResponse(t, w, http.StatusInternalServerError, "Internal server error")
	})
}

func TestRequireAdminToken(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	perform := func(router *gin.Engine, token string) int {
		return httptest.Do(t, router, http.MethodPost, "/sweep", nil, httptest.WithAdminToken(token)).Code
	}

	t.Run("configured token", func(t *testing.T) {
		router := gin.New()
		router.POST("/sweep", middleware.RequireAdminToken("s3cret"), ok)

		assert.Equal(t, http.StatusNoContent, perform(router, "s3cret"))
		assert.Equal(t, http.StatusUnauthorized, perform(router, "s3cre"))
		assert.Equal(t, http.StatusUnauthorized, perform(router, ""))
	})

	t.Run("empty configuration disables the route", func(t *testing.T) {
		router := gin.New()
		router.POST("/sweep", middleware.RequireAdminToken(""), ok)

		assert.Equal(t, http.StatusUnauthorized, perform(router, ""))
		assert.Equal(t, http.StatusUnauthorized, perform(router, "anything"))
	})
}
