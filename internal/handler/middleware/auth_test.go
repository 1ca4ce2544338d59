//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"sncleaning-pricing/internal/handler/middleware"
	"sncleaning-pricing/internal/pkg/jwt"
	"sncleaning-pricing/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdminRouter(svc *jwt.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	admin := router.Group("/admin", middleware.NewAuthMiddleware(svc).RequireAdmin())
	admin.GET("/ping", func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject})
	})
	return router
}

func TestRequireAdmin(t *testing.T) {
	svc := jwt.NewService("middleware-test-secret", time.Hour)
	router := newAdminRouter(svc)

	adminToken, err := svc.GenerateToken("staff-1", jwt.RoleAdmin)
	require.NoError(t, err)
	staffToken, err := svc.GenerateToken("staff-2", "staff")
	require.NoError(t, err)
	foreignToken, err := jwt.NewService("another-secret", time.Hour).GenerateToken("staff-1", jwt.RoleAdmin)
	require.NoError(t, err)

	t.Run("admin token passes", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, adminToken)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, "staff-1", body["subject"])
	})

	tests := []struct {
		name        string
		token       string
		expectCode  int
		expectInMsg string
	}{
		{name: "missing token", token: "", expectCode: http.StatusUnauthorized, expectInMsg: "Access token required"},
		{name: "garbage token", token: "not-a-jwt", expectCode: http.StatusUnauthorized, expectInMsg: "Invalid or expired token"},
		{name: "token signed with another secret", token: foreignToken, expectCode: http.StatusUnauthorized, expectInMsg: "Invalid or expired token"},
		{name: "non-admin role", token: staffToken, expectCode: http.StatusForbidden, expectInMsg: "Insufficient permissions"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin/ping", nil, tc.token)
			httptest.AssertErrorResponse(t, rec, tc.expectCode, tc.expectInMsg)
		})
	}
}
