//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"car-rental-api/internal/domain/user"
	"car-rental-api/internal/handler/middleware"
	"car-rental-api/internal/pkg/cookie"
	"car-rental-api/internal/pkg/jwt"
	usecasemock "car-rental-api/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, validator *usecasemock.MockTokenValidator, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := middleware.NewAuthMiddleware(validator)
	r := gin.New()
	r.GET("/protected", m.RequireAuth(), m.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": role.String()})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name       string
		setupReq   func(*http.Request)
		setupMock  func(*usecasemock.MockTokenValidator)
		minRole    user.Role
		expectCode int
	}{
		{
			name:     "success: bearer token",
			setupReq: func(r *http.Request) { r.Header.Set("Authorization", "Bearer good-token") },
			setupMock: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("good-token").Return(userID, user.RoleViewer, nil)
			},
			minRole:    user.RoleViewer,
			expectCode: http.StatusOK,
		},
		{
			name: "success: cookie wins over header",
			setupReq: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: cookie.AccessTokenCookieName, Value: "cookie-token"})
				r.Header.Set("Authorization", "Bearer header-token")
			},
			setupMock: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("cookie-token").Return(userID, user.RoleAdmin, nil)
			},
			minRole:    user.RoleOperator,
			expectCode: http.StatusOK,
		},
		{
			name:       "error: no token",
			setupReq:   func(r *http.Request) {},
			setupMock:  func(v *usecasemock.MockTokenValidator) {},
			minRole:    user.RoleViewer,
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "error: non bearer scheme",
			setupReq:   func(r *http.Request) { r.Header.Set("Authorization", "Basic abc") },
			setupMock:  func(v *usecasemock.MockTokenValidator) {},
			minRole:    user.RoleViewer,
			expectCode: http.StatusUnauthorized,
		},
		{
			name:     "error: expired token",
			setupReq: func(r *http.Request) { r.Header.Set("Authorization", "Bearer old-token") },
			setupMock: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("old-token").Return(uuid.Nil, user.Role(""), jwt.ErrExpiredToken)
			},
			minRole:    user.RoleViewer,
			expectCode: http.StatusUnauthorized,
		},
		{
			name:     "error: viewer below operator",
			setupReq: func(r *http.Request) { r.Header.Set("Authorization", "Bearer viewer-token") },
			setupMock: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("viewer-token").Return(userID, user.RoleViewer, nil)
			},
			minRole:    user.RoleOperator,
			expectCode: http.StatusForbidden,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := usecasemock.NewMockTokenValidator(ctrl)
			tc.setupMock(validator)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			tc.setupReq(req)
			rec := httptest.NewRecorder()

			newAuthRouter(t, validator, tc.minRole).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectCode, rec.Code, rec.Body.String())
			if tc.expectCode == http.StatusOK {
				assert.Contains(t, rec.Body.String(), userID.String())
			}
		})
	}
}

func TestRequireRoleAtLeast_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := middleware.NewAuthMiddleware(nil)
	r := gin.New()
	r.GET("/admin", m.RequireRoleAtLeast(user.RoleAdmin), func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
