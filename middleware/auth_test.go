package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickmed/models"
	"quickmed/utils"
)

type staticRoles struct {
	roles map[string][]string
}

func (s *staticRoles) HasRole(ctx context.Context, email, role string) (bool, error) {
	for _, r := range s.roles[email] {
		if r == role {
			return true, nil
		}
	}
	return false, nil
}

func newProtectedRouter(t *testing.T, role string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-secret")

	store := &staticRoles{roles: map[string][]string{
		"root@example.com": {models.RoleAdmin},
		"doc@example.com":  {models.RoleDoctor},
	}}

	// nil cache: every request takes the local-verification path.
	r := gin.New()
	r.GET("/protected", JWTAuth(nil), RequireRole(store, role), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString(ContextEmailKey)})
	})
	return r
}

func get(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMissingHeader(t *testing.T) {
	r := newProtectedRouter(t, models.RoleAdmin)
	w := get(r, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthBadToken(t *testing.T) {
	r := newProtectedRouter(t, models.RoleAdmin)
	w := get(r, "not-a-real-token")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoleRejectsMissingCapability(t *testing.T) {
	r := newProtectedRouter(t, models.RoleAdmin)

	token, err := utils.IssueToken("doc@example.com")
	require.NoError(t, err)

	w := get(r, token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRolePassesCapabilityHolder(t *testing.T) {
	r := newProtectedRouter(t, models.RoleAdmin)

	token, err := utils.IssueToken("root@example.com")
	require.NoError(t, err)

	w := get(r, token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "root@example.com")
}

func TestRequireRoleDoctorGate(t *testing.T) {
	r := newProtectedRouter(t, models.RoleDoctor)

	adminToken, err := utils.IssueToken("root@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, get(r, adminToken).Code)

	docToken, err := utils.IssueToken("doc@example.com")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, get(r, docToken).Code)
}
