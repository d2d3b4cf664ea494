package utils_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_core/internal/middleware"
	"github.com/SscSPs/bookkeeping_core/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueActorTokenIsAcceptedByAuthMiddleware(t *testing.T) {
	secret, err := utils.NewSigningSecret(utils.MinSigningSecretBytes)
	require.NoError(t, err)
	assert.Len(t, secret, 43)
	assert.NotContains(t, secret, "=")

	token, err := utils.IssueActorToken("clerk-7", secret, "bookkeeping", time.Hour)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", middleware.AuthMiddleware(secret, "bookkeeping"), func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		c.String(http.StatusOK, userID)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "clerk-7", w.Body.String())
}

func TestIssueActorTokenRejectsBadInput(t *testing.T) {
	_, err := utils.IssueActorToken("", "s", "i", time.Hour)
	assert.Error(t, err)
	_, err = utils.IssueActorToken("a", "s", "i", 0)
	assert.Error(t, err)
	_, err = utils.NewSigningSecret(utils.MinSigningSecretBytes - 1)
	assert.Error(t, err)

	a, err := utils.NewSigningSecret(64)
	require.NoError(t, err)
	b, err := utils.NewSigningSecret(64)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
