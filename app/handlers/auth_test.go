package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driveconn/app/apperror"
	"driveconn/app/auth"
	"driveconn/app/config"
	"driveconn/app/database"
)

func TestIssueTokensResponseShape(t *testing.T) {
	cfg := &config.Config{
		AccessTokenSecret:  "access-secret-for-tests",
		RefreshTokenSecret: "refresh-secret-for-tests",
	}

	account := &database.User{
		ID:       uuid.New(),
		FullName: "Jane",
		Email:    "jane@x.com",
		Status:   true,
	}
	role := &database.Role{ID: uuid.New(), Name: "Customer"}
	account.RoleID = role.ID

	app := fiber.New(fiber.Config{ErrorHandler: apperror.Handler})
	app.Post("/issue", func(c *fiber.Ctx) error {
		return issueTokens(c, cfg, account, role)
	})

	resp, err := app.Test(httptest.NewRequest("POST", "/issue", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"accessToken"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.AccessToken)

	// The access token carries the full claim set and validates only
	// against the access secret.
	claims, err := auth.VerifyToken(body.AccessToken, cfg.AccessTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, "Jane", claims.FullName)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, "Customer", claims.RoleName)
	assert.Equal(t, role.ID.String(), claims.RoleID)
	assert.Equal(t, account.ID.String(), claims.UserID)

	_, err = auth.VerifyToken(body.AccessToken, cfg.RefreshTokenSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	cookie := findCookie(resp.Cookies(), "jwt")
	require.NotNil(t, cookie, "refresh cookie must be set")
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, refreshCookieMaxAge, cookie.MaxAge)

	// The cookie value is the refresh token, signed with the refresh secret.
	refreshClaims, err := auth.VerifyToken(cookie.Value, cfg.RefreshTokenSecret)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), refreshClaims.UserID)

	_, err = auth.VerifyToken(cookie.Value, cfg.AccessTokenSecret)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
