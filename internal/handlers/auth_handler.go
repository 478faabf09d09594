package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/velvetcut/salon-scheduler/internal/audit"
	"github.com/velvetcut/salon-scheduler/internal/config"
	"github.com/velvetcut/salon-scheduler/internal/httperr"
	"github.com/velvetcut/salon-scheduler/internal/middleware"
	"github.com/velvetcut/salon-scheduler/internal/models"
)

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

type AuthHandler struct {
	db     *gorm.DB
	config *config.Config
	oauth  *oauth2.Config
	audit  *audit.Dispatcher
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{
		db:     db,
		config: cfg,
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		audit: dispatcher,
	}
}

type googleUserInfo struct {
	Sub        string `json:"sub"`
	Email      string `json:"email"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
}

// ======================================================
// LOGIN REDIRECT
// ======================================================

// GoogleLogin starts the OAuth flow. ?admin=true records admin intent;
// the callback only honors it when the allow-list check also passes.
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	session := sessions.Default(c)

	source := "login"
	if strings.EqualFold(c.Query("admin"), "true") {
		source = "admin"
	}

	state := uuid.NewString()

	session.Set(middleware.KeyOAuthSource, source)
	session.Set(middleware.KeyOAuthState, state)
	if err := session.Save(); err != nil {
		httperr.Internal(c, "session_save_failed", "Failed to persist session.")
		return
	}

	c.Redirect(http.StatusFound, h.oauth.AuthCodeURL(state))
}

// ======================================================
// CALLBACK
// ======================================================

func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	session := sessions.Default(c)

	expectedState, _ := session.Get(middleware.KeyOAuthState).(string)
	session.Delete(middleware.KeyOAuthState)

	if expectedState == "" || c.Query("state") != expectedState {
		_ = session.Save()
		httperr.BadRequest(c, "invalid_oauth_state", "OAuth state mismatch.")
		return
	}

	token, err := h.oauth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		httperr.BadRequest(c, "oauth_exchange_failed", "Failed to exchange authorization code.")
		return
	}

	info, err := h.fetchUserInfo(c.Request.Context(), token)
	if err != nil || info.Email == "" {
		httperr.BadRequest(c, "userinfo_failed", "Unable to retrieve user information from Google.")
		return
	}

	client, err := h.lookupOrCreateClient(info)
	if err != nil {
		httperr.Internal(c, "client_resolution_failed", err.Error())
		return
	}

	isAdmin := h.config.IsAdminEmail(info.Email)

	session.Set(middleware.KeyClientID, client.ID)
	session.Set(middleware.KeyEmail, client.Email)
	session.Set(middleware.KeyName, client.FirstName+" "+client.LastName)
	session.Set(middleware.KeyIsAdmin, isAdmin)

	// Admin intent is single-use.
	source, _ := session.Get(middleware.KeyOAuthSource).(string)
	session.Delete(middleware.KeyOAuthSource)

	if err := session.Save(); err != nil {
		httperr.Internal(c, "session_save_failed", "Failed to persist session.")
		return
	}

	target := "/bookings"
	if source == "admin" && isAdmin {
		target = "/admin"

		h.audit.Dispatch(audit.Event{
			ActorEmail: client.Email,
			Action:     "admin_login",
			Entity:     "client",
			EntityID:   &client.ID,
		})
	}

	c.Redirect(http.StatusFound, target)
}

// lookupOrCreateClient maps an email to exactly one client, creating
// the record on first login.
func (h *AuthHandler) lookupOrCreateClient(info *googleUserInfo) (*models.Client, error) {
	var client models.Client
	err := h.db.Where("email = ?", info.Email).First(&client).Error
	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	firstName := info.GivenName
	if firstName == "" {
		firstName = "User"
	}
	lastName := info.FamilyName
	if lastName == "" {
		lastName = "Client"
	}

	client = models.Client{
		FirstName: firstName,
		LastName:  lastName,
		Email:     info.Email,
		GoogleID:  info.Sub,
	}

	if err := h.db.Create(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (h *AuthHandler) fetchUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	resp, err := h.oauth.Client(ctx, token).Get(googleUserinfoURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, err
	}
	return &info, nil
}

// ======================================================
// SESSION INTROSPECTION / LOGOUT
// ======================================================

func (h *AuthHandler) AdminSession(c *gin.Context) {
	session := sessions.Default(c)

	isAdmin, _ := session.Get(middleware.KeyIsAdmin).(bool)
	if !isAdmin {
		httperr.Unauthorized(c, "admin_session_not_found", "Admin session not found.")
		return
	}

	email, _ := session.Get(middleware.KeyEmail).(string)
	name, _ := session.Get(middleware.KeyName).(string)

	c.JSON(http.StatusOK, gin.H{
		"email": email,
		"name":  name,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		httperr.Internal(c, "session_save_failed", "Failed to clear session.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
