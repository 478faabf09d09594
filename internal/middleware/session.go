package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/velvetcut/salon-scheduler/internal/config"
	domain "github.com/velvetcut/salon-scheduler/internal/domain/booking"
)

const (
	SessionName = "salon_session"

	KeyClientID = "client_id"
	KeyEmail    = "email"
	KeyName     = "name"
	KeyIsAdmin  = "is_admin"

	KeyOAuthSource = "oauth_source"
	KeyOAuthState  = "oauth_state"
)

// SessionMiddleware installs the signed-cookie session store every
// handler reads identity from.
func SessionMiddleware(cfg *config.Config) gin.HandlerFunc {
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
	})
	return sessions.Sessions(SessionName, store)
}

// RequireAdmin rejects the request before any persistence access unless
// the session carries the admin flag.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdminSession(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_required"})
			return
		}
		c.Next()
	}
}

func IsAdminSession(c *gin.Context) bool {
	session := sessions.Default(c)
	isAdmin, _ := session.Get(KeyIsAdmin).(bool)
	return isAdmin
}

// CurrentIdentity returns the logged-in client behind the request, or
// false when the session is anonymous.
func CurrentIdentity(c *gin.Context) (*domain.Identity, bool) {
	session := sessions.Default(c)

	clientID, ok := session.Get(KeyClientID).(uint)
	if !ok {
		return nil, false
	}

	email, _ := session.Get(KeyEmail).(string)
	name, _ := session.Get(KeyName).(string)

	return &domain.Identity{
		ClientID: clientID,
		Email:    email,
		Name:     name,
	}, true
}

// SessionEmail returns the session's email, for audit attribution.
func SessionEmail(c *gin.Context) string {
	session := sessions.Default(c)
	email, _ := session.Get(KeyEmail).(string)
	return email
}
