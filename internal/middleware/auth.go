package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/session"

	"clauselens/internal/config"
	"clauselens/internal/models"
)

// AuthMiddleware handles user authentication via sessions. Authentication
// is only enforced when an OIDC issuer is configured; otherwise the app
// runs open and every request passes through.
type AuthMiddleware struct {
	cfg *config.Config
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{cfg: cfg}
}

// RequireAuth ensures the user is authenticated, redirecting to /login if
// not. A no-op when OIDC is not configured.
func (m *AuthMiddleware) RequireAuth(c fiber.Ctx) error {
	if m.cfg.OIDCIssuer == "" {
		return c.Next()
	}

	sess := session.FromContext(c)
	if sess == nil {
		return c.Redirect().To("/login")
	}

	user := userFromSession(sess)
	if user == nil {
		sess.Set("redirect_after_login", c.OriginalURL())
		return c.Redirect().To("/login")
	}

	c.Locals("user", user)
	return c.Next()
}

// OptionalAuth loads the user if authenticated, but doesn't require
// authentication.
func (m *AuthMiddleware) OptionalAuth(c fiber.Ctx) error {
	if sess := session.FromContext(c); sess != nil {
		if user := userFromSession(sess); user != nil {
			c.Locals("user", user)
		}
	}
	return c.Next()
}

// userFromSession rebuilds the session user from the claims stored at
// login. Returns nil when the session is anonymous.
func userFromSession(sess *session.Middleware) *models.User {
	sub, _ := sess.Get("user_sub").(string)
	if sub == "" {
		return nil
	}
	email, _ := sess.Get("user_email").(string)
	name, _ := sess.Get("user_name").(string)
	picture, _ := sess.Get("user_picture").(string)
	return &models.User{Sub: sub, Email: email, Name: name, Picture: picture}
}
