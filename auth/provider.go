package auth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"foxy-admin/models"
	"foxy-admin/store"
	"foxy-admin/utils"
)

// CookieName is the cookie carrying the session token
const CookieName = "admin_token"

// Provider authenticates staff and resolves requests to identities
type Provider struct {
	users    store.UserRepository
	sessions *SessionTable
	signer   *utils.TokenSigner
	ttl      time.Duration
	secure   bool
}

// NewProvider creates a Provider. secure marks the cookie HTTPS-only.
func NewProvider(users store.UserRepository, signer *utils.TokenSigner, ttl time.Duration, secure bool) *Provider {
	return &Provider{
		users:    users,
		sessions: NewSessionTable(),
		signer:   signer,
		ttl:      ttl,
		secure:   secure,
	}
}

// Authenticate returns the user matching username and password, or nil when
// they do not match. Errors are store faults only.
func (p *Provider) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := p.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}
	if user == nil {
		utils.DummyVerify(password)
		return nil, nil
	}
	if !utils.VerifyPassword(password, user.PasswordHash) {
		return nil, nil
	}
	return user, nil
}

// Login opens a session for user and sets the session cookie on w
func (p *Provider) Login(w http.ResponseWriter, user models.User) error {
	id, session := p.sessions.Create(user, p.ttl)

	token, err := p.signer.GenerateJWT(id, session.UserID, session.ExpiresAt)
	if err != nil {
		p.sessions.Delete(id)
		return fmt.Errorf("signing session token: %w", err)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
	})
	slog.Info("Session opened", "username", user.Username, "is_admin", user.IsAdmin)
	return nil
}

// Logout ends the request's session, if any, and expires the cookie
func (p *Provider) Logout(w http.ResponseWriter, r *http.Request) error {
	if claims, ok := p.claims(r); ok {
		p.sessions.Delete(claims.Id)
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   p.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Identify resolves r to the identity established at login
func (p *Provider) Identify(r *http.Request) (models.UserState, bool) {
	claims, ok := p.claims(r)
	if !ok {
		return models.UserState{}, false
	}

	session, ok := p.sessions.Lookup(claims.Id)
	if !ok || session.UserID != claims.Subject {
		return models.UserState{}, false
	}

	return models.UserState{
		IsAuthenticated: true,
		Username:        session.Username,
		IsAdmin:         session.IsAdmin,
	}, true
}

func (p *Provider) claims(r *http.Request) (*utils.Claims, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	claims, err := p.signer.ParseJWT(cookie.Value)
	if err != nil {
		return nil, false
	}
	return claims, true
}
