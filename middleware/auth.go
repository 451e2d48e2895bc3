package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"foxy-admin/models"
)

// Key type for context
type contextKey string

const userStateKey = contextKey("user_state")

// AdminRequiredMessage is the body of every non-admin denial
const AdminRequiredMessage = "Access denied - Admin privileges required"

// DefaultRedirect is where a login lands when no safe destination was given
const DefaultRedirect = "/products"

// Identifier resolves a request to the identity its session holds
type Identifier interface {
	Identify(r *http.Request) (models.UserState, bool)
}

// Session attaches the caller's UserState to the request context
func Session(identifier Identifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state, _ := identifier.Identify(r)
			next.ServeHTTP(w, r.WithContext(WithUserState(r.Context(), state)))
		})
	}
}

// WithUserState returns a copy of ctx carrying state
func WithUserState(ctx context.Context, state models.UserState) context.Context {
	return context.WithValue(ctx, userStateKey, state)
}

// CurrentUserState returns the state stored by Session, or the anonymous zero value.
func CurrentUserState(ctx context.Context) models.UserState {
	state, _ := ctx.Value(userStateKey).(models.UserState)
	return state
}

// Decision is the outcome of an authorization check
type Decision int

const (
	Proceed Decision = iota
	RedirectToLogin
	Forbidden
)

// Authorize decides whether state may use an admin route
func Authorize(state models.UserState) Decision {
	switch {
	case !state.IsAuthenticated:
		return RedirectToLogin
	case !state.IsAdmin:
		return Forbidden
	default:
		return Proceed
	}
}

// RequireAdminPage guards HTML routes. Anonymous callers are sent to the login
// page with their destination preserved.
func RequireAdminPage(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch Authorize(CurrentUserState(r.Context())) {
		case RedirectToLogin:
			http.Redirect(w, r, LoginURL(r.URL.RequestURI()), http.StatusSeeOther)
		case Forbidden:
			http.Error(w, AdminRequiredMessage, http.StatusForbidden)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// RequireAdminAPI guards JSON and media routes
func RequireAdminAPI(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch Authorize(CurrentUserState(r.Context())) {
		case RedirectToLogin:
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusForbidden)
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": false,
				"message": "Access denied",
			})
		case Forbidden:
			http.Error(w, AdminRequiredMessage, http.StatusForbidden)
		default:
			next.ServeHTTP(w, r)
		}
	})
}

// LoginURL is the login page remembering next as the destination
func LoginURL(next string) string {
	return "/login?next=" + url.QueryEscape(next)
}

// SafeRedirect returns next when it is a local path, otherwise DefaultRedirect
func SafeRedirect(next string) string {
	if strings.HasPrefix(next, "/") && !strings.HasPrefix(next, "//") && !strings.HasPrefix(next, "/\\") {
		return next
	}
	return DefaultRedirect
}
