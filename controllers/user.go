package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"foxy-admin/auth"
	"foxy-admin/middleware"
	"foxy-admin/models"
)

// UserController handles login, logout and the dashboard
type UserController struct {
	*View
	Auth *auth.Provider
}

// NewUserController creates a new UserController
func NewUserController(view *View, provider *auth.Provider) *UserController {
	return &UserController{View: view, Auth: provider}
}

func (uc *UserController) renderLogin(w http.ResponseWriter, r *http.Request, next, errMsg string) {
	uc.Render(w, r, "login.html", "Login", map[string]interface{}{
		"Next":  next,
		"Error": errMsg,
	})
}

// LoginForm renders the login page, remembering ?next=
func (uc *UserController) LoginForm(w http.ResponseWriter, r *http.Request) {
	uc.renderLogin(w, r, r.URL.Query().Get("next"), "")
}

// Login checks the submitted credentials and opens a session
func (uc *UserController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uc.renderLogin(w, r, "", "Server error")
		return
	}
	creds := models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
		Next:     r.PostFormValue("next"),
	}

	if strings.TrimSpace(creds.Username) == "" {
		uc.renderLogin(w, r, creds.Next, "Username cannot be empty")
		return
	}
	if creds.Password == "" {
		uc.renderLogin(w, r, creds.Next, "Password cannot be empty")
		return
	}

	user, err := uc.Auth.Authenticate(r.Context(), creds.Username, creds.Password)
	if err != nil {
		slog.Error("Login failed", "username", creds.Username, "error", err)
		uc.renderLogin(w, r, creds.Next, "Server error")
		return
	}
	if user == nil {
		slog.Info("Login rejected", "username", creds.Username, "ip", r.RemoteAddr)
		uc.renderLogin(w, r, creds.Next, "Bad credentials")
		return
	}

	if err := uc.Auth.Login(w, *user); err != nil {
		slog.Error("Failed to establish session", "username", user.Username, "error", err)
		uc.renderLogin(w, r, creds.Next, "Internal error")
		return
	}

	http.Redirect(w, r, middleware.SafeRedirect(creds.Next), http.StatusSeeOther)
}

// Logout ends the session. It always lands on the dashboard.
func (uc *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := uc.Auth.Logout(w, r); err != nil {
		slog.Warn("Logout failed", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Dashboard sends admins to the product list
func (uc *UserController) Dashboard(w http.ResponseWriter, r *http.Request) {
	switch middleware.Authorize(middleware.CurrentUserState(r.Context())) {
	case middleware.RedirectToLogin:
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	case middleware.Forbidden:
		http.Error(w, middleware.AdminRequiredMessage, http.StatusForbidden)
	default:
		http.Redirect(w, r, middleware.DefaultRedirect, http.StatusSeeOther)
	}
}
