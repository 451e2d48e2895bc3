package controllers

import (
	"encoding/gob"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
	"github.com/gorilla/sessions"

	"foxy-admin/middleware"
	"foxy-admin/templates"
)

// SessionName is the cookie holding flash messages
const SessionName = "admin-session"

// Register types for gob encoding (used by sessions)
func init() {
	gob.Register(FlashMessage{})
}

// FlashMessage is a one-shot notice shown on the next page
type FlashMessage struct {
	Type    string
	Message string
}

// View renders pages with the data every page needs
type View struct {
	Templates *templates.Cache
	Sessions  sessions.Store
}

// Flash queues a message for the next rendered page
func (v *View) Flash(w http.ResponseWriter, r *http.Request, kind, message string) {
	session, _ := v.Sessions.Get(r, SessionName)
	session.AddFlash(FlashMessage{Type: kind, Message: message})
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
}

func (v *View) flashes(w http.ResponseWriter, r *http.Request) []FlashMessage {
	session, _ := v.Sessions.Get(r, SessionName)
	raw := session.Flashes()
	if len(raw) == 0 {
		return nil
	}
	messages := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		if fm, ok := f.(FlashMessage); ok {
			messages = append(messages, fm)
		}
	}
	// Save session to clear flashes
	if err := session.Save(r, w); err != nil {
		slog.Error("Failed to save session", "error", err)
	}
	return messages
}

// Render executes the page template name with data plus the common fields
func (v *View) Render(w http.ResponseWriter, r *http.Request, name, title string, data map[string]interface{}) {
	if data == nil {
		data = map[string]interface{}{}
	}
	data["Title"] = title
	data["User"] = middleware.CurrentUserState(r.Context())
	data["CsrfField"] = csrf.TemplateField(r)
	data["CsrfToken"] = csrf.Token(r)
	data["Flashes"] = v.flashes(w, r)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := v.Templates.Render(w, name, data); err != nil {
		slog.Error("Failed to render template", "template", name, "error", err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}
