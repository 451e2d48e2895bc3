package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"foxy-admin/models"
	"foxy-admin/pagination"
	"foxy-admin/services"
)

// QuoteController handles custom badge quote requests
type QuoteController struct {
	*View
	Quotes *services.QuoteService
	Badges *services.BadgeImages
}

// NewQuoteController creates a new QuoteController
func NewQuoteController(view *View, quotes *services.QuoteService, badges *services.BadgeImages) *QuoteController {
	return &QuoteController{View: view, Quotes: quotes, Badges: badges}
}

// ListQuotes renders one page of quotes
func (qc *QuoteController) ListQuotes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := pagination.ParseQuery(q)

	page := qc.Quotes.List(r.Context(), params, q.Get("status_filter"))
	qc.Render(w, r, "quote_processing.html", "Quotes", map[string]interface{}{
		"Page":         page,
		"PageSize":     params.PageSize,
		"Statuses":     services.QuoteStatuses,
		"ErrorMessage": page.ErrorMessage,
	})
}

// UpdateQuoteStatus sets a quote's status and answers with JSON
func (qc *QuoteController) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, models.QuoteOperationResponse{Message: "Invalid form"})
		return
	}
	quoteID := r.PostFormValue("quote_id")
	status := r.PostFormValue("status")

	err := qc.Quotes.UpdateStatus(r.Context(), quoteID, status)
	if err != nil {
		code := operationStatus(err)
		var msg string
		switch {
		case errors.Is(err, services.ErrInvalidStatus):
			msg = "Invalid status"
		case errors.Is(err, services.ErrInvalidID):
			msg = "Invalid quote ID"
		case errors.Is(err, services.ErrNotFound):
			msg = "Quote not found"
		default:
			msg = fmt.Sprintf("Database error: %v", err)
		}
		writeJSON(w, code, models.QuoteOperationResponse{Message: msg})
		return
	}

	writeJSON(w, http.StatusOK, models.QuoteOperationResponse{
		Success: true,
		Message: fmt.Sprintf("Quote status updated to %s", status),
		QuoteID: quoteID,
	})
}

// BadgeImage serves uploaded badge artwork
func (qc *QuoteController) BadgeImage(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	data, contentType, err := qc.Badges.Read(filename)
	switch {
	case errors.Is(err, services.ErrInvalidFilename):
		http.Error(w, "Invalid filename", http.StatusBadRequest)
		return
	case errors.Is(err, services.ErrNotFound):
		http.NotFound(w, r)
		return
	case err != nil:
		slog.Error("Failed to read badge image", "filename", filename, "error", err)
		http.Error(w, "Failed to read image", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", services.BadgeCacheControl)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
