package services

import (
	"context"
	"fmt"
	"log/slog"

	"foxy-admin/models"
	"foxy-admin/pagination"
	"foxy-admin/projection"
	"foxy-admin/store"
)

// QuoteStatuses are the statuses an admin may set on a quote
var QuoteStatuses = []string{"pending", "quoted", "accepted", "completed", "cancelled"}

// AllStatuses is the status filter that matches every quote
const AllStatuses = "all"

// QuotePage is one page of the quote listing
type QuotePage struct {
	Quotes       []models.QuoteDisplay
	Pagination   pagination.Info
	StatusFilter string
	ErrorMessage string
}

// QuoteService triages custom badge quotes
type QuoteService struct {
	repo store.QuoteRepository
}

func NewQuoteService(repo store.QuoteRepository) *QuoteService {
	return &QuoteService{repo: repo}
}

// List returns one page of quotes, newest first, optionally filtered by status
func (s *QuoteService) List(ctx context.Context, params pagination.Params, statusFilter string) QuotePage {
	page, pageSize := pagination.Normalize(params.Page, params.PageSize)
	if statusFilter == "" {
		statusFilter = AllStatuses
	}

	filter := statusFilter
	if filter == AllStatuses {
		filter = ""
	}

	failed := func(msg string, err error) QuotePage {
		slog.Error("Failed to list quotes", "error", err)
		return QuotePage{
			Quotes:       []models.QuoteDisplay{},
			Pagination:   pagination.New(1, pageSize, 0),
			StatusFilter: statusFilter,
			ErrorMessage: fmt.Sprintf("%s: %v", msg, err),
		}
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return failed("Database error counting quotes", err)
	}

	quotes, err := s.repo.List(ctx, filter, pagination.Skip(page, pageSize), pageSize)
	if err != nil {
		return failed("Database error fetching quotes", err)
	}

	return QuotePage{
		Quotes:       projection.Quotes(quotes),
		Pagination:   pagination.New(page, pageSize, total),
		StatusFilter: statusFilter,
	}
}

// UpdateStatus sets the status of the quote with id
func (s *QuoteService) UpdateStatus(ctx context.Context, id, status string) error {
	if !allowed(QuoteStatuses, status) {
		return ErrInvalidStatus
	}
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	matched, err := s.repo.UpdateStatus(ctx, oid, status)
	if err != nil {
		slog.Error("Failed to update quote status", "quote_id", id, "error", err)
		return err
	}
	if !matched {
		return ErrNotFound
	}
	slog.Info("Quote status updated", "quote_id", id, "status", status)
	return nil
}
