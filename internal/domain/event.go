package domain

import (
	"fmt"
	"time"
)

// InteractionType represents the kind of user interaction with content
type InteractionType string

const (
	InteractionTypeView     InteractionType = "view"
	InteractionTypeLike     InteractionType = "like"
	InteractionTypeShare    InteractionType = "share"
	InteractionTypeBookmark InteractionType = "bookmark"
	InteractionTypeComplete InteractionType = "complete"
)

// SearchHistoryEntry records one executed search. Entries are append-only
// and never mutated or deleted.
type SearchHistoryEntry struct {
	ID        string
	UserID    string // optional; empty for anonymous searches
	Query     string
	CreatedAt time.Time
}

// InteractionEvent records a single user interaction with a content item.
// Events are append-only.
type InteractionEvent struct {
	ID              string
	UserID          string
	ContentID       string
	Type            InteractionType
	DurationSeconds int
	CreatedAt       time.Time
}

// ValidateInteractionEvent validates an InteractionEvent instance
func ValidateInteractionEvent(e *InteractionEvent) error {
	if e == nil {
		return fmt.Errorf("interaction event cannot be nil")
	}

	if e.ID == "" {
		return fmt.Errorf("interaction event ID is required")
	}

	if e.UserID == "" {
		return fmt.Errorf("interaction event UserID is required")
	}

	if e.ContentID == "" {
		return fmt.Errorf("interaction event ContentID is required")
	}

	if !isValidInteractionType(e.Type) {
		return fmt.Errorf("interaction event Type is invalid: %s", e.Type)
	}

	if e.DurationSeconds < 0 {
		return fmt.Errorf("interaction event DurationSeconds must not be negative")
	}

	return nil
}

// isValidInteractionType checks if an InteractionType is valid
func isValidInteractionType(t InteractionType) bool {
	switch t {
	case InteractionTypeView, InteractionTypeLike, InteractionTypeShare,
		InteractionTypeBookmark, InteractionTypeComplete:
		return true
	}
	return false
}
