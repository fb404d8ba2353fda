package domain

import (
	"fmt"
	"time"
)

// ContentType represents the type of a content item
type ContentType string

const (
	ContentTypeVideo        ContentType = "video"
	ContentTypeTool         ContentType = "tool"
	ContentTypeStory        ContentType = "story"
	ContentTypeResearch     ContentType = "research"
	ContentTypeNewsletter   ContentType = "newsletter"
	ContentTypeBusinessCase ContentType = "business_case"
	ContentTypeOther        ContentType = "other"
)

// ContentItem represents a piece of content in the catalog.
// Items are written by the ingestion pipeline; the discovery engine treats
// everything except the two counters as read-only.
type ContentItem struct {
	ID                    string
	Title                 string
	Type                  ContentType
	Body                  string
	Source                string
	URL                   string
	Tags                  []string
	CreatedAt             time.Time
	ViewCount             int64
	SearchAppearanceCount int64
}

// NewContentItem creates a new ContentItem instance
func NewContentItem(
	id, title string,
	contentType ContentType,
	body, source, url string,
	tags []string,
	createdAt time.Time,
) *ContentItem {
	return &ContentItem{
		ID:        id,
		Title:     title,
		Type:      contentType,
		Body:      body,
		Source:    source,
		URL:       url,
		Tags:      tags,
		CreatedAt: createdAt,
	}
}

// ValidateContentItem validates a ContentItem instance
func ValidateContentItem(c *ContentItem) error {
	if c == nil {
		return fmt.Errorf("content item cannot be nil")
	}

	if c.ID == "" {
		return fmt.Errorf("content item ID is required")
	}

	if c.Title == "" {
		return fmt.Errorf("content item Title is required")
	}

	if !isValidContentType(c.Type) {
		return fmt.Errorf("content item Type is invalid: %s", c.Type)
	}

	if c.ViewCount < 0 || c.SearchAppearanceCount < 0 {
		return fmt.Errorf("content item counters must not be negative")
	}

	return nil
}

// isValidContentType checks if a ContentType is valid
func isValidContentType(t ContentType) bool {
	switch t {
	case ContentTypeVideo, ContentTypeTool, ContentTypeStory, ContentTypeResearch,
		ContentTypeNewsletter, ContentTypeBusinessCase, ContentTypeOther:
		return true
	}
	return false
}
