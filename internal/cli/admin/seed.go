package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/risehub-org/risehub/internal/config"
	"github.com/risehub-org/risehub/internal/database"
	"github.com/risehub-org/risehub/internal/domain"
	"github.com/risehub-org/risehub/internal/repository"
	"github.com/spf13/cobra"
)

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed [file]",
		Short: "Load content items into the catalog",
		Long:  "Load content items from a JSON file, or a built-in sample set when no file is given",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSeed,
	}

	return cmd
}

type seedItem struct {
	Title  string   `json:"title"`
	Type   string   `json:"type"`
	Body   string   `json:"body"`
	Source string   `json:"source,omitempty"`
	URL    string   `json:"url,omitempty"`
	Tags   []string `json:"tags,omitempty"`
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	items := sampleItems()
	if len(args) == 1 {
		items, err = loadSeedFile(args[0])
		if err != nil {
			return err
		}
	}

	repo := repository.NewContentRepository(pool)
	now := time.Now().UTC()

	created := 0
	for i, item := range items {
		content := domain.NewContentItem(
			uuid.NewString(),
			item.Title,
			domain.ContentType(item.Type),
			item.Body,
			item.Source,
			item.URL,
			item.Tags,
			// Stagger timestamps so the seeded catalog has a stable recency order.
			now.Add(-time.Duration(i)*time.Minute),
		)
		if err := domain.ValidateContentItem(content); err != nil {
			return fmt.Errorf("invalid seed item %q: %w", item.Title, err)
		}
		if err := repo.Create(ctx, content); err != nil {
			return fmt.Errorf("failed to create %q: %w", item.Title, err)
		}
		created++
	}

	log.Printf("seeded %d content items", created)
	return nil
}

func loadSeedFile(path string) ([]seedItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var items []seedItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return items, nil
}

func sampleItems() []seedItem {
	return []seedItem{
		{
			Title: "Leadership Fundamentals for First-Time Mentors",
			Type:  "video",
			Body: "A practical walkthrough of the leadership habits that matter most when " +
				"you start mentoring: setting expectations, giving feedback, and building trust.",
			Source: "RiseHub Studio",
			Tags:   []string{"leadership", "mentoring"},
		},
		{
			Title: "How to Run a Goal-Setting Workshop",
			Type:  "tool",
			Body: "A facilitation kit for goal-setting sessions with young people, including " +
				"printable worksheets and a 90-minute agenda.",
			Tags: []string{"goals", "facilitation"},
		},
		{
			Title: "From Dropout to Founder",
			Type:  "story",
			Body: "Amara left school at sixteen and built a catering business with the help of " +
				"a community mentorship program. This is her story in her own words.",
			Source: "Community Voices",
			Tags:   []string{"entrepreneurship", "resilience"},
		},
		{
			Title: "What the Research Says About Youth Mentoring Outcomes",
			Type:  "research",
			Body: "A summary of longitudinal studies on structured mentoring programs and the " +
				"outcomes they move: school engagement, confidence, and employment readiness.",
			Tags: []string{"mentoring", "research"},
		},
		{
			Title: "Example Business Case: Community Bike Repair Shop",
			Type:  "business_case",
			Body: "A worked example business case for a youth-run bike repair shop, covering " +
				"startup costs, pricing, and the first year of operations.",
			Tags: []string{"entrepreneurship", "business"},
		},
		{
			Title: "Monthly Roundup: Opportunities and Grants",
			Type:  "newsletter",
			Body: "This month's roundup of scholarships, grants, and program openings for " +
				"young people and the organizations that support them.",
			Tags: []string{"opportunities"},
		},
	}
}
