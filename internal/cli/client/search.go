package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// SearchRequest represents the search API request.
type SearchRequest struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// SearchResult represents a ranked search result.
type SearchResult struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Type         string   `json:"type"`
	URL          string   `json:"url,omitempty"`
	ViewCount    int64    `json:"view_count"`
	Score        float64  `json:"score"`
	MatchReasons []string `json:"match_reasons"`
}

// Suggestion represents a query suggestion.
type Suggestion struct {
	Text       string  `json:"text"`
	Kind       string  `json:"kind"`
	Confidence float64 `json:"confidence"`
}

// RelatedItem represents a co-viewed content item.
type RelatedItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	CoViewCount int    `json:"co_view_count"`
}

// SearchResponse represents the search API response.
type SearchResponse struct {
	Results         []SearchResult `json:"results"`
	Total           int            `json:"total"`
	HasMore         bool           `json:"has_more"`
	Suggestions     []Suggestion   `json:"suggestions"`
	RelatedSearches []string       `json:"related_searches"`
	RelatedContent  []RelatedItem  `json:"related_content"`
}

// SearchCmd creates the search command.
func SearchCmd() *cobra.Command {
	var (
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search the content catalog",
		Long:  "Ranks the content catalog against the query and prints results with match reasons.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runSearch(cmd, args[0], limit, offset, outputJSON)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of results")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of results to skip")

	return cmd
}

func runSearch(cmd *cobra.Command, query string, limit, offset int, outputJSON bool) error {
	api, err := NewAPIClient(cmd)
	if err != nil {
		return err
	}

	req := SearchRequest{
		Query:  query,
		Limit:  limit,
		Offset: offset,
	}

	resp, err := api.Post("/search", req)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	var searchResp SearchResponse
	if err := json.Unmarshal(resp.Data, &searchResp); err != nil {
		return fmt.Errorf("failed to parse search results: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(searchResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	if len(searchResp.Results) == 0 {
		fmt.Println("No results found.")
	} else {
		fmt.Printf("Found %d results (showing %d):\n\n", searchResp.Total, len(searchResp.Results))
		for i, result := range searchResp.Results {
			fmt.Printf("%d. %s [%s] (%.0f)\n", offset+i+1, result.Title, result.Type, result.Score)
			for _, reason := range result.MatchReasons {
				fmt.Printf("   - %s\n", reason)
			}
			fmt.Printf("   ID: %s\n", result.ID)
			if i < len(searchResp.Results)-1 {
				fmt.Println(strings.Repeat("-", 40))
			}
		}
		if searchResp.HasMore {
			fmt.Printf("\nMore results available. Use --offset %d\n", offset+len(searchResp.Results))
		}
	}

	if len(searchResp.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range searchResp.Suggestions {
			fmt.Printf("  %s (%s, %.1f)\n", s.Text, s.Kind, s.Confidence)
		}
	}

	if len(searchResp.RelatedSearches) > 0 {
		fmt.Println("\nRelated searches:")
		for _, q := range searchResp.RelatedSearches {
			fmt.Printf("  %s\n", q)
		}
	}

	if len(searchResp.RelatedContent) > 0 {
		fmt.Println("\nPeople also viewed:")
		for _, rc := range searchResp.RelatedContent {
			fmt.Printf("  %s [%s] (%d co-views)\n", rc.Title, rc.Type, rc.CoViewCount)
		}
	}

	return nil
}
