package client

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// InteractionRequest represents the interaction API request.
type InteractionRequest struct {
	ContentID       string `json:"content_id"`
	Type            string `json:"type"`
	DurationSeconds int    `json:"duration_seconds,omitempty"`
}

// InteractionResponse represents the interaction API response.
type InteractionResponse struct {
	Status string `json:"status"`
}

// InteractCmd creates the interact command.
func InteractCmd() *cobra.Command {
	var (
		interactionType string
		duration        int
	)

	cmd := &cobra.Command{
		Use:   "interact <content-id>",
		Short: "Record an interaction with a content item",
		Long:  "Records a view, like, share, bookmark, or complete event for a content item.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			return runInteract(cmd, args[0], interactionType, duration, outputJSON)
		},
	}

	cmd.Flags().StringVarP(&interactionType, "type", "t", "view", "Interaction type (view, like, share, bookmark, complete)")
	cmd.Flags().IntVarP(&duration, "duration", "d", 0, "Duration in seconds (view events)")

	return cmd
}

func runInteract(cmd *cobra.Command, contentID, interactionType string, duration int, outputJSON bool) error {
	api, err := NewAPIClient(cmd)
	if err != nil {
		return err
	}

	if api.userID == "" {
		return fmt.Errorf("%s not set (interactions require a user identity)", envUserID)
	}

	req := InteractionRequest{
		ContentID:       contentID,
		Type:            interactionType,
		DurationSeconds: duration,
	}

	resp, err := api.Post("/interactions", req)
	if err != nil {
		return fmt.Errorf("failed to record interaction: %w", err)
	}

	var interactionResp InteractionResponse
	if err := json.Unmarshal(resp.Data, &interactionResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if outputJSON {
		output, _ := json.MarshalIndent(interactionResp, "", "  ")
		fmt.Println(string(output))
		return nil
	}

	fmt.Printf("Recorded %s for %s\n", interactionType, contentID)
	return nil
}
