package cmd

import (
	"fmt"
	"strconv"

	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/spf13/cobra"
)

func newFeedbackCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "feedback <message-id> <up|down>",
		Short: "Rate an assistant message; repeating a rating clears it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			messageID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("parse message id %q: %w", args[0], err)
			}

			value, err := domain.ParseFeedback(args[1])
			if err != nil {
				return err
			}

			result, err := app.feedback.Toggle(cmd.Context(), messageID, value)
			if err != nil {
				return err
			}

			if result == "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Cleared feedback for message %d\n", messageID)
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s for message %d\n", result, messageID)
			return err
		},
	}
}
