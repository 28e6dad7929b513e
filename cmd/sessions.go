package cmd

import (
	"encoding/json"
	"fmt"

	chatrender "github.com/nileshvk/adhikar/internal/adapters/render/chat"
	"github.com/nileshvk/adhikar/internal/application"
	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/spf13/cobra"
)

func newSessionsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Manage saved chat sessions",
	}

	cmd.AddCommand(
		newSessionsListCmd(app),
		newSessionsNewCmd(app),
		newSessionsSelectCmd(app),
		newSessionsShowCmd(app),
	)

	return cmd
}

func newSessionsListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := loadSessionManager(cmd, app)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, struct {
					Active   string               `json:"active"`
					Sessions []domain.ChatSession `json:"sessions"`
				}{
					Active:   manager.ActiveSessionID(),
					Sessions: manager.Sessions(),
				})
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), chatrender.RenderSessionList(manager.Sessions(), manager.ActiveSessionID()))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newSessionsNewCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Start a new session and make it active",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			manager, err := loadSessionManager(cmd, app)
			if err != nil {
				return err
			}

			session, err := manager.NewSession(cmd.Context())
			if err != nil {
				return fmt.Errorf("start session: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Started session %s\n", session.ID)
			return err
		},
	}
}

func newSessionsSelectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "select <session-id>",
		Short: "Make a saved session the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := loadSessionManager(cmd, app)
			if err != nil {
				return err
			}

			if err := manager.SelectSession(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Selected session %s\n", args[0])
			return err
		},
	}
}

func newSessionsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show [session-id]",
		Short: "Print the transcript of a session (default: active)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := loadSessionManager(cmd, app)
			if err != nil {
				return err
			}

			session, err := resolveSession(manager, args)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, session)
			}

			output, err := chatrender.RenderTranscript(session, chatRenderOptions(cmd, app))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func loadSessionManager(cmd *cobra.Command, app *app) (*application.SessionManager, error) {
	manager := app.sessionManager(nil)
	if err := manager.Init(cmd.Context()); err != nil {
		return nil, fmt.Errorf("load sessions: %w", err)
	}

	return manager, nil
}

func resolveSession(manager *application.SessionManager, args []string) (domain.ChatSession, error) {
	if len(args) == 0 {
		session, ok := manager.ActiveSession()
		if !ok {
			return domain.ChatSession{}, domain.ErrNoActiveSession
		}
		return session, nil
	}

	for _, session := range manager.Sessions() {
		if session.ID == args[0] {
			return session, nil
		}
	}

	return domain.ChatSession{}, fmt.Errorf("session %s: %w", args[0], domain.ErrSessionNotFound)
}

func writeJSON(cmd *cobra.Command, value any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
