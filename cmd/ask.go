package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/nileshvk/adhikar/internal/application"
	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/spf13/cobra"
)

func newAskCmd(app *app) *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Ask a one-shot question in the active session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAsk(cmd, app, args[0], modeFlag)
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeNormal), "Chat mode: normal, emergency or caselaw")

	return cmd
}

func runAsk(cmd *cobra.Command, app *app, question, modeFlag string) error {
	mode, err := domain.ParseChatMode(modeFlag)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	gateway, err := app.newGateway(ctx)
	if err != nil {
		return err
	}

	manager := app.sessionManager(gateway)
	if err := manager.Init(ctx); err != nil {
		return fmt.Errorf("load sessions: %w", err)
	}

	controller := application.NewController(manager, app.clock, app.logger)

	done, err := controller.Submit(ctx, question, mode)
	if err != nil {
		return err
	}

	wait := func(ctx context.Context) error {
		select {
		case <-done:
			return nil
		case <-ctx.Done():
			controller.Stop(context.WithoutCancel(ctx))
			return ctx.Err()
		}
	}
	if err := runThinkingSpinner(ctx, cmd.ErrOrStderr(), wait); err != nil {
		return err
	}

	session, ok := manager.ActiveSession()
	if !ok {
		return domain.ErrNoActiveSession
	}

	last, ok := session.LastMessage()
	if !ok || last.Sender != domain.SenderAI {
		return errors.New("no reply was recorded")
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), last.Text)
	return err
}
