package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"mime"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	chatrender "github.com/nileshvk/adhikar/internal/adapters/render/chat"
	"github.com/nileshvk/adhikar/internal/application"
	"github.com/nileshvk/adhikar/internal/domain"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	var modeFlag string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive chat session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(cmd, app, modeFlag)
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", string(domain.ModeNormal), "Chat mode: normal, emergency or caselaw")

	return cmd
}

func runChat(cmd *cobra.Command, app *app, modeFlag string) error {
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
	out := cmd.OutOrStdout()

	if err := printTranscript(cmd, app, manager); err != nil {
		return err
	}
	fmt.Fprintln(out, "Type a question, or /help for commands.")

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for {
		fmt.Fprintf(out, "\n[%s]> ", mode)
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			quit, newMode, err := handleChatCommand(cmd, app, manager, controller, line, mode)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			mode = newMode
			if quit {
				return nil
			}
			continue
		}

		if err := submitAndPrint(cmd, app, manager, controller, line, mode); err != nil {
			fmt.Fprintln(out, err)
		}
	}

	return scanner.Err()
}

func handleChatCommand(cmd *cobra.Command, app *app, manager *application.SessionManager, controller *application.Controller, line string, mode domain.ChatMode) (bool, domain.ChatMode, error) {
	out := cmd.OutOrStdout()
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/exit", "/quit":
		return true, mode, nil

	case "/help":
		fmt.Fprintln(out, "Commands: /new /sessions /select <id> /mode <normal|emergency|caselaw> /attach <path> /exit")
		return false, mode, nil

	case "/new":
		session, err := manager.NewSession(cmd.Context())
		if err != nil {
			return false, mode, fmt.Errorf("start session: %w", err)
		}
		fmt.Fprintf(out, "Started session %s\n", session.ID)
		return false, mode, printTranscript(cmd, app, manager)

	case "/sessions":
		fmt.Fprintln(out, chatrender.RenderSessionList(manager.Sessions(), manager.ActiveSessionID()))
		return false, mode, nil

	case "/select":
		if arg == "" {
			return false, mode, errors.New("usage: /select <session-id>")
		}
		if err := manager.SelectSession(cmd.Context(), arg); err != nil {
			return false, mode, err
		}
		return false, mode, printTranscript(cmd, app, manager)

	case "/mode":
		newMode, err := domain.ParseChatMode(arg)
		if err != nil {
			return false, mode, err
		}
		fmt.Fprintf(out, "Mode set to %s\n", newMode)
		return false, newMode, nil

	case "/attach":
		if arg == "" {
			return false, mode, errors.New("usage: /attach <path>")
		}
		return false, mode, attachFile(cmd, app, controller, arg)

	default:
		return false, mode, fmt.Errorf("unknown command %s", name)
	}
}

func submitAndPrint(cmd *cobra.Command, app *app, manager *application.SessionManager, controller *application.Controller, text string, mode domain.ChatMode) error {
	ctx := cmd.Context()

	done, err := controller.Submit(ctx, text, mode)
	if err != nil {
		return err
	}

	// Ctrl-C abandons the generation instead of killing the session.
	wait := func(ctx context.Context) error {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)

		select {
		case <-done:
			return nil
		case <-interrupt:
			controller.Stop(ctx)
			return nil
		case <-ctx.Done():
			controller.Stop(context.WithoutCancel(ctx))
			return ctx.Err()
		}
	}
	if err := runThinkingSpinner(ctx, cmd.ErrOrStderr(), wait); err != nil {
		return err
	}

	return printLastMessage(cmd, app, manager)
}

func attachFile(cmd *cobra.Command, app *app, controller *application.Controller, path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve attachment path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("stat attachment: %w", err)
	}

	mediaType := mime.TypeByExtension(filepath.Ext(absPath))
	if mediaType == "" {
		mediaType = "application/octet-stream"
	}

	message, err := controller.AttachFile(cmd.Context(), domain.Attachment{
		Name:       filepath.Base(absPath),
		MediaType:  mediaType,
		LocatorURL: "file://" + absPath,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), chatrender.RenderMessage(message, chatRenderOptions(cmd, app)))
	return nil
}

func printTranscript(cmd *cobra.Command, app *app, manager *application.SessionManager) error {
	session, ok := manager.ActiveSession()
	if !ok {
		return domain.ErrNoActiveSession
	}

	output, err := chatrender.RenderTranscript(session, chatRenderOptions(cmd, app))
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), output)
	return err
}

func printLastMessage(cmd *cobra.Command, app *app, manager *application.SessionManager) error {
	session, ok := manager.ActiveSession()
	if !ok {
		return domain.ErrNoActiveSession
	}

	last, ok := session.LastMessage()
	if !ok {
		return nil
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), chatrender.RenderMessage(last, chatRenderOptions(cmd, app)))
	return err
}

func chatRenderOptions(cmd *cobra.Command, app *app) chatrender.RenderOptions {
	feedback, err := app.feedback.All(cmd.Context())
	if err != nil {
		feedback = domain.FeedbackMap{}
	}

	return chatrender.RenderOptions{
		Feedback: feedback,
		Now:      app.clock.Now(),
	}
}
