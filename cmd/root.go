package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adhikar",
		Short:         "Adhikar: Indian constitutional law AI assistant for the terminal",
		Long:          "Adhikar answers questions about the Constitution of India through a Gemini-backed chat, keeps every conversation on disk, and bundles directories of lawyers and legal-help contacts.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(app),
		newAskCmd(app),
		newSessionsCmd(app),
		newFeedbackCmd(app),
		newLawyersCmd(),
		newLegalHelpCmd(),
	)

	return rootCmd
}
