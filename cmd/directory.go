package cmd

import (
	"fmt"

	"github.com/nileshvk/adhikar/internal/adapters/directory"
	"github.com/nileshvk/adhikar/internal/adapters/render/cards"
	"github.com/spf13/cobra"
)

func newLawyersCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "lawyers",
		Short: "Browse the bundled lawyer directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			lawyers, err := directory.Lawyers()
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, lawyers)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cards.RenderLawyers(lawyers))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newLegalHelpCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "legalhelp",
		Short: "Browse consultants and helpers for hands-on assistance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			profiles, err := directory.LegalHelp()
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, profiles)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), cards.RenderLegalHelp(profiles))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
