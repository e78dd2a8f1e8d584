package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wordlist-tools/flashcards/pkg/version"
)

func newVersionCommand() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			if detailed {
				fmt.Fprint(cmd.OutOrStdout(), version.GetDetailedVersionInfo())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), version.GetVersionInfo())
			return nil
		},
	}
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include the commit")
	return cmd
}
