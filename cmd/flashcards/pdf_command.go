package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/wordlist-tools/flashcards/internal/pdf"
	"github.com/wordlist-tools/flashcards/pkg/utils"
)

func newPDFCommand(ctx *commandContext) *cobra.Command {
	var (
		output      string
		browserPath string
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "pdf <file.html>",
		Short: "Print an already generated HTML document to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			htmlPath := args[0]
			target := output
			if target == "" {
				target = utils.ReplaceExt(htmlPath, ".pdf")
			}

			log := ctx.logger()
			printer := pdf.NewPrinter(browserPath, timeout, log)
			if err := printer.Print(cmd.Context(), htmlPath, target); err != nil {
				return err
			}

			info, err := pdf.Inspect(target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d pages (%s)\n", target, info.Pages, info.Paper())
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "destination PDF (defaults to the HTML name with .pdf)")
	cmd.Flags().StringVar(&browserPath, "browser", "", "path to a Chromium or Chrome binary")
	cmd.Flags().DurationVar(&timeout, "timeout", pdf.DefaultTimeout, "maximum time to wait for the browser")
	return cmd
}
