package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/wordlist-tools/flashcards/internal/images"
	"github.com/wordlist-tools/flashcards/internal/wordlist"
	"github.com/wordlist-tools/flashcards/pkg/models"
)

func newImagesCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "images",
		Short: "Cross-check the image folder against the wordlist",
		Long: `List image files whose identifier has no wordlist record, and records in
the configured range that have no image.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			log := ctx.logger()

			raw, err := os.ReadFile(cfg.WordlistPath)
			if err != nil {
				return fmt.Errorf("can't read wordlist %s: %w", cfg.WordlistPath, err)
			}
			result, err := wordlist.NewParser(nil, wordlist.Options{}, log).Parse(string(raw), cfg.TargetLanguageName)
			if err != nil {
				return err
			}

			var ids []int
			for _, record := range result.Records.Range(cfg.StartID, cfg.EndID) {
				ids = append(ids, record.ID)
			}
			audit, err := images.Audit(cfg.Images.Directory, ids)
			if err != nil {
				return err
			}

			tw := table.NewWriter()
			tw.SetStyle(table.StyleRounded)
			tw.SetTitle("Images in %s", cfg.Images.Directory)
			tw.AppendHeader(table.Row{"Kind", "Count", "Entries"})
			tw.AppendRow(table.Row{"matched", audit.Matched, ""})
			tw.AppendRow(table.Row{"records without image", len(audit.Missing), references(audit.Missing, limit)})
			tw.AppendRow(table.Row{"images without record", len(audit.Orphans), truncate(audit.Orphans, limit)})
			tw.AppendRow(table.Row{"ignored files", len(audit.Ignored), truncate(audit.Ignored, limit)})
			fmt.Fprintln(cmd.OutOrStdout(), tw.Render())
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum entries listed per row (0 lists all)")
	return cmd
}

func references(ids []int, limit int) string {
	refs := make([]string, len(ids))
	for i, id := range ids {
		refs[i] = models.FormatReference(id)
	}
	return truncate(refs, limit)
}

func truncate(entries []string, limit int) string {
	var out string
	for i, entry := range entries {
		if limit > 0 && i == limit {
			return out + fmt.Sprintf(" ... (+%d)", len(entries)-limit)
		}
		if i > 0 {
			out += " "
		}
		out += entry
	}
	return out
}
