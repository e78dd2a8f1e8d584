package main

import (
	"github.com/spf13/cobra"

	"github.com/wordlist-tools/flashcards/internal/generator"
	"github.com/wordlist-tools/flashcards/internal/progress"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()
	var (
		enablePDF bool
		quiet     bool
	)

	rootCmd := &cobra.Command{
		Use:   "flashcards",
		Short: "Generate printable flashcards from a wordlist and a folder of images",
		Long: `Generate printable flashcards from a tab-separated wordlist and a folder
of images named c####.png, c####.jpg, bw####.png or bw####.jpg.

One HTML document is written per configured variant (image, no-image, blank).
With --pdf the configured variant is also printed to PDF with headless Chromium.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ctx.stderr = cmd.ErrOrStderr()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig()
			if err != nil {
				return err
			}
			if enablePDF {
				cfg.PDF.Enabled = true
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			log := ctx.logger()
			var reporter progress.Reporter = progress.Nop{}
			if !quiet {
				reporter = progress.NewReporter(cmd.ErrOrStderr())
			}

			report, err := generator.New(cfg, log, generator.WithReporter(reporter)).Run(cmd.Context())
			if err != nil {
				return err
			}
			if warnings := log.Warnings(); warnings > 0 {
				log.Info("Finished with %d warnings", warnings)
			}
			report.Print(cmd.OutOrStdout())
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configPath, "config", "c", "", "path to the configuration file (YAML or JSON)")
	flags.StringVarP(&ctx.wordlistPath, "tsv", "t", "", "path to the wordlist.tsv file (overrides wordlistPath)")
	flags.StringVarP(&ctx.imagesPath, "path", "p", "", "path to the folder of images (overrides images.directory)")
	flags.BoolVar(&ctx.verbose, "verbose", false, "enable verbose logging")
	flags.BoolVar(&ctx.debug, "debug", false, "enable debug mode with trace logging")

	rootCmd.Flags().BoolVar(&enablePDF, "pdf", false, "also print the configured variant to PDF")
	rootCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress output")

	rootCmd.AddCommand(newImagesCommand(ctx))
	rootCmd.AddCommand(newPDFCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
