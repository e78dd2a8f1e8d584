// Command pdftext dumps the text and card references of printed flashcard
// PDFs, and compares two renders page by page.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gen2brain/go-fitz"
	"github.com/spf13/cobra"

	"github.com/wordlist-tools/flashcards/internal/pdf"
	"github.com/wordlist-tools/flashcards/pkg/utils"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:           "pdftext <file.pdf> [other.pdf]",
		Short:         "Dump or compare the pages of flashcard PDFs",
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return compare(cmd.OutOrStdout(), args[0], args[1])
			}
			return dump(cmd.OutOrStdout(), args[0], showText)
		},
	}
	cmd.Flags().BoolVar(&showText, "text", false, "print the full text of every page")
	return cmd
}

func dump(w io.Writer, path string, showText bool) error {
	doc, err := fitz.New(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer doc.Close()

	fmt.Fprintf(w, "%s: %d pages\n", path, doc.NumPage())
	for pageNum := 0; pageNum < doc.NumPage(); pageNum++ {
		bounds, err := doc.Bound(pageNum)
		if err != nil {
			return fmt.Errorf("failed to get bounds for page %d: %w", pageNum+1, err)
		}
		text, err := doc.Text(pageNum)
		if err != nil {
			return fmt.Errorf("failed to extract text from page %d: %w", pageNum+1, err)
		}

		fmt.Fprintf(w, "\nPage %d (%s)\n", pageNum+1, pdf.PaperName(float64(bounds.Dx()), float64(bounds.Dy())))
		fmt.Fprintf(w, "References: %v\n", pdf.ParseReferences(text))
		if showText {
			fmt.Fprintln(w, text)
		}
	}
	return nil
}

func compare(w io.Writer, path1, path2 string) error {
	doc1, err := fitz.New(path1)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path1, err)
	}
	defer doc1.Close()

	doc2, err := fitz.New(path2)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path2, err)
	}
	defer doc2.Close()

	fmt.Fprintf(w, "%s: %d pages\n", path1, doc1.NumPage())
	fmt.Fprintf(w, "%s: %d pages\n", path2, doc2.NumPage())

	pages := min(doc1.NumPage(), doc2.NumPage())
	for pageNum := 0; pageNum < pages; pageNum++ {
		text1, _ := doc1.Text(pageNum)
		text2, _ := doc2.Text(pageNum)

		img1, err := doc1.Image(pageNum)
		if err != nil {
			return fmt.Errorf("failed to render page %d of %s: %w", pageNum+1, path1, err)
		}
		img2, err := doc2.Image(pageNum)
		if err != nil {
			return fmt.Errorf("failed to render page %d of %s: %w", pageNum+1, path2, err)
		}

		fmt.Fprintf(w, "Page %d: text identical %v, pixels identical %v\n",
			pageNum+1, text1 == text2, utils.HashImage(img1) == utils.HashImage(img2))
	}
	return nil
}
