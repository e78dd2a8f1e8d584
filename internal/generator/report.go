package generator

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/wordlist-tools/flashcards/internal/config"
	"github.com/wordlist-tools/flashcards/pkg/utils"
)

// DocumentReport describes one written HTML document.
type DocumentReport struct {
	Variant  config.Variant
	Title    string
	Path     string
	Cards    int
	Pages    int
	Groups   int
	Checksum string
}

// PDFReport describes the printed PDF.
type PDFReport struct {
	Path    string
	Pages   int
	Paper   string
	Missing []int
}

// Report summarizes a run.
type Report struct {
	StartTime  time.Time
	EndTime    time.Time
	Rows       int
	Parsed     int
	Skipped    int
	Duplicates []int
	UnknownPoS int
	InRange    int
	WithImages int
	Documents  []DocumentReport
	PDF        *PDFReport
}

func (r *Report) TimeTaken() time.Duration {
	if r.EndTime.IsZero() {
		return time.Since(r.StartTime)
	}
	return r.EndTime.Sub(r.StartTime)
}

// Render formats the report as two tables: wordlist counts and outputs.
func (r *Report) Render() string {
	summary := table.NewWriter()
	summary.SetStyle(table.StyleRounded)
	summary.SetTitle("Wordlist")
	summary.AppendRows([]table.Row{
		{"Rows read", r.Rows},
		{"Records parsed", r.Parsed},
		{"Rows skipped", r.Skipped},
		{"Duplicate ids", len(r.Duplicates)},
		{"Unknown part of speech", r.UnknownPoS},
		{"Records in range", r.InRange},
		{"Records with images", r.WithImages},
		{"Time taken", r.TimeTaken().Round(time.Millisecond)},
	})
	if r.PDF != nil && len(r.PDF.Missing) > 0 {
		summary.AppendRow(table.Row{"Cards missing from PDF", len(r.PDF.Missing)})
	}
	summary.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	outputs := table.NewWriter()
	outputs.SetStyle(table.StyleRounded)
	outputs.SetTitle("Outputs")
	outputs.AppendHeader(table.Row{"Variant", "File", "Cards", "Pages", "Groups", "SHA-256"})
	for _, doc := range r.Documents {
		outputs.AppendRow(table.Row{doc.Variant, doc.Path, doc.Cards, doc.Pages, dash(doc.Groups), utils.ShortHash(doc.Checksum)})
	}
	if r.PDF != nil {
		outputs.AppendRow(table.Row{"pdf (" + r.PDF.Paper + ")", r.PDF.Path, "-", r.PDF.Pages, "-", ""})
	}
	outputs.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
		{Number: 5, Align: text.AlignRight},
	})

	return summary.Render() + "\n" + outputs.Render() + "\n"
}

// Print writes the rendered report to w.
func (r *Report) Print(w io.Writer) {
	fmt.Fprint(w, r.Render())
}

func dash(n int) string {
	if n == 0 {
		return "-"
	}
	return strconv.Itoa(n)
}
