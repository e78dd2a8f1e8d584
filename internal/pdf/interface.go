package pdf

import (
	"context"
)

// PDFPrinter turns a finished HTML document into a PDF file.
type PDFPrinter interface {
	Print(ctx context.Context, htmlPath, pdfPath string) error
}

// PDFChecker reports which card references made it into a printed PDF.
type PDFChecker interface {
	References(ctx context.Context, pdfPath string) ([]PageReferences, error)
}
