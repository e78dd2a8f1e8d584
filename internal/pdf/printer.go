package pdf

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/wordlist-tools/flashcards/pkg/logger"
)

const DefaultTimeout = 2 * time.Minute

// Printer prints HTML files with a headless Chromium.
type Printer struct {
	browserPath string
	timeout     time.Duration
	logger      *logger.Logger
}

// NewPrinter returns a printer. An empty browserPath lets rod locate or
// download a browser.
func NewPrinter(browserPath string, timeout time.Duration, logger *logger.Logger) *Printer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Printer{
		browserPath: browserPath,
		timeout:     timeout,
		logger:      logger,
	}
}

// Print loads htmlPath in a fresh browser and writes the printed result to
// pdfPath. Page size comes from the document's CSS.
func (p *Printer) Print(ctx context.Context, htmlPath, pdfPath string) error {
	source, err := fileURL(htmlPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	l := launcher.New().Headless(true).Context(ctx)
	if p.browserPath != "" {
		l = l.Bin(p.browserPath)
	}
	controlURL, err := l.Launch()
	if err != nil {
		return fmt.Errorf("failed to launch browser: %w", err)
	}
	defer l.Cleanup()

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		return fmt.Errorf("failed to connect to browser: %w", err)
	}
	defer browser.Close()

	p.logger.Debug("Loading %s", source)
	page, err := browser.Page(proto.TargetCreateTarget{URL: source})
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", htmlPath, err)
	}
	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("failed to load %s: %w", htmlPath, err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground:   true,
		PreferCSSPageSize: true,
	})
	if err != nil {
		return fmt.Errorf("failed to print %s: %w", htmlPath, err)
	}
	defer stream.Close()

	if err := writeStream(stream, pdfPath); err != nil {
		return err
	}
	p.logger.Info("Wrote %s", pdfPath)
	return nil
}

func fileURL(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("can't open %s: %w", path, err)
	}
	if info.IsDir() {
		return "", errors.New(path + " is a directory")
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}
	return u.String(), nil
}

func writeStream(r io.Reader, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
