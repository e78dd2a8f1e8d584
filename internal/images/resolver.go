package images

import (
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"

	"github.com/wordlist-tools/flashcards/pkg/logger"
	"github.com/wordlist-tools/flashcards/pkg/models"
)

const (
	DefaultWidth  = 220
	DefaultHeight = 220
)

// candidateNames lists file names probed for an identifier, most preferred
// first: color before black/white, PNG before JPEG.
func candidateNames(id int) []string {
	padded := models.PadID(id)
	return []string{
		fmt.Sprintf("c%s.png", padded),
		fmt.Sprintf("c%s.jpg", padded),
		fmt.Sprintf("bw%s.png", padded),
		fmt.Sprintf("bw%s.jpg", padded),
	}
}

// DirResolver finds card images inside a single directory.
type DirResolver struct {
	root        string
	defaultSize models.ImageSize
	logger      *logger.Logger
}

func NewDirResolver(root string, defaultSize models.ImageSize, logger *logger.Logger) *DirResolver {
	if defaultSize.Width <= 0 || defaultSize.Height <= 0 {
		defaultSize = models.ImageSize{Width: DefaultWidth, Height: DefaultHeight}
	}
	return &DirResolver{
		root:        root,
		defaultSize: defaultSize,
		logger:      logger,
	}
}

// Path returns the first existing candidate for id.
func (r *DirResolver) Path(id int) (string, bool) {
	for _, name := range candidateNames(id) {
		path := filepath.Join(r.root, name)
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			continue
		}
		return path, true
	}
	return "", false
}

// Resolve returns the image reference for id, or false when no candidate
// exists. Absence is the normal case for most records.
func (r *DirResolver) Resolve(id int) (*models.ImageReference, bool) {
	path, ok := r.Path(id)
	if !ok {
		r.logger.Trace("No image for %s", models.PadID(id))
		return nil, false
	}

	width, height := r.measure(path)
	r.logger.Trace("Image for %s: %s (%dx%d)", models.PadID(id), path, width, height)

	return &models.ImageReference{
		ID:     id,
		Path:   path,
		Width:  width,
		Height: height,
	}, true
}

// measure returns the display box for the image: its own size scaled down to
// fit the default size. Unreadable files get the default size.
func (r *DirResolver) measure(path string) (int, int) {
	kind, err := filetype.MatchFile(path)
	if err != nil || kind == filetype.Unknown || kind.MIME.Type != "image" {
		r.logger.Debug("Not a decodable image, using default size: %s", path)
		return r.defaultSize.Width, r.defaultSize.Height
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		r.logger.Debug("Failed to decode %s: %v", path, err)
		return r.defaultSize.Width, r.defaultSize.Height
	}

	bounds := img.Bounds()
	return FitWithin(bounds.Dx(), bounds.Dy(), r.defaultSize.Width, r.defaultSize.Height)
}

// FitWithin scales w x h down, keeping the aspect ratio, until it fits inside
// maxW x maxH. Images already inside the box keep their size.
func FitWithin(w, h, maxW, maxH int) (int, int) {
	if w <= 0 || h <= 0 {
		return maxW, maxH
	}
	if w <= maxW && h <= maxH {
		return w, h
	}
	scale := math.Min(float64(maxW)/float64(w), float64(maxH)/float64(h))
	fw := int(math.Round(float64(w) * scale))
	fh := int(math.Round(float64(h) * scale))
	if fw < 1 {
		fw = 1
	}
	if fh < 1 {
		fh = 1
	}
	return fw, fh
}
