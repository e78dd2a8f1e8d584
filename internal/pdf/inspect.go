package pdf

import (
	"fmt"
	"math"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// Paper sizes in PDF points.
var (
	A4     = types.Dim{Width: 595.28, Height: 841.89}
	Letter = types.Dim{Width: 612, Height: 792}
)

const DimensionTolerance = 1.0

// Info summarizes a printed PDF.
type Info struct {
	Path  string
	Pages int
	Dims  []types.Dim
}

// Inspect reads page count and page sizes with pdfcpu.
func Inspect(path string) (*Info, error) {
	pages, err := api.PageCountFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to count pages of %s: %w", path, err)
	}
	dims, err := api.PageDimsFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions of %s: %w", path, err)
	}
	return &Info{Path: path, Pages: pages, Dims: dims}, nil
}

// Paper names the size of the first page, or "" when the document is empty.
func (i *Info) Paper() string {
	if len(i.Dims) == 0 {
		return ""
	}
	return PaperName(i.Dims[0].Width, i.Dims[0].Height)
}

// MatchesDimensions reports whether width x height is paper in either
// orientation.
func MatchesDimensions(width, height float64, paper types.Dim) bool {
	widthMatch := math.Abs(width-paper.Width) <= DimensionTolerance
	heightMatch := math.Abs(height-paper.Height) <= DimensionTolerance

	rotatedWidthMatch := math.Abs(width-paper.Height) <= DimensionTolerance
	rotatedHeightMatch := math.Abs(height-paper.Width) <= DimensionTolerance

	return (widthMatch && heightMatch) || (rotatedWidthMatch && rotatedHeightMatch)
}

// PaperName returns "A4" or "Letter" (with " landscape" when rotated), or
// the raw size in points.
func PaperName(width, height float64) string {
	for _, paper := range []struct {
		name string
		dim  types.Dim
	}{{"A4", A4}, {"Letter", Letter}} {
		if !MatchesDimensions(width, height, paper.dim) {
			continue
		}
		if width > height {
			return paper.name + " landscape"
		}
		return paper.name
	}
	return fmt.Sprintf("%.2f x %.2f pt", width, height)
}
