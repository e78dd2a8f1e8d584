package images

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strconv"

	"github.com/maruel/natural"
)

// FilePattern matches card image file names: c0001.png, bw0042.jpg, ...
var FilePattern = regexp.MustCompile(`^(bw|c)(\d{4,})\.(jpg|png)$`)

// AuditResult compares an image directory against a set of identifiers.
type AuditResult struct {
	// Orphans are image files whose identifier has no record, in natural order.
	Orphans []string
	// Missing are record identifiers with no image file, ascending.
	Missing []int
	// Ignored are directory entries that do not look like card images.
	Ignored []string
	Matched int
}

// Audit scans dir for card images and cross-checks them against ids.
func Audit(dir string, ids []int) (*AuditResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read image directory %s: %w", dir, err)
	}

	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = false
	}

	result := &AuditResult{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		m := FilePattern.FindStringSubmatch(name)
		if m == nil {
			result.Ignored = append(result.Ignored, name)
			continue
		}
		id, err := strconv.Atoi(m[2])
		if err != nil {
			result.Ignored = append(result.Ignored, name)
			continue
		}
		if _, ok := wanted[id]; !ok {
			result.Orphans = append(result.Orphans, name)
			continue
		}
		if !wanted[id] {
			result.Matched++
		}
		wanted[id] = true
	}

	for id, found := range wanted {
		if !found {
			result.Missing = append(result.Missing, id)
		}
	}

	sort.Sort(natural.StringSlice(result.Orphans))
	sort.Sort(natural.StringSlice(result.Ignored))
	sort.Ints(result.Missing)

	return result, nil
}
