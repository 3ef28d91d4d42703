package scan

import (
	"os"

	"go.uber.org/zap"

	"github.com/GK-Developers/GK-Healter/internal/catalog"
	"github.com/GK-Developers/GK-Healter/internal/core"
)

// Result is one sized maintenance candidate produced by a scan. Results are
// immutable snapshots; a fresh scan replaces them.
type Result struct {
	Label       string `json:"label"`
	Path        string `json:"path"`
	SizeBytes   int64  `json:"size_bytes"`
	SizeHuman   string `json:"size"`
	System      bool   `json:"system"`
	Description string `json:"description"`
	Marker      bool   `json:"marker,omitempty"`
}

// Run walks the catalog and returns a result for every non-marker category
// whose path exists and measures above zero bytes. It is a pure read: with
// no filesystem changes between calls, two runs yield identical results.
func Run(categories []catalog.Category) []Result {
	var results []Result
	for _, cat := range categories {
		if cat.Marker {
			// Markers stand for actions, not locations; they have no
			// measurable size and are surfaced separately.
			continue
		}
		if _, err := os.Stat(cat.Path); err != nil {
			continue
		}
		size := DirSize(cat.Path)
		if size <= 0 {
			continue
		}
		zap.L().Debug("scan candidate",
			zap.String("label", cat.Label),
			zap.String("path", cat.Path),
			zap.Int64("bytes", size))
		results = append(results, Result{
			Label:       cat.Label,
			Path:        cat.Path,
			SizeBytes:   size,
			SizeHuman:   core.FormatSize(size),
			System:      cat.System,
			Description: cat.Description,
		})
	}
	return results
}

// MarkerResults returns pseudo-results for the catalog's marker entries, so
// callers that explicitly opt in (e.g. `healter clean --autoremove`) can
// feed them through the same selection and cleaning path. Size is zero by
// definition.
func MarkerResults(categories []catalog.Category) []Result {
	var results []Result
	for _, cat := range categories {
		if !cat.Marker {
			continue
		}
		results = append(results, Result{
			Label:       cat.Label,
			Path:        cat.Path,
			SizeHuman:   "-",
			System:      cat.System,
			Description: cat.Description,
			Marker:      true,
		})
	}
	return results
}
