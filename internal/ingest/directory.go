// Package ingest enumerates bill images on the local filesystem. It only
// finds files; decoding and OCR belong to the ocr package.
package ingest

import (
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/cwhitfield/billscan/constants"
	"github.com/cwhitfield/billscan/internal/common"
)

// DirStats summarizes one directory scan.
type DirStats struct {
	Scanned uint32
	Matched uint32
	Failed  uint32
}

// ScanDirectory walks root, filters by includeExts (or the default image
// set), skips hidden files/dirs if requested, and returns the matched paths
// in walk order plus aggregate stats. Unreadable entries count as failed but
// never abort the walk.
func ScanDirectory(root string, includeExts []string, skipHidden bool) ([]string, DirStats, error) {
	if strings.TrimSpace(root) == "" {
		return nil, DirStats{}, errors.New("root path is required")
	}

	// Build ext set
	exts := map[string]struct{}{}
	if len(includeExts) == 0 {
		exts = constants.AllowedExtensions
	} else {
		for _, e := range includeExts {
			e = constants.NormalizeExt(strings.TrimSpace(e))
			if e != "" {
				exts[e] = struct{}{}
			}
		}
	}

	var paths []string
	var stats DirStats

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		stats.Scanned++
		if walkErr != nil {
			stats.Failed++
			return nil // continue walking
		}
		// The root itself is exempt from the hidden check so that scanning
		// "." (or a dot-named directory) still descends into it.
		if path != root && skipHidden && isHidden(path) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := constants.NormalizeExt(filepath.Ext(path))
		if _, ok := exts[ext]; !ok {
			return nil
		}
		stats.Matched++
		paths = append(paths, path)
		return nil
	})

	if err != nil {
		return paths, stats, common.WrapError(err, "walk")
	}
	return paths, stats, nil
}

func isHidden(path string) bool {
	base := filepath.Base(path)
	return strings.HasPrefix(base, ".")
}
