package safety

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/GK-Developers/GK-Healter/internal/catalog"
	"github.com/GK-Developers/GK-Healter/internal/pkgmgr"
)

// forbiddenPrefixes are critical system roots that can never be cleaned.
// The list is fixed and non-extensible: no allow-list entry, marker
// included, can override a match here.
var forbiddenPrefixes = []string{
	"/bin",
	"/sbin",
	"/boot",
	"/dev",
	"/etc",
	"/lib",
	"/lib64",
	"/proc",
	"/sys",
	"/usr/bin",
	"/usr/sbin",
	"/usr/lib",
	"/usr/lib64",
}

// Validator is the sole authority on whether a concrete path may be
// deleted. Every deletion must pass through IsSafeToDelete; there is no
// default allow. The allow-list grows only by registering new explicit
// catalog or marker entries — never by widening a prefix.
type Validator struct {
	// allowedDirs are real directories; a path qualifies if it equals
	// one or is a separator-bounded descendant.
	allowedDirs []string

	// markers are compared by exact string equality only.
	markers map[string]struct{}
}

// New builds a validator from explicit system directories, package-manager
// marker paths, and the user's cache root.
func New(systemDirs []string, markers []string, userCacheRoot string) *Validator {
	v := &Validator{markers: make(map[string]struct{}, len(markers))}
	for _, dir := range systemDirs {
		v.allowedDirs = append(v.allowedDirs, filepath.Clean(dir))
	}
	if userCacheRoot != "" {
		v.allowedDirs = append(v.allowedDirs, filepath.Clean(userCacheRoot))
	}
	for _, m := range markers {
		v.markers[filepath.Clean(m)] = struct{}{}
	}
	return v
}

// ForSession builds the validator for the current session: the catalog's
// system directories, the detected manager's markers, and the user cache
// root. User-space catalog entries under ~/.cache are covered by the cache
// root itself and are not registered individually.
func ForSession(cats []catalog.Category, mgr pkgmgr.Manager, home string) *Validator {
	var systemDirs []string
	for _, cat := range cats {
		if cat.System && !cat.Marker {
			systemDirs = append(systemDirs, cat.Path)
		}
	}
	return New(systemDirs, pkgmgr.MarkerPaths(mgr), catalog.UserCacheRoot(home))
}

// IsSafeToDelete decides whether path may be deleted. The path is
// canonicalized first, then checked deny-first against the forbidden
// prefixes, then against the explicit allow-list. Anything not explicitly
// allowed is rejected.
func (v *Validator) IsSafeToDelete(path string) bool {
	canonical, err := canonicalize(path)
	if err != nil {
		return false
	}

	for _, prefix := range forbiddenPrefixes {
		if underDir(canonical, prefix) {
			zap.L().Warn("safety: forbidden path rejected", zap.String("path", canonical))
			return false
		}
	}

	// Markers: exact equality only. A path merely sharing a prefix with a
	// marker is not a marker.
	if _, ok := v.markers[canonical]; ok {
		return true
	}

	for _, dir := range v.allowedDirs {
		if underDir(canonical, dir) {
			return true
		}
	}

	zap.L().Warn("safety: path not in allow-list", zap.String("path", canonical))
	return false
}

// canonicalize resolves path to an absolute, cleaned form so traversal
// segments and relative paths are never compared literally.
func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// underDir reports whether path equals dir or is a separator-bounded
// descendant of it. Bounding on the separator is what keeps "/var/log"
// from also admitting "/var/logs".
func underDir(path, dir string) bool {
	if path == dir {
		return true
	}
	return strings.HasPrefix(path, dir+string(filepath.Separator))
}
