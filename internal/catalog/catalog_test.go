package catalog

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GK-Developers/GK-Healter/internal/pkgmgr"
)

func TestBuildPrependsManagerEntries(t *testing.T) {
	cats := Build(pkgmgr.Apt, "/home/user")
	require.GreaterOrEqual(t, len(cats), 7)

	// Manager entries come first for display priority.
	assert.Equal(t, "Package cache", cats[0].Label)
	assert.Equal(t, "/var/cache/apt/archives", cats[0].Path)
	assert.True(t, cats[0].System)
	assert.False(t, cats[0].Marker)

	assert.Equal(t, "Unused packages", cats[1].Label)
	assert.True(t, cats[1].Marker)
	assert.True(t, cats[1].System)

	// Universal entries follow.
	assert.Equal(t, "System logs", cats[2].Label)
	assert.Equal(t, "/var/log", cats[2].Path)
	assert.Equal(t, "Crash dumps", cats[3].Label)
	assert.Equal(t, "/var/lib/systemd/coredump", cats[3].Path)
}

func TestBuildResolvesHomePaths(t *testing.T) {
	cats := Build(pkgmgr.Unknown, "/home/user")
	require.Len(t, cats, 5, "unknown manager contributes no entries")

	var paths []string
	for _, c := range cats {
		paths = append(paths, c.Path)
		assert.False(t, c.Marker)
	}
	assert.Contains(t, paths, filepath.Join("/home/user", ".cache", "thumbnails"))
	assert.Contains(t, paths, filepath.Join("/home/user", ".cache", "mozilla"))
	assert.Contains(t, paths, filepath.Join("/home/user", ".cache", "google-chrome"))
}

func TestUserEntriesAreNotSystem(t *testing.T) {
	for _, c := range Build(pkgmgr.Dnf, "/home/user") {
		if c.Path == "/var/log" || c.Path == "/var/lib/systemd/coredump" ||
			c.Path == "/var/cache/dnf" || c.Marker {
			assert.True(t, c.System, "%s must be a system category", c.Label)
		} else {
			assert.False(t, c.System, "%s must be user-space", c.Label)
		}
	}
}

func TestUserCacheRoot(t *testing.T) {
	assert.Equal(t, "/home/user/.cache", UserCacheRoot("/home/user"))
}

func TestSystemCommand(t *testing.T) {
	argv := SystemCommand("/var/log")
	require.Len(t, argv, 4)
	assert.Equal(t, []string{"pkexec", "sh", "-c"}, argv[:3])
	assert.Contains(t, argv[3], "find /var/log")
	assert.Contains(t, argv[3], "truncate -s 0")
	assert.Contains(t, argv[3], "journalctl --vacuum-time=1s")

	assert.Equal(t, []string{"pkexec", "sh", "-c", "rm -rf /var/lib/systemd/coredump/*"},
		SystemCommand("/var/lib/systemd/coredump"))

	assert.Nil(t, SystemCommand("/var/cache/apt/archives"))
	assert.Nil(t, SystemCommand("/home/user/.cache/thumbnails"))
}

func TestSystemCommandReturnsCopy(t *testing.T) {
	argv := SystemCommand("/var/lib/systemd/coredump")
	argv[0] = "mutated"
	assert.Equal(t, "pkexec", SystemCommand("/var/lib/systemd/coredump")[0])
}

func TestResolveCommandCoversAllSystemCategories(t *testing.T) {
	// Every non-marker system category in the catalog must resolve to a
	// privileged command; otherwise it would scan but never clean.
	for _, c := range Build(pkgmgr.Apt, "/home/user") {
		if !c.System {
			continue
		}
		argv := ResolveCommand(pkgmgr.Apt, c.Path)
		assert.NotEmpty(t, argv, "%s (%s) must resolve to a command", c.Label, c.Path)
	}

	// Manager targets take precedence over the generic table.
	assert.Equal(t, []string{"pkexec", "apt-get", "clean"},
		ResolveCommand(pkgmgr.Apt, "/var/cache/apt/archives"))
	assert.Nil(t, ResolveCommand(pkgmgr.Apt, "/home/user/.cache/mozilla"))
}
