package pkgmgr

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookPathFor(available ...string) func(string) (string, error) {
	return func(name string) (string, error) {
		for _, a := range available {
			if a == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
}

func TestDetectPriorityOrder(t *testing.T) {
	tests := []struct {
		name      string
		available []string
		want      Manager
	}{
		{"apt wins over everything", []string{"yum", "zypper", "dnf", "pacman", "apt-get"}, Apt},
		{"pacman before dnf", []string{"dnf", "pacman"}, Pacman},
		{"dnf before zypper", []string{"zypper", "dnf"}, Dnf},
		{"zypper before yum", []string{"yum", "zypper"}, Zypper},
		{"yum as legacy fallback", []string{"yum"}, Yum},
		{"nothing installed", nil, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectFrom(lookPathFor(tt.available...)))
		})
	}
}

func TestTargetsShape(t *testing.T) {
	for _, mgr := range []Manager{Apt, Pacman, Dnf, Zypper} {
		targets := Targets(mgr)
		require.Len(t, targets, 2, "%s must register a cache dir and a marker", mgr)

		assert.Equal(t, KindPackageCache, targets[0].Kind)
		assert.False(t, targets[0].IsMarker())
		assert.True(t, strings.HasPrefix(targets[0].Path, "/var/cache/"))

		assert.Equal(t, KindAutoremove, targets[1].Kind)
		assert.True(t, targets[1].IsMarker())
		assert.True(t, strings.HasPrefix(targets[1].Path, "/var/lib/healter/"))
	}

	assert.Empty(t, Targets(Yum))
	assert.Empty(t, Targets(Unknown))
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		mgr  Manager
		path string
		want []string
	}{
		{Apt, "/var/cache/apt/archives", []string{"pkexec", "apt-get", "clean"}},
		{Apt, "/var/lib/healter/apt-autoremove", []string{"pkexec", "apt-get", "autoremove", "-y"}},
		{Pacman, "/var/cache/pacman/pkg", []string{"pkexec", "pacman", "-Scc", "--noconfirm"}},
		{Pacman, "/var/lib/healter/pacman-orphans", []string{"sh", "-c", "pacman -Qtdq | xargs -r pkexec pacman -Rns --noconfirm"}},
		{Dnf, "/var/cache/dnf", []string{"pkexec", "dnf", "clean", "all"}},
		{Dnf, "/var/lib/healter/dnf-autoremove", []string{"pkexec", "dnf", "autoremove", "-y"}},
		{Zypper, "/var/cache/zypp/packages", []string{"pkexec", "zypper", "clean", "--all"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveCommand(tt.mgr, tt.path), "%s %s", tt.mgr, tt.path)
	}
}

func TestResolveCommandUnknownInput(t *testing.T) {
	// Unknown input yields nil, signalling "not resolvable".
	assert.Nil(t, ResolveCommand(Apt, "/var/cache/pacman/pkg"))
	assert.Nil(t, ResolveCommand(Apt, "/var/cache/apt/archives/extra"))
	assert.Nil(t, ResolveCommand(Unknown, "/var/cache/apt/archives"))
	assert.Nil(t, ResolveCommand(Yum, "/var/cache/yum"))

	// zypper's autoremove marker is registered but has no command.
	assert.Nil(t, ResolveCommand(Zypper, "/var/lib/healter/zypper-unneeded"))
}

func TestResolveCommandReturnsCopy(t *testing.T) {
	argv := ResolveCommand(Apt, "/var/cache/apt/archives")
	require.NotEmpty(t, argv)
	argv[0] = "mutated"
	assert.Equal(t, []string{"pkexec", "apt-get", "clean"}, ResolveCommand(Apt, "/var/cache/apt/archives"))
}

func TestMarkerAndCacheAccessors(t *testing.T) {
	assert.Equal(t, []string{"/var/cache/apt/archives"}, CacheDirs(Apt))
	assert.Equal(t, []string{"/var/lib/healter/apt-autoremove"}, MarkerPaths(Apt))
	assert.Empty(t, MarkerPaths(Unknown))
}

func TestManagerString(t *testing.T) {
	assert.Equal(t, "apt", Apt.String())
	assert.Equal(t, "pacman", Pacman.String())
	assert.Equal(t, "dnf", Dnf.String())
	assert.Equal(t, "zypper", Zypper.String())
	assert.Equal(t, "yum", Yum.String())
	assert.Equal(t, "unknown", Unknown.String())
}
