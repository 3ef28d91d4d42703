package maintain

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSupply(t *testing.T, root, name, kind, online string) {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "type"), []byte(kind+"\n"), 0o644))
	if online != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "online"), []byte(online+"\n"), 0o644))
	}
}

func withPowerSupplyPath(t *testing.T, path string) {
	t.Helper()
	old := powerSupplyPath
	powerSupplyPath = path
	t.Cleanup(func() { powerSupplyPath = old })
}

func TestOnACPowerMainsOnline(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT0", "Battery", "")
	writeSupply(t, root, "AC", "Mains", "1")
	withPowerSupplyPath(t, root)

	assert.True(t, OnACPower())
}

func TestOnACPowerMainsOffline(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "AC", "Mains", "0")
	withPowerSupplyPath(t, root)

	assert.False(t, OnACPower())
}

func TestOnACPowerNoSupplies(t *testing.T) {
	// A desktop without power supply entries counts as mains-powered.
	withPowerSupplyPath(t, filepath.Join(t.TempDir(), "absent"))
	assert.True(t, OnACPower())

	withPowerSupplyPath(t, t.TempDir())
	assert.True(t, OnACPower())
}

func TestOnACPowerBatteryOnly(t *testing.T) {
	root := t.TempDir()
	writeSupply(t, root, "BAT0", "Battery", "")
	withPowerSupplyPath(t, root)

	// No mains adapter found: default open rather than blocking forever.
	assert.True(t, OnACPower())
}
