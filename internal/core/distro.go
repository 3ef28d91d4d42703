package core

import (
	"bufio"
	"os"
	"strings"
)

// osReleasePath is the standard distribution identification file.
// A variable so tests can point it at a fixture.
var osReleasePath = "/etc/os-release"

// DistroString returns the human-readable distribution name from
// /etc/os-release (PRETTY_NAME, falling back to NAME). Returns "Linux"
// when the file is missing or carries neither field.
func DistroString() string {
	f, err := os.Open(osReleasePath)
	if err != nil {
		return "Linux"
	}
	defer f.Close()

	var name string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		value = strings.Trim(value, `"`)
		switch key {
		case "PRETTY_NAME":
			return value
		case "NAME":
			name = value
		}
	}
	if name != "" {
		return name
	}
	return "Linux"
}
