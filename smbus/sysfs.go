//go:build linux

package smbus

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfrostbite/init-headphone/pkg"
)

// =============================================================================
// Adapter Discovery
// =============================================================================

// Adapter describes one i2c bus adapter exposed by the kernel.
type Adapter struct {
	Name string // Human-readable adapter name from sysfs
	ID   string // Device node identifier, e.g. "i2c-3"
}

// DevicePath returns the device node path for the adapter.
func (a Adapter) DevicePath() string {
	return filepath.Join(DevDir, a.ID)
}

// Discovery enumerates bus adapters and selects the amplifier's bus.
// The zero value scans the standard sysfs location for the known
// controller signatures and logs through the process logger. Adapters
// are never cached: the bus list is rebuilt on every call so it tracks
// hardware that can change between invocations.
type Discovery struct {
	SysfsDir   string       // Enumeration root; defaults to SysfsI2CDir
	Signatures []string     // Name substrings of supported controllers; defaults to KnownSignatures
	Log        *slog.Logger // Event sink; defaults to the process logger
}

// Adapters returns every adapter under the enumeration root, in
// enumeration order. Entries whose name cannot be read are skipped with
// a warning; a root that cannot be listed is fatal.
func (d Discovery) Adapters() ([]Adapter, error) {
	dir := d.sysfsDir()

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", pkg.ErrBusEnumeration, dir, err)
	}

	var adapters []Adapter
	for _, entry := range entries {
		id := entry.Name()

		name, err := readSysfsString(filepath.Join(dir, id, "name"))
		if err != nil {
			d.log().Warn("skipping adapter with unreadable name",
				"id", id,
				"error", err)
			continue
		}

		adapters = append(adapters, Adapter{Name: name, ID: id})
	}

	return adapters, nil
}

// Select returns the adapter driven by a supported controller. When
// several adapters match, the last match in enumeration order wins.
func (d Discovery) Select() (Adapter, error) {
	adapters, err := d.Adapters()
	if err != nil {
		return Adapter{}, err
	}

	var selected Adapter
	found := false
	for _, adapter := range adapters {
		if !d.matches(adapter.Name) {
			d.log().Debug("adapter does not match",
				"id", adapter.ID,
				"name", adapter.Name)
			continue
		}

		d.log().Debug("adapter matched",
			"id", adapter.ID,
			"name", adapter.Name)

		// Keep overwriting: last match wins.
		selected = adapter
		found = true
	}

	if !found {
		return Adapter{}, fmt.Errorf("%w: scanned %d adapters under %s",
			pkg.ErrNoBusFound, len(adapters), d.sysfsDir())
	}

	d.log().Info("selected bus adapter",
		"id", selected.ID,
		"name", selected.Name,
		"device", selected.DevicePath())

	return selected, nil
}

// matches reports whether an adapter name carries any supported signature.
func (d Discovery) matches(name string) bool {
	for _, sig := range d.signatures() {
		if strings.Contains(name, sig) {
			return true
		}
	}
	return false
}

// =============================================================================
// Defaults
// =============================================================================

func (d Discovery) sysfsDir() string {
	if d.SysfsDir != "" {
		return d.SysfsDir
	}
	return SysfsI2CDir
}

func (d Discovery) signatures() []string {
	if d.Signatures != nil {
		return d.Signatures
	}
	return KnownSignatures
}

func (d Discovery) log() *slog.Logger {
	l := d.Log
	if l == nil {
		l = pkg.GetLogger()
	}
	return l.With("component", string(pkg.ComponentDiscovery))
}

// =============================================================================
// Sysfs Read Helpers
// =============================================================================

// readSysfsString reads a string from a sysfs attribute file.
func readSysfsString(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}
