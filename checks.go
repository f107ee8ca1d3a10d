//go:build linux

package main

import (
	"bufio"
	"os"
	"strings"

	"github.com/jfrostbite/init-headphone/pkg"
)

// Component identifier for environment checks.
const componentChecks pkg.Component = "checks"

// Reaching the amplifier requires the I801 controller's resources to
// be released to userspace and the i2c-dev interface to be present.
const (
	kernelParamLax = "acpi_enforce_resources=lax"
	moduleI2CDev   = "i2c_dev"
)

// advisoryChecks inspects the running system for conditions that
// commonly break amplifier access. Findings are logged, never fatal.
type advisoryChecks struct {
	cmdlinePath string
	modulesPath string
	euid        func() int
}

func newAdvisoryChecks() advisoryChecks {
	return advisoryChecks{
		cmdlinePath: "/proc/cmdline",
		modulesPath: "/proc/modules",
		euid:        os.Geteuid,
	}
}

func (a advisoryChecks) run() {
	a.checkPrivileges()
	a.checkBootParams()
	a.checkModules()
}

func (a advisoryChecks) checkPrivileges() {
	if a.euid() != 0 {
		pkg.LogWarn(componentChecks, "not running as root, device access may be denied")
	}
}

func (a advisoryChecks) checkBootParams() {
	data, err := os.ReadFile(a.cmdlinePath)
	if err != nil {
		pkg.LogDebug(componentChecks, "cannot read kernel command line",
			"path", a.cmdlinePath,
			"error", err)
		return
	}
	for _, param := range strings.Fields(string(data)) {
		if param == kernelParamLax {
			return
		}
	}
	pkg.LogWarn(componentChecks, "kernel boot parameter not set", "param", kernelParamLax)
}

func (a advisoryChecks) checkModules() {
	f, err := os.Open(a.modulesPath)
	if err != nil {
		pkg.LogDebug(componentChecks, "cannot read module list",
			"path", a.modulesPath,
			"error", err)
		return
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		// Module names appear with dashes or underscores depending on
		// how they were loaded.
		if strings.ReplaceAll(fields[0], "-", "_") == moduleI2CDev {
			return
		}
	}
	pkg.LogWarn(componentChecks, "module not loaded, it may be built into the kernel",
		"module", moduleI2CDev)
}
