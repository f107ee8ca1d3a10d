package smbus

// =============================================================================
// System Paths
// =============================================================================

// SysfsI2CDir is the sysfs directory with one entry per i2c bus adapter.
const SysfsI2CDir = "/sys/class/i2c-dev"

// DevDir is the directory holding the adapter device nodes.
const DevDir = "/dev"

// =============================================================================
// Adapter Signatures
// =============================================================================

// KnownSignatures are the adapter name substrings identifying a chipset
// this tool supports. The amplifier hangs off the Intel I801 SMBus
// controller on all known machines.
var KnownSignatures = []string{
	"SMBus I801 adapter",
}

// =============================================================================
// Kernel Interface Constants
// =============================================================================

// i2c-dev ioctl request numbers.
const (
	ioctlI2CSlave = 0x0703 // I2C_SLAVE: bind the channel to a chip address
	ioctlI2CSMBus = 0x0720 // I2C_SMBUS: perform one SMBus transaction
)

// SMBus transaction parameters for the transfer ioctl.
const (
	smbusWrite    = 0 // read_write: host-to-chip
	smbusRead     = 1 // read_write: chip-to-host
	smbusByteData = 2 // size: single register byte transaction
)

// smbusBlockMax is the largest SMBus block transfer payload; it sizes the
// kernel data union even though byte transactions use only its first byte.
const smbusBlockMax = 32
