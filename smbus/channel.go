//go:build linux

package smbus

import (
	"errors"
	"fmt"
	"os"

	"github.com/jfrostbite/init-headphone/pkg"
)

// =============================================================================
// Kernel Connection
// =============================================================================

// conn is the kernel-facing half of a channel, split off so bind,
// transfer, and close calls can be counted by injected fakes.
type conn interface {
	bind(addr byte) error
	transfer(readWrite uint8, register byte, data *smbusData) error
	close() error
}

// devConn drives a real i2c-dev device node.
type devConn struct {
	file *os.File
}

func (c *devConn) bind(addr byte) error {
	return bindAddress(int(c.file.Fd()), addr)
}

func (c *devConn) transfer(readWrite uint8, register byte, data *smbusData) error {
	return transferByte(int(c.file.Fd()), readWrite, register, data)
}

func (c *devConn) close() error {
	return c.file.Close()
}

// =============================================================================
// Channel
// =============================================================================

// addrUnbound marks a channel with no bound chip address.
const addrUnbound = -1

// errChannelClosed guards against use of a channel after Close.
var errChannelClosed = errors.New("channel closed")

// Channel is an open, addressable connection to a bus adapter. It owns
// exactly one device node descriptor and the last-bound chip address,
// and is scoped to a single amplifier operation: opened, addressed, used
// for a handful of byte transactions, then closed.
type Channel struct {
	conn conn
	path string // Device node path, for diagnostics
	addr int    // Bound 7-bit chip address; addrUnbound until SetAddress
}

// Open opens the adapter device node at path for byte transactions.
func Open(path string) (*Channel, error) {
	file, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", pkg.ErrChannelOpen, path, err)
	}

	pkg.LogDebug(pkg.ComponentChannel, "channel open", "path", path)

	return &Channel{
		conn: &devConn{file: file},
		path: path,
		addr: addrUnbound,
	}, nil
}

// SetAddress binds subsequent transactions to the given 7-bit chip
// address. Rebinding the already-bound address skips the kernel call.
func (c *Channel) SetAddress(addr byte) error {
	if c.conn == nil {
		return errChannelClosed
	}
	if c.addr == int(addr) {
		return nil
	}

	if err := c.conn.bind(addr); err != nil {
		if isBusy(err) {
			pkg.LogDebug(pkg.ComponentChannel, "chip address held by a kernel driver",
				"path", c.path,
				"addr", hexByte(addr))
		}
		return fmt.Errorf("%w: %s addr %s: %w",
			pkg.ErrAddressBind, c.path, hexByte(addr), err)
	}

	c.addr = int(addr)
	pkg.LogDebug(pkg.ComponentChannel, "chip address bound",
		"path", c.path,
		"addr", hexByte(addr))
	return nil
}

// WriteByte writes value to the chip register. A chip address must be
// bound first.
func (c *Channel) WriteByte(register, value byte) error {
	if c.conn == nil {
		return errChannelClosed
	}
	if c.addr == addrUnbound {
		return fmt.Errorf("%w: write register %s", pkg.ErrNoAddressBound, hexByte(register))
	}

	var data smbusData
	data.setValue(value)

	if err := c.conn.transfer(smbusWrite, register, &data); err != nil {
		if isNoDevice(err) {
			pkg.LogDebug(pkg.ComponentChannel, "chip did not acknowledge",
				"path", c.path,
				"register", hexByte(register))
		}
		return fmt.Errorf("%w: write %s register %s: %w",
			pkg.ErrTransfer, c.path, hexByte(register), err)
	}

	pkg.LogDebug(pkg.ComponentChannel, "write",
		"path", c.path,
		"register", hexByte(register),
		"value", hexByte(value))
	return nil
}

// ReadByte reads the chip register. A chip address must be bound first.
// The result is confined to eight bits by the union accessor.
func (c *Channel) ReadByte(register byte) (byte, error) {
	if c.conn == nil {
		return 0, errChannelClosed
	}
	if c.addr == addrUnbound {
		return 0, fmt.Errorf("%w: read register %s", pkg.ErrNoAddressBound, hexByte(register))
	}

	var data smbusData
	if err := c.conn.transfer(smbusRead, register, &data); err != nil {
		if isNoDevice(err) {
			pkg.LogDebug(pkg.ComponentChannel, "chip did not acknowledge",
				"path", c.path,
				"register", hexByte(register))
		}
		return 0, fmt.Errorf("%w: read %s register %s: %w",
			pkg.ErrTransfer, c.path, hexByte(register), err)
	}

	value := data.value()
	pkg.LogDebug(pkg.ComponentChannel, "read",
		"path", c.path,
		"register", hexByte(register),
		"value", hexByte(value))
	return value, nil
}

// Close releases the device node. Only the first call reaches the
// kernel; later calls are no-ops.
func (c *Channel) Close() error {
	if c.conn == nil {
		return nil
	}

	err := c.conn.close()
	c.conn = nil
	c.addr = addrUnbound

	pkg.LogDebug(pkg.ComponentChannel, "channel closed", "path", c.path)
	return err
}

// =============================================================================
// Helpers
// =============================================================================

// hexByte formats a register or value for diagnostics. fmt pads the
// digits, not the 0x prefix, so width two covers a full byte.
func hexByte(v byte) string {
	return fmt.Sprintf("%#02x", v)
}
