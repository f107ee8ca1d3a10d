//go:build linux

package smbus

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// =============================================================================
// Kernel Argument Structures
// =============================================================================

// smbusData matches the kernel's union i2c_smbus_data layout: shared
// storage for a byte, a word, or a block payload. Byte-data transactions
// use only the first byte; the rest exists so the kernel sees the full
// union it expects.
type smbusData [smbusBlockMax + 2]byte

// value returns the byte slot of the union.
func (d *smbusData) value() byte {
	return d[0]
}

// setValue stores v in the byte slot of the union.
func (d *smbusData) setValue(v byte) {
	d[0] = v
}

// smbusIoctlData describes one SMBus transaction for the transfer ioctl.
// This must match the kernel's struct i2c_smbus_ioctl_data layout.
type smbusIoctlData struct {
	readWrite uint8      // Transfer direction (smbusWrite or smbusRead)
	command   uint8      // Target register
	size      uint32     // Transaction kind (smbusByteData)
	data      *smbusData // Payload/result union
}

// =============================================================================
// Raw Kernel Calls
// =============================================================================

// bindAddress binds the channel behind fd to a 7-bit chip address.
func bindAddress(fd int, addr byte) error {
	return unix.IoctlSetInt(fd, ioctlI2CSlave, int(addr))
}

// transferByte performs one byte-data transaction on fd. The union
// referenced by data carries the write payload in and the read result
// out.
func transferByte(fd int, readWrite uint8, register byte, data *smbusData) error {
	msg := smbusIoctlData{
		readWrite: readWrite,
		command:   register,
		size:      smbusByteData,
		data:      data,
	}

	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), ioctlI2CSMBus,
		uintptr(unsafe.Pointer(&msg)))
	if errno != 0 {
		return errno
	}
	return nil
}

// =============================================================================
// Error Helpers
// =============================================================================

// isBusy returns true if the error indicates the chip address is claimed
// by a kernel driver (EBUSY).
func isBusy(err error) bool {
	if errno, ok := err.(unix.Errno); ok {
		return errno == unix.EBUSY
	}
	return false
}

// isNoDevice returns true if the error indicates no chip acknowledged at
// the bound address (ENXIO, ENODEV).
func isNoDevice(err error) bool {
	if errno, ok := err.(unix.Errno); ok {
		return errno == unix.ENXIO || errno == unix.ENODEV
	}
	return false
}
