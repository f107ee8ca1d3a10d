// Package smbus provides bus adapter discovery and single-byte register
// access for SMBus controllers through the Linux i2c-dev interface.
//
// [Discovery] scans /sys/class/i2c-dev for adapters and selects the one
// driven by a supported controller; [Channel] wraps the matching
// /dev/i2c-N node and issues addressed byte-data transactions via the
// I2C_SLAVE and I2C_SMBUS ioctls. It is pure Go with no cgo
// dependencies.
//
// # Requirements
//
// The i2c-dev kernel module must be loaded for the device nodes to
// exist, and the caller needs read/write access to them. This typically
// requires either:
//   - Running as root
//   - Appropriate udev rules granting access to the user/group
//
// # Usage
//
// A channel is scoped to one short operation: open, bind, transact,
// close.
//
//	adapter, err := smbus.Discovery{}.Select()
//	if err != nil {
//		return err
//	}
//	ch, err := smbus.Open(adapter.DevicePath())
//	if err != nil {
//		return err
//	}
//	defer ch.Close()
//	if err := ch.SetAddress(0x73); err != nil {
//		return err
//	}
//	err = ch.WriteByte(0x00, 0x82)
//
// The kernel structure layout for the transfer ioctl is confined to
// this package; callers never handle raw buffers.
package smbus
