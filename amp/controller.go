//go:build linux

package amp

import (
	"log/slog"

	"github.com/jfrostbite/init-headphone/pkg"
	"github.com/jfrostbite/init-headphone/smbus"
)

// Bus is the byte-level transaction surface of an open channel.
// *smbus.Channel satisfies it.
type Bus interface {
	SetAddress(addr byte) error
	ReadByte(register byte) (byte, error)
	WriteByte(register, value byte) error
	Close() error
}

// Controller drives the amplifier. Every operation runs as one
// self-contained transaction: discover the bus adapter, open its
// device node, bind the chip address, write the command sequence,
// close the channel. Nothing is cached between operations.
//
// The zero value discovers through sysfs and opens the real device
// node.
type Controller struct {
	// Discover locates the bus adapter. Defaults to a sysfs scan for
	// the known adapter signatures.
	Discover func() (smbus.Adapter, error)

	// Open opens the adapter's device node. Defaults to smbus.Open.
	Open func(path string) (Bus, error)

	// Log receives controller events. Defaults to the package logger.
	Log *slog.Logger
}

// Init applies the default effect preset.
func (c *Controller) Init() error {
	return c.SetEffect(DefaultEffect)
}

// SetMute disables the output stage when muted is true and enables it
// otherwise.
func (c *Controller) SetMute(muted bool) error {
	if muted {
		return c.perform("mute", true, disableOutput())
	}
	return c.perform("unmute", true, enableOutput())
}

// SetEffect applies an effect preset. The preset is validated before
// any bus activity.
func (c *Controller) SetEffect(e Effect) error {
	seq, err := effectSequence(e)
	if err != nil {
		return err
	}
	return c.perform(e.String(), true, seq)
}

// Recover resets a wedged amplifier. The recovery writes run without
// the prolog.
func (c *Controller) Recover() error {
	return c.perform("recovery", false, recoverySequence())
}

// perform runs one bus transaction. The channel is closed on every
// path once it has been opened.
func (c *Controller) perform(op string, withProlog bool, seq Sequence) error {
	log := c.logger()
	log.Debug("operation start", "op", op, "writes", len(seq))

	adapter, err := c.discover()
	if err != nil {
		return err
	}

	bus, err := c.open(adapter.DevicePath())
	if err != nil {
		return err
	}
	defer func() {
		if err := bus.Close(); err != nil {
			log.Warn("channel close failed", "op", op, "error", err)
		}
	}()

	if err := bus.SetAddress(DeviceAddress); err != nil {
		return err
	}

	if withProlog {
		if err := prolog(bus); err != nil {
			return err
		}
	}

	for _, w := range seq {
		if err := bus.WriteByte(w.Register, w.Value); err != nil {
			return err
		}
	}

	log.Info("amplifier configured", "op", op, "device", adapter.DevicePath())
	return nil
}

// prolog arms the chip for payload writes: a fixed value to the prime
// register, then a read-back rewrite of each refresh register.
func prolog(bus Bus) error {
	if err := bus.WriteByte(regPrime, primeValue); err != nil {
		return err
	}
	for _, reg := range prologRefresh {
		v, err := bus.ReadByte(reg)
		if err != nil {
			return err
		}
		if err := bus.WriteByte(reg, v); err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) discover() (smbus.Adapter, error) {
	if c.Discover != nil {
		return c.Discover()
	}
	d := smbus.Discovery{Log: c.Log}
	return d.Select()
}

func (c *Controller) open(path string) (Bus, error) {
	if c.Open != nil {
		return c.Open(path)
	}
	ch, err := smbus.Open(path)
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (c *Controller) logger() *slog.Logger {
	log := c.Log
	if log == nil {
		log = pkg.GetLogger()
	}
	return log.With("component", string(pkg.ComponentController))
}
