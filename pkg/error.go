package pkg

import "errors"

// Amplifier control errors.
var (
	// ErrBusEnumeration indicates the bus adapter list could not be read.
	ErrBusEnumeration = errors.New("bus enumeration failed")

	// ErrNoBusFound indicates no adapter matched a supported controller.
	ErrNoBusFound = errors.New("no matching bus adapter")

	// ErrChannelOpen indicates the adapter device node could not be opened.
	ErrChannelOpen = errors.New("cannot open bus channel")

	// ErrAddressBind indicates the kernel rejected the chip address bind.
	ErrAddressBind = errors.New("cannot bind chip address")

	// ErrNoAddressBound indicates a transfer was attempted before binding
	// a chip address.
	ErrNoAddressBound = errors.New("no chip address bound")

	// ErrTransfer indicates a bus transfer was rejected by the kernel.
	ErrTransfer = errors.New("bus transfer failed")

	// ErrInvalidEffect indicates an effect preset outside the supported set.
	ErrInvalidEffect = errors.New("invalid effect preset")
)
