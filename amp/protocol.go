package amp

import (
	"fmt"

	"github.com/jfrostbite/init-headphone/pkg"
)

// DeviceAddress is the amplifier's 7-bit bus address.
const DeviceAddress = 0x73

// =============================================================================
// Register Map
// =============================================================================

// Amplifier command registers.
const (
	regOutput   = 0x00 // output stage control
	regPrime    = 0x0a // write-arm register
	regRecovery = 0x0b // recovery state machine
)

// Output stage control values.
const (
	outputEnable  = 0x82
	outputDisable = 0x86
)

// primeValue arms the chip for subsequent register writes.
const primeValue = 0x41

// Recovery values for regRecovery. The chip passes through an
// intermediate state, so the two writes must land in this order.
const (
	recoveryEnter  = 0x82
	recoveryFinish = 0x92
)

// =============================================================================
// Command Sequences
// =============================================================================

// RegisterWrite is one addressed byte write on the control bus.
type RegisterWrite struct {
	Register byte
	Value    byte
}

// Sequence is an ordered list of register writes. Order is significant:
// later writes may depend on device state established by earlier ones.
type Sequence []RegisterWrite

// prologRefresh lists the registers read and written back unchanged
// during the prolog. Some firmware revisions refuse payload writes
// until this touch sequence has run.
var prologRefresh = [2]byte{0x04, 0x09}

// disableOutput returns the sequence that mutes the output stage.
func disableOutput() Sequence {
	return Sequence{{regOutput, outputDisable}}
}

// enableOutput returns the sequence that unmutes the output stage.
func enableOutput() Sequence {
	return Sequence{{regOutput, outputEnable}}
}

// recoverySequence returns the two-step sequence that resets a wedged
// chip.
func recoverySequence() Sequence {
	return Sequence{
		{regRecovery, recoveryEnter},
		{regRecovery, recoveryFinish},
	}
}

// =============================================================================
// Effect Presets
// =============================================================================

// Effect selects one of the amplifier's built-in effect presets.
type Effect int

// Defined effect presets.
const (
	Effect0 Effect = iota
	Effect1
	Effect2
	Effect3
	Effect4
	Effect5
	Effect6

	// EffectCount is the number of defined presets.
	EffectCount
)

// DefaultEffect is the preset applied by Controller.Init.
const DefaultEffect = Effect1

// Valid reports whether e names a defined preset.
func (e Effect) Valid() bool {
	return e >= 0 && e < EffectCount
}

// String returns the command name of the effect.
func (e Effect) String() string {
	if !e.Valid() {
		return fmt.Sprintf("effect(%d)", int(e))
	}
	return fmt.Sprintf("effect%d", int(e))
}

// effectRegisters are the coefficient registers, written in this order.
var effectRegisters = [5]byte{0x04, 0x05, 0x07, 0x08, 0x09}

// effectPayloads holds the per-preset coefficient values, one row per
// effect, column-aligned with effectRegisters.
var effectPayloads = [EffectCount][5]byte{
	Effect0: {0x11, 0x00, 0x11, 0x11, 0x11},
	Effect1: {0xee, 0x03, 0x11, 0x10, 0x11},
	Effect2: {0xaa, 0x03, 0x11, 0x10, 0x11},
	Effect3: {0x88, 0x03, 0x11, 0x10, 0x11},
	Effect4: {0xee, 0x0b, 0x11, 0x10, 0x11},
	Effect5: {0xaa, 0x0b, 0x11, 0x10, 0x11},
	Effect6: {0x88, 0x0b, 0x11, 0x10, 0x11},
}

// sequence returns the preset's coefficient writes.
func (e Effect) sequence() (Sequence, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", pkg.ErrInvalidEffect, int(e), int(EffectCount))
	}
	seq := make(Sequence, 0, len(effectRegisters))
	for i, reg := range effectRegisters {
		seq = append(seq, RegisterWrite{Register: reg, Value: effectPayloads[e][i]})
	}
	return seq, nil
}

// effectSequence assembles the full transition for one preset. The
// output stage stays disabled while the coefficients change.
func effectSequence(e Effect) (Sequence, error) {
	payload, err := e.sequence()
	if err != nil {
		return nil, err
	}
	seq := make(Sequence, 0, len(payload)+2)
	seq = append(seq, disableOutput()...)
	seq = append(seq, payload...)
	seq = append(seq, enableOutput()...)
	return seq, nil
}
