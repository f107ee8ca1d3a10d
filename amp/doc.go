// Package amp encodes the headphone amplifier's command vocabulary and
// drives the chip over an SMBus channel.
//
// The protocol layer is pure data. Command sequences are ordered lists
// of register writes fixed at build time; order is significant because
// the chip steps through states as the writes land. The Controller
// performs the bus transactions.
//
// # Operations
//
// Init applies the default effect preset, SetMute toggles the output
// stage, SetEffect applies one of the seven presets, and Recover
// resets a wedged chip. Each operation runs a fresh discover, open,
// bind, write, close cycle, so hardware changes between invocations
// are always picked up and no descriptor outlives its operation.
package amp
