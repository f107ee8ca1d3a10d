//go:build linux

package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jfrostbite/init-headphone/amp"
	"github.com/jfrostbite/init-headphone/pkg"
	"github.com/jfrostbite/init-headphone/smbus"
)

type recordedWrite struct {
	register byte
	value    byte
}

// fakeBus satisfies amp.Bus for dispatch tests.
type fakeBus struct {
	writes []recordedWrite
	reads  map[byte]byte
}

func (b *fakeBus) SetAddress(addr byte) error { return nil }

func (b *fakeBus) ReadByte(register byte) (byte, error) {
	return b.reads[register], nil
}

func (b *fakeBus) WriteByte(register, value byte) error {
	b.writes = append(b.writes, recordedWrite{register, value})
	return nil
}

func (b *fakeBus) Close() error { return nil }

func newFakeController() (*amp.Controller, *fakeBus) {
	bus := &fakeBus{reads: map[byte]byte{}}
	ctrl := &amp.Controller{
		Discover: func() (smbus.Adapter, error) {
			return smbus.Adapter{Name: "SMBus I801 adapter at f040", ID: "i2c-3"}, nil
		},
		Open: func(path string) (amp.Bus, error) { return bus, nil },
		Log:  pkg.NewLogger(io.Discard, nil),
	}
	return ctrl, bus
}

func TestCommandTable(t *testing.T) {
	expected := []string{
		"init",
		"effect0", "effect1", "effect2", "effect3", "effect4", "effect5", "effect6",
		"mute", "unmute", "recovery",
	}

	if len(commands) != len(expected) {
		t.Errorf("len(commands) = %d, want %d", len(commands), len(expected))
	}
	for _, name := range expected {
		if _, ok := commands[name]; !ok {
			t.Errorf("commands[%q] missing", name)
		}
	}
}

func TestCommandDispatch(t *testing.T) {
	tests := []struct {
		command   string
		writes    int
		lastWrite recordedWrite
	}{
		{"init", 10, recordedWrite{0x00, 0x82}},
		{"effect4", 10, recordedWrite{0x00, 0x82}},
		{"mute", 4, recordedWrite{0x00, 0x86}},
		{"unmute", 4, recordedWrite{0x00, 0x82}},
		{"recovery", 2, recordedWrite{0x0b, 0x92}},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			ctrl, bus := newFakeController()

			if err := commands[tt.command](ctrl); err != nil {
				t.Fatalf("command %s error: %v", tt.command, err)
			}
			if len(bus.writes) != tt.writes {
				t.Fatalf("command %s wrote %d times, want %d", tt.command, len(bus.writes), tt.writes)
			}
			if last := bus.writes[len(bus.writes)-1]; last != tt.lastWrite {
				t.Errorf("command %s last write = %v, want %v", tt.command, last, tt.lastWrite)
			}
		})
	}
}

func TestVersion(t *testing.T) {
	if version == "" {
		t.Error("version is empty")
	}
}

func TestMainVersionFlag(t *testing.T) {
	origArgs := os.Args
	origStdout := os.Stdout
	defer func() {
		os.Args = origArgs
		os.Stdout = origStdout
		*showVersion = false
	}()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe() error: %v", err)
	}
	os.Stdout = w
	os.Args = []string{"init-headphone", "-version"}

	code := Main()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error: %v", err)
	}
	if code != 0 {
		t.Errorf("Main() = %d, want 0", code)
	}
	if !strings.Contains(string(out), version) {
		t.Errorf("version output = %q, want substring %q", out, version)
	}
}

// TestMainUsageErrors exercises the argument validation paths, which
// return before any bus access happens.
func TestMainUsageErrors(t *testing.T) {
	origArgs := os.Args
	origOutput := flag.CommandLine.Output()
	origLevel := pkg.GetLogLevel()
	defer func() {
		os.Args = origArgs
		flag.CommandLine.SetOutput(origOutput)
		pkg.SetLogLevel(origLevel)
		*verbose = false
		*jsonOut = false
		*showVersion = false
	}()

	var buf bytes.Buffer
	flag.CommandLine.SetOutput(&buf)

	tests := []struct {
		name string
		args []string
		diag string
	}{
		{"unknown command", []string{"init-headphone", "wobble"}, "unknown command: wobble"},
		{"too many arguments", []string{"init-headphone", "mute", "extra"}, "too many arguments"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			*verbose = false
			*jsonOut = false
			*showVersion = false
			os.Args = tt.args

			if got := Main(); got != 2 {
				t.Errorf("Main() with args %v = %d, want 2", tt.args[1:], got)
			}
			if !strings.Contains(buf.String(), tt.diag) {
				t.Errorf("usage output = %q, want substring %q", buf.String(), tt.diag)
			}
		})
	}
}
