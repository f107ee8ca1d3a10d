package pkg

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrBusEnumeration,
		ErrNoBusFound,
		ErrChannelOpen,
		ErrAddressBind,
		ErrNoAddressBound,
		ErrTransfer,
		ErrInvalidEffect,
	}

	for i, err1 := range errs {
		if err1 == nil {
			t.Errorf("error %d is nil", i)
			continue
		}
		for j, err2 := range errs {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("error %d and %d are equal", i, j)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{ErrBusEnumeration, "bus enumeration failed"},
		{ErrNoBusFound, "no matching bus adapter"},
		{ErrChannelOpen, "cannot open bus channel"},
		{ErrAddressBind, "cannot bind chip address"},
		{ErrNoAddressBound, "no chip address bound"},
		{ErrTransfer, "bus transfer failed"},
		{ErrInvalidEffect, "invalid effect preset"},
	}

	for _, tt := range tests {
		t.Run(tt.wantMsg, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("error.Error() = %v, want %v", got, tt.wantMsg)
			}
		})
	}
}

func TestSentinelWrapping(t *testing.T) {
	wrapped := fmt.Errorf("%w: /dev/i2c-3: permission denied", ErrChannelOpen)
	if !errors.Is(wrapped, ErrChannelOpen) {
		t.Errorf("errors.Is(%v, ErrChannelOpen) = false, want true", wrapped)
	}
	if errors.Is(wrapped, ErrTransfer) {
		t.Errorf("errors.Is(%v, ErrTransfer) = true, want false", wrapped)
	}
}
