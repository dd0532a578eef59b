package dtrreset

import (
	"errors"
	"testing"

	"golang.org/x/sys/unix"
)

func TestGetBaudRate(t *testing.T) {
	tests := []struct {
		input    int
		expected uint32
		hasError bool
	}{
		{115200, unix.B115200, false},
		{9600, unix.B9600, false},
		{1200, unix.B1200, false},
		{4000000, unix.B4000000, false},
		{123456, 0, true}, // Invalid baud rate
		{0, 0, true},
	}

	for _, test := range tests {
		result, err := getBaudRate(test.input)
		if test.hasError {
			if err != ErrInvalidBaudRate {
				t.Errorf("Expected ErrInvalidBaudRate for %d, got %v", test.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Unexpected error for baud rate %d: %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("getBaudRate(%d) = %#x, want %#x", test.input, result, test.expected)
		}
	}
}

func TestOpenNonExistentDevice(t *testing.T) {
	_, err := Open("/dev/nonexistent")
	if err == nil {
		t.Fatal("Expected error when opening non-existent device")
	}

	var openErr *OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Expected *OpenError, got %T", err)
	}
	if openErr.Path != "/dev/nonexistent" {
		t.Errorf("OpenError.Path = %q", openErr.Path)
	}
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Expected errors.Is(err, ErrDeviceNotFound), got %v", err)
	}
	if !errors.Is(err, unix.ENOENT) {
		t.Errorf("Expected error to unwrap to ENOENT, got %v", err)
	}
}

func TestOpenErrorClassification(t *testing.T) {
	tests := []struct {
		errno  unix.Errno
		target error
	}{
		{unix.ENOENT, ErrDeviceNotFound},
		{unix.ENXIO, ErrDeviceNotFound},
		{unix.ENODEV, ErrDeviceNotFound},
		{unix.EACCES, ErrPermissionDenied},
		{unix.EPERM, ErrPermissionDenied},
		{unix.EBUSY, ErrDeviceInUse},
	}

	for _, tt := range tests {
		err := error(&OpenError{Path: "/dev/ttyX", Err: tt.errno})
		if !errors.Is(err, tt.target) {
			t.Errorf("errors.Is(%v, %v) = false", tt.errno, tt.target)
		}
	}

	err := error(&OpenError{Path: "/dev/ttyX", Err: unix.EIO})
	for _, target := range []error{ErrDeviceNotFound, ErrPermissionDenied, ErrDeviceInUse} {
		if errors.Is(err, target) {
			t.Errorf("EIO should not match %v", target)
		}
	}
}

// /dev/null opens read-write but is not a tty, so every modem ioctl fails.
func TestPortOnNonTTY(t *testing.T) {
	p, err := Open("/dev/null")
	if err != nil {
		t.Skipf("cannot open /dev/null: %v", err)
	}

	status, err := p.LineStatus()
	if err == nil {
		t.Error("Expected LineStatus to fail on /dev/null")
	}
	if status != 0 {
		t.Errorf("Expected status 0 on failure, got %v", status)
	}

	if err := p.SetLineStatus(0); !errors.Is(err, unix.ENOTTY) {
		t.Errorf("SetLineStatus error = %v, want ENOTTY", err)
	}

	if err := p.SetBaudRate(1200); err == nil {
		t.Error("Expected SetBaudRate to fail on /dev/null")
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close failed: %v", err)
	}
	if err := p.Close(); err != ErrPortClosed {
		t.Errorf("second Close error = %v, want %v", err, ErrPortClosed)
	}
}

func TestMethodsOnClosedPort(t *testing.T) {
	p := &port{closed: true}

	t.Run("LineStatus", func(t *testing.T) {
		_, err := p.LineStatus()
		if err != ErrPortClosed {
			t.Errorf("LineStatus() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})

	t.Run("SetLineStatus", func(t *testing.T) {
		err := p.SetLineStatus(LineRTS)
		if err != ErrPortClosed {
			t.Errorf("SetLineStatus() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})

	t.Run("GetModemSignals", func(t *testing.T) {
		_, err := p.GetModemSignals()
		if err != ErrPortClosed {
			t.Errorf("GetModemSignals() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})

	t.Run("SetBaudRate", func(t *testing.T) {
		err := p.SetBaudRate(1200)
		if err != ErrPortClosed {
			t.Errorf("SetBaudRate() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})

	t.Run("SetBaudRate invalid", func(t *testing.T) {
		err := p.SetBaudRate(7)
		if err != ErrInvalidBaudRate {
			t.Errorf("SetBaudRate(7) error = %v, want %v", err, ErrInvalidBaudRate)
		}
	})

	t.Run("SetExclusive", func(t *testing.T) {
		err := p.SetExclusive()
		if err != ErrPortClosed {
			t.Errorf("SetExclusive() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})

	t.Run("Close", func(t *testing.T) {
		err := p.Close()
		if err != ErrPortClosed {
			t.Errorf("Close() on closed port error = %v, want %v", err, ErrPortClosed)
		}
	})
}
