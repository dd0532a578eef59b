package dtrreset

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// Predefined error types for robust error handling
var (
	ErrDeviceNotFound   = errors.New("serial device not found")
	ErrPermissionDenied = errors.New("permission denied accessing serial device")
	ErrDeviceInUse      = errors.New("serial device already in use")
	ErrInvalidBaudRate  = errors.New("invalid baud rate")
	ErrInvalidConfig    = errors.New("invalid serial configuration")
	ErrPortClosed       = errors.New("serial port is closed")

	// USB-related errors
	ErrUSBInfoNotAvailable = errors.New("USB device information not available")
	ErrNotUSBDevice        = errors.New("not a USB device")
)

// OpenError reports a device that could not be opened.
type OpenError struct {
	Path string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("failed to open %s: %v", e.Path, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Is maps the underlying errno onto the package sentinels, so callers can
// write errors.Is(err, ErrPermissionDenied).
func (e *OpenError) Is(target error) bool {
	var errno unix.Errno
	if !errors.As(e.Err, &errno) {
		return false
	}
	switch target {
	case ErrDeviceNotFound:
		return errno == unix.ENOENT || errno == unix.ENXIO || errno == unix.ENODEV
	case ErrPermissionDenied:
		return errno == unix.EACCES || errno == unix.EPERM
	case ErrDeviceInUse:
		return errno == unix.EBUSY
	}
	return false
}

// ControlWriteError reports a failed control request on an open device.
type ControlWriteError struct {
	Op   string
	Path string
	Err  error
}

func (e *ControlWriteError) Error() string {
	return fmt.Sprintf("ioctl %s failed on %s: %v", e.Op, e.Path, e.Err)
}

func (e *ControlWriteError) Unwrap() error { return e.Err }

// ConfigError reports a failure applying Config to an open device.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("failed to configure %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }
