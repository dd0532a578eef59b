// Package dtrreset drops the DTR line of a serial device to reset the
// microcontroller behind it.
//
// Many Arduino-style boards wire DTR through a capacitor to the MCU reset pin,
// or run a CDC bootloader that watches the line. Clearing DTR is enough to
// restart them without touching the board.
//
// # Basic Usage
//
//	result, err := dtrreset.ResetDTR("/dev/ttyACM0")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("DTR cleared: %v -> %v\n", result.Before, result.After)
//
// The modem-control register is read with TIOCMGET, only the DTR bit is
// cleared and the register is written back with TIOCMSET. RTS and the other
// lines keep their state. Running it again on a line that is already low is a
// no-op that still succeeds.
//
// # 1200 bps Touch
//
// Boards with a native USB bootloader (Leonardo, Micro, Zero) enter upload
// mode when the port is opened at 1200 baud and DTR is dropped:
//
//	_, err := dtrreset.ResetDTR("/dev/ttyACM0", dtrreset.WithTouchBaud())
//
// # USB Port Reset
//
// A hung USB serial adapter can be reset at the USB level:
//
//	err := dtrreset.ResetUSBDevice("/dev/ttyUSB0")        // resolved via sysfs
//	err = dtrreset.ResetUSBDevice("/dev/bus/usb/005/007") // usbfs node
//
// This needs write access to the usbfs node, usually root.
//
// # Error Handling
//
// Failures come back as *OpenError, *ConfigError or *ControlWriteError, all of
// which unwrap to the underlying errno:
//
//	_, err := dtrreset.ResetDTR(path)
//	if errors.Is(err, dtrreset.ErrPermissionDenied) {
//	    // add the user to the dialout group
//	}
//	var cw *dtrreset.ControlWriteError
//	if errors.As(err, &cw) {
//	    // the device opened but is not a tty
//	}
//
// # Platform Support
//
// Linux only. Everything goes through golang.org/x/sys/unix ioctls.
package dtrreset
