package dtrreset

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// usbdevfsReset is USBDEVFS_RESET, _IO('U', 20) from linux/usbdevice_fs.h
const usbdevfsReset = 0x5514

// Overridden in tests
var (
	sysfsRoot = "/sys"
	usbfsRoot = "/dev/bus/usb"
)

// USBDevice identifies a device on the USB bus
type USBDevice struct {
	Bus    int
	Device int
}

// Path returns the usbfs node for the device, e.g. /dev/bus/usb/005/007
func (d USBDevice) Path() string {
	return filepath.Join(usbfsRoot, fmt.Sprintf("%03d", d.Bus), fmt.Sprintf("%03d", d.Device))
}

// ResolveUSBDevice finds the USB device a tty belongs to by walking its sysfs
// device link up to the directory holding busnum and devnum.
func ResolveUSBDevice(ttyPath string) (USBDevice, error) {
	name := filepath.Base(ttyPath)
	link := filepath.Join(sysfsRoot, "class", "tty", name, "device")

	dir, err := filepath.EvalSymlinks(link)
	if err != nil {
		return USBDevice{}, ErrUSBInfoNotAvailable
	}

	root := filepath.Clean(sysfsRoot)
	for dir != root && dir != "/" && dir != "." {
		busnum := readSysfsFile(filepath.Join(dir, "busnum"))
		devnum := readSysfsFile(filepath.Join(dir, "devnum"))
		if busnum != "" && devnum != "" {
			bus, err := strconv.Atoi(busnum)
			if err != nil {
				return USBDevice{}, fmt.Errorf("bad busnum %q: %w", busnum, ErrUSBInfoNotAvailable)
			}
			dev, err := strconv.Atoi(devnum)
			if err != nil {
				return USBDevice{}, fmt.Errorf("bad devnum %q: %w", devnum, ErrUSBInfoNotAvailable)
			}
			return USBDevice{Bus: bus, Device: dev}, nil
		}
		dir = filepath.Dir(dir)
	}

	return USBDevice{}, ErrNotUSBDevice
}

// ResetUSBDevice performs a USB port reset with USBDEVFS_RESET.
//
// path is either a usbfs node (/dev/bus/usb/BBB/DDD) or a USB serial tty,
// in which case the owning device is looked up in sysfs first. The device
// re-enumerates afterwards and its tty name may change.
func ResetUSBDevice(path string) error {
	node := path
	if !isUSBFSNode(path) {
		dev, err := ResolveUSBDevice(path)
		if err != nil {
			return err
		}
		node = dev.Path()
	}

	fd, err := unix.Open(node, unix.O_RDWR, 0)
	if err != nil {
		return &OpenError{Path: node, Err: err}
	}
	defer unix.Close(fd)

	if err := unix.IoctlSetInt(fd, usbdevfsReset, 0); err != nil {
		return &ControlWriteError{Op: "USBDEVFS_RESET", Path: node, Err: err}
	}
	return nil
}

func isUSBFSNode(path string) bool {
	root := filepath.Clean(usbfsRoot) + string(filepath.Separator)
	return strings.HasPrefix(filepath.Clean(path), root)
}

// readSysfsFile returns the trimmed contents of a sysfs attribute, or "" if
// it cannot be read
func readSysfsFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
