package dtrreset

import (
	"sync"

	"golang.org/x/sys/unix"
)

// Port is an open serial device handle
type Port interface {
	Close() error

	// Modem-control register access
	LineStatus() (LineStatus, error)
	SetLineStatus(status LineStatus) error
	GetModemSignals() (ModemSignals, error)

	// Line setup applied before the register is touched
	SetBaudRate(rate int) error
	SetExclusive() error
}

// port is the concrete implementation of the Port interface
type port struct {
	mu     sync.RWMutex
	fd     int
	path   string
	closed bool
}

// Ensure port implements Port interface at compile time
var _ Port = (*port)(nil)

var baudRates = map[int]uint32{
	50:      unix.B50,
	75:      unix.B75,
	110:     unix.B110,
	134:     unix.B134,
	150:     unix.B150,
	200:     unix.B200,
	300:     unix.B300,
	600:     unix.B600,
	1200:    unix.B1200,
	1800:    unix.B1800,
	2400:    unix.B2400,
	4800:    unix.B4800,
	9600:    unix.B9600,
	19200:   unix.B19200,
	38400:   unix.B38400,
	57600:   unix.B57600,
	115200:  unix.B115200,
	230400:  unix.B230400,
	460800:  unix.B460800,
	500000:  unix.B500000,
	576000:  unix.B576000,
	921600:  unix.B921600,
	1000000: unix.B1000000,
	1152000: unix.B1152000,
	1500000: unix.B1500000,
	2000000: unix.B2000000,
	2500000: unix.B2500000,
	3000000: unix.B3000000,
	3500000: unix.B3500000,
	4000000: unix.B4000000,
}

// getBaudRate converts an integer baud rate to the unix constant
func getBaudRate(rate int) (uint32, error) {
	speed, ok := baudRates[rate]
	if !ok {
		return 0, ErrInvalidBaudRate
	}
	return speed, nil
}

// Open opens the device read-write without making it the controlling tty.
// The line discipline is left as it is.
func Open(device string) (Port, error) {
	fd, err := unix.Open(device, unix.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		return nil, &OpenError{Path: device, Err: err}
	}

	return &port{
		fd:   fd,
		path: device,
	}, nil
}

// Close closes the serial port
func (p *port) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	err := unix.Close(p.fd)
	p.closed = true
	return err
}

// LineStatus reads the modem-control register. On failure the returned
// status is 0, which is what the kernel left in the out parameter.
func (p *port) LineStatus() (LineStatus, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return 0, ErrPortClosed
	}

	status, err := unix.IoctlGetInt(p.fd, unix.TIOCMGET)
	if err != nil {
		return 0, err
	}
	return LineStatus(status), nil
}

// SetLineStatus writes the whole modem-control register with TIOCMSET
func (p *port) SetLineStatus(status LineStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	return unix.IoctlSetPointerInt(p.fd, unix.TIOCMSET, int(status))
}

// GetModemSignals returns current state of all modem control signals
func (p *port) GetModemSignals() (ModemSignals, error) {
	status, err := p.LineStatus()
	if err != nil {
		return ModemSignals{}, err
	}
	return status.Signals(), nil
}

// SetBaudRate changes only the line speed, other termios flags are kept
func (p *port) SetBaudRate(rate int) error {
	speed, err := getBaudRate(rate)
	if err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	termios, err := unix.IoctlGetTermios(p.fd, unix.TCGETS)
	if err != nil {
		return err
	}

	termios.Cflag = (termios.Cflag &^ unix.CBAUD) | speed
	termios.Ispeed = speed
	termios.Ospeed = speed

	return unix.IoctlSetTermios(p.fd, unix.TCSETS, termios)
}

// SetExclusive sets TIOCEXCL; further opens by non-root users fail with EBUSY
func (p *port) SetExclusive() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return ErrPortClosed
	}

	return unix.IoctlSetInt(p.fd, unix.TIOCEXCL, 0)
}
