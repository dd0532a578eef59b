package dtrreset

import (
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// LineStatus is the modem-control register as reported by TIOCMGET
type LineStatus int

// Modem-control bits
const (
	LineLE  LineStatus = unix.TIOCM_LE
	LineDTR LineStatus = unix.TIOCM_DTR
	LineRTS LineStatus = unix.TIOCM_RTS
	LineST  LineStatus = unix.TIOCM_ST
	LineSR  LineStatus = unix.TIOCM_SR
	LineCTS LineStatus = unix.TIOCM_CTS
	LineCAR LineStatus = unix.TIOCM_CAR // DCD
	LineRNG LineStatus = unix.TIOCM_RNG // RI
	LineDSR LineStatus = unix.TIOCM_DSR
)

var lineNames = []struct {
	bit  LineStatus
	name string
}{
	{LineLE, "LE"},
	{LineDTR, "DTR"},
	{LineRTS, "RTS"},
	{LineST, "ST"},
	{LineSR, "SR"},
	{LineCTS, "CTS"},
	{LineCAR, "DCD"},
	{LineRNG, "RI"},
	{LineDSR, "DSR"},
}

// ModemSignals represents modem control signal states
type ModemSignals struct {
	CTS bool // Clear To Send
	DSR bool // Data Set Ready
	RI  bool // Ring Indicator
	DCD bool // Data Carrier Detect
	RTS bool // Request To Send
	DTR bool // Data Terminal Ready
}

// Has reports whether all of bits are set
func (s LineStatus) Has(bits LineStatus) bool {
	return s&bits == bits
}

// Clear returns s with bits cleared. Other bits are left as they were.
func (s LineStatus) Clear(bits LineStatus) LineStatus {
	return s &^ bits
}

// Set returns s with bits set
func (s LineStatus) Set(bits LineStatus) LineStatus {
	return s | bits
}

// Signals decodes the register
func (s LineStatus) Signals() ModemSignals {
	return ModemSignals{
		CTS: s.Has(LineCTS),
		DSR: s.Has(LineDSR),
		RI:  s.Has(LineRNG),
		DCD: s.Has(LineCAR),
		RTS: s.Has(LineRTS),
		DTR: s.Has(LineDTR),
	}
}

func (s LineStatus) String() string {
	var names []string
	for _, l := range lineNames {
		if s.Has(l.bit) {
			names = append(names, l.name)
		}
	}
	return fmt.Sprintf("%#04x [%s]", int(s), strings.Join(names, " "))
}
