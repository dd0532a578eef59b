package dtrreset

import (
	"strings"
	"testing"

	"golang.org/x/sys/unix"
)

func TestLineStatusClear(t *testing.T) {
	tests := []struct {
		name     string
		status   LineStatus
		expected LineStatus
	}{
		{
			name:     "DTR only",
			status:   LineDTR,
			expected: 0,
		},
		{
			name:     "DTR and RTS",
			status:   LineDTR | LineRTS,
			expected: LineRTS,
		},
		{
			name:     "everything set",
			status:   LineLE | LineDTR | LineRTS | LineST | LineSR | LineCTS | LineCAR | LineRNG | LineDSR,
			expected: LineLE | LineRTS | LineST | LineSR | LineCTS | LineCAR | LineRNG | LineDSR,
		},
		{
			name:     "DTR already clear",
			status:   LineRTS | LineCTS,
			expected: LineRTS | LineCTS,
		},
		{
			name:     "empty register",
			status:   0,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.status.Clear(LineDTR)
			if got != tt.expected {
				t.Errorf("%v.Clear(DTR) = %v, want %v", tt.status, got, tt.expected)
			}
			if got.Has(LineDTR) {
				t.Errorf("DTR still set in %v", got)
			}
			if again := got.Clear(LineDTR); again != got {
				t.Errorf("second Clear changed register: %v -> %v", got, again)
			}
		})
	}
}

func TestLineStatusBitsMatchKernel(t *testing.T) {
	tests := []struct {
		name string
		bit  LineStatus
		want int
	}{
		{"DTR", LineDTR, unix.TIOCM_DTR},
		{"RTS", LineRTS, unix.TIOCM_RTS},
		{"CTS", LineCTS, unix.TIOCM_CTS},
		{"DCD", LineCAR, unix.TIOCM_CAR},
		{"RI", LineRNG, unix.TIOCM_RNG},
		{"DSR", LineDSR, unix.TIOCM_DSR},
	}

	for _, tt := range tests {
		if int(tt.bit) != tt.want {
			t.Errorf("%s = %#x, want %#x", tt.name, int(tt.bit), tt.want)
		}
	}
}

func TestLineStatusSignals(t *testing.T) {
	status := LineDTR | LineCTS | LineCAR
	signals := status.Signals()

	expected := ModemSignals{CTS: true, DCD: true, DTR: true}
	if signals != expected {
		t.Errorf("Signals() = %+v, want %+v", signals, expected)
	}

	signals = status.Clear(LineDTR).Set(LineRTS | LineRNG | LineDSR).Signals()
	expected = ModemSignals{CTS: true, DSR: true, RI: true, DCD: true, RTS: true}
	if signals != expected {
		t.Errorf("Signals() = %+v, want %+v", signals, expected)
	}
}

func TestLineStatusString(t *testing.T) {
	s := (LineDTR | LineRTS).String()
	if !strings.Contains(s, "DTR") || !strings.Contains(s, "RTS") {
		t.Errorf("String() = %q, expected DTR and RTS", s)
	}
	if strings.Contains(s, "CTS") {
		t.Errorf("String() = %q, did not expect CTS", s)
	}
	if !strings.HasPrefix(s, "0x") {
		t.Errorf("String() = %q, expected hex prefix", s)
	}
}
