/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/allbin/dtrreset"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// signalsCmd represents the signals command
var signalsCmd = &cobra.Command{
	Use:   "signals <port>",
	Short: "Display current modem signal states",
	Long: `Display the current state of all modem control signals.

Shows the state of CTS, DSR, RI, DCD, RTS, and DTR signals for the specified
port, plus the raw modem-control register. Run it after dtrreset to confirm
that DTR dropped and the other lines kept their state.

Examples:
  dtrreset signals /dev/ttyUSB0
  dtrreset signals /dev/ttyACM0`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		portPath := args[0]

		port, err := dtrreset.Open(portPath)
		if err != nil {
			return err
		}
		defer port.Close()

		status, err := port.LineStatus()
		if err != nil {
			return fmt.Errorf("failed to read modem signals: %w", err)
		}

		renderSignals(cmd.OutOrStdout(), portPath, status)
		return nil
	},
}

var signalHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("99")).
	Border(lipgloss.NormalBorder(), false, false, true, false).
	BorderForeground(lipgloss.Color("240"))

var (
	signalHighStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	signalLowStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func renderSignals(w io.Writer, portPath string, status dtrreset.LineStatus) {
	signals := status.Signals()
	rows := []struct {
		name  string
		state bool
	}{
		{"CTS (Clear To Send)", signals.CTS},
		{"DSR (Data Set Ready)", signals.DSR},
		{"RI  (Ring Indicator)", signals.RI},
		{"DCD (Data Carrier Detect)", signals.DCD},
		{"RTS (Request To Send)", signals.RTS},
		{"DTR (Data Terminal Ready)", signals.DTR},
	}

	var b strings.Builder
	fmt.Fprintln(&b, signalHeaderStyle.Render(fmt.Sprintf("Modem Signals for %s", portPath)))
	for _, r := range rows {
		fmt.Fprintf(&b, "  %-26s %s\n", r.name+":", formatSignalState(r.state))
	}
	fmt.Fprintf(&b, "\n  Register: %v\n", status)
	fmt.Fprint(w, b.String())
}

func formatSignalState(state bool) string {
	if state {
		return signalHighStyle.Render("HIGH")
	}
	return signalLowStyle.Render("LOW")
}

func init() {
	rootCmd.AddCommand(signalsCmd)
}
