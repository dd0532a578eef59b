/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/allbin/dtrreset"
	"github.com/spf13/cobra"
)

// usbCmd represents the usb command
var usbCmd = &cobra.Command{
	Use:   "usb <port|usbfs-node>",
	Short: "Reset the USB device behind a serial port",
	Long: `Perform a USB port reset (USBDEVFS_RESET) on a serial device. This can
recover adapters that are hung or unresponsive without unplugging them.

The argument is either a USB serial tty, whose bus and device numbers are
looked up in sysfs, or a usbfs node under /dev/bus/usb.

The device will re-enumerate after reset, which may cause the port path
to change (e.g., /dev/ttyUSB0 might become /dev/ttyUSB1).

Requires write access to the usbfs node, typically root.

Examples:
  sudo dtrreset usb /dev/ttyUSB0
  sudo dtrreset usb /dev/bus/usb/005/007`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		target := args[0]

		log := newLogger()
		defer log.Sync()

		log.Debugw("resetting USB device", "path", target)
		if err := dtrreset.ResetUSBDevice(target); err != nil {
			if errors.Is(err, dtrreset.ErrNotUSBDevice) || errors.Is(err, dtrreset.ErrUSBInfoNotAvailable) {
				return fmt.Errorf("%s does not appear to be a USB device: %w", target, err)
			}
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), "USB device reset successfully")
		fmt.Fprintln(cmd.OutOrStdout(), "Device will re-enumerate (port path may change)")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(usbCmd)
}
