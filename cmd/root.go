/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/allbin/dtrreset"
	"github.com/allbin/dtrreset/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "dtrreset <device>",
	Short: "Reset a microcontroller by dropping the DTR line of its serial port",
	Long: `Clear the DTR (Data Terminal Ready) line of a serial device.

Arduino-style boards reset, or enter their bootloader, when DTR drops. The
modem-control register is read, the DTR bit is cleared and the register is
written back, so RTS and the other lines are left alone.

Examples:
  dtrreset /dev/ttyUSB0
  dtrreset --touch /dev/ttyACM0      # 1200 bps touch for native USB boards
  dtrreset --verbose /dev/ttyACM0

Flags can also be set through DTRRESET_<FLAG> environment variables or a
config file passed with --config.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Argument errors above still print usage, device errors do not.
		cmd.SilenceUsage = true

		portPath := args[0]
		log := newLogger()
		defer log.Sync()

		opts, err := resetOptions(log)
		if err != nil {
			return err
		}

		result, err := dtrreset.ResetDTR(portPath, opts...)
		if err != nil {
			return err
		}

		if viper.GetBool("verbose") {
			fmt.Fprintf(cmd.OutOrStdout(), "DTR cleared on %s (%v -> %v)\n", portPath, result.Before, result.After)
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func resetOptions(log *zap.SugaredLogger) ([]dtrreset.Option, error) {
	opts := []dtrreset.Option{dtrreset.WithLogger(log)}

	baud := viper.GetInt("baud")
	if viper.GetBool("touch") {
		if baud != 0 && baud != dtrreset.TouchBaudRate {
			return nil, fmt.Errorf("--touch conflicts with --baud %d", baud)
		}
		baud = dtrreset.TouchBaudRate
	}
	if baud != 0 {
		opts = append(opts, dtrreset.WithBaudRate(baud))
	}
	if viper.GetBool("exclusive") {
		opts = append(opts, dtrreset.WithExclusive())
	}
	return opts, nil
}

func newLogger() *zap.SugaredLogger {
	return logger.NewStderr(viper.GetString("log-level"))
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("log-level", logger.DefaultLevel, "diagnostic log level (debug, info, warn, error)")

	rootCmd.Flags().Int("baud", 0, "set the line speed before dropping DTR (0 = leave unchanged)")
	rootCmd.Flags().Bool("touch", false, "open at 1200 baud before dropping DTR (Arduino bootloader touch)")
	rootCmd.Flags().Bool("exclusive", false, "put the tty in exclusive mode (TIOCEXCL) while resetting")
	rootCmd.Flags().BoolP("verbose", "v", false, "print the line status before and after")

	_ = viper.BindPFlags(rootCmd.PersistentFlags())
	_ = viper.BindPFlags(rootCmd.Flags())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("DTRRESET")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if cfgFile == "" {
		return
	}
	viper.SetConfigFile(cfgFile)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading config %s: %v\n", cfgFile, err)
		os.Exit(1)
	}
}
