package dtrreset

import "go.uber.org/zap"

// TouchBaudRate is the line speed Arduino CDC bootloaders watch for.
const TouchBaudRate = 1200

// Config holds the configuration for a reset
type Config struct {
	BaudRate  int  // 0 leaves the current line speed untouched
	Exclusive bool // request TIOCEXCL after open
	Logger    *zap.SugaredLogger
}

// Option is a functional option for configuring a reset
type Option func(*Config) error

// DefaultConfig returns a configuration that only touches the DTR line
func DefaultConfig() Config {
	return Config{
		BaudRate:  0,
		Exclusive: false,
		Logger:    zap.NewNop().Sugar(),
	}
}

// WithBaudRate sets the line speed applied before DTR is dropped.
// A rate of 0 keeps whatever speed the device is currently at.
func WithBaudRate(rate int) Option {
	return func(c *Config) error {
		if rate == 0 {
			c.BaudRate = 0
			return nil
		}
		if _, err := getBaudRate(rate); err != nil {
			return err
		}
		c.BaudRate = rate
		return nil
	}
}

// WithTouchBaud selects the 1200 bps touch
func WithTouchBaud() Option {
	return WithBaudRate(TouchBaudRate)
}

// WithExclusive puts the tty in exclusive mode for the duration of the reset
func WithExclusive() Option {
	return func(c *Config) error {
		c.Exclusive = true
		return nil
	}
}

// WithLogger routes step-by-step diagnostics to l
func WithLogger(l *zap.SugaredLogger) Option {
	return func(c *Config) error {
		if l == nil {
			return ErrInvalidConfig
		}
		c.Logger = l
		return nil
	}
}

func applyOptions(opts []Option) (Config, error) {
	config := DefaultConfig()
	for _, opt := range opts {
		if opt == nil {
			return config, ErrInvalidConfig
		}
		if err := opt(&config); err != nil {
			return config, err
		}
	}
	return config, nil
}
