package dtrreset

// openPort is swapped out in tests
var openPort = Open

// Result describes a completed DTR reset
type Result struct {
	Path   string
	Before LineStatus
	After  LineStatus

	// QueryErr is set when TIOCMGET failed. The register is then assumed
	// to be 0 and the write goes ahead anyway.
	QueryErr error
}

// ResetDTR drops the DTR line of the device at path.
//
// The modem-control register is read, the DTR bit is cleared in memory and
// the register is written back, so every other line keeps its state. The
// device is closed before ResetDTR returns, on success and on failure.
//
// Errors:
//   - *OpenError if the device could not be opened
//   - *ConfigError if the baud rate or exclusive mode could not be applied
//   - *ControlWriteError if TIOCMSET failed
func ResetDTR(path string, opts ...Option) (*Result, error) {
	config, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}
	log := config.Logger

	p, err := openPort(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := p.Close(); cerr != nil {
			log.Debugw("close failed", "path", path, "error", cerr)
		}
	}()
	log.Debugw("opened device", "path", path)

	if config.Exclusive {
		if err := p.SetExclusive(); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
	}
	if config.BaudRate != 0 {
		if err := p.SetBaudRate(config.BaudRate); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
		log.Debugw("set line speed", "path", path, "baud", config.BaudRate)
	}

	result := &Result{Path: path}

	status, err := p.LineStatus()
	if err != nil {
		log.Warnw("could not read line status, assuming all lines low", "path", path, "error", err)
		result.QueryErr = err
	}
	result.Before = status
	result.After = status.Clear(LineDTR)

	if err := p.SetLineStatus(result.After); err != nil {
		return nil, &ControlWriteError{Op: "TIOCMSET", Path: path, Err: err}
	}
	log.Debugw("wrote line status", "path", path, "before", result.Before, "after", result.After)

	return result, nil
}
