// Package serialport owns the link to the keyboard: it opens and configures
// the tty and hands the bridge one byte per keystroke.
package serialport

import (
	"bufio"
	"fmt"

	"github.com/racerxr650r/serkey/internal/logger"
	"github.com/racerxr650r/serkey/internal/types"
	"go.bug.st/serial"
)

// Port is a configured serial connection to the keyboard.
type Port struct {
	port   serial.Port
	reader *bufio.Reader
}

// Open configures and opens the serial device described by cfg. Invalid link
// parameters are rejected here, before any byte is read.
func Open(cfg types.SerialConfig) (*Port, error) {
	if cfg.Device == "" {
		return nil, fmt.Errorf("no serial device provided")
	}

	mode, err := modeFor(cfg)
	if err != nil {
		return nil, err
	}

	port, err := serial.Open(cfg.Device, mode)
	if err != nil {
		return nil, fmt.Errorf("failed to open serial device %s: %w", cfg.Device, err)
	}

	logger.Debugf("Opened %s at %d baud (%s parity, %d data bits, %d stop bits)",
		cfg.Device, cfg.BaudRate, cfg.Parity, cfg.DataBits, cfg.StopBits)

	return &Port{
		port:   port,
		reader: bufio.NewReader(port),
	}, nil
}

// ReadByte blocks until the keyboard transmits the next byte. io.EOF signals
// end of stream.
func (p *Port) ReadByte() (byte, error) {
	return p.reader.ReadByte()
}

func (p *Port) Close() error {
	return p.port.Close()
}

func modeFor(cfg types.SerialConfig) (*serial.Mode, error) {
	mode := &serial.Mode{
		BaudRate: cfg.BaudRate,
		DataBits: cfg.DataBits,
	}

	if cfg.BaudRate <= 0 {
		return nil, fmt.Errorf("invalid baud rate %d", cfg.BaudRate)
	}
	if cfg.DataBits < 5 || cfg.DataBits > 9 {
		return nil, fmt.Errorf("invalid data bits %d (expected 5-9)", cfg.DataBits)
	}

	switch cfg.Parity {
	case "none":
		mode.Parity = serial.NoParity
	case "odd":
		mode.Parity = serial.OddParity
	case "even":
		mode.Parity = serial.EvenParity
	case "mark":
		mode.Parity = serial.MarkParity
	case "space":
		mode.Parity = serial.SpaceParity
	default:
		return nil, fmt.Errorf("invalid parity %q (expected none, odd, even, mark or space)", cfg.Parity)
	}

	switch cfg.StopBits {
	case 1:
		mode.StopBits = serial.OneStopBit
	case 2:
		mode.StopBits = serial.TwoStopBits
	default:
		return nil, fmt.Errorf("invalid stop bits %d (expected 1 or 2)", cfg.StopBits)
	}

	return mode, nil
}
