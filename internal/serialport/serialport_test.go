package serialport

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial"

	"github.com/racerxr650r/serkey/internal/types"
)

func kayproLink() types.SerialConfig {
	return types.SerialConfig{
		Device:   "/dev/ttyUSB0",
		BaudRate: 300,
		Parity:   "none",
		DataBits: 8,
		StopBits: 1,
	}
}

func TestModeForDefaults(t *testing.T) {
	mode, err := modeFor(kayproLink())
	require.NoError(t, err)
	require.Equal(t, &serial.Mode{
		BaudRate: 300,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	}, mode)
}

func TestModeForParity(t *testing.T) {
	parities := map[string]serial.Parity{
		"none":  serial.NoParity,
		"odd":   serial.OddParity,
		"even":  serial.EvenParity,
		"mark":  serial.MarkParity,
		"space": serial.SpaceParity,
	}
	for name, want := range parities {
		cfg := kayproLink()
		cfg.Parity = name
		mode, err := modeFor(cfg)
		require.NoError(t, err)
		require.Equal(t, want, mode.Parity, name)
	}
}

func TestModeForTwoStopBits(t *testing.T) {
	cfg := kayproLink()
	cfg.StopBits = 2
	mode, err := modeFor(cfg)
	require.NoError(t, err)
	require.Equal(t, serial.TwoStopBits, mode.StopBits)
}

func TestModeForRejectsInvalidSettings(t *testing.T) {
	cfg := kayproLink()
	cfg.Parity = "sometimes"
	_, err := modeFor(cfg)
	require.Error(t, err)

	cfg = kayproLink()
	cfg.StopBits = 3
	_, err = modeFor(cfg)
	require.Error(t, err)

	cfg = kayproLink()
	cfg.DataBits = 4
	_, err = modeFor(cfg)
	require.Error(t, err)

	cfg = kayproLink()
	cfg.BaudRate = 0
	_, err = modeFor(cfg)
	require.Error(t, err)
}

func TestOpenRequiresDevice(t *testing.T) {
	cfg := kayproLink()
	cfg.Device = ""
	_, err := Open(cfg)
	require.Error(t, err)
}
