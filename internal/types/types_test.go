package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigDefaults(t *testing.T) {
	cfg := &Config{}

	require.Equal(t, "kaypro", cfg.GetKeymap())
	require.Equal(t, "serkey keyboard", cfg.GetDeviceName())

	serial := cfg.GetSerialConfig()
	require.Equal(t, 300, serial.BaudRate)
	require.Equal(t, "none", serial.Parity)
	require.Equal(t, 8, serial.DataBits)
	require.Equal(t, 1, serial.StopBits)
	require.False(t, cfg.ExitOnEscape)
}

func TestConfigExplicitValuesKept(t *testing.T) {
	cfg := &Config{
		Keymap: "media_keys",
		Serial: SerialConfig{
			Device:   "/dev/ttyACM0",
			BaudRate: 9600,
			Parity:   "even",
			DataBits: 7,
			StopBits: 2,
		},
	}

	require.Equal(t, "media_keys", cfg.GetKeymap())
	serial := cfg.GetSerialConfig()
	require.Equal(t, "/dev/ttyACM0", serial.Device)
	require.Equal(t, 9600, serial.BaudRate)
	require.Equal(t, "even", serial.Parity)
	require.Equal(t, 7, serial.DataBits)
	require.Equal(t, 2, serial.StopBits)
}
