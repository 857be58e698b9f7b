package types

// SerialConfig describes the link to the keyboard. Defaults match the
// Kaypro's native settings: 300 baud, 8N1.
type SerialConfig struct {
	Device   string `yaml:"device"`    // tty device connected to the keyboard, e.g. /dev/ttyUSB0
	BaudRate int    `yaml:"baud_rate"` // line speed in bits per second
	Parity   string `yaml:"parity"`    // none, odd, even, mark or space
	DataBits int    `yaml:"data_bits"` // 5-9
	StopBits int    `yaml:"stop_bits"` // 1 or 2
}

type Config struct {
	Keymap       string       `yaml:"keymap"`         // kaypro, ascii, media_keys or custom
	Serial       SerialConfig `yaml:"serial"`
	DeviceName   string       `yaml:"device_name"`    // name of the registered virtual keyboard
	ExitOnEscape bool         `yaml:"exit_on_escape"` // stop the bridge when the keyboard sends ESC (0x1b)
}

// GetKeymap returns the configured keymap name with the default applied.
func (c *Config) GetKeymap() string {
	if c.Keymap == "" {
		return "kaypro"
	}
	return c.Keymap
}

// GetSerialConfig returns serial settings with defaults applied.
func (c *Config) GetSerialConfig() SerialConfig {
	serial := c.Serial
	if serial.BaudRate == 0 {
		serial.BaudRate = 300
	}
	if serial.Parity == "" {
		serial.Parity = "none"
	}
	if serial.DataBits == 0 {
		serial.DataBits = 8
	}
	if serial.StopBits == 0 {
		serial.StopBits = 1
	}
	return serial
}

// GetDeviceName returns the virtual keyboard name with the default applied.
func (c *Config) GetDeviceName() string {
	if c.DeviceName == "" {
		return "serkey keyboard"
	}
	return c.DeviceName
}
