package config

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/racerxr650r/serkey/internal/keymap"
	"github.com/racerxr650r/serkey/internal/types"
)

// RunWizard walks the user through the serial link and keymap setup and
// saves the resulting configuration.
func RunWizard() error {
	bold := color.New(color.Bold)
	cyan := color.New(color.FgCyan)
	green := color.New(color.FgGreen)

	bold.Println("\n⌨️  Welcome to serkey Configuration Wizard!")
	fmt.Println("\nThis wizard will help you set up your serial keyboard.")

	reader := bufio.NewReader(os.Stdin)
	cfg := &types.Config{}

	cyan.Println("\nWhich keymap should be active?")
	for i, id := range keymap.IDs() {
		fmt.Printf("  %d) %s\n", i+1, id)
	}
	choice, err := promptInt(reader, "Keymap [1]: ", 1, 1, len(keymap.IDs()))
	if err != nil {
		return err
	}
	cfg.Keymap = keymap.IDs()[choice-1].String()

	cyan.Println("\nSerial link to the keyboard")
	device, err := prompt(reader, "Serial device (e.g. /dev/ttyUSB0): ", "")
	if err != nil {
		return err
	}
	if device == "" {
		return fmt.Errorf("no serial device provided")
	}
	cfg.Serial.Device = device

	cfg.Serial.BaudRate, err = promptInt(reader, "Baud rate [300]: ", 300, 50, 1000000)
	if err != nil {
		return err
	}

	parity, err := prompt(reader, "Parity (none/odd/even/mark/space) [none]: ", "none")
	if err != nil {
		return err
	}
	switch parity {
	case "none", "odd", "even", "mark", "space":
		cfg.Serial.Parity = parity
	default:
		return fmt.Errorf("invalid parity %q", parity)
	}

	cfg.Serial.DataBits, err = promptInt(reader, "Data bits (5-9) [8]: ", 8, 5, 9)
	if err != nil {
		return err
	}

	cfg.Serial.StopBits, err = promptInt(reader, "Stop bits (1-2) [1]: ", 1, 1, 2)
	if err != nil {
		return err
	}

	if err := SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	green.Println("\n✅ Configuration saved!")
	fmt.Printf("Keymap: %s, device: %s, %d baud %s %d-%d\n",
		cfg.Keymap, cfg.Serial.Device, cfg.Serial.BaudRate,
		cfg.Serial.Parity, cfg.Serial.DataBits, cfg.Serial.StopBits)

	return nil
}

func prompt(reader *bufio.Reader, label, def string) (string, error) {
	fmt.Print(label)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func promptInt(reader *bufio.Reader, label string, def, min, max int) (int, error) {
	answer, err := prompt(reader, label, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(answer)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", answer)
	}
	if n < min || n > max {
		return 0, fmt.Errorf("value %d out of range (%d-%d)", n, min, max)
	}
	return n, nil
}
