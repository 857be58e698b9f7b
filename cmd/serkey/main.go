package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/racerxr650r/serkey/internal/bridge"
	"github.com/racerxr650r/serkey/internal/config"
	dbusserver "github.com/racerxr650r/serkey/internal/dbus"
	"github.com/racerxr650r/serkey/internal/fileops"
	"github.com/racerxr650r/serkey/internal/keymap"
	"github.com/racerxr650r/serkey/internal/logger"
	"github.com/racerxr650r/serkey/internal/notification"
	"github.com/racerxr650r/serkey/internal/serialport"
	"github.com/racerxr650r/serkey/internal/state"
	"github.com/racerxr650r/serkey/internal/uinput"
)

func init() {
	// Set custom usage message to show -- prefix
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage of %s:\n", os.Args[0])
		flag.VisitAll(func(f *flag.Flag) {
			fmt.Fprintf(out, "  --%s", f.Name)
			name, usage := flag.UnquoteUsage(f)
			if len(name) > 0 {
				fmt.Fprintf(out, " %s", name)
			}
			fmt.Fprintf(out, "\n    \t%s", usage)
			if f.DefValue != "" && f.DefValue != "false" {
				fmt.Fprintf(out, " (default %q)", f.DefValue)
			}
			fmt.Fprintf(out, "\n")
		})
	}
}

func main() {
	runWizard := flag.Bool("wizard", false, "Run the configuration wizard")
	logLevel := flag.String("log-level", "info", "Set log level (debug|info|warn|error)")
	logFilename := flag.String("log-filename", "", "Log to file instead of stdout")
	device := flag.String("device", "", "Serial device connected to the keyboard (overrides config)")
	keymapName := flag.String("keymap", "", "Active keymap: kaypro|ascii|media_keys|custom (overrides config)")

	flag.Parse()

	logger.SetLevel(*logLevel)
	if *logFilename != "" {
		if err := logger.SetOutputFile(*logFilename); err != nil {
			fmt.Printf("Error setting log file: %v\n", err)
			os.Exit(1)
		}
		defer logger.CloseLogFile()
	}

	if *runWizard {
		if err := config.RunWizard(); err != nil {
			logger.Error("Error running wizard", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Error loading config", err)
		os.Exit(1)
	}

	if cfg == nil {
		logger.Info("No configuration found. Running setup wizard...")
		if err := config.RunWizard(); err != nil {
			logger.Error("Error running wizard", err)
			os.Exit(1)
		}
		cfg, err = config.LoadConfig()
		if err != nil || cfg == nil {
			logger.Error("Error loading config after wizard", err)
			os.Exit(1)
		}
	}

	// Apply command line overrides
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if *keymapName != "" {
		cfg.Keymap = *keymapName
	}

	// Validate the keymap selection before any byte is processed
	keymapID, err := keymap.ParseID(cfg.GetKeymap())
	if err != nil {
		logger.Error("Invalid keymap selection", err)
		os.Exit(1)
	}
	if err := keymap.Validate(); err != nil {
		logger.Error("Keymap tables failed consistency check", err)
		os.Exit(1)
	}

	// Initialize global state with the entire config
	state.Init(cfg, keymapID)

	fileOps, err := fileops.NewDefaultFileOps()
	if err != nil {
		logger.Error("Failed to initialize file operations", err)
		os.Exit(1)
	}

	if err := fileOps.EnsureDirectories(); err != nil {
		logger.Error("Failed to create necessary directories", err)
		os.Exit(1)
	}

	// Check if another instance is running
	if err := fileOps.CheckPID(); err != nil {
		if errors.Is(err, fileops.ErrProcessAlreadyRunning) {
			logger.Error("Another instance of serkey is already running", err)
			os.Exit(1)
		}
	}

	if err := fileOps.SavePID(); err != nil {
		logger.Error("Failed to save PID file", err)
		os.Exit(1)
	}
	defer fileOps.HandleExit()

	serialCfg := cfg.GetSerialConfig()

	port, err := serialport.Open(serialCfg)
	if err != nil {
		logger.Error("Failed to open serial device", err)
		os.Exit(1)
	}
	defer port.Close()

	keyboard, err := uinput.Open(cfg.GetDeviceName(), keymap.RegisteredCodes())
	if err != nil {
		logger.Error("Failed to register virtual keyboard", err)
		os.Exit(1)
	}
	defer keyboard.Close()

	br := bridge.New(port, keyboard, keymap.Get(keymapID), cfg.ExitOnEscape)

	dbusServer := dbusserver.NewServer(br)
	if err := dbusServer.Start(); err != nil {
		logger.Warnf("D-Bus status service unavailable: %v", err)
	} else {
		defer dbusServer.Stop()
	}

	notifier := notification.New()
	if err := notifier.Notify("⌨️ serkey started", fmt.Sprintf("%s keymap on %s", keymapID, serialCfg.Device)); err != nil {
		logger.Warn("Could not send notification")
	}

	logger.Infof("Bridging %s to virtual keyboard %q (%s keymap)", serialCfg.Device, cfg.GetDeviceName(), keymapID)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		logger.Infof("Received signal %v, shutting down...", sig)
		cancel()
		// Unblock the pending serial read
		port.Close()
	}()

	if err := br.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Bridge stopped", err)
		port.Close()
		keyboard.Close()
		fileOps.HandleExit()
		os.Exit(1)
	}
}
