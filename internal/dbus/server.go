package dbus

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"

	"github.com/racerxr650r/serkey/internal/bridge"
	"github.com/racerxr650r/serkey/internal/logger"
	"github.com/racerxr650r/serkey/internal/state"
)

const (
	dbusServiceName = "com.racerxr650r.serkey"
	dbusObjectPath  = "/com/racerxr650r/serkey/Bridge"
	dbusInterface   = "com.racerxr650r.serkey.Bridge"
)

// Server exposes read-only bridge status over the session bus, so desktop
// tooling can see which keymap and device are active without touching the
// running daemon.
type Server struct {
	conn   *dbus.Conn
	bridge *bridge.Bridge
}

// NewServer creates a D-Bus server publishing the given bridge
func NewServer(b *bridge.Bridge) *Server {
	return &Server{bridge: b}
}

// Start claims the service name and exports the status object
func (s *Server) Start() error {
	var err error
	s.conn, err = dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	reply, err := s.conn.RequestName(dbusServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		s.conn.Close()
		return fmt.Errorf("name already taken")
	}

	if err := s.conn.Export(s, dbusObjectPath, dbusInterface); err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to export object: %w", err)
	}

	node := &introspect.Node{
		Name: dbusObjectPath,
		Interfaces: []introspect.Interface{{
			Name: dbusInterface,
			Methods: []introspect.Method{
				{
					Name: "GetStatus",
					Args: []introspect.Arg{
						{Name: "keymap", Type: "s", Direction: "out"},
						{Name: "device", Type: "s", Direction: "out"},
						{Name: "bytes_translated", Type: "t", Direction: "out"},
					},
				},
			},
		}},
	}

	if err := s.conn.Export(introspect.NewIntrospectable(node), dbusObjectPath, "org.freedesktop.DBus.Introspectable"); err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to export introspectable: %w", err)
	}

	logger.Infof("🔌 D-Bus service started: %s", dbusServiceName)
	return nil
}

// Stop releases the bus connection
func (s *Server) Stop() {
	if s.conn != nil {
		s.conn.Close()
	}
	logger.Info("🔌 D-Bus service stopped")
}

// GetStatus returns the active keymap, serial device and byte count (D-Bus method)
func (s *Server) GetStatus() (string, string, uint64, *dbus.Error) {
	appState := state.Get()
	return appState.Keymap.String(), appState.GetSerialDevice(), s.bridge.BytesTranslated(), nil
}
