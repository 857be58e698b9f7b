package notification

// Notifier defines the interface for system notifications
type Notifier interface {
	Notify(title, message string) error
}

// SilentNotifier is a no-op implementation for daemon mode
type SilentNotifier struct{}

func NewSilent() Notifier {
	return &SilentNotifier{}
}

func (s *SilentNotifier) Notify(title, message string) error { return nil }

// New creates a notifier for the current platform
func New() Notifier {
	return newLinuxNotifier()
}
