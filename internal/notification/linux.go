package notification

import (
	"os/exec"
	"sync"

	"github.com/racerxr650r/serkey/internal/logger"
)

var (
	instance Notifier
	once     sync.Once
)

type linuxNotifier struct{}

func newLinuxNotifier() Notifier {
	once.Do(func() {
		logger.Debug("Initializing Linux notifier")
		instance = &linuxNotifier{}
	})
	return instance
}

func (n *linuxNotifier) Notify(title, message string) error {
	logger.Debugf("Sending notification: %s - %s", title, message)
	go func() {
		if err := exec.Command("notify-send", title, message).Run(); err != nil {
			logger.Errorf("Failed to send notification: %v", err)
		}
	}()
	return nil
}
