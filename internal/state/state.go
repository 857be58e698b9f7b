package state

import (
	"sync"

	"github.com/racerxr650r/serkey/internal/keymap"
	"github.com/racerxr650r/serkey/internal/types"
)

var (
	once     sync.Once
	instance *AppState
)

type AppState struct {
	Config *types.Config
	Keymap keymap.ID
}

func Init(cfg *types.Config, id keymap.ID) {
	once.Do(func() {
		instance = &AppState{
			Config: cfg,
			Keymap: id,
		}
	})
}

func Get() *AppState {
	if instance == nil {
		panic("AppState not initialized")
	}
	return instance
}

func (s *AppState) GetSerialDevice() string {
	return s.Config.GetSerialConfig().Device
}

func (s *AppState) GetKeymap() *keymap.Keymap {
	return keymap.Get(s.Keymap)
}
