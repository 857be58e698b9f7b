// Package emitter turns one received byte into the ordered sequence of key
// events its keymap entry calls for.
package emitter

import "github.com/racerxr650r/serkey/internal/keymap"

// Sink receives the synthesized key events. Each call must deliver one
// discrete input event, flushed so the consuming input subsystem sees it
// immediately.
type Sink interface {
	Press(code keymap.Code) error
	Release(code keymap.Code) error
}

// Emit translates a raw byte against a keymap and drives the sink.
//
// The table is indexed by the low 7 bits of the byte; bit 7 selects press or
// release for entries that do not synthesize their own make/break pair.
// Modifiers are asserted before and released after the main key, Control
// outermost. An unmapped byte produces no events.
//
// The first sink error is returned, but modifier releases are still attempted
// so a failed write cannot leave Control or Shift held down on the virtual
// device.
func Emit(sink Sink, m *keymap.Keymap, raw byte) error {
	entry := m.Lookup(raw & 0x7f)
	if entry.Code == keymap.KeyReserved {
		return nil
	}

	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	if entry.Control {
		keep(sink.Press(keymap.KeyLeftCtrl))
	}
	if entry.Shift {
		keep(sink.Press(keymap.KeyLeftShift))
	}

	if entry.MakeBreak {
		keep(sink.Press(entry.Code))
		keep(sink.Release(entry.Code))
	} else if raw&0x80 != 0 {
		keep(sink.Release(entry.Code))
	} else {
		keep(sink.Press(entry.Code))
	}

	if entry.Shift {
		keep(sink.Release(keymap.KeyLeftShift))
	}
	if entry.Control {
		keep(sink.Release(keymap.KeyLeftCtrl))
	}

	return firstErr
}
