// Package keymap holds the compiled-in translation tables that turn raw bytes
// received from a serial keyboard into Linux input key actions.
package keymap

import "fmt"

// Code is a Linux input keycode (the KEY_* value space). KeyReserved marks an
// entry with no mapping.
type Code uint16

// Entry is one row of a keymap: the key to report, the modifiers that must
// wrap it, and whether the byte synthesizes a full press+release pair or a
// single event whose direction comes from bit 7 of the received byte.
// The zero value is inert.
type Entry struct {
	Code      Code
	Control   bool
	Shift     bool
	MakeBreak bool
}

// Keymap translates every byte value 0-255 to an Entry. Unpopulated slots are
// the zero Entry, so a lookup never fails.
type Keymap [256]Entry

// Lookup returns the entry for a byte value. Total and pure.
func (k *Keymap) Lookup(b byte) Entry {
	return k[b]
}

// ID selects one of the built-in keymaps.
type ID int

const (
	Kaypro ID = iota
	ASCII
	MediaKeys
	Custom
)

var idNames = map[ID]string{
	Kaypro:    "kaypro",
	ASCII:     "ascii",
	MediaKeys: "media_keys",
	Custom:    "custom",
}

func (id ID) String() string {
	if name, ok := idNames[id]; ok {
		return name
	}
	return fmt.Sprintf("keymap(%d)", int(id))
}

// ParseID converts a configuration value to a keymap ID. Values match the
// vocabulary of the -k command line switch: kaypro, ascii, media_keys, custom.
func ParseID(name string) (ID, error) {
	for id, n := range idNames {
		if n == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("invalid keymap %q (expected kaypro, ascii, media_keys or custom)", name)
}

// Get returns the keymap for an ID. Unknown IDs fall back to the custom
// (all-inert) map; selection is validated with ParseID before this is reached.
func Get(id ID) *Keymap {
	switch id {
	case Kaypro:
		return &kayproMap
	case ASCII:
		return &asciiMap
	case MediaKeys:
		return &mediaMap
	default:
		return &customMap
	}
}

// Lookup resolves a byte against the keymap named by id.
func Lookup(id ID, b byte) Entry {
	return Get(id).Lookup(b)
}

// IDs lists the selectable keymaps in display order.
func IDs() []ID {
	return []ID{Kaypro, ASCII, MediaKeys, Custom}
}

// Validate checks the consistency of all built-in tables: an entry without a
// keycode must not carry modifier or make/break flags, otherwise an unmapped
// byte could produce output.
func Validate() error {
	for _, id := range IDs() {
		m := Get(id)
		for b := 0; b < len(m); b++ {
			e := m[b]
			if e.Code == KeyReserved && (e.Control || e.Shift || e.MakeBreak) {
				return fmt.Errorf("keymap %s: byte %d is unmapped but has flags set", id, b)
			}
		}
	}
	return nil
}

// RegisteredCodes returns every distinct keycode any built-in map can emit,
// including the modifier keys. The uinput device registers exactly this set.
func RegisteredCodes() []Code {
	seen := map[Code]bool{
		KeyLeftCtrl:  true,
		KeyLeftShift: true,
	}
	codes := []Code{KeyLeftCtrl, KeyLeftShift}
	for _, id := range IDs() {
		m := Get(id)
		for b := 0; b < len(m); b++ {
			if c := m[b].Code; c != KeyReserved && !seen[c] {
				seen[c] = true
				codes = append(codes, c)
			}
		}
	}
	return codes
}
