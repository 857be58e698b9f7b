package keymap

// Entry constructors used by the tables below. The Kaypro keyboard transmits
// one byte per keystroke with no break codes, so its entries synthesize both
// halves of the keystroke (MakeBreak).
func plain(c Code) Entry     { return Entry{Code: c, MakeBreak: true} }
func shifted(c Code) Entry   { return Entry{Code: c, Shift: true, MakeBreak: true} }
func ctrl(c Code) Entry      { return Entry{Code: c, Control: true, MakeBreak: true} }
func ctrlShift(c Code) Entry { return Entry{Code: c, Control: true, Shift: true, MakeBreak: true} }

// single is for links that report press and release themselves via bit 7 of
// the transmitted byte; the entry maps to exactly one event.
func single(c Code) Entry { return Entry{Code: c} }

// kayproMap covers the 7-bit ASCII codes the Kaypro keyboard produces.
// Control characters are typed as Ctrl+letter on the target. Bytes with the
// high bit set have no binding.
var kayproMap = Keymap{
	0x01: ctrl(KeyA), // SOH
	0x02: ctrl(KeyB), // STX
	0x03: ctrl(KeyC), // ETX
	0x04: ctrl(KeyD), // EOT
	0x05: ctrl(KeyE), // ENQ
	0x06: ctrl(KeyF), // ACK
	0x07: ctrl(KeyG), // BEL
	0x08: ctrl(KeyH), // BS
	0x09: ctrl(KeyI), // HT
	0x0a: ctrl(KeyJ), // LF
	0x0b: ctrl(KeyK), // VT
	0x0c: ctrl(KeyL), // FF
	0x0d: ctrl(KeyM), // CR
	0x0e: ctrl(KeyN), // SO
	0x0f: ctrl(KeyO), // SI
	0x10: ctrl(KeyP), // DLE
	0x11: ctrl(KeyQ), // DC1
	0x12: ctrl(KeyR), // DC2
	0x13: ctrl(KeyS), // DC3
	0x14: ctrl(KeyT), // DC4
	0x15: ctrl(KeyU), // NAK
	0x16: ctrl(KeyV), // SYN
	0x17: ctrl(KeyW), // ETB
	0x18: ctrl(KeyX), // CAN
	0x19: ctrl(KeyY), // EM
	0x1a: ctrl(KeyZ), // SUB
	0x1b: ctrl(KeyLeftBrace),   // ESC
	0x1c: ctrl(KeyBackslash),   // FS
	0x1d: ctrl(KeyRightBrace),  // GS
	0x1e: ctrlShift(Key6),      // RS
	0x1f: ctrlShift(KeyMinus),  // US
	0x20: plain(KeySpace),      // space
	0x21: shifted(Key1),        // !
	0x22: shifted(KeyApostrophe), // "
	0x23: shifted(Key3),        // #
	0x24: shifted(Key4),        // $
	0x25: shifted(Key5),        // %
	0x26: shifted(Key7),        // &
	0x27: plain(KeyApostrophe), // '
	0x28: shifted(Key9),        // (
	0x29: shifted(Key0),        // )
	0x2a: shifted(Key8),        // *
	0x2b: shifted(KeyEqual),    // +
	0x2c: plain(KeyComma),      // ,
	0x2d: shifted(KeyMinus),    // -
	0x2e: plain(KeyDot),        // .
	0x2f: plain(KeySlash),      // /
	0x30: plain(Key0),
	0x31: plain(Key1),
	0x32: plain(Key2),
	0x33: plain(Key3),
	0x34: plain(Key4),
	0x35: plain(Key5),
	0x36: plain(Key6),
	0x37: plain(Key7),
	0x38: plain(Key8),
	0x39: plain(Key9),
	0x3a: shifted(KeySemicolon), // :
	0x3b: plain(KeySemicolon),   // ;
	0x3c: shifted(KeyComma),     // <
	0x3d: plain(KeyEqual),       // =
	0x3e: shifted(KeyDot),       // >
	0x3f: shifted(KeySlash),     // ?
	0x40: shifted(Key2),         // @
	0x41: shifted(KeyA),
	0x42: shifted(KeyB),
	0x43: shifted(KeyC),
	0x44: shifted(KeyD),
	0x45: shifted(KeyE),
	0x46: shifted(KeyF),
	0x47: shifted(KeyG),
	0x48: shifted(KeyH),
	0x49: shifted(KeyI),
	0x4a: shifted(KeyJ),
	0x4b: shifted(KeyK),
	0x4c: shifted(KeyL),
	0x4d: shifted(KeyM),
	0x4e: shifted(KeyN),
	0x4f: shifted(KeyO),
	0x50: shifted(KeyP),
	0x51: shifted(KeyQ),
	0x52: shifted(KeyR),
	0x53: shifted(KeyS),
	0x54: shifted(KeyT),
	0x55: shifted(KeyU),
	0x56: shifted(KeyV),
	0x57: shifted(KeyW),
	0x58: shifted(KeyX),
	0x59: shifted(KeyY),
	0x5a: shifted(KeyZ),
	0x5b: plain(KeyLeftBrace),    // [
	0x5c: plain(KeyBackslash),    // \
	0x5d: plain(KeyRightBrace),   // ]
	0x5e: shifted(Key6),          // ^
	0x5f: shifted(KeyMinus),      // _
	0x60: plain(KeyGrave),        // `
	0x61: plain(KeyA),
	0x62: plain(KeyB),
	0x63: plain(KeyC),
	0x64: plain(KeyD),
	0x65: plain(KeyE),
	0x66: plain(KeyF),
	0x67: plain(KeyG),
	0x68: plain(KeyH),
	0x69: plain(KeyI),
	0x6a: plain(KeyJ),
	0x6b: plain(KeyK),
	0x6c: plain(KeyL),
	0x6d: plain(KeyM),
	0x6e: plain(KeyN),
	0x6f: plain(KeyO),
	0x70: plain(KeyP),
	0x71: plain(KeyQ),
	0x72: plain(KeyR),
	0x73: plain(KeyS),
	0x74: plain(KeyT),
	0x75: plain(KeyU),
	0x76: plain(KeyV),
	0x77: plain(KeyW),
	0x78: plain(KeyX),
	0x79: plain(KeyY),
	0x7a: plain(KeyZ),
	0x7b: shifted(KeyLeftBrace),  // {
	0x7c: plain(KeyBackslash),    // |
	0x7d: shifted(KeyRightBrace), // }
	0x7e: shifted(KeyGrave),      // ~
	0x7f: plain(KeyDelete),       // DEL
}

// asciiMap carries the same key assignments as the Kaypro map but leaves
// make/break to the link: the keyboard sends the code on press and the code
// with bit 7 set on release.
var asciiMap = func() Keymap {
	m := kayproMap
	for i := range m {
		m[i].MakeBreak = false
	}
	return m
}()

// mediaMap binds small integer codes to consumer-control keys, for links
// that report press and release via bit 7.
var mediaMap = Keymap{
	0:  single(KeyMute),
	1:  single(KeyVolumeUp),
	2:  single(KeyVolumeDown),
	3:  single(KeyPlayPause),
	4:  single(KeyNextSong),
	5:  single(KeyPreviousSong),
	6:  single(KeyRecord),
	7:  single(KeyRewind),
	8:  single(KeyForward),
	9:  single(KeyPlayCD),
	10: single(KeyPauseCD),
	11: single(KeyStopCD),
	12: single(KeyEjectCD),
	13: single(KeyCloseCD),
	14: single(KeyEjectCloseCD),
}

// customMap is an all-inert template for user extension.
var customMap = Keymap{}
