package keymap

// Linux input keycodes referenced by the built-in tables. Values are the
// KEY_* constants from input-event-codes.h.
const (
	KeyReserved Code = 0

	Key1 Code = 2
	Key2 Code = 3
	Key3 Code = 4
	Key4 Code = 5
	Key5 Code = 6
	Key6 Code = 7
	Key7 Code = 8
	Key8 Code = 9
	Key9 Code = 10
	Key0 Code = 11

	KeyMinus      Code = 12
	KeyEqual      Code = 13
	KeyQ          Code = 16
	KeyW          Code = 17
	KeyE          Code = 18
	KeyR          Code = 19
	KeyT          Code = 20
	KeyY          Code = 21
	KeyU          Code = 22
	KeyI          Code = 23
	KeyO          Code = 24
	KeyP          Code = 25
	KeyLeftBrace  Code = 26
	KeyRightBrace Code = 27
	KeyLeftCtrl   Code = 29
	KeyA          Code = 30
	KeyS          Code = 31
	KeyD          Code = 32
	KeyF          Code = 33
	KeyG          Code = 34
	KeyH          Code = 35
	KeyJ          Code = 36
	KeyK          Code = 37
	KeyL          Code = 38
	KeySemicolon  Code = 39
	KeyApostrophe Code = 40
	KeyGrave      Code = 41
	KeyLeftShift  Code = 42
	KeyBackslash  Code = 43
	KeyZ          Code = 44
	KeyX          Code = 45
	KeyC          Code = 46
	KeyV          Code = 47
	KeyB          Code = 48
	KeyN          Code = 49
	KeyM          Code = 50
	KeyComma      Code = 51
	KeyDot        Code = 52
	KeySlash      Code = 53
	KeySpace      Code = 57
	KeyDelete     Code = 111

	KeyMute         Code = 113
	KeyVolumeDown   Code = 114
	KeyVolumeUp     Code = 115
	KeyForward      Code = 159
	KeyCloseCD      Code = 160
	KeyEjectCD      Code = 161
	KeyEjectCloseCD Code = 162
	KeyNextSong     Code = 163
	KeyPlayPause    Code = 164
	KeyPreviousSong Code = 165
	KeyStopCD       Code = 166
	KeyRecord       Code = 167
	KeyRewind       Code = 168
	KeyPlayCD       Code = 200
	KeyPauseCD      Code = 201
)
