package keymap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	for _, id := range IDs() {
		parsed, err := ParseID(id.String())
		require.NoError(t, err)
		require.Equal(t, id, parsed)
	}

	_, err := ParseID("dvorak")
	require.Error(t, err)
	_, err = ParseID("")
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate())
}

func TestLookupIsTotal(t *testing.T) {
	for _, id := range IDs() {
		for b := 0; b < 256; b++ {
			e := Lookup(id, byte(b))
			if e.Code == KeyReserved {
				require.False(t, e.Control, "%s byte %d", id, b)
				require.False(t, e.Shift, "%s byte %d", id, b)
				require.False(t, e.MakeBreak, "%s byte %d", id, b)
			}
		}
	}
}

func TestKayproEntries(t *testing.T) {
	// Control characters map to Ctrl+letter with a synthesized press/release.
	require.Equal(t, Entry{Code: KeyA, Control: true, MakeBreak: true}, Lookup(Kaypro, 0x01))
	require.Equal(t, Entry{Code: KeyZ, Control: true, MakeBreak: true}, Lookup(Kaypro, 0x1a))

	// Printable ASCII.
	require.Equal(t, Entry{Code: KeyA, Shift: true, MakeBreak: true}, Lookup(Kaypro, 'A'))
	require.Equal(t, Entry{Code: KeyA, MakeBreak: true}, Lookup(Kaypro, 'a'))
	require.Equal(t, Entry{Code: KeySpace, MakeBreak: true}, Lookup(Kaypro, ' '))
	require.Equal(t, Entry{Code: Key6, Control: true, Shift: true, MakeBreak: true}, Lookup(Kaypro, 0x1e))
	require.Equal(t, Entry{Code: KeyDelete, MakeBreak: true}, Lookup(Kaypro, 0x7f))

	// The upper half of the byte range has no binding.
	for b := 0x80; b <= 0xff; b++ {
		require.Equal(t, KeyReserved, Lookup(Kaypro, byte(b)).Code, "byte %d", b)
	}
}

func TestASCIIDerivedFromKaypro(t *testing.T) {
	for b := 0; b < 256; b++ {
		kp := Lookup(Kaypro, byte(b))
		as := Lookup(ASCII, byte(b))
		require.Equal(t, kp.Code, as.Code, "byte %d", b)
		require.Equal(t, kp.Control, as.Control, "byte %d", b)
		require.Equal(t, kp.Shift, as.Shift, "byte %d", b)
		require.False(t, as.MakeBreak, "byte %d", b)
	}
}

func TestMediaKeysEntries(t *testing.T) {
	require.Equal(t, Entry{Code: KeyMute}, Lookup(MediaKeys, 0))
	require.Equal(t, Entry{Code: KeyVolumeUp}, Lookup(MediaKeys, 1))
	require.Equal(t, Entry{Code: KeyEjectCloseCD}, Lookup(MediaKeys, 14))

	populated := 0
	for b := 0; b < 256; b++ {
		e := Lookup(MediaKeys, byte(b))
		if e.Code != KeyReserved {
			populated++
			require.False(t, e.MakeBreak, "byte %d", b)
		}
	}
	require.Equal(t, 15, populated)
}

func TestCustomIsInert(t *testing.T) {
	for b := 0; b < 256; b++ {
		require.Equal(t, Entry{}, Lookup(Custom, byte(b)))
	}
}

func TestRegisteredCodes(t *testing.T) {
	codes := RegisteredCodes()

	seen := map[Code]bool{}
	for _, c := range codes {
		require.NotEqual(t, KeyReserved, c)
		require.False(t, seen[c], "duplicate code %d", c)
		seen[c] = true
	}

	require.True(t, seen[KeyLeftCtrl])
	require.True(t, seen[KeyLeftShift])
	require.True(t, seen[KeyA])
	require.True(t, seen[KeyMute])
}
