package bridge

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/racerxr650r/serkey/internal/keymap"
)

type recordingSink struct {
	presses  []keymap.Code
	releases []keymap.Code
	err      error
}

func (s *recordingSink) Press(code keymap.Code) error {
	if s.err != nil {
		return s.err
	}
	s.presses = append(s.presses, code)
	return nil
}

func (s *recordingSink) Release(code keymap.Code) error {
	if s.err != nil {
		return s.err
	}
	s.releases = append(s.releases, code)
	return nil
}

func TestRunTranslatesUntilEOF(t *testing.T) {
	sink := &recordingSink{}
	source := bytes.NewReader([]byte("ab"))

	b := New(source, sink, keymap.Get(keymap.Kaypro), false)
	require.NoError(t, b.Run(context.Background()))

	require.Equal(t, uint64(2), b.BytesTranslated())
	require.Equal(t, []keymap.Code{keymap.KeyA, keymap.KeyB}, sink.presses)
	require.Equal(t, []keymap.Code{keymap.KeyA, keymap.KeyB}, sink.releases)
}

func TestRunCountsUnmappedBytes(t *testing.T) {
	sink := &recordingSink{}
	source := bytes.NewReader([]byte{0x00, 'a'})

	b := New(source, sink, keymap.Get(keymap.Kaypro), false)
	require.NoError(t, b.Run(context.Background()))

	// The unmapped byte produced no events but still counts as translated.
	require.Equal(t, uint64(2), b.BytesTranslated())
	require.Equal(t, []keymap.Code{keymap.KeyA}, sink.presses)
}

func TestRunPropagatesSinkFailure(t *testing.T) {
	wantErr := errors.New("device write rejected")
	sink := &recordingSink{err: wantErr}
	source := bytes.NewReader([]byte("a"))

	b := New(source, sink, keymap.Get(keymap.Kaypro), false)
	require.ErrorIs(t, b.Run(context.Background()), wantErr)
	require.Equal(t, uint64(0), b.BytesTranslated())
}

func TestRunExitOnEscape(t *testing.T) {
	sink := &recordingSink{}
	source := bytes.NewReader([]byte{0x1b, 'a'})

	b := New(source, sink, keymap.Get(keymap.Kaypro), true)
	require.NoError(t, b.Run(context.Background()))

	// The ESC byte itself is translated, then the bridge stops.
	require.Equal(t, uint64(1), b.BytesTranslated())
	require.Equal(t, []keymap.Code{keymap.KeyLeftCtrl, keymap.KeyLeftBrace}, sink.presses)
}

func TestRunHonorsCancelledContext(t *testing.T) {
	sink := &recordingSink{}
	source := bytes.NewReader([]byte("abc"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := New(source, sink, keymap.Get(keymap.Kaypro), false)
	require.ErrorIs(t, b.Run(ctx), context.Canceled)
	require.Empty(t, sink.presses)
}
