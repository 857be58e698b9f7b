// Package bridge runs the read/translate/emit loop between the serial
// keyboard and the virtual device.
package bridge

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/racerxr650r/serkey/internal/emitter"
	"github.com/racerxr650r/serkey/internal/keymap"
	"github.com/racerxr650r/serkey/internal/logger"
)

const escByte = 0x1b

// ByteSource delivers one byte per keystroke event. io.EOF ends the stream.
type ByteSource interface {
	ReadByte() (byte, error)
}

// Bridge translates bytes from a source through a keymap into key events on
// a sink. One byte is fully translated and flushed before the next is read;
// there is no queue and no concurrent access to the sink.
type Bridge struct {
	source       ByteSource
	sink         emitter.Sink
	keymap       *keymap.Keymap
	exitOnEscape bool

	translated atomic.Uint64
}

func New(source ByteSource, sink emitter.Sink, m *keymap.Keymap, exitOnEscape bool) *Bridge {
	return &Bridge{
		source:       source,
		sink:         sink,
		keymap:       m,
		exitOnEscape: exitOnEscape,
	}
}

// Run reads and translates until the source ends, the context is cancelled,
// or a sink write fails. Sink failures are returned to the caller; the bridge
// itself never retries.
func (b *Bridge) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		key, err := b.source.ReadByte()
		if err != nil {
			if err == io.EOF {
				logger.Info("Serial stream closed")
				return nil
			}
			return err
		}

		logger.Debugf("Key: %c Value: %03d", key, key)

		if err := emitter.Emit(b.sink, b.keymap, key); err != nil {
			return err
		}
		b.translated.Add(1)

		if b.exitOnEscape && key == escByte {
			logger.Info("Received ESC, stopping")
			return nil
		}
	}
}

// BytesTranslated reports how many bytes have been read and translated.
func (b *Bridge) BytesTranslated() uint64 {
	return b.translated.Load()
}
