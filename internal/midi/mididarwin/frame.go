package mididarwin

// framer splits a byte stream of MIDI packets into complete messages.
// CoreMIDI may deliver a SysEx frame across several packets, so the
// accumulation state survives between calls.
type framer struct {
	sysex []byte
}

// feed consumes one packet worth of bytes and calls emit once per
// complete message. SysEx frames are emitted including the F0/F7
// framing bytes. Realtime status bytes and stray data bytes outside a
// message are dropped.
func (f *framer) feed(data []byte, emit func(msg []byte)) {
	for i := 0; i < len(data); i++ {
		b := data[i]

		if f.sysex != nil {
			f.sysex = append(f.sysex, b)
			if b == 0xf7 {
				emit(f.sysex)
				f.sysex = nil
			}
			continue
		}

		switch {
		case b == 0xf0:
			f.sysex = []byte{b}
		case b >= 0xf8:
			// Realtime message, single byte.
		case b >= 0x80:
			n := messageLength(b)
			if i+n > len(data) {
				// Truncated packet; drop the remainder.
				return
			}
			msg := make([]byte, n)
			copy(msg, data[i:i+n])
			emit(msg)
			i += n - 1
		default:
			// Data byte with no running status; drop.
		}
	}
}

func messageLength(status byte) int {
	switch status & 0xf0 {
	case 0xc0, 0xd0:
		return 2
	case 0xf0:
		switch status {
		case 0xf1, 0xf3:
			return 2
		case 0xf2:
			return 3
		default:
			return 1
		}
	default:
		return 3
	}
}
