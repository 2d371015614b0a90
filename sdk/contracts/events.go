package contracts

// EventKind discriminates the decoded events a Device emits.
type EventKind int

const (
	// ReceivedRPN is a completed Registered Parameter Number update.
	ReceivedRPN EventKind = iota + 1
	// ReceivedNRPN is a completed Non-Registered Parameter Number update.
	ReceivedNRPN
	// ReceivedSysex is a complete System-Exclusive frame.
	ReceivedSysex
)

// Event is a decoded notification out of the capture path.
type Event struct {
	Kind    EventKind
	Channel uint8  // MIDI channel, 0..15 (RPN/NRPN only).
	Param   uint16 // 14-bit parameter number (RPN/NRPN only).
	Value   uint16 // parameter value, 7 or 14 bit (RPN/NRPN only).
	Data    []byte // complete F0..F7 frame (Sysex only).
}
