package contracts

// RawEvent is one complete MIDI message as delivered by a transport
// backend, before any RPN/NRPN reassembly.
type RawEvent struct {
	Time uint64 // Time indicates when the message arrived, in nanoseconds.
	Port int    // Port is the backend port identity the message arrived on.
	Data []byte // Data holds the complete message; SysEx frames include F0..F7.
}

// Transport is the contract every MIDI backend implements. Exactly one
// backend is active per device; all of them degrade to empty listings,
// false connects and no-op sends once the underlying subsystem could not
// be opened.
type Transport interface {
	// Inputs lists the readable endpoints currently visible, as stable
	// human-comparable descriptor strings.
	Inputs() []string
	// Outputs lists the writable endpoints currently visible.
	Outputs() []string
	// ConnectInputs subscribes to every listed endpoint whose descriptor
	// matches an entry of the selection. Unmatched entries are skipped.
	// Reports whether at least one connection was made.
	ConnectInputs(selection []string) bool
	// ConnectOutputs is the writable counterpart of ConnectInputs.
	ConnectOutputs(selection []string) bool
	// SendSysex transmits one System-Exclusive frame through the active
	// output path. Sending with no output connected is a no-op, not an
	// error.
	SendSysex(data []byte) error
	// Start begins delivering raw MIDI messages to the given channel from
	// the backend's own thread of control.
	Start(events chan<- RawEvent) error
	// Close stops delivery and releases the transport.
	Close() error
}

// Device defines the application-facing MIDI surface: transport
// enumeration and connection plus the capture path that turns raw
// messages into decoded parameter events.
type Device interface {
	Inputs() []string
	Outputs() []string
	ConnectInputs(selection []string) bool
	ConnectOutputs(selection []string) bool
	SendSysex(data []byte) error
	// StartCapture starts the capture loop and sends decoded events to
	// the specified channel.
	StartCapture(events chan<- Event)
	// Close stops the capture loop, waits for it to exit, and releases
	// the transport.
	Close() error
}
