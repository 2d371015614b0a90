package midi

import (
	"runtime"

	"github.com/now-its-dark/qxgedit/internal/midi/mididarwin"
	"github.com/now-its-dark/qxgedit/internal/midi/midirt"
	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

// transportInitializers maps OS names to transport backend initializers.
// Exactly one backend is active per device; platforms not listed here
// fall back to the portable rtmidi backend.
var transportInitializers = map[string]func(*contracts.ClientOptions) (contracts.Transport, error){
	"darwin": mididarwin.NewTransport,
}

// newTransport selects the transport backend for the current platform,
// unless the options pin an explicit one.
func newTransport(options *contracts.ClientOptions) (contracts.Transport, error) {
	if options.Transport != nil {
		return options.Transport, nil
	}
	if initializer, exists := transportInitializers[runtime.GOOS]; exists {
		return initializer(options)
	}
	return midirt.NewTransport(options)
}
