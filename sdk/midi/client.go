package midi

import (
	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

// NewDevice creates a MIDI device with the specified options. It applies
// default options, selects the transport backend for the platform and
// connects any configured endpoints.
//
// Construction never fails the caller: a backend that cannot be opened
// is logged and the device degrades to the disconnected state.
func NewDevice(opts ...contracts.Option) contracts.Device {
	options := applyDefaultOptions(opts...)
	return newDevice(&options)
}
