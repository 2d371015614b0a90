//go:build !darwin
// +build !darwin

package mididarwin

import (
	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

// DummyTransport stands in on platforms served by another backend.
type DummyTransport struct {
	logger contracts.Logger
}

func NewTransport(options *contracts.ClientOptions) (contracts.Transport, error) {
	options.Logger.Info("coremidi backend not selected on this platform")
	return &DummyTransport{logger: options.Logger}, nil
}

func (t *DummyTransport) Inputs() []string  { return nil }
func (t *DummyTransport) Outputs() []string { return nil }

func (t *DummyTransport) ConnectInputs(selection []string) bool  { return false }
func (t *DummyTransport) ConnectOutputs(selection []string) bool { return false }

func (t *DummyTransport) SendSysex(data []byte) error { return nil }

func (t *DummyTransport) Start(events chan<- contracts.RawEvent) error { return nil }

func (t *DummyTransport) Close() error { return nil }
