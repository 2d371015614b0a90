//go:build !darwin
// +build !darwin

// Package midirt implements the portable transport backend on top of the
// gomidi rtmidi driver. Endpoint descriptors are plain port names; the
// driver delivers messages from its own thread via callback.
package midirt

import (
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register MIDI driver

	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

const sysexBufferSize = 4096

// Transport manages MIDI endpoints through the rtmidi driver.
type Transport struct {
	logger contracts.Logger

	mu     sync.Mutex
	events chan<- contracts.RawEvent
	stops  []func()
	outs   []drivers.Out
	sends  []func(msg gomidi.Message) error
	closed bool
}

// NewTransport creates the rtmidi-backed transport.
func NewTransport(options *contracts.ClientOptions) (contracts.Transport, error) {
	options.Logger.Info("MIDI transport created",
		options.Logger.Field().String("backend", "rtmidi"),
		options.Logger.Field().String("client", options.ClientName))

	return &Transport{logger: options.Logger}, nil
}

// Inputs lists the readable port names currently visible.
func (t *Transport) Inputs() []string {
	var list []string
	for _, in := range gomidi.GetInPorts() {
		list = append(list, in.String())
	}
	return list
}

// Outputs lists the writable port names currently visible.
func (t *Transport) Outputs() []string {
	var list []string
	for _, out := range gomidi.GetOutPorts() {
		list = append(list, out.String())
	}
	return list
}

// ConnectInputs subscribes to every input port named in the selection.
// Unmatched entries are skipped. Reports whether at least one port was
// opened.
func (t *Transport) ConnectInputs(selection []string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}

	connects := 0
	for _, in := range gomidi.GetInPorts() {
		if !selected(selection, in.String()) {
			continue
		}
		port := in
		stop, err := gomidi.ListenTo(port, func(msg gomidi.Message, _ int32) {
			t.deliver(port.Number(), msg)
		}, gomidi.UseSysEx(), gomidi.SysExBufferSize(sysexBufferSize))
		if err != nil {
			t.logger.Warn("failed to open input port",
				t.logger.Field().String("port", port.String()),
				t.logger.Field().Error("error", err))
			continue
		}
		t.stops = append(t.stops, stop)
		connects++
	}
	return connects > 0
}

// ConnectOutputs opens every output port named in the selection.
func (t *Transport) ConnectOutputs(selection []string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}

	connects := 0
	for _, out := range gomidi.GetOutPorts() {
		if !selected(selection, out.String()) {
			continue
		}
		send, err := gomidi.SendTo(out)
		if err != nil {
			t.logger.Warn("failed to open output port",
				t.logger.Field().String("port", out.String()),
				t.logger.Field().Error("error", err))
			continue
		}
		t.outs = append(t.outs, out)
		t.sends = append(t.sends, send)
		connects++
	}
	return connects > 0
}

// SendSysex transmits one framed SysEx message to every connected
// output. With no output connected this is a no-op.
func (t *Transport) SendSysex(data []byte) error {
	t.mu.Lock()
	sends := t.sends
	t.mu.Unlock()

	for _, send := range sends {
		if err := send(gomidi.Message(data)); err != nil {
			return err
		}
	}
	return nil
}

// Start begins delivering raw events to the given channel.
func (t *Transport) Start(events chan<- contracts.RawEvent) error {
	t.mu.Lock()
	t.events = events
	t.mu.Unlock()
	return nil
}

// Close stops every listener and releases the driver.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true

	for _, stop := range t.stops {
		stop()
	}
	t.stops = nil
	for _, out := range t.outs {
		_ = out.Close()
	}
	t.outs = nil
	t.sends = nil
	t.events = nil

	drivers.Close()
	return nil
}

// deliver hands one complete message to the capture path without ever
// blocking the driver thread.
func (t *Transport) deliver(port int, msg gomidi.Message) {
	t.mu.Lock()
	events := t.events
	t.mu.Unlock()
	if events == nil {
		return
	}

	data := make([]byte, len(msg))
	copy(data, msg)

	ev := contracts.RawEvent{
		Time: uint64(time.Now().UnixNano()),
		Port: port,
		Data: data,
	}
	select {
	case events <- ev:
	default:
		t.logger.Warn("event buffer full; dropping MIDI message")
	}
}

func selected(selection []string, name string) bool {
	for _, item := range selection {
		if item == name {
			return true
		}
	}
	return false
}
