//go:build darwin
// +build darwin

// Package mididarwin implements the transport backend on CoreMIDI. The
// entity/endpoint hierarchy supplies two-level descriptor strings; the
// subsystem delivers packets from its own thread via callback.
package mididarwin

import (
	"errors"
	"sync"
	"time"

	"github.com/youpy/go-coremidi"

	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

// ErrClientUnavailable is returned when the CoreMIDI client could not be
// created.
var ErrClientUnavailable = errors.New("coremidi client unavailable")

// portConnection is the part of a CoreMIDI connection we need back.
type portConnection interface {
	Disconnect()
}

// Transport manages MIDI endpoints through CoreMIDI.
type Transport struct {
	logger contracts.Logger
	client coremidi.Client

	mu      sync.Mutex
	events  chan<- contracts.RawEvent
	framer  framer
	conns   []portConnection
	outPort coremidi.OutputPort
	dests   []coremidi.Destination
	closed  bool
}

// NewTransport creates the CoreMIDI-backed transport.
func NewTransport(options *contracts.ClientOptions) (contracts.Transport, error) {
	client, err := coremidi.NewClient(options.ClientName)
	if err != nil {
		options.Logger.Error("failed to create CoreMIDI client",
			options.Logger.Field().Error("error", err))
		return nil, ErrClientUnavailable
	}

	outPort, err := coremidi.NewOutputPort(client, options.ClientName+" out")
	if err != nil {
		options.Logger.Error("failed to create CoreMIDI output port",
			options.Logger.Field().Error("error", err))
		return nil, ErrClientUnavailable
	}

	options.Logger.Info("MIDI transport created",
		options.Logger.Field().String("backend", "coremidi"),
		options.Logger.Field().String("client", options.ClientName))

	return &Transport{
		logger:  options.Logger,
		client:  client,
		outPort: outPort,
	}, nil
}

// Inputs lists the readable endpoints as two-level descriptors.
func (t *Transport) Inputs() []string {
	sources, err := coremidi.AllSources()
	if err != nil {
		return nil
	}
	var list []string
	for i, source := range sources {
		entity := source.Entity()
		list = append(list, formatDescriptor(i, entity.Name(), i, source.Name()))
	}
	return list
}

// Outputs lists the writable endpoints as two-level descriptors.
func (t *Transport) Outputs() []string {
	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return nil
	}
	var list []string
	for i, dest := range destinations {
		entity := dest.Entity()
		list = append(list, formatDescriptor(i, entity.Name(), i, dest.Name()))
	}
	return list
}

// ConnectInputs subscribes to every source whose descriptor matches the
// selection by client and port name. Reports whether at least one
// connection was made.
func (t *Transport) ConnectInputs(selection []string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}

	sources, err := coremidi.AllSources()
	if err != nil {
		return false
	}

	connects := 0
	for _, source := range sources {
		entity := source.Entity()
		if !anyMatch(selection, entity.Name(), source.Name()) {
			continue
		}
		inPort, err := coremidi.NewInputPort(t.client, source.Name(), t.handlePacket)
		if err != nil {
			t.logger.Warn("failed to create input port",
				t.logger.Field().String("source", source.Name()),
				t.logger.Field().Error("error", err))
			continue
		}
		conn, err := inPort.Connect(source)
		if err != nil {
			t.logger.Warn("failed to connect source",
				t.logger.Field().String("source", source.Name()),
				t.logger.Field().Error("error", err))
			continue
		}
		t.conns = append(t.conns, conn)
		connects++
	}
	return connects > 0
}

// ConnectOutputs selects every destination whose descriptor matches the
// selection by client and port name.
func (t *Transport) ConnectOutputs(selection []string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return false
	}

	destinations, err := coremidi.AllDestinations()
	if err != nil {
		return false
	}

	connects := 0
	for _, dest := range destinations {
		entity := dest.Entity()
		if !anyMatch(selection, entity.Name(), dest.Name()) {
			continue
		}
		t.dests = append(t.dests, dest)
		connects++
	}
	return connects > 0
}

// SendSysex transmits one framed SysEx message to every connected
// destination. With no destination connected this is a no-op.
func (t *Transport) SendSysex(data []byte) error {
	t.mu.Lock()
	dests := t.dests
	t.mu.Unlock()

	for i := range dests {
		packet := coremidi.NewPacket(data, 0)
		if err := packet.Send(&t.outPort, &dests[i]); err != nil {
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

// Close disconnects every source and stops delivery.
func (t *Transport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true

	for _, conn := range t.conns {
		conn.Disconnect()
	}
	t.conns = nil
	t.dests = nil
	t.events = nil
	return nil
}

// handlePacket runs on the CoreMIDI thread: split the packet into
// complete messages and hand them to the capture path without blocking.
func (t *Transport) handlePacket(source coremidi.Source, packet coremidi.Packet) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.events == nil {
		return
	}

	t.framer.feed(packet.Data, func(msg []byte) {
		ev := contracts.RawEvent{
			Time: uint64(time.Now().UnixNano()),
			Data: msg,
		}
		select {
		case t.events <- ev:
		default:
			t.logger.Warn("event buffer full; dropping MIDI message")
		}
	})
}

func anyMatch(selection []string, clientName, portName string) bool {
	for _, item := range selection {
		if matchDescriptor(item, clientName, portName) {
			return true
		}
	}
	return false
}
