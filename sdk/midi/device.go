package midi

import (
	"sync"
	"time"

	"github.com/now-its-dark/qxgedit/internal/rpn"
	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

const (
	// flushInterval bounds how long an incomplete RPN/NRPN sequence may
	// sit in the codec with no traffic arriving.
	flushInterval = 200 * time.Millisecond

	rawBufferSize = 256
)

// Device multiplexes one transport backend behind the contracts.Device
// surface and runs the capture loop that feeds the RPN/NRPN codec.
//
// A device whose backend failed to open behaves exactly like a device
// with zero visible endpoints: listings are empty, connects report
// false and sends are no-ops.
type Device struct {
	logger    contracts.Logger
	transport contracts.Transport
	codec     *rpn.Codec
	raw       chan contracts.RawEvent

	mu      sync.Mutex
	events  chan<- contracts.Event
	started bool
	closed  bool
	quit    chan struct{}
	done    chan struct{}
}

func newDevice(options *contracts.ClientOptions) *Device {
	d := &Device{
		logger: options.Logger,
		codec:  rpn.New(),
		raw:    make(chan contracts.RawEvent, rawBufferSize),
		quit:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	transport, err := newTransport(options)
	if err != nil {
		// Degrade to the disconnected state rather than failing the
		// process; every operation becomes a no-op.
		options.Logger.Error("MIDI transport unavailable",
			options.Logger.Field().Error("error", err))
		return d
	}
	d.transport = transport

	if err := transport.Start(d.raw); err != nil {
		options.Logger.Error("failed to start MIDI transport",
			options.Logger.Field().Error("error", err))
		_ = transport.Close()
		d.transport = nil
		return d
	}

	if len(options.Inputs) > 0 && !d.ConnectInputs(options.Inputs) {
		options.Logger.Warn("no configured MIDI input matched")
	}
	if len(options.Outputs) > 0 && !d.ConnectOutputs(options.Outputs) {
		options.Logger.Warn("no configured MIDI output matched")
	}
	return d
}

// Inputs lists the readable endpoint descriptors currently visible.
func (d *Device) Inputs() []string {
	if d.transport == nil {
		return nil
	}
	return d.transport.Inputs()
}

// Outputs lists the writable endpoint descriptors currently visible.
func (d *Device) Outputs() []string {
	if d.transport == nil {
		return nil
	}
	return d.transport.Outputs()
}

// ConnectInputs subscribes to the selected input endpoints. Reports
// whether at least one connection was made.
func (d *Device) ConnectInputs(selection []string) bool {
	if d.transport == nil || len(selection) == 0 {
		return false
	}
	return d.transport.ConnectInputs(selection)
}

// ConnectOutputs opens the selected output endpoints.
func (d *Device) ConnectOutputs(selection []string) bool {
	if d.transport == nil || len(selection) == 0 {
		return false
	}
	return d.transport.ConnectOutputs(selection)
}

// SendSysex transmits a System-Exclusive frame through the active
// output path. A disconnected device returns nil without transmitting.
func (d *Device) SendSysex(data []byte) error {
	if d.transport == nil {
		return nil
	}
	d.logger.Debug("MIDI out sysex", d.logger.Field().Int("bytes", len(data)))
	return d.transport.SendSysex(data)
}

// StartCapture starts the capture loop and sends decoded RPN/NRPN and
// SysEx events to the specified channel.
func (d *Device) StartCapture(events chan<- contracts.Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if events == nil {
		d.logger.Error("StartCapture called with nil event channel")
		return
	}
	d.events = events

	if d.started || d.closed || d.transport == nil {
		return
	}
	d.started = true
	go d.run()
}

// Close stops the capture loop, waits for it to exit, and releases the
// transport. Safe to call more than once.
func (d *Device) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	started := d.started
	d.mu.Unlock()

	close(d.quit)
	if started {
		<-d.done
	}
	if d.transport == nil {
		return nil
	}
	return d.transport.Close()
}

// run is the capture loop. It drains raw transport events through the
// codec and drives the periodic flush when no traffic arrives.
func (d *Device) run() {
	defer close(d.done)

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-d.quit:
			return
		case <-ticker.C:
			d.codec.Flush()
			d.drain()
		case ev := <-d.raw:
			d.capture(ev)
			d.drain()
		}
	}
}

// capture pushes one raw message through the codec. SysEx frames are
// forwarded directly; any other non Control-Change traffic flushes
// pending reassembly state.
func (d *Device) capture(ev contracts.RawEvent) {
	if len(ev.Data) == 0 {
		return
	}
	switch {
	case ev.Data[0] == 0xf0:
		d.emit(contracts.Event{Kind: contracts.ReceivedSysex, Data: ev.Data})
		d.codec.Flush()
	case ev.Data[0]&0xf0 == 0xb0 && len(ev.Data) >= 3:
		d.codec.Process(rpn.Event{
			Time:    ev.Time,
			Port:    ev.Port,
			Type:    rpn.CC,
			Channel: ev.Data[0] & 0x0f,
			Param:   uint16(ev.Data[1] & 0x7f),
			Value:   uint16(ev.Data[2] & 0x7f),
		})
	default:
		d.codec.Flush()
	}
}

// drain forwards completed codec events. Plain CC and CC14 results are
// not parameter traffic for the model layer and are dropped here.
func (d *Device) drain() {
	for d.codec.Pending() {
		ev, ok := d.codec.Dequeue()
		if !ok {
			break
		}
		switch ev.Type {
		case rpn.RPN:
			d.emit(contracts.Event{
				Kind:    contracts.ReceivedRPN,
				Channel: ev.Channel,
				Param:   ev.Param,
				Value:   ev.Value,
			})
		case rpn.NRPN:
			d.emit(contracts.Event{
				Kind:    contracts.ReceivedNRPN,
				Channel: ev.Channel,
				Param:   ev.Param,
				Value:   ev.Value,
			})
		default:
			d.logger.Debug("dropping non-parameter event",
				d.logger.Field().Uint16("controller", ev.Param))
		}
	}
}

// emit hands one decoded event to the consumer without blocking the
// capture loop.
func (d *Device) emit(ev contracts.Event) {
	d.mu.Lock()
	events := d.events
	d.mu.Unlock()
	if events == nil {
		return
	}
	select {
	case events <- ev:
	default:
		d.logger.Warn("event buffer full; dropping decoded event")
	}
}
