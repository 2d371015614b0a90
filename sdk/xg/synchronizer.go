package xg

import (
	"sync"

	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

const eventBufferSize = 64

// Synchronizer keeps a MasterMap and a MIDI device in step. Captured
// RPN, NRPN and SysEx events are applied to the model, and watched
// parameters are sent back to the device as XG Parameter Change
// frames. The synchronizer registers itself as the sender of inbound
// updates, so device traffic never echoes back out.
type Synchronizer struct {
	logger   contracts.Logger
	device   contracts.Device
	master   *MasterMap
	deviceNo uint8

	mu      sync.Mutex
	events  chan contracts.Event
	started bool
	closed  bool
	quit    chan struct{}
	done    chan struct{}
}

// NewSynchronizer binds a device to a parameter model. deviceNo is the
// XG device number used on outbound frames.
func NewSynchronizer(device contracts.Device, master *MasterMap, deviceNo uint8, logger contracts.Logger) *Synchronizer {
	return &Synchronizer{
		logger:   logger,
		device:   device,
		master:   master,
		deviceNo: deviceNo,
	}
}

// Start begins consuming the device capture stream. Subsequent calls
// have no effect.
func (s *Synchronizer) Start() {
	s.mu.Lock()
	if s.started || s.closed {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.events = make(chan contracts.Event, eventBufferSize)
	s.quit = make(chan struct{})
	s.done = make(chan struct{})
	s.mu.Unlock()

	s.device.StartCapture(s.events)
	go s.run()
}

func (s *Synchronizer) run() {
	defer close(s.done)
	for {
		select {
		case <-s.quit:
			return
		case ev := <-s.events:
			s.Apply(ev)
		}
	}
}

// Apply routes one captured event into the model. It reports whether
// the event addressed a known parameter.
func (s *Synchronizer) Apply(ev contracts.Event) bool {
	switch ev.Kind {
	case contracts.ReceivedRPN, contracts.ReceivedNRPN:
		p, ok := s.master.FindRpnParam(ev.Channel, ev.Param)
		if !ok {
			s.logger.Debug("unbound RPN/NRPN",
				s.logger.Field().Uint8("channel", ev.Channel),
				s.logger.Field().Uint16("param", ev.Param))
			return false
		}
		p.SetValueUpdate(ev.Value, s)
		return true

	case contracts.ReceivedSysex:
		key, data, ok := ParseParamChange(ev.Data)
		if !ok {
			return false
		}
		p, ok := s.master.FindParam(key.High, key.Mid, key.Low)
		if !ok {
			s.logger.Debug("unknown parameter address",
				s.logger.Field().String("address", key.String()))
			return false
		}
		p.SetValueUpdate(p.DecodeData(data), s)
		return true
	}
	return false
}

// Watch attaches the synchronizer to a parameter, so local edits are
// sent to the device. Watch the key selector parameters too when part
// or note switches should reach the device.
func (s *Synchronizer) Watch(p *Param) {
	p.Attach(s)
}

// Unwatch detaches the synchronizer from a parameter.
func (s *Synchronizer) Unwatch(p *Param) {
	p.Detach(s)
}

// Update implements Observer: the changed parameter is sent to the
// device as a Parameter Change frame.
func (s *Synchronizer) Update(p *Param) {
	s.send(p)
}

// Reset implements Observer: the reverted parameter is sent so the
// device returns to the default as well.
func (s *Synchronizer) Reset(p *Param) {
	if p != nil {
		s.send(p)
	}
}

func (s *Synchronizer) send(p *Param) {
	if err := s.device.SendSysex(EncodeParamChange(s.deviceNo, p)); err != nil {
		s.logger.Error("parameter send failed",
			s.logger.Field().String("param", p.Name()),
			s.logger.Field().Error("error", err))
	}
}

// Close stops the consumer goroutine. The capture channel stays open,
// so a device closed before or after the synchronizer keeps working;
// events arriving afterwards are simply no longer applied.
func (s *Synchronizer) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	started := s.started
	quit := s.quit
	done := s.done
	s.mu.Unlock()

	if started {
		close(quit)
		<-done
	}
}
