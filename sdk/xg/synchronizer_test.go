package xg

import (
	"bytes"
	"testing"
	"time"

	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

type nopField struct{}

func (nopField) Bool(string, bool) contracts.Field      { return nopField{} }
func (nopField) Int(string, int) contracts.Field        { return nopField{} }
func (nopField) String(string, string) contracts.Field  { return nopField{} }
func (nopField) Time(string, time.Time) contracts.Field { return nopField{} }
func (nopField) Error(string, error) contracts.Field    { return nopField{} }
func (nopField) Uint64(string, uint64) contracts.Field  { return nopField{} }
func (nopField) Uint16(string, uint16) contracts.Field  { return nopField{} }
func (nopField) Uint8(string, uint8) contracts.Field    { return nopField{} }

type nopLogger struct{}

func (nopLogger) Info(string, ...contracts.Field)  {}
func (nopLogger) Error(string, ...contracts.Field) {}
func (nopLogger) Debug(string, ...contracts.Field) {}
func (nopLogger) Warn(string, ...contracts.Field)  {}
func (nopLogger) Field() contracts.Field           { return nopField{} }
func (nopLogger) SetLevel(contracts.LogLevel)      {}

type fakeDevice struct {
	sysex  [][]byte
	events chan<- contracts.Event
}

func (d *fakeDevice) Inputs() []string                       { return nil }
func (d *fakeDevice) Outputs() []string                      { return nil }
func (d *fakeDevice) ConnectInputs([]string) bool            { return false }
func (d *fakeDevice) ConnectOutputs([]string) bool           { return false }
func (d *fakeDevice) StartCapture(ev chan<- contracts.Event) { d.events = ev }
func (d *fakeDevice) Close() error                           { return nil }

func (d *fakeDevice) SendSysex(data []byte) error {
	buf := make([]byte, len(data))
	copy(buf, data)
	d.sysex = append(d.sysex, buf)
	return nil
}

func newTestSync() (*Synchronizer, *fakeDevice, *MasterMap) {
	dev := &fakeDevice{}
	master := NewMasterMap()
	return NewSynchronizer(dev, master, 0, nopLogger{}), dev, master
}

func TestApplyNRPNUpdatesModel(t *testing.T) {
	s, dev, master := newTestSync()
	p, _ := master.FindRpnParam(2, 0x01<<7|0x20)
	s.Watch(p)

	ok := s.Apply(contracts.Event{
		Kind:    contracts.ReceivedNRPN,
		Channel: 2,
		Param:   0x01<<7 | 0x20,
		Value:   0x55,
	})
	if !ok {
		t.Fatal("bound NRPN was not applied")
	}
	if p.Value() != 0x55 {
		t.Errorf("Value() = %#x, want 0x55", p.Value())
	}
	// Inbound updates must not echo back to the device.
	if len(dev.sysex) != 0 {
		t.Errorf("device received %d frames for an inbound update", len(dev.sysex))
	}

	if s.Apply(contracts.Event{Kind: contracts.ReceivedNRPN, Channel: 2, Param: 0x7fff}) {
		t.Error("unbound NRPN reported as applied")
	}
}

func TestApplySysexUpdatesModel(t *testing.T) {
	s, _, master := newTestSync()
	p, _ := master.FindParam(addrMultipart, 0x00, 0x0e)

	frame := []byte{0xf0, 0x43, 0x10, 0x4c, 0x08, 0x00, 0x0e, 0x20, 0xf7}
	if !s.Apply(contracts.Event{Kind: contracts.ReceivedSysex, Data: frame}) {
		t.Fatal("parameter change frame was not applied")
	}
	if p.Value() != 0x20 {
		t.Errorf("Value() = %#x, want 0x20", p.Value())
	}

	foreign := []byte{0xf0, 0x41, 0x10, 0x42, 0x12, 0x40, 0x00, 0x7f, 0xf7}
	if s.Apply(contracts.Event{Kind: contracts.ReceivedSysex, Data: foreign}) {
		t.Error("foreign SysEx reported as applied")
	}
}

func TestWatchedEditReachesDevice(t *testing.T) {
	s, dev, master := newTestSync()
	p, _ := master.FindParam(addrMultipart, 0x01, 0x0b)
	s.Watch(p)

	p.SetValue(0x30, nil)

	if len(dev.sysex) != 1 {
		t.Fatalf("device received %d frames, want 1", len(dev.sysex))
	}
	want := []byte{0xf0, 0x43, 0x10, 0x4c, 0x08, 0x01, 0x0b, 0x30, 0xf7}
	if !bytes.Equal(dev.sysex[0], want) {
		t.Errorf("frame = % x, want % x", dev.sysex[0], want)
	}

	s.Unwatch(p)
	p.SetValue(0x31, nil)
	if len(dev.sysex) != 1 {
		t.Error("unwatched edit still reached the device")
	}
}

func TestCaptureStreamDrivesModel(t *testing.T) {
	s, dev, master := newTestSync()
	p, _ := master.FindRpnParam(0, 0x01<<7|0x08)

	s.Start()
	if dev.events == nil {
		t.Fatal("capture was not started on the device")
	}
	dev.events <- contracts.Event{
		Kind:    contracts.ReceivedNRPN,
		Channel: 0,
		Param:   0x01<<7 | 0x08,
		Value:   0x11,
	}

	deadline := time.After(2 * time.Second)
	for p.Value() != 0x11 {
		select {
		case <-deadline:
			t.Fatalf("Value() = %#x, want 0x11", p.Value())
		case <-time.After(5 * time.Millisecond):
		}
	}
	s.Close()
}

func TestCloseBeforeDeviceStops(t *testing.T) {
	s, dev, master := newTestSync()
	p, _ := master.FindRpnParam(0, 0x01<<7|0x08)

	s.Start()
	s.Close()
	s.Close()

	// The device side may still deliver after the synchronizer stopped;
	// the capture channel must accept (and ignore) such events.
	dev.events <- contracts.Event{
		Kind:    contracts.ReceivedNRPN,
		Channel: 0,
		Param:   0x01<<7 | 0x08,
		Value:   0x11,
	}
	time.Sleep(20 * time.Millisecond)
	if p.Value() != p.Def() {
		t.Errorf("Value() = %#x after close, want default %#x", p.Value(), p.Def())
	}
}
