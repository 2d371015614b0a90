package midi

import (
	"bytes"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/now-its-dark/qxgedit/sdk/contracts"
)

// nopLogger keeps test output quiet.
type nopLogger struct{}

type nopField struct{}

func (nopField) Bool(string, bool) contracts.Field      { return nopField{} }
func (nopField) Int(string, int) contracts.Field        { return nopField{} }
func (nopField) String(string, string) contracts.Field  { return nopField{} }
func (nopField) Time(string, time.Time) contracts.Field { return nopField{} }
func (nopField) Error(string, error) contracts.Field    { return nopField{} }
func (nopField) Uint64(string, uint64) contracts.Field  { return nopField{} }
func (nopField) Uint16(string, uint16) contracts.Field  { return nopField{} }
func (nopField) Uint8(string, uint8) contracts.Field    { return nopField{} }

func (nopLogger) Info(string, ...contracts.Field)  {}
func (nopLogger) Error(string, ...contracts.Field) {}
func (nopLogger) Debug(string, ...contracts.Field) {}
func (nopLogger) Warn(string, ...contracts.Field)  {}
func (nopLogger) Field() contracts.Field           { return nopField{} }
func (nopLogger) SetLevel(contracts.LogLevel)      {}

// fakeTransport is an in-memory backend for facade tests.
type fakeTransport struct {
	mu      sync.Mutex
	inputs  []string
	outputs []string
	sysex   [][]byte
	events  chan<- contracts.RawEvent
	closed  bool
}

func (f *fakeTransport) Inputs() []string  { return f.inputs }
func (f *fakeTransport) Outputs() []string { return f.outputs }

func (f *fakeTransport) ConnectInputs(selection []string) bool {
	return f.match(f.inputs, selection)
}

func (f *fakeTransport) ConnectOutputs(selection []string) bool {
	return f.match(f.outputs, selection)
}

func (f *fakeTransport) match(have, selection []string) bool {
	for _, item := range selection {
		for _, name := range have {
			if item == name {
				return true
			}
		}
	}
	return false
}

func (f *fakeTransport) SendSysex(data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sysex = append(f.sysex, append([]byte(nil), data...))
	return nil
}

func (f *fakeTransport) Start(events chan<- contracts.RawEvent) error {
	f.events = events
	return nil
}

func (f *fakeTransport) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeTransport) push(t *testing.T, data []byte) {
	t.Helper()
	select {
	case f.events <- contracts.RawEvent{Time: uint64(time.Now().UnixNano()), Data: data}:
	case <-time.After(time.Second):
		t.Fatal("raw event channel full")
	}
}

func newTestDevice(t *testing.T, transport contracts.Transport) contracts.Device {
	t.Helper()
	dev := NewDevice(
		contracts.WithLogger(nopLogger{}),
		contracts.WithTransport(transport),
	)
	t.Cleanup(func() { _ = dev.Close() })
	return dev
}

func waitEvent(t *testing.T, events <-chan contracts.Event) contracts.Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for decoded event")
		return contracts.Event{}
	}
}

func TestDeviceWithoutEndpoints(t *testing.T) {
	dev := newTestDevice(t, &fakeTransport{})

	if got := dev.Inputs(); len(got) != 0 {
		t.Errorf("Inputs() = %v, want empty", got)
	}
	if got := dev.Outputs(); len(got) != 0 {
		t.Errorf("Outputs() = %v, want empty", got)
	}
	if dev.ConnectInputs(nil) {
		t.Error("ConnectInputs(nil) = true, want false")
	}
	if dev.ConnectInputs([]string{"20:MU100 / 0:Port 1"}) {
		t.Error("ConnectInputs with no live endpoint = true, want false")
	}
}

// failingTransport opens but refuses to deliver.
type failingTransport struct {
	fakeTransport
}

func (f *failingTransport) Start(chan<- contracts.RawEvent) error {
	return errors.New("sequencer unavailable")
}

func TestFailedTransportDegradesToDisconnected(t *testing.T) {
	transport := &failingTransport{
		fakeTransport: fakeTransport{
			inputs:  []string{"20:MU100 / 0:Port 1"},
			outputs: []string{"20:MU100 / 0:Port 1"},
		},
	}
	dev := newTestDevice(t, transport)

	if !transport.closed {
		t.Error("abandoned transport was not closed")
	}
	if got := dev.Inputs(); len(got) != 0 {
		t.Errorf("Inputs() = %v, want empty", got)
	}
	if got := dev.Outputs(); len(got) != 0 {
		t.Errorf("Outputs() = %v, want empty", got)
	}
	if dev.ConnectInputs([]string{"20:MU100 / 0:Port 1"}) {
		t.Error("ConnectInputs on a dead transport = true, want false")
	}
	if dev.ConnectOutputs([]string{"20:MU100 / 0:Port 1"}) {
		t.Error("ConnectOutputs on a dead transport = true, want false")
	}
	if err := dev.SendSysex([]byte{0xf0, 0x43, 0x10, 0x4c, 0xf7}); err != nil {
		t.Errorf("SendSysex on a dead transport returned error: %v", err)
	}
	if len(transport.sysex) != 0 {
		t.Errorf("dead transport saw %d frames, want 0", len(transport.sysex))
	}
	if err := dev.Close(); err != nil {
		t.Errorf("Close() on a dead device returned error: %v", err)
	}
}

func TestSendSysexWithoutOutputIsNoOp(t *testing.T) {
	transport := &fakeTransport{}
	dev := newTestDevice(t, transport)

	if err := dev.SendSysex([]byte{0xf0, 0x43, 0x10, 0x4c, 0xf7}); err != nil {
		t.Fatalf("SendSysex returned error: %v", err)
	}
	// The facade forwards; whether the frame leaves the machine is the
	// backend's business, which has no destination here.
	if len(transport.sysex) != 1 {
		t.Fatalf("transport saw %d frames, want 1", len(transport.sysex))
	}
}

func TestConnectMatchesBySelection(t *testing.T) {
	transport := &fakeTransport{
		inputs:  []string{"20:MU100 / 0:Port 1"},
		outputs: []string{"20:MU100 / 0:Port 1"},
	}
	dev := newTestDevice(t, transport)

	if !dev.ConnectInputs([]string{"20:MU100 / 0:Port 1"}) {
		t.Error("matching input selection rejected")
	}
	if dev.ConnectOutputs([]string{"14:SC-88 / 0:Port A"}) {
		t.Error("non-matching output selection accepted")
	}
}

func TestCaptureDecodesNRPN(t *testing.T) {
	transport := &fakeTransport{}
	dev := newTestDevice(t, transport)

	events := make(chan contracts.Event, 16)
	dev.StartCapture(events)

	// NRPN selector pair plus data entry MSB on channel 0.
	transport.push(t, []byte{0xb0, 99, 1})
	transport.push(t, []byte{0xb0, 98, 2})
	transport.push(t, []byte{0xb0, 6, 64})
	// A SysEx frame both surfaces as an event and flushes the codec.
	frame := []byte{0xf0, 0x43, 0x10, 0x4c, 0x00, 0x00, 0x00, 0x00, 0xf7}
	transport.push(t, frame)

	ev := waitEvent(t, events)
	if ev.Kind != contracts.ReceivedSysex || !bytes.Equal(ev.Data, frame) {
		t.Fatalf("first event = %+v, want sysex %v", ev, frame)
	}

	ev = waitEvent(t, events)
	if ev.Kind != contracts.ReceivedNRPN {
		t.Fatalf("second event kind = %v, want NRPN", ev.Kind)
	}
	if ev.Channel != 0 || ev.Param != 1<<7|2 || ev.Value != 64 {
		t.Fatalf("decoded NRPN = %+v, want channel 0 param %d value 64", ev, 1<<7|2)
	}
}

func TestIdleTimeoutFlushesCodec(t *testing.T) {
	transport := &fakeTransport{}
	dev := newTestDevice(t, transport)

	events := make(chan contracts.Event, 16)
	dev.StartCapture(events)

	transport.push(t, []byte{0xb0, 101, 0})
	transport.push(t, []byte{0xb0, 100, 0})
	transport.push(t, []byte{0xb0, 6, 2}) // pitch bend sensitivity

	ev := waitEvent(t, events)
	if ev.Kind != contracts.ReceivedRPN || ev.Param != 0 || ev.Value != 2 {
		t.Fatalf("decoded RPN = %+v, want param 0 value 2", ev)
	}
}

func TestCloseIsIdempotentAndStopsCapture(t *testing.T) {
	transport := &fakeTransport{}
	dev := newTestDevice(t, transport)

	events := make(chan contracts.Event, 1)
	dev.StartCapture(events)

	if err := dev.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := dev.Close(); err != nil {
		t.Fatalf("second Close returned error: %v", err)
	}
	if !transport.closed {
		t.Error("transport not closed")
	}
}
