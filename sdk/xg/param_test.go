package xg

import (
	"bytes"
	"testing"
)

type recorder struct {
	updates []*Param
	resets  []*Param
}

func (r *recorder) Update(p *Param) { r.updates = append(r.updates, p) }
func (r *recorder) Reset(p *Param)  { r.resets = append(r.resets, p) }

func testDesc() *Descriptor {
	return &Descriptor{Name: "VOLUME", Min: 10, Max: 100, Def: 64, Size: 1}
}

func TestSetValueClamps(t *testing.T) {
	tests := []struct {
		name string
		in   uint16
		want uint16
	}{
		{"below min", 3, 10},
		{"above max", 300, 100},
		{"in range", 42, 42},
		{"at min", 10, 10},
		{"at max", 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParam(testDesc(), 0x08, 0x00, 0x0b)
			p.SetValue(tt.in, nil)
			if got := p.Value(); got != tt.want {
				t.Errorf("Value() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEqualValueSuppressesNotify(t *testing.T) {
	p := NewParam(testDesc(), 0x08, 0x00, 0x0b)
	r := &recorder{}
	p.Attach(r)

	p.SetValue(64, nil)
	if len(r.updates) != 0 {
		t.Fatalf("unchanged SetValue notified %d observers", len(r.updates))
	}

	p.SetValueUpdate(64, nil)
	if len(r.updates) != 1 {
		t.Fatalf("SetValueUpdate notified %d times, want 1", len(r.updates))
	}
}

func TestSenderIsExcluded(t *testing.T) {
	p := NewParam(testDesc(), 0x08, 0x00, 0x0b)
	sender := &recorder{}
	other := &recorder{}
	p.Attach(sender)
	p.Attach(other)

	p.SetValue(50, sender)

	if len(sender.updates) != 0 {
		t.Errorf("sender was notified of its own change")
	}
	if len(other.updates) != 1 {
		t.Errorf("other observer notified %d times, want 1", len(other.updates))
	}
}

func TestReentrantNotifyIsDropped(t *testing.T) {
	p := NewParam(testDesc(), 0x08, 0x00, 0x0b)
	var calls int
	o := &ObserverFunc{}
	o.OnUpdate = func(q *Param) {
		calls++
		if calls > 3 {
			t.Fatal("notification recursion was not stopped")
		}
		q.SetValueUpdate(q.Value(), nil)
	}
	p.Attach(o)

	p.SetValue(50, nil)
	if calls != 1 {
		t.Errorf("observer ran %d times, want 1", calls)
	}
	if p.Busy() {
		t.Error("busy flag stuck after notification")
	}
}

func TestResetAlwaysNotifies(t *testing.T) {
	p := NewParam(testDesc(), 0x08, 0x00, 0x0b)
	r := &recorder{}
	p.Attach(r)

	p.Reset(nil)
	if p.Value() != 64 {
		t.Errorf("Value() = %d after reset, want 64", p.Value())
	}
	if len(r.resets) != 1 {
		t.Errorf("reset notified %d times, want 1", len(r.resets))
	}
}

func TestDetachStopsNotifications(t *testing.T) {
	p := NewParam(testDesc(), 0x08, 0x00, 0x0b)
	r := &recorder{}
	p.Attach(r)
	p.Attach(r)
	p.Detach(r)

	p.SetValue(50, nil)
	if len(r.updates) != 0 {
		t.Errorf("detached observer still notified %d times", len(r.updates))
	}
}

func TestRandomizeStaysInBounds(t *testing.T) {
	p := NewParam(testDesc(), 0x08, 0x00, 0x0b)
	for i := 0; i < 200; i++ {
		p.RandomizeValue(100, nil)
		if v := p.Value(); v < p.Min() || v > p.Max() {
			t.Fatalf("randomized value %d outside [%d, %d]", v, p.Min(), p.Max())
		}
	}
}

func TestEncodeDecodeData(t *testing.T) {
	tests := []struct {
		name  string
		desc  *Descriptor
		value uint16
		want  []byte
	}{
		{
			"single byte",
			&Descriptor{Name: "LEVEL", Max: 0x7f, Size: 1},
			0x45,
			[]byte{0x45},
		},
		{
			"two byte",
			&Descriptor{Name: "TYPE", Max: 0x3fff, Size: 2},
			0x0180,
			[]byte{0x03, 0x00},
		},
		{
			"four byte tune",
			&Descriptor{Name: "MASTER TUNE", Max: 0x07ff, Size: 4},
			0x0400,
			[]byte{0x00, 0x00, 0x08, 0x00},
		},
		{
			"nibble detune",
			&Descriptor{Name: "DETUNE", Max: 0xff, Size: 2, Nibble: true},
			0xb7,
			[]byte{0x0b, 0x07},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParam(tt.desc, 0, 0, 0)
			p.SetValue(tt.value, nil)
			data := p.EncodeData()
			if !bytes.Equal(data, tt.want) {
				t.Fatalf("EncodeData() = % x, want % x", data, tt.want)
			}
			if got := p.DecodeData(data); got != tt.value {
				t.Errorf("DecodeData() = %#x, want %#x", got, tt.value)
			}
		})
	}
}

func TestBlockParamData(t *testing.T) {
	desc := &Descriptor{Name: "VOICE NAME", Size: 8, Block: true}
	p := NewParam(desc, 0x11, 0x00, 0x00)
	r := &recorder{}
	p.Attach(r)

	p.SetData([]byte("Lead"), nil)
	want := []byte{'L', 'e', 'a', 'd', 0, 0, 0, 0}
	if !bytes.Equal(p.Data(), want) {
		t.Errorf("Data() = % x, want % x", p.Data(), want)
	}
	if len(r.updates) != 1 {
		t.Errorf("SetData notified %d times, want 1", len(r.updates))
	}
	if !bytes.Equal(p.EncodeData(), want) {
		t.Errorf("EncodeData() = % x, want % x", p.EncodeData(), want)
	}

	p.Reset(nil)
	if !bytes.Equal(p.Data(), make([]byte, 8)) {
		t.Errorf("Data() = % x after reset, want zeros", p.Data())
	}
}

func TestText(t *testing.T) {
	getv, getu := centered(0x40)
	desc := &Descriptor{Name: "NOTE SHIFT", Min: 0x28, Max: 0x58, Def: 0x40, Size: 1, Unit: "semitone", Getv: getv, Getu: getu}
	p := NewParam(desc, 0x08, 0x00, 0x08)
	p.SetValue(0x44, nil)
	if got := p.Text(); got != "4 semitone" {
		t.Errorf("Text() = %q, want %q", got, "4 semitone")
	}
	if got := p.Getu(4); got != 0x44 {
		t.Errorf("Getu(4) = %#x, want 0x44", got)
	}
}
