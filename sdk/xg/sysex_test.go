package xg

import (
	"bytes"
	"testing"
)

func TestEncodeParamChange(t *testing.T) {
	m := NewMasterMap()

	p, _ := m.FindParam(addrMultipart, 0x02, 0x0b)
	p.SetValue(0x45, nil)
	got := EncodeParamChange(0, p)
	want := []byte{0xf0, 0x43, 0x10, 0x4c, 0x08, 0x02, 0x0b, 0x45, 0xf7}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeParamChange() = % x, want % x", got, want)
	}

	tune, _ := m.FindParam(addrSystem, 0x00, 0x00)
	got = EncodeParamChange(2, tune)
	want = []byte{0xf0, 0x43, 0x12, 0x4c, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08, 0x00, 0xf7}
	if !bytes.Equal(got, want) {
		t.Errorf("EncodeParamChange() = % x, want % x", got, want)
	}
}

func TestParseParamChange(t *testing.T) {
	key, data, ok := ParseParamChange([]byte{0xf0, 0x43, 0x10, 0x4c, 0x08, 0x02, 0x0b, 0x45, 0xf7})
	if !ok {
		t.Fatal("valid frame rejected")
	}
	if key != (ParamKey{High: 0x08, Mid: 0x02, Low: 0x0b}) {
		t.Errorf("key = %v, want 08:02:0b", key)
	}
	if !bytes.Equal(data, []byte{0x45}) {
		t.Errorf("data = % x, want 45", data)
	}
}

func TestParseParamChangeRejects(t *testing.T) {
	tests := []struct {
		name  string
		frame []byte
	}{
		{"too short", []byte{0xf0, 0x43, 0x10, 0x4c, 0xf7}},
		{"wrong manufacturer", []byte{0xf0, 0x41, 0x10, 0x4c, 0x08, 0x02, 0x0b, 0x45, 0xf7}},
		{"bulk dump", []byte{0xf0, 0x43, 0x00, 0x4c, 0x08, 0x02, 0x0b, 0x45, 0xf7}},
		{"wrong model", []byte{0xf0, 0x43, 0x10, 0x2b, 0x08, 0x02, 0x0b, 0x45, 0xf7}},
		{"unterminated", []byte{0xf0, 0x43, 0x10, 0x4c, 0x08, 0x02, 0x0b, 0x45, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, ok := ParseParamChange(tt.frame); ok {
				t.Error("invalid frame accepted")
			}
		})
	}
}
