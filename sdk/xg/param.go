package xg

import (
	"fmt"
	"math/rand"
	"sync"
)

// Descriptor is the immutable metadata of a parameter: its display
// name, value bounds, factory default, payload size in data bytes and
// optional conversion hooks. Descriptors are shared between all
// parameter instances carrying the same meaning (one per part, per
// note, and so on).
type Descriptor struct {
	Name string
	Min  uint16
	Max  uint16
	Def  uint16
	Size uint16
	Unit string

	// Nibble selects the two-byte 4-bit encoding used by detune style
	// parameters instead of the plain 7-bit big-endian layout.
	Nibble bool

	// Block marks a raw byte-block parameter (voice names). Size is
	// then the block length and the value accessors are inert.
	Block bool

	// Getv converts a raw value to its display magnitude. Nil means
	// the identity conversion.
	Getv func(u uint16) float64

	// Getu converts a display magnitude back to a raw value.
	Getu func(v float64) uint16

	// Gets renders a raw value as display text, for enumerated
	// parameters. Nil falls back to the numeric magnitude.
	Gets func(u uint16) string
}

// Param is one live parameter instance at a fixed device address. All
// value access is safe for concurrent use; observer notification runs
// outside the lock against a snapshot of the observer list.
type Param struct {
	key   ParamKey
	desc  *Descriptor
	etype uint16

	mu        sync.Mutex
	value     uint16
	data      []byte
	busy      bool
	observers []Observer
}

// NewParam binds a descriptor to an address. The value starts at the
// descriptor default.
func NewParam(desc *Descriptor, high, mid, low uint16) *Param {
	p := &Param{
		key:   ParamKey{High: high, Mid: mid, Low: low},
		desc:  desc,
		value: desc.Def,
	}
	if desc.Block {
		p.data = make([]byte, desc.Size)
	}
	return p
}

// NewEffectParam binds an effect parameter whose descriptor depends on
// the currently selected effect type.
func NewEffectParam(desc *Descriptor, high, mid, low, etype uint16) *Param {
	p := NewParam(desc, high, mid, low)
	p.etype = etype
	return p
}

func (p *Param) Key() ParamKey { return p.key }
func (p *Param) High() uint16  { return p.key.High }
func (p *Param) Mid() uint16   { return p.key.Mid }
func (p *Param) Low() uint16   { return p.key.Low }

// Etype is the effect type this parameter belongs to, zero for
// ordinary parameters.
func (p *Param) Etype() uint16 { return p.etype }

func (p *Param) Name() string { return p.desc.Name }
func (p *Param) Min() uint16  { return p.desc.Min }
func (p *Param) Max() uint16  { return p.desc.Max }
func (p *Param) Def() uint16  { return p.desc.Def }
func (p *Param) Unit() string { return p.desc.Unit }

// Size is the number of data bytes the parameter occupies in a bulk or
// parameter-change payload.
func (p *Param) Size() uint16 {
	if p.desc.Size == 0 {
		return 1
	}
	return p.desc.Size
}

// Value returns the current raw value.
func (p *Param) Value() uint16 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.value
}

// SetValue clamps u into the descriptor bounds and stores it, then
// notifies every attached observer except sender. Storing a value
// equal to the current one notifies nobody.
func (p *Param) SetValue(u uint16, sender Observer) {
	if p.store(u) {
		p.NotifyUpdate(sender)
	}
}

// SetValueUpdate is SetValue without the equal-value suppression: the
// (clamped) value is stored and observers are always notified. Used
// when echoing device state so views refresh even on redundant input.
func (p *Param) SetValueUpdate(u uint16, sender Observer) {
	p.store(u)
	p.NotifyUpdate(sender)
}

func (p *Param) store(u uint16) bool {
	if u < p.desc.Min {
		u = p.desc.Min
	}
	if u > p.desc.Max {
		u = p.desc.Max
	}
	p.mu.Lock()
	changed := u != p.value
	p.value = u
	p.mu.Unlock()
	return changed
}

// Reset reverts the parameter to its descriptor default and notifies
// observers (except sender) with a reset, regardless of whether the
// value changed.
func (p *Param) Reset(sender Observer) {
	p.mu.Lock()
	p.value = p.desc.Def
	if p.desc.Block {
		for i := range p.data {
			p.data[i] = 0
		}
	}
	p.mu.Unlock()
	p.NotifyReset(sender)
}

// Attach registers an observer. Attaching the same observer twice has
// no effect.
func (p *Param) Attach(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, cur := range p.observers {
		if cur == o {
			return
		}
	}
	p.observers = append(p.observers, o)
}

// Detach removes an observer. Unknown observers are ignored.
func (p *Param) Detach(o Observer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, cur := range p.observers {
		if cur == o {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

// NotifyUpdate delivers an update to every attached observer except
// sender. Re-entrant notification is dropped.
func (p *Param) NotifyUpdate(sender Observer) {
	p.notify(sender, func(o Observer) { o.Update(p) })
}

// NotifyReset delivers a reset to every attached observer except
// sender. Re-entrant notification is dropped.
func (p *Param) NotifyReset(sender Observer) {
	p.notify(sender, func(o Observer) { o.Reset(p) })
}

func (p *Param) notify(sender Observer, fn func(Observer)) {
	p.mu.Lock()
	if p.busy {
		p.mu.Unlock()
		return
	}
	p.busy = true
	snapshot := make([]Observer, len(p.observers))
	copy(snapshot, p.observers)
	p.mu.Unlock()

	for _, o := range snapshot {
		if o != sender {
			fn(o)
		}
	}

	p.mu.Lock()
	p.busy = false
	p.mu.Unlock()
}

// Busy reports whether a notification round is in flight.
func (p *Param) Busy() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.busy
}

// RandomizeValue perturbs the current value by up to pct percent of
// itself in either direction, clamped into range.
func (p *Param) RandomizeValue(pct float64, sender Observer) {
	p.randomize(p.Value(), pct, sender)
}

// RandomizeDef perturbs the descriptor default by up to pct percent of
// itself in either direction, clamped into range.
func (p *Param) RandomizeDef(pct float64, sender Observer) {
	p.randomize(p.desc.Def, pct, sender)
}

func (p *Param) randomize(u uint16, pct float64, sender Observer) {
	span := pct * float64(u) / 100.0
	v := float64(u) + span*(2.0*rand.Float64()-1.0)
	if v < float64(p.desc.Min) {
		v = float64(p.desc.Min)
	}
	if v > float64(p.desc.Max) {
		v = float64(p.desc.Max)
	}
	p.SetValue(uint16(v+0.5), sender)
}

// Getv converts a raw value to its display magnitude.
func (p *Param) Getv(u uint16) float64 {
	if p.desc.Getv != nil {
		return p.desc.Getv(u)
	}
	return float64(u)
}

// Getu converts a display magnitude back to a raw value.
func (p *Param) Getu(v float64) uint16 {
	if p.desc.Getu != nil {
		return p.desc.Getu(v)
	}
	if v < 0 {
		return 0
	}
	return uint16(v + 0.5)
}

// Label is the parameter display name.
func (p *Param) Label() string { return p.desc.Name }

// Text renders the current value for display, with the unit when the
// descriptor carries one.
func (p *Param) Text() string {
	u := p.Value()
	var s string
	if p.desc.Gets != nil {
		s = p.desc.Gets(u)
	} else {
		s = fmt.Sprintf("%g", p.Getv(u))
	}
	if p.desc.Unit != "" {
		s += " " + p.desc.Unit
	}
	return s
}

// EncodeData renders the current value as the raw data bytes of the
// parameter's payload: big-endian 7-bit bytes, or two 4-bit nibbles
// for nibble-encoded parameters, or the stored block for byte-block
// parameters.
func (p *Param) EncodeData() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.desc.Block {
		out := make([]byte, len(p.data))
		copy(out, p.data)
		return out
	}
	if p.desc.Nibble {
		return []byte{byte(p.value>>4) & 0x0f, byte(p.value) & 0x0f}
	}
	size := int(p.Size())
	out := make([]byte, size)
	for i := 0; i < size; i++ {
		out[i] = byte(p.value>>(7*uint(size-1-i))) & 0x7f
	}
	return out
}

// DecodeData reads a raw value out of payload data bytes, inverting
// the EncodeData layout. Byte-block parameters always decode to zero.
func (p *Param) DecodeData(data []byte) uint16 {
	if p.desc.Block {
		return 0
	}
	if p.desc.Nibble {
		if len(data) < 2 {
			return 0
		}
		return uint16(data[0]&0x0f)<<4 | uint16(data[1]&0x0f)
	}
	size := int(p.Size())
	if len(data) < size {
		size = len(data)
	}
	var u uint16
	for i := 0; i < size; i++ {
		u = u<<7 | uint16(data[i]&0x7f)
	}
	return u
}

// Data returns a copy of the raw byte block of a block parameter, nil
// for ordinary parameters.
func (p *Param) Data() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.desc.Block {
		return nil
	}
	out := make([]byte, len(p.data))
	copy(out, p.data)
	return out
}

// SetData stores the byte block of a block parameter, truncating or
// zero-padding to the descriptor size, and notifies observers except
// sender. Ordinary parameters ignore it.
func (p *Param) SetData(data []byte, sender Observer) {
	p.mu.Lock()
	if !p.desc.Block {
		p.mu.Unlock()
		return
	}
	for i := range p.data {
		if i < len(data) {
			p.data[i] = data[i]
		} else {
			p.data[i] = 0
		}
	}
	p.mu.Unlock()
	p.NotifyUpdate(sender)
}
