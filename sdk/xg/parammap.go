package xg

import (
	"sort"
	"sync"
)

// ParamSet holds the parameters of one selector key, indexed by their
// low address component.
type ParamSet map[uint16]*Param

// ParamMap groups related parameters behind a selectable current key
// (part number, drum note, voice number). Lookups resolve against the
// parameters of the current key only; changing the key broadcasts a
// reset to the map's observers so views reload the newly visible set.
type ParamMap struct {
	name string

	mu          sync.Mutex
	sets        map[uint16]ParamSet
	keyNames    map[uint16]string
	keyParam    *Param
	key         uint16
	elementBase uint16
	elementSize uint16
	element     uint16

	observers []Observer
	watcher   *ObserverFunc
}

// NewParamMap creates an empty map with a display name.
func NewParamMap(name string) *ParamMap {
	m := &ParamMap{
		name:     name,
		sets:     make(map[uint16]ParamSet),
		keyNames: make(map[uint16]string),
	}
	m.watcher = &ObserverFunc{
		OnReset:  func(*Param) { m.NotifyReset() },
		OnUpdate: func(*Param) { m.NotifyReset() },
	}
	return m
}

// Name is the map's display name.
func (m *ParamMap) Name() string { return m.name }

// AddParam registers a parameter under the given selector key, indexed
// by its low address component. Re-registering the same slot replaces
// the previous instance.
func (m *ParamMap) AddParam(p *Param, key uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	set, ok := m.sets[key]
	if !ok {
		set = make(ParamSet)
		m.sets[key] = set
	}
	set[p.Low()] = p
}

// AddKey registers a display name for a selector key value.
func (m *ParamMap) AddKey(key uint16, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keyNames[key] = name
}

// KeyName returns the display name of a selector key value, empty when
// none was registered.
func (m *ParamMap) KeyName(key uint16) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyNames[key]
}

// Keys lists the registered key values in ascending order.
func (m *ParamMap) Keys() []uint16 {
	m.mu.Lock()
	keys := make([]uint16, 0, len(m.keyNames))
	for k := range m.keyNames {
		keys = append(keys, k)
	}
	m.mu.Unlock()
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// SetKeyParam wires a parameter as the map's key selector: its value
// is the current key, and every change to it broadcasts a map reset.
func (m *ParamMap) SetKeyParam(p *Param) {
	m.mu.Lock()
	old := m.keyParam
	m.keyParam = p
	m.mu.Unlock()
	if old != nil {
		old.Detach(m.watcher)
	}
	if p != nil {
		p.Attach(m.watcher)
	}
}

// KeyParam returns the key selector parameter, nil when the map keeps
// its key directly.
func (m *ParamMap) KeyParam() *Param {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.keyParam
}

// CurrentKey is the selector key lookups resolve against.
func (m *ParamMap) CurrentKey() uint16 {
	m.mu.Lock()
	kp := m.keyParam
	key := m.key
	m.mu.Unlock()
	if kp != nil {
		return kp.Value()
	}
	return key
}

// SetCurrentKey switches the current key. With a key parameter wired
// the value change flows through it and its observers; otherwise the
// map broadcasts the reset itself.
func (m *ParamMap) SetCurrentKey(key uint16) {
	m.mu.Lock()
	kp := m.keyParam
	if kp == nil {
		m.key = key
	}
	m.mu.Unlock()
	if kp != nil {
		kp.SetValue(key, nil)
		return
	}
	m.NotifyReset()
}

// SetElements configures element addressing for maps whose layout
// repeats a block of parameters per element: ids at or above base are
// shifted by the current element times size. A zero size disables
// element addressing.
func (m *ParamMap) SetElements(base, size uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.elementBase = base
	m.elementSize = size
}

// Elements returns the element block base and size.
func (m *ParamMap) Elements() (base, size uint16) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elementBase, m.elementSize
}

// SetCurrentElement switches the element offset applied to lookups.
func (m *ParamMap) SetCurrentElement(element uint16) {
	m.mu.Lock()
	m.element = element
	m.mu.Unlock()
	m.NotifyReset()
}

// CurrentElement returns the element offset applied to lookups.
func (m *ParamMap) CurrentElement() uint16 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.element
}

// FindParam resolves id within the current key's set, applying the
// element stride when one is configured. Repeated lookups return the
// same instance. The second result is false when no parameter lives at
// that slot.
func (m *ParamMap) FindParam(id uint16) (*Param, bool) {
	key := m.CurrentKey()
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.elementSize > 0 && id >= m.elementBase {
		id += m.element * m.elementSize
	}
	set, ok := m.sets[key]
	if !ok {
		return nil, false
	}
	p, ok := set[id]
	return p, ok
}

// ParamSet returns the set of the current key, nil when the key has no
// parameters.
func (m *ParamMap) ParamSet() ParamSet {
	key := m.CurrentKey()
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sets[key]
}

// Attach registers a map-level observer, notified with a reset when
// the current key or element changes.
func (m *ParamMap) Attach(o Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cur := range m.observers {
		if cur == o {
			return
		}
	}
	m.observers = append(m.observers, o)
}

// Detach removes a map-level observer.
func (m *ParamMap) Detach(o Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, cur := range m.observers {
		if cur == o {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// NotifyReset broadcasts a reset to the map-level observers. The
// argument handed to observers is the key parameter, possibly nil.
func (m *ParamMap) NotifyReset() {
	m.mu.Lock()
	kp := m.keyParam
	snapshot := make([]Observer, len(m.observers))
	copy(snapshot, m.observers)
	m.mu.Unlock()
	for _, o := range snapshot {
		o.Reset(kp)
	}
}

// Reset reverts every parameter in the map, across all keys, to its
// descriptor default.
func (m *ParamMap) Reset(sender Observer) {
	for _, p := range m.allParams() {
		p.Reset(sender)
	}
}

// RandomizeValue perturbs every parameter of the current key's set by
// up to pct percent of its range.
func (m *ParamMap) RandomizeValue(pct float64, sender Observer) {
	set := m.ParamSet()
	for _, p := range set {
		p.RandomizeValue(pct, sender)
	}
}

// RandomizeDef perturbs every parameter of the current key's set
// around its descriptor default by up to pct percent of its range.
func (m *ParamMap) RandomizeDef(pct float64, sender Observer) {
	set := m.ParamSet()
	for _, p := range set {
		p.RandomizeDef(pct, sender)
	}
}

func (m *ParamMap) allParams() []*Param {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*Param
	for _, set := range m.sets {
		for _, p := range set {
			out = append(out, p)
		}
	}
	return out
}
