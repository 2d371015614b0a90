package xg

import "sync"

// MasterMap is the complete parameter model of one device: the seven
// functional group maps plus a flat address index and the RPN/NRPN
// registry. Construct one per device with NewMasterMap; instances are
// independent.
type MasterMap struct {
	System    *ParamMap
	Reverb    *ParamMap
	Chorus    *ParamMap
	Variation *ParamMap
	Multipart *ParamMap
	Drumsetup *ParamMap
	Uservoice *ParamMap

	mu     sync.Mutex
	index  map[ParamKey][]*Param
	owners map[*Param]*ParamMap
	rpn    map[RpnKey]*Param
}

// NewMasterMap builds the full parameter model with every descriptor
// table instantiated and all registries populated.
func NewMasterMap() *MasterMap {
	m := &MasterMap{
		System:    NewParamMap("SYSTEM"),
		Reverb:    NewParamMap("REVERB"),
		Chorus:    NewParamMap("CHORUS"),
		Variation: NewParamMap("VARIATION"),
		Multipart: NewParamMap("MULTIPART"),
		Drumsetup: NewParamMap("DRUMSETUP"),
		Uservoice: NewParamMap("USERVOICE"),
		index:     make(map[ParamKey][]*Param),
		owners:    make(map[*Param]*ParamMap),
		rpn:       make(map[RpnKey]*Param),
	}
	buildModel(m)
	return m
}

// AddParam registers a parameter in its group map under the given
// selector key and in the flat address index.
func (m *MasterMap) AddParam(p *Param, group *ParamMap, key uint16) {
	group.AddParam(p, key)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.index[p.Key()] = append(m.index[p.Key()], p)
	m.owners[p] = group
}

// AddRpnParam binds an RPN/NRPN number on a channel to a parameter, so
// incoming data entry streams address it directly.
func (m *MasterMap) AddRpnParam(ch uint8, number uint16, p *Param) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rpn[RpnKey{Channel: ch, Param: number}] = p
}

// FindParam resolves a device address to its parameter. Repeated calls
// return the same instance. The second result is false for unknown
// addresses.
func (m *MasterMap) FindParam(high, mid, low uint16) (*Param, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.index[ParamKey{High: high, Mid: mid, Low: low}]
	if len(entries) == 0 {
		return nil, false
	}
	return entries[0], true
}

// FindParamEtype resolves an effect parameter address for a specific
// effect type. Addresses shared between effect types keep one entry
// per type; the entry matching etype wins, with the type-neutral entry
// as fallback.
func (m *MasterMap) FindParamEtype(high, mid, low, etype uint16) (*Param, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entries := m.index[ParamKey{High: high, Mid: mid, Low: low}]
	var neutral *Param
	for _, p := range entries {
		if p.Etype() == etype {
			return p, true
		}
		if p.Etype() == 0 && neutral == nil {
			neutral = p
		}
	}
	if neutral != nil {
		return neutral, true
	}
	return nil, false
}

// FindParamMap returns the group map owning a parameter, nil when the
// parameter is not registered.
func (m *MasterMap) FindParamMap(p *Param) *ParamMap {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.owners[p]
}

// FindRpnParam resolves an RPN/NRPN number on a channel. The second
// result is false when the number is not bound.
func (m *MasterMap) FindRpnParam(ch uint8, number uint16) (*Param, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.rpn[RpnKey{Channel: ch, Param: number}]
	return p, ok
}

// ResetAll reverts every group map to factory defaults.
func (m *MasterMap) ResetAll(sender Observer) {
	for _, g := range m.groups() {
		g.Reset(sender)
	}
}

func (m *MasterMap) groups() []*ParamMap {
	return []*ParamMap{
		m.System, m.Reverb, m.Chorus, m.Variation,
		m.Multipart, m.Drumsetup, m.Uservoice,
	}
}
