package xg

import "fmt"

// Address high components of the XG parameter space.
const (
	addrSystem    = 0x00
	addrEffect    = 0x02
	addrMultipart = 0x08
	addrUservoice = 0x11
	addrDrumsetup = 0x30
)

// Effect address mid component and slot lows.
const (
	effectMid         = 0x01
	reverbTypeLow     = 0x00
	reverbParamLow    = 0x02
	chorusTypeLow     = 0x20
	chorusParamLow    = 0x22
	variationTypeLow  = 0x40
	variationParamLow = 0x42
)

// Drum note range of the drum setup map.
const (
	drumNoteFirst = 0x0d
	drumNoteLast  = 0x54
)

// User voice element block layout: two element blocks starting at
// elementBase, elementSize lows apart.
const (
	uservoiceElementBase = 0x3d
	uservoiceElementSize = 0x32
	uservoiceCount       = 0x20
)

func centered(center uint16) (func(uint16) float64, func(float64) uint16) {
	getv := func(u uint16) float64 { return float64(u) - float64(center) }
	getu := func(v float64) uint16 {
		v += float64(center)
		if v < 0 {
			return 0
		}
		return uint16(v + 0.5)
	}
	return getv, getu
}

func scaled(center uint16, scale float64) (func(uint16) float64, func(float64) uint16) {
	getv := func(u uint16) float64 { return (float64(u) - float64(center)) * scale }
	getu := func(v float64) uint16 {
		v = v/scale + float64(center)
		if v < 0 {
			return 0
		}
		return uint16(v + 0.5)
	}
	return getv, getu
}

func enumText(names map[uint16]string) func(uint16) string {
	return func(u uint16) string {
		if s, ok := names[u]; ok {
			return s
		}
		return fmt.Sprintf("%d", u)
	}
}

// paramItem binds one descriptor to a low address offset.
type paramItem struct {
	low  uint16
	desc *Descriptor
}

func mkdesc(name string, min, max, def, size uint16, unit string) *Descriptor {
	return &Descriptor{Name: name, Min: min, Max: max, Def: def, Size: size, Unit: unit}
}

var (
	tuneGetv, tuneGetu           = scaled(1024, 0.1)
	semitoneGetv, semitoneGetu   = centered(0x40)
	panGetv, panGetu             = centered(0x40)
	offsetGetv, offsetGetu       = centered(0x40)
	detuneGetv, detuneGetu       = scaled(0x80, 0.1)
	drumCoarseGetv, drumCoarseGu = centered(0x40)
)

var systemParams = []paramItem{
	{0x00, &Descriptor{Name: "MASTER TUNE", Min: 0x0000, Max: 0x07ff, Def: 0x0400, Size: 4, Unit: "cent", Getv: tuneGetv, Getu: tuneGetu}},
	{0x04, mkdesc("MASTER VOLUME", 0x00, 0x7f, 0x7f, 1, "")},
	{0x06, &Descriptor{Name: "TRANSPOSE", Min: 0x28, Max: 0x58, Def: 0x40, Size: 1, Unit: "semitone", Getv: semitoneGetv, Getu: semitoneGetu}},
	{0x7d, mkdesc("DRUM SETUP RESET", 0x00, 0x01, 0x00, 1, "")},
	{0x7e, mkdesc("XG SYSTEM ON", 0x00, 0x00, 0x00, 1, "")},
	{0x7f, mkdesc("ALL PARAMETER RESET", 0x00, 0x00, 0x00, 1, "")},
}

// Effect type identifiers (type MSB).
const (
	etypeHall     = 0x01
	etypeRoom     = 0x02
	etypeDelayLCR = 0x05
	etypeChorus   = 0x41
	etypeFlanger  = 0x43
	etypePhaser   = 0x48
	etypeNoEffect = 0x00
	etypeThru     = 0x40
)

var reverbTypeNames = map[uint16]string{
	etypeNoEffect << 7: "NO EFFECT",
	etypeHall<<7 | 0:   "HALL 1",
	etypeHall<<7 | 1:   "HALL 2",
	etypeRoom<<7 | 0:   "ROOM 1",
	etypeRoom<<7 | 1:   "ROOM 2",
}

var chorusTypeNames = map[uint16]string{
	etypeNoEffect << 7:  "NO EFFECT",
	etypeChorus<<7 | 0:  "CHORUS 1",
	etypeChorus<<7 | 1:  "CHORUS 2",
	etypeFlanger<<7 | 0: "FLANGER 1",
	etypeThru << 7:      "THRU",
}

var variationTypeNames = map[uint16]string{
	etypeNoEffect << 7:   "NO EFFECT",
	etypeDelayLCR<<7 | 0: "DELAY L,C,R",
	etypePhaser<<7 | 0:   "PHASER 1",
	etypeThru << 7:       "THRU",
}

// Per-effect-type descriptors of the ten effect parameter slots.
// Unlisted slots fall back to the type-neutral generic descriptor.
var effectParams = map[uint16][]*Descriptor{
	etypeHall: {
		mkdesc("REVERB TIME", 0x00, 0x45, 0x12, 1, ""),
		mkdesc("DIFFUSION", 0x00, 0x0a, 0x0a, 1, ""),
		mkdesc("INITIAL DELAY", 0x00, 0x3f, 0x08, 1, ""),
		mkdesc("HPF CUTOFF", 0x00, 0x34, 0x0d, 1, ""),
		mkdesc("LPF CUTOFF", 0x22, 0x3c, 0x31, 1, ""),
	},
	etypeRoom: {
		mkdesc("REVERB TIME", 0x00, 0x45, 0x0d, 1, ""),
		mkdesc("DIFFUSION", 0x00, 0x0a, 0x0a, 1, ""),
		mkdesc("INITIAL DELAY", 0x00, 0x3f, 0x05, 1, ""),
		mkdesc("HPF CUTOFF", 0x00, 0x34, 0x0d, 1, ""),
		mkdesc("LPF CUTOFF", 0x22, 0x3c, 0x31, 1, ""),
	},
	etypeChorus: {
		mkdesc("LFO FREQUENCY", 0x00, 0x7f, 0x06, 1, "Hz"),
		mkdesc("LFO PM DEPTH", 0x00, 0x7f, 0x36, 1, ""),
		mkdesc("FEEDBACK LEVEL", 0x01, 0x7f, 0x4d, 1, ""),
		mkdesc("DELAY OFFSET", 0x00, 0x7f, 0x00, 1, "ms"),
	},
	etypeFlanger: {
		mkdesc("LFO FREQUENCY", 0x00, 0x7f, 0x0e, 1, "Hz"),
		mkdesc("LFO PM DEPTH", 0x00, 0x7f, 0x0e, 1, ""),
		mkdesc("FEEDBACK LEVEL", 0x01, 0x7f, 0x60, 1, ""),
		mkdesc("DELAY OFFSET", 0x00, 0x3f, 0x00, 1, "ms"),
	},
	etypeDelayLCR: {
		mkdesc("LCH DELAY", 0x01, 0x3e7f, 0x1a80, 2, "ms"),
		mkdesc("RCH DELAY", 0x01, 0x3e7f, 0x1d00, 2, "ms"),
		mkdesc("CCH DELAY", 0x01, 0x3e7f, 0x1b80, 2, "ms"),
		mkdesc("FEEDBACK DELAY", 0x01, 0x3e7f, 0x1b80, 2, "ms"),
		mkdesc("FEEDBACK LEVEL", 0x01, 0x7f, 0x50, 2, ""),
	},
	etypePhaser: {
		mkdesc("LFO FREQUENCY", 0x00, 0x7f, 0x08, 2, "Hz"),
		mkdesc("LFO DEPTH", 0x00, 0x7f, 0x6f, 2, ""),
		mkdesc("PHASE SHIFT OFFSET", 0x00, 0x7f, 0x0c, 2, ""),
		mkdesc("FEEDBACK LEVEL", 0x01, 0x7f, 0x54, 2, ""),
	},
}

var multipartParams = []paramItem{
	{0x00, mkdesc("ELEMENT RESERVE", 0x00, 0x20, 0x02, 1, "")},
	{0x01, mkdesc("BANK SELECT MSB", 0x00, 0x7f, 0x00, 1, "")},
	{0x02, mkdesc("BANK SELECT LSB", 0x00, 0x7f, 0x00, 1, "")},
	{0x03, mkdesc("PROGRAM NUMBER", 0x00, 0x7f, 0x00, 1, "")},
	{0x04, mkdesc("RCV CHANNEL", 0x00, 0x0f, 0x00, 1, "")},
	{0x05, mkdesc("MONO/POLY MODE", 0x00, 0x01, 0x01, 1, "")},
	{0x06, mkdesc("KEY ON ASSIGN", 0x00, 0x02, 0x00, 1, "")},
	{0x07, mkdesc("PART MODE", 0x00, 0x03, 0x00, 1, "")},
	{0x08, &Descriptor{Name: "NOTE SHIFT", Min: 0x28, Max: 0x58, Def: 0x40, Size: 1, Unit: "semitone", Getv: semitoneGetv, Getu: semitoneGetu}},
	{0x09, &Descriptor{Name: "DETUNE", Min: 0x00, Max: 0xff, Def: 0x80, Size: 2, Unit: "Hz", Nibble: true, Getv: detuneGetv, Getu: detuneGetu}},
	{0x0b, mkdesc("VOLUME", 0x00, 0x7f, 0x40, 1, "")},
	{0x0c, mkdesc("VELOCITY SENSE DEPTH", 0x00, 0x7f, 0x40, 1, "")},
	{0x0d, mkdesc("VELOCITY SENSE OFFSET", 0x00, 0x7f, 0x40, 1, "")},
	{0x0e, &Descriptor{Name: "PAN", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: panGetv, Getu: panGetu}},
	{0x0f, mkdesc("NOTE LIMIT LOW", 0x00, 0x7f, 0x00, 1, "")},
	{0x10, mkdesc("NOTE LIMIT HIGH", 0x00, 0x7f, 0x7f, 1, "")},
	{0x11, mkdesc("DRY LEVEL", 0x00, 0x7f, 0x7f, 1, "")},
	{0x12, mkdesc("CHORUS SEND", 0x00, 0x7f, 0x00, 1, "")},
	{0x13, mkdesc("REVERB SEND", 0x00, 0x7f, 0x28, 1, "")},
	{0x14, mkdesc("VARIATION SEND", 0x00, 0x7f, 0x00, 1, "")},
	{0x15, &Descriptor{Name: "VIBRATO RATE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x16, &Descriptor{Name: "VIBRATO DEPTH", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x17, &Descriptor{Name: "VIBRATO DELAY", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x18, &Descriptor{Name: "FILTER CUTOFF", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x19, &Descriptor{Name: "FILTER RESONANCE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x1a, &Descriptor{Name: "EG ATTACK TIME", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x1b, &Descriptor{Name: "EG DECAY TIME", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x1c, &Descriptor{Name: "EG RELEASE TIME", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x1d, &Descriptor{Name: "MW PITCH CONTROL", Min: 0x28, Max: 0x58, Def: 0x40, Size: 1, Unit: "semitone", Getv: semitoneGetv, Getu: semitoneGetu}},
	{0x23, &Descriptor{Name: "PB PITCH CONTROL", Min: 0x28, Max: 0x58, Def: 0x42, Size: 1, Unit: "semitone", Getv: semitoneGetv, Getu: semitoneGetu}},
}

var drumsetupParams = []paramItem{
	{0x00, &Descriptor{Name: "PITCH COARSE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Unit: "semitone", Getv: drumCoarseGetv, Getu: drumCoarseGu}},
	{0x01, &Descriptor{Name: "PITCH FINE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Unit: "cent", Getv: offsetGetv, Getu: offsetGetu}},
	{0x02, mkdesc("LEVEL", 0x00, 0x7f, 0x40, 1, "")},
	{0x03, mkdesc("ALTERNATE GROUP", 0x00, 0x7f, 0x00, 1, "")},
	{0x04, &Descriptor{Name: "PAN", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: panGetv, Getu: panGetu}},
	{0x05, mkdesc("REVERB SEND", 0x00, 0x7f, 0x40, 1, "")},
	{0x06, mkdesc("CHORUS SEND", 0x00, 0x7f, 0x00, 1, "")},
	{0x07, mkdesc("VARIATION SEND", 0x00, 0x7f, 0x7f, 1, "")},
	{0x08, mkdesc("KEY ASSIGN", 0x00, 0x01, 0x00, 1, "")},
	{0x09, mkdesc("RCV NOTE OFF", 0x00, 0x01, 0x00, 1, "")},
	{0x0a, mkdesc("RCV NOTE ON", 0x00, 0x01, 0x01, 1, "")},
	{0x0b, &Descriptor{Name: "FILTER CUTOFF", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x0c, &Descriptor{Name: "FILTER RESONANCE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x0d, &Descriptor{Name: "EG ATTACK RATE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x0e, &Descriptor{Name: "EG DECAY1 RATE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
	{0x0f, &Descriptor{Name: "EG DECAY2 RATE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: offsetGetv, Getu: offsetGetu}},
}

var uservoiceCommonParams = []paramItem{
	{0x00, &Descriptor{Name: "VOICE NAME", Min: 0, Max: 0, Def: 0, Size: 8, Block: true}},
	{0x0b, mkdesc("ELEMENT SWITCH", 0x00, 0x03, 0x01, 1, "")},
	{0x0c, mkdesc("VOICE LEVEL", 0x00, 0x7f, 0x40, 1, "")},
}

var uservoiceElementParams = []paramItem{
	{0x00, mkdesc("WAVE NUMBER", 0x00, 0x7f, 0x00, 2, "")},
	{0x02, mkdesc("NOTE LIMIT LOW", 0x00, 0x7f, 0x00, 1, "")},
	{0x03, mkdesc("NOTE LIMIT HIGH", 0x00, 0x7f, 0x7f, 1, "")},
	{0x04, mkdesc("VELOCITY LIMIT LOW", 0x01, 0x7f, 0x01, 1, "")},
	{0x05, mkdesc("VELOCITY LIMIT HIGH", 0x01, 0x7f, 0x7f, 1, "")},
	{0x09, mkdesc("ELEMENT LEVEL", 0x00, 0x7f, 0x40, 1, "")},
	{0x0a, &Descriptor{Name: "ELEMENT PAN", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Getv: panGetv, Getu: panGetu}},
	{0x0e, &Descriptor{Name: "ELEMENT DETUNE", Min: 0x00, Max: 0x7f, Def: 0x40, Size: 1, Unit: "cent", Getv: offsetGetv, Getu: offsetGetu}},
}

// RPN numbers (MSB<<7 | LSB).
const (
	rpnPitchBendSens = 0x0000
	rpnFineTune      = 0x0001
	rpnCoarseTune    = 0x0002
)

// NRPN numbers of part parameters (MSB<<7 | LSB).
var partNrpns = map[uint16]uint16{
	0x01<<7 | 0x08: 0x15, // vibrato rate
	0x01<<7 | 0x09: 0x16, // vibrato depth
	0x01<<7 | 0x0a: 0x17, // vibrato delay
	0x01<<7 | 0x20: 0x18, // filter cutoff
	0x01<<7 | 0x21: 0x19, // filter resonance
	0x01<<7 | 0x63: 0x1a, // EG attack
	0x01<<7 | 0x64: 0x1b, // EG decay
	0x01<<7 | 0x66: 0x1c, // EG release
}

// NRPN MSBs of per-note drum parameters; the NRPN LSB selects the
// note.
var drumNrpns = map[uint16]uint16{
	0x14: 0x0b, // filter cutoff
	0x15: 0x0c, // filter resonance
	0x16: 0x00, // pitch coarse
	0x17: 0x02, // level
	0x18: 0x04, // pan
	0x19: 0x05, // reverb send
	0x1a: 0x06, // chorus send
}

var (
	multipartKeyDesc = &Descriptor{Name: "MULTI PART", Min: 0x00, Max: 0x0f, Def: 0x00, Size: 1}
	drumNoteKeyDesc  = &Descriptor{Name: "DRUM NOTE", Min: drumNoteFirst, Max: drumNoteLast, Def: 0x24, Size: 1}
	uservoiceKeyDesc = &Descriptor{Name: "USER VOICE", Min: 0x00, Max: uservoiceCount - 1, Def: 0x00, Size: 1}

	reverbTypeDesc    = &Descriptor{Name: "REVERB TYPE", Min: 0x0000, Max: 0x3fff, Def: etypeHall << 7, Size: 2, Gets: enumText(reverbTypeNames)}
	chorusTypeDesc    = &Descriptor{Name: "CHORUS TYPE", Min: 0x0000, Max: 0x3fff, Def: etypeChorus << 7, Size: 2, Gets: enumText(chorusTypeNames)}
	variationTypeDesc = &Descriptor{Name: "VARIATION TYPE", Min: 0x0000, Max: 0x3fff, Def: etypeDelayLCR << 7, Size: 2, Gets: enumText(variationTypeNames)}
)

func buildModel(m *MasterMap) {
	buildSystem(m)
	buildEffects(m)
	buildMultipart(m)
	buildDrumsetup(m)
	buildUservoice(m)
	buildRpns(m)
}

func buildSystem(m *MasterMap) {
	for _, it := range systemParams {
		m.AddParam(NewParam(it.desc, addrSystem, 0x00, it.low), m.System, 0)
	}
}

func buildEffects(m *MasterMap) {
	type block struct {
		group    *ParamMap
		typeDesc *Descriptor
		typeLow  uint16
		paramLow uint16
		step     uint16
		etypes   []uint16
	}
	blocks := []block{
		{m.Reverb, reverbTypeDesc, reverbTypeLow, reverbParamLow, 1, []uint16{etypeHall, etypeRoom}},
		{m.Chorus, chorusTypeDesc, chorusTypeLow, chorusParamLow, 1, []uint16{etypeChorus, etypeFlanger}},
		{m.Variation, variationTypeDesc, variationTypeLow, variationParamLow, 2, []uint16{etypeDelayLCR, etypePhaser}},
	}
	for _, b := range blocks {
		m.AddParam(NewParam(b.typeDesc, addrEffect, effectMid, b.typeLow), b.group, 0)
		for slot := uint16(0); slot < 10; slot++ {
			low := b.paramLow + slot*b.step
			for _, et := range b.etypes {
				descs := effectParams[et]
				if int(slot) >= len(descs) {
					continue
				}
				m.AddParam(NewEffectParam(descs[slot], addrEffect, effectMid, low, et), b.group, 0)
			}
			size := b.step
			generic := mkdesc(fmt.Sprintf("PARAMETER %d", slot+1), 0x00, 0x7f, 0x00, size, "")
			if size == 2 {
				generic.Max = 0x3fff
			}
			m.AddParam(NewParam(generic, addrEffect, effectMid, low), b.group, 0)
		}
		tail := b.paramLow + 10*b.step
		m.AddParam(NewParam(mkdesc(b.group.Name()+" RETURN", 0x00, 0x7f, 0x40, 1, ""), addrEffect, effectMid, tail), b.group, 0)
		m.AddParam(NewParam(&Descriptor{Name: b.group.Name() + " PAN", Min: 0x01, Max: 0x7f, Def: 0x40, Size: 1, Getv: panGetv, Getu: panGetu}, addrEffect, effectMid, tail+1), b.group, 0)
	}
	m.AddParam(NewParam(mkdesc("SEND CHORUS TO REVERB", 0x00, 0x7f, 0x00, 1, ""), addrEffect, effectMid, chorusParamLow+12), m.Chorus, 0)
	m.AddParam(NewParam(mkdesc("SEND VARIATION TO REVERB", 0x00, 0x7f, 0x00, 1, ""), addrEffect, effectMid, 0x58), m.Variation, 0)
	m.AddParam(NewParam(mkdesc("SEND VARIATION TO CHORUS", 0x00, 0x7f, 0x00, 1, ""), addrEffect, effectMid, 0x59), m.Variation, 0)
	m.AddParam(NewParam(mkdesc("VARIATION CONNECTION", 0x00, 0x01, 0x00, 1, ""), addrEffect, effectMid, 0x5a), m.Variation, 0)
}

func buildMultipart(m *MasterMap) {
	m.Multipart.SetKeyParam(NewParam(multipartKeyDesc, 0, 0, 0))
	for part := uint16(0); part < 0x10; part++ {
		m.Multipart.AddKey(part, fmt.Sprintf("Part %d", part+1))
		for _, it := range multipartParams {
			m.AddParam(NewParam(it.desc, addrMultipart, part, it.low), m.Multipart, part)
		}
	}
}

func buildDrumsetup(m *MasterMap) {
	m.Drumsetup.SetKeyParam(NewParam(drumNoteKeyDesc, 0, 0, 0))
	for note := uint16(drumNoteFirst); note <= drumNoteLast; note++ {
		m.Drumsetup.AddKey(note, noteName(note))
		for _, it := range drumsetupParams {
			m.AddParam(NewParam(it.desc, addrDrumsetup, note, it.low), m.Drumsetup, note)
		}
	}
}

func buildUservoice(m *MasterMap) {
	m.Uservoice.SetKeyParam(NewParam(uservoiceKeyDesc, 0, 0, 0))
	m.Uservoice.SetElements(uservoiceElementBase, uservoiceElementSize)
	for voice := uint16(0); voice < uservoiceCount; voice++ {
		m.Uservoice.AddKey(voice, fmt.Sprintf("User %d", voice+1))
		for _, it := range uservoiceCommonParams {
			m.AddParam(NewParam(it.desc, addrUservoice, voice, it.low), m.Uservoice, voice)
		}
		for element := uint16(0); element < 2; element++ {
			base := uservoiceElementBase + element*uservoiceElementSize
			for _, it := range uservoiceElementParams {
				m.AddParam(NewParam(it.desc, addrUservoice, voice, base+it.low), m.Uservoice, voice)
			}
		}
	}
}

func buildRpns(m *MasterMap) {
	for ch := uint8(0); ch < 0x10; ch++ {
		part := uint16(ch)
		if p, ok := m.FindParam(addrMultipart, part, 0x23); ok {
			m.AddRpnParam(ch, rpnPitchBendSens, p)
		}
		if p, ok := m.FindParam(addrMultipart, part, 0x09); ok {
			m.AddRpnParam(ch, rpnFineTune, p)
		}
		if p, ok := m.FindParam(addrMultipart, part, 0x08); ok {
			m.AddRpnParam(ch, rpnCoarseTune, p)
		}
		for number, low := range partNrpns {
			if p, ok := m.FindParam(addrMultipart, part, low); ok {
				m.AddRpnParam(ch, number, p)
			}
		}
		for msb, low := range drumNrpns {
			for note := uint16(drumNoteFirst); note <= drumNoteLast; note++ {
				if p, ok := m.FindParam(addrDrumsetup, note, low); ok {
					m.AddRpnParam(ch, msb<<7|note, p)
				}
			}
		}
	}
}

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

func noteName(note uint16) string {
	return fmt.Sprintf("%s%d", noteNames[note%12], int(note/12)-2)
}
