// Package rpn reassembles RPN, NRPN and 14-bit controller sequences out
// of raw Control-Change events, and lowers them back to raw events.
//
// The state machine buffers partial sequences per (port, channel) and
// only queues a completed event once the full sequence for that channel
// has been seen. Callers drain completed events with Pending/Dequeue;
// nothing here blocks.
package rpn

// Type classifies an event on either side of the codec.
type Type int

const (
	// None marks an empty or unclassifiable event.
	None Type = iota
	// CC is a plain 7-bit Control-Change.
	CC
	// RPN is a Registered Parameter Number update.
	RPN
	// NRPN is a Non-Registered Parameter Number update.
	NRPN
	// CC14 is a 14-bit value conveyed by an MSB/LSB controller pair
	// without RPN/NRPN selection.
	CC14
)

// Control-Change controller numbers with protocol meaning.
const (
	ccDataMSB uint16 = 6
	ccDataLSB uint16 = 38
	ccNRPNLSB uint16 = 98
	ccNRPNMSB uint16 = 99
	ccRPNLSB  uint16 = 100
	ccRPNMSB  uint16 = 101
)

// Event is one codec-side event. Raw events carry Type CC with the
// controller number in Param; decoded events carry the reassembled
// 14-bit parameter number and value.
type Event struct {
	Time    uint64
	Port    int
	Type    Type
	Channel uint8
	Param   uint16
	Value   uint16
}

// chanKey identifies one reassembly lane.
type chanKey struct {
	port    int
	channel uint8
}

// chanState accumulates one (N)RPN sequence and at most one CC14
// candidate per channel. The two do not interact: a stray controller
// between selector and data entry terminates the hold but does not
// corrupt the selection.
type chanState struct {
	time uint64
	port int

	typ        Type // RPN or NRPN once a selector was seen
	param      uint16
	hasParmMSB bool
	hasParmLSB bool

	value      uint16
	hasDataMSB bool // sequence complete, held for an optional data LSB
	hasDataLSB bool // LSB arrived first, waiting for the MSB

	cc14Base uint16 // CC14 MSB candidate controller number
	cc14MSB  uint16
	hasCC14  bool
}

// Codec is the stream state machine. It is not safe for concurrent use;
// the capture loop is its single caller.
type Codec struct {
	lanes map[chanKey]*chanState
	queue []Event
}

// New returns an empty codec.
func New() *Codec {
	return &Codec{lanes: make(map[chanKey]*chanState)}
}

func (c *Codec) lane(ev Event) *chanState {
	key := chanKey{port: ev.Port, channel: ev.Channel}
	st, ok := c.lanes[key]
	if !ok {
		st = &chanState{}
		c.lanes[key] = st
	}
	st.time = ev.Time
	st.port = ev.Port
	return st
}

// Process feeds one raw event into the codec. It reports whether the
// event was consumed into a pending sequence; unconsumed events are the
// caller's to forward as-is. Any non Control-Change event flushes all
// pending state.
func (c *Codec) Process(ev Event) bool {
	if ev.Type != CC {
		c.Flush()
		return false
	}

	st := c.lane(ev)

	switch ev.Param {
	case ccRPNMSB, ccRPNLSB, ccNRPNMSB, ccNRPNLSB:
		c.selectParam(st, ev)
		return true
	case ccDataMSB:
		return c.dataMSB(st, ev)
	case ccDataLSB:
		return c.dataLSB(st, ev)
	}

	// Any other controller terminates a held sequence.
	c.queueHeld(st, ev.Channel)

	switch {
	case ev.Param < 32:
		// Potential MSB half of a CC14 pair.
		c.queueCC14Candidate(st, ev.Channel)
		st.cc14Base = ev.Param
		st.cc14MSB = ev.Value
		st.hasCC14 = true
		return true
	case ev.Param < 64:
		if st.hasCC14 && st.cc14Base == ev.Param-32 {
			c.push(Event{
				Time:    ev.Time,
				Port:    ev.Port,
				Type:    CC14,
				Channel: ev.Channel,
				Param:   st.cc14Base,
				Value:   st.cc14MSB<<7 | ev.Value&0x7f,
			})
			st.hasCC14 = false
			return true
		}
		return false
	default:
		return false
	}
}

// selectParam applies one of the four selector controllers.
func (c *Codec) selectParam(st *chanState, ev Event) {
	c.queueHeld(st, ev.Channel)

	typ := RPN
	if ev.Param == ccNRPNMSB || ev.Param == ccNRPNLSB {
		typ = NRPN
	}
	if st.typ != typ {
		st.typ = typ
		st.param = 0
		st.hasParmMSB = false
		st.hasParmLSB = false
	}
	st.hasDataMSB = false
	st.hasDataLSB = false

	switch ev.Param {
	case ccRPNMSB, ccNRPNMSB:
		st.param = (ev.Value&0x7f)<<7 | st.param&0x7f
		st.hasParmMSB = true
	case ccRPNLSB, ccNRPNLSB:
		st.param = st.param&^uint16(0x7f) | ev.Value&0x7f
		st.hasParmLSB = true
	}
}

func (st *chanState) selected() bool {
	return (st.typ == RPN || st.typ == NRPN) && st.hasParmMSB && st.hasParmLSB
}

func (c *Codec) dataMSB(st *chanState, ev Event) bool {
	if !st.selected() {
		return false
	}
	if st.hasDataLSB {
		// LSB-first ordering: the MSB completes a 14-bit value.
		c.push(Event{
			Time:    ev.Time,
			Port:    ev.Port,
			Type:    st.typ,
			Channel: ev.Channel,
			Param:   st.param,
			Value:   (ev.Value&0x7f)<<7 | st.value&0x7f,
		})
		st.hasDataLSB = false
		return true
	}
	// A new data entry for the same parameter releases the held one.
	c.queueHeld(st, ev.Channel)
	st.value = ev.Value & 0x7f
	st.hasDataMSB = true
	return true
}

func (c *Codec) dataLSB(st *chanState, ev Event) bool {
	if !st.selected() {
		return false
	}
	if st.hasDataMSB {
		c.push(Event{
			Time:    ev.Time,
			Port:    ev.Port,
			Type:    st.typ,
			Channel: ev.Channel,
			Param:   st.param,
			Value:   st.value<<7 | ev.Value&0x7f,
		})
		st.hasDataMSB = false
		return true
	}
	st.value = ev.Value & 0x7f
	st.hasDataLSB = true
	return true
}

// queueHeld releases a complete sequence held for an optional data LSB.
// The value is the 7-bit data MSB alone.
func (c *Codec) queueHeld(st *chanState, channel uint8) {
	if !st.hasDataMSB {
		return
	}
	c.push(Event{
		Time:    st.time,
		Port:    st.port,
		Type:    st.typ,
		Channel: channel,
		Param:   st.param,
		Value:   st.value & 0x7f,
	})
	st.hasDataMSB = false
}

// queueCC14Candidate re-queues a CC14 MSB candidate that never saw its
// LSB as the plain controller it was.
func (c *Codec) queueCC14Candidate(st *chanState, channel uint8) {
	if !st.hasCC14 {
		return
	}
	c.push(Event{
		Time:    st.time,
		Port:    st.port,
		Type:    CC,
		Channel: channel,
		Param:   st.cc14Base,
		Value:   st.cc14MSB & 0x7f,
	})
	st.hasCC14 = false
}

// Flush releases every held complete sequence and discards incomplete
// selector state, so that later traffic cannot be misread as continuing
// an interrupted sequence. Driven by the capture loop on idle timeout
// and by non Control-Change traffic.
func (c *Codec) Flush() {
	for key, st := range c.lanes {
		c.queueHeld(st, key.channel)
		c.queueCC14Candidate(st, key.channel)
		delete(c.lanes, key)
	}
}

// Pending reports whether completed events await Dequeue.
func (c *Codec) Pending() bool {
	return len(c.queue) > 0
}

// Dequeue pops the oldest completed event. The second result is false
// when the queue is empty.
func (c *Codec) Dequeue() (Event, bool) {
	if len(c.queue) == 0 {
		return Event{}, false
	}
	ev := c.queue[0]
	c.queue = c.queue[1:]
	return ev, true
}

func (c *Codec) push(ev Event) {
	c.queue = append(c.queue, ev)
}

// Encode lowers one decoded event to the raw Control-Change sequence
// that reproduces it through Process. It returns nil for events it
// cannot express (unknown type, out-of-range CC14 controller).
func Encode(ev Event) []Event {
	raw := func(param, value uint16) Event {
		return Event{
			Time:    ev.Time,
			Port:    ev.Port,
			Type:    CC,
			Channel: ev.Channel,
			Param:   param,
			Value:   value & 0x7f,
		}
	}

	switch ev.Type {
	case CC:
		return []Event{raw(ev.Param, ev.Value)}
	case RPN:
		return []Event{
			raw(ccRPNMSB, ev.Param>>7),
			raw(ccRPNLSB, ev.Param),
			raw(ccDataMSB, ev.Value>>7),
			raw(ccDataLSB, ev.Value),
		}
	case NRPN:
		return []Event{
			raw(ccNRPNMSB, ev.Param>>7),
			raw(ccNRPNLSB, ev.Param),
			raw(ccDataMSB, ev.Value>>7),
			raw(ccDataLSB, ev.Value),
		}
	case CC14:
		if ev.Param >= 32 {
			return nil
		}
		return []Event{
			raw(ev.Param, ev.Value>>7),
			raw(ev.Param+32, ev.Value),
		}
	}
	return nil
}
