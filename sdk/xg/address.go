// Package xg maintains the live parameter state of an XG-compatible
// tone generator: typed, bounded parameter objects keyed by the
// three-level device address space, grouped maps with a selectable
// current window, and a master registry resolving addresses and
// RPN/NRPN numbers to parameters.
package xg

import "fmt"

// ParamKey is the three-level parameter address (address high, mid and
// low components).
type ParamKey struct {
	High uint16
	Mid  uint16
	Low  uint16
}

// Less orders keys lexicographically on (high, mid, low).
func (k ParamKey) Less(other ParamKey) bool {
	if k.High != other.High {
		return k.High < other.High
	}
	if k.Mid != other.Mid {
		return k.Mid < other.Mid
	}
	return k.Low < other.Low
}

func (k ParamKey) String() string {
	return fmt.Sprintf("%02x:%02x:%02x", k.High, k.Mid, k.Low)
}

// RpnKey identifies an RPN/NRPN parameter by MIDI channel and 14-bit
// parameter number. These live outside the three-level address space.
type RpnKey struct {
	Channel uint8
	Param   uint16
}

// Less orders keys lexicographically on (channel, param).
func (k RpnKey) Less(other RpnKey) bool {
	if k.Channel != other.Channel {
		return k.Channel < other.Channel
	}
	return k.Param < other.Param
}
