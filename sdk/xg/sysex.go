package xg

// XG Parameter Change frame layout:
//
//	F0 43 1n 4C hh mm ll dd .. F7
//
// with n the device number, hh mm ll the address and dd the value data
// bytes (one to four, per the parameter's size).
const (
	sysexStart    = 0xf0
	sysexEnd      = 0xf7
	yamahaID      = 0x43
	paramChangeOp = 0x10
	xgModelID     = 0x4c
)

// EncodeParamChange renders the XG Parameter Change frame carrying the
// parameter's current value. deviceNo is the target device number
// (0 to 15).
func EncodeParamChange(deviceNo uint8, p *Param) []byte {
	data := p.EncodeData()
	frame := make([]byte, 0, 8+len(data))
	frame = append(frame,
		sysexStart, yamahaID, paramChangeOp|deviceNo&0x0f, xgModelID,
		byte(p.High()), byte(p.Mid()), byte(p.Low()))
	frame = append(frame, data...)
	return append(frame, sysexEnd)
}

// ParseParamChange extracts the address and raw value bytes from an XG
// Parameter Change frame. The third result is false when the frame is
// not one, including bulk dumps and other manufacturers' messages.
func ParseParamChange(frame []byte) (ParamKey, []byte, bool) {
	if len(frame) < 9 ||
		frame[0] != sysexStart ||
		frame[1] != yamahaID ||
		frame[2]&0xf0 != paramChangeOp ||
		frame[3] != xgModelID ||
		frame[len(frame)-1] != sysexEnd {
		return ParamKey{}, nil, false
	}
	key := ParamKey{
		High: uint16(frame[4]),
		Mid:  uint16(frame[5]),
		Low:  uint16(frame[6]),
	}
	return key, frame[7 : len(frame)-1], true
}
