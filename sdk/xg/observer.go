package xg

// Observer receives parameter change notifications.
//
// Implementations are handed the parameter that changed and must not
// call back into it while handling the notification in a way that
// would re-enter notification (the busy guard drops such attempts).
type Observer interface {
	// Reset is invoked when the parameter, or the map owning it,
	// reverts to a defaults-driven state. For map-level observers the
	// argument is the map's key parameter and may be nil.
	Reset(p *Param)

	// Update is invoked after the parameter's value changed.
	Update(p *Param)
}

// ObserverFunc adapts a pair of functions to the Observer interface.
// Either function may be nil. Use it by pointer so attach and detach
// can identify the instance.
type ObserverFunc struct {
	OnReset  func(p *Param)
	OnUpdate func(p *Param)
}

func (o *ObserverFunc) Reset(p *Param) {
	if o.OnReset != nil {
		o.OnReset(p)
	}
}

func (o *ObserverFunc) Update(p *Param) {
	if o.OnUpdate != nil {
		o.OnUpdate(p)
	}
}
