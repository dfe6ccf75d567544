package resize

import (
	"deedles.dev/xgesture/action"
)

// EventTypes returns the names of the events that a resize produces
// over its lifetime.
func EventTypes() []string {
	return []string{
		"resizestart",
		"resizemove",
		"resizeinertiastart",
		"resizeresume",
		"resizeend",
	}
}

// Interaction is the resize state of one pointer interaction. Hosts
// keep one per pointer and attach it to every Event that they fire
// for that pointer.
type Interaction struct {
	// Options are the options of the element being interacted with.
	// If nil, DefaultOptions is used.
	Options *Options

	// Prepared is the result of detection. If it is zero, the
	// interaction is not a resize and events for it are ignored.
	Prepared Prepared

	session *Session
}

// Session returns the interaction's active resize, or nil if there
// isn't one.
func (in *Interaction) Session() *Session {
	return in.session
}

func (in *Interaction) options() Options {
	if in.Options == nil {
		return DefaultOptions()
	}
	return *in.Options
}

// Action is the resize gesture installed on an action.Bus.
type Action struct {
	Detector Detector

	handles action.Handles
}

// Install registers resize handlers for every lifecycle phase of bus.
// The returned Action's Remove method unregisters them.
func Install(bus *action.Bus[*Event], detector Detector) *Action {
	a := Action{Detector: detector}
	a.handles = action.Handles{
		bus.On(action.PhaseStart, a.start),
		bus.On(action.PhaseMove, a.move),
		bus.On(action.PhaseEnd, a.end),
	}
	return &a
}

// Remove unregisters a from the bus that it was installed on.
func (a *Action) Remove() {
	a.handles.Remove()
}

// Prepare runs detection for in and records the result. It returns
// false, and clears in.Prepared, if the pointer does not start a
// resize.
func (a *Action) Prepare(in *Interaction, ptr Pointer, element Node, bounds *Rect) bool {
	opts := in.options()
	p, ok := a.Detector.Check(ptr, &opts, element, bounds)
	in.Prepared = p
	return ok
}

func (a *Action) start(ev *Event) {
	in := ev.Interaction
	if in == nil || in.Prepared.IsZero() {
		return
	}

	in.session = NewSession(in.Prepared, ev.Bounds, in.options())
	in.session.Begin(ev)
}

func (a *Action) move(ev *Event) {
	if ev.Interaction == nil || ev.Interaction.session == nil {
		return
	}
	ev.Interaction.session.Move(ev)
}

func (a *Action) end(ev *Event) {
	in := ev.Interaction
	if in == nil || in.session == nil {
		return
	}
	in.session.End(ev)
	in.session = nil
}
