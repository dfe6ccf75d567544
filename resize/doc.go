// Package resize implements the resize gesture: it turns the movement
// of a pointer that grabbed an element's edge into a continuously
// updated rectangle.
//
// A resize goes through three stages. First, a Detector decides, from
// the pointer position and the element's Options, which edges of the
// element were grabbed. Edge rules can activate an edge when the
// pointer is close to it, when the pointer is over a specific handle
// node, or when it is over a node matching a selector. Without edge
// rules, the bottom-right corner of the element resizes it along
// one or both axes instead.
//
// Second, a Session is started with the element's bounding rectangle.
// Every pointer movement then moves the grabbed edges. When Square or
// PreserveAspectRatio is set, edges adjacent to the grabbed ones are
// dragged along and the movement is adjusted to keep the ratio
// between the width and height fixed. The Invert policy decides what
// happens when an edge is dragged past the opposite one.
//
// Finally, the reported delta is restricted to the gesture's axes and
// the session is discarded when the gesture ends.
//
// Sessions can be driven directly or through an action.Bus using
// Install:
//
//	var bus action.Bus[*resize.Event]
//	r := resize.Install(&bus, resize.Detector{DefaultMargin: resize.DefaultMargin(false)})
//	defer r.Remove()
//
//	in := resize.Interaction{Options: &opts}
//	if r.Prepare(&in, ptr, element, &bounds) {
//		bus.Fire(action.PhaseStart, &resize.Event{Interaction: &in, Bounds: bounds})
//	}
package resize
