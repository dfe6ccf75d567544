package resize

// normalizeAxes restricts ev.Delta to axes. A square resize always
// reports both axes and copies one component of the delta onto the
// other so that it grows diagonally.
func normalizeAxes(ev *Event, opts *Options, axes Axis) {
	if opts.Square {
		if axes == AxisY {
			ev.Delta.X = ev.Delta.Y
		} else {
			ev.Delta.Y = ev.Delta.X
		}
		ev.Axes = AxisXY
		return
	}

	ev.Axes = axes
	switch axes {
	case AxisX:
		ev.Delta.Y = 0
	case AxisY:
		ev.Delta.X = 0
	}
}
