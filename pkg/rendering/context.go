package rendering

// DrawingContext is the surface a canvas draws one frame into.
//
// A frame is bracketed by BeginDraw and EndDraw. Paint tasks call
// SelectPaint before their geometries draw; every Draw call uses the most
// recently selected paint, multiplied by the current opacity. Save and
// Restore push and pop the transform and opacity.
//
// Drawing before any paint is selected is a programmer error and panics.
type DrawingContext interface {
	// BeginDraw starts a frame.
	BeginDraw()

	// EndDraw finishes the frame and reports any error the backend hit
	// while drawing it.
	EndDraw() error

	// Clear fills the whole surface with color, ignoring the transform.
	Clear(color Color)

	// SelectPaint sets the paint used by subsequent draw calls.
	SelectPaint(paint Paint)

	// Save pushes the current transform and opacity.
	Save()

	// Restore pops the most recent transform and opacity.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// Scale scales the coordinate system by the given factors.
	Scale(sx, sy float64)

	// Concat multiplies the current transform by m.
	Concat(m Matrix)

	// SetOpacity multiplies the current opacity by opacity (0.0 to 1.0).
	SetOpacity(opacity float64)

	DrawRect(rect Rect)
	DrawRRect(rrect RRect)
	DrawCircle(center Offset, radius float64)
	DrawLine(start, end Offset)
	DrawPath(path *Path)

	// DrawText draws text with its top-left corner at position.
	DrawText(text string, position Offset, size float64)

	// MeasureText returns the extent of text at the given font size.
	MeasureText(text string, size float64) Size

	// Size returns the size of the surface in pixels.
	Size() Size
}

// drawState is the Save/Restore state shared by context implementations.
type drawState struct {
	transform Matrix
	opacity   float64
}

func defaultDrawState() drawState {
	return drawState{transform: IdentityMatrix(), opacity: 1}
}

// StateStack tracks transform and opacity across Save and Restore for
// DrawingContext implementations that do not keep their own.
type StateStack struct {
	current drawState
	saved   []drawState
}

// NewStateStack returns a stack holding the identity transform at full opacity.
func NewStateStack() *StateStack {
	return &StateStack{current: defaultDrawState()}
}

// Reset clears saved states and restores the defaults.
func (s *StateStack) Reset() {
	s.current = defaultDrawState()
	s.saved = s.saved[:0]
}

// Save pushes the current state.
func (s *StateStack) Save() {
	s.saved = append(s.saved, s.current)
}

// Restore pops the most recent state. Unbalanced calls are ignored.
func (s *StateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.current = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Concat multiplies the current transform by m.
func (s *StateStack) Concat(m Matrix) {
	s.current.transform = s.current.transform.Multiply(m)
}

// MultiplyOpacity multiplies the current opacity by opacity.
func (s *StateStack) MultiplyOpacity(opacity float64) {
	s.current.opacity *= max(0, min(1, opacity))
}

// Transform returns the current transform.
func (s *StateStack) Transform() Matrix { return s.current.transform }

// Opacity returns the current opacity.
func (s *StateStack) Opacity() float64 { return s.current.opacity }

// Depth returns the number of saved states.
func (s *StateStack) Depth() int { return len(s.saved) }
