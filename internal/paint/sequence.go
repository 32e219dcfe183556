package paint

import "sync/atomic"

const (
	// HueStep is how far the default hue advances per entry, in degrees.
	HueStep = 30

	fullTurn = 360
)

// HueSequence hands out the default fill colours: hue 0, 30, 60 ... 330, then
// back to 0. It is safe for concurrent use.
type HueSequence struct {
	hue atomic.Int32
}

// DefaultSequence is used by entries constructed without an explicit sequence.
var DefaultSequence = NewHueSequence()

// NewHueSequence returns a sequence starting at hue 0.
func NewHueSequence() *HueSequence {
	return &HueSequence{}
}

// Next returns the current hue in degrees and advances the sequence.
func (s *HueSequence) Next() int {
	for {
		cur := s.hue.Load()
		next := cur + HueStep
		if next >= fullTurn {
			next = 0
		}
		if s.hue.CompareAndSwap(cur, next) {
			return int(cur)
		}
	}
}

// NextPaint returns the fully saturated colour for the next hue.
func (s *HueSequence) NextPaint() Paint {
	r, g, b := HSVToRGB(NormalizeHue(float64(s.Next())), 1, 1)
	return rgb(r, g, b)
}

// Reset rewinds the sequence to hue 0.
func (s *HueSequence) Reset() {
	s.hue.Store(0)
}
