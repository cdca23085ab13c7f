package easing

import "github.com/go-drift/chartmotion/pkg/errors"

// KeyFrame pins the eased output Value at normalized Time. Easing shapes
// the segment that ends at this frame; nil means Linear.
type KeyFrame struct {
	Time   float64
	Value  float64
	Easing Func
}

// KeyFrames builds a piecewise easing function through the given frames.
// At least two frames are required, the first at Time 0 and the last at
// Time 1, with strictly increasing times.
func KeyFrames(frames ...KeyFrame) (Func, error) {
	const op = "easing.KeyFrames"
	if len(frames) < 2 {
		return nil, errors.New(op, errors.KindInvalidArgument, "at least 2 key frames are required, got %d", len(frames))
	}
	if frames[0].Time != 0 {
		return nil, errors.New(op, errors.KindInvalidArgument, "first key frame must be at time 0, got %v", frames[0].Time)
	}
	if last := frames[len(frames)-1].Time; last != 1 {
		return nil, errors.New(op, errors.KindInvalidArgument, "last key frame must be at time 1, got %v", last)
	}
	for i := 1; i < len(frames); i++ {
		if frames[i].Time <= frames[i-1].Time {
			return nil, errors.New(op, errors.KindInvalidArgument,
				"key frame times must increase: frame %d at %v follows %v", i, frames[i].Time, frames[i-1].Time)
		}
	}

	kf := make([]KeyFrame, len(frames))
	copy(kf, frames)

	return func(t float64) float64 {
		t = clampUnit(t)
		i := 0
		for i < len(kf)-2 && kf[i+1].Time < t {
			i++
		}
		from, to := kf[i], kf[i+1]
		ease := to.Easing
		if ease == nil {
			ease = Linear
		}
		p := (t - from.Time) / (to.Time - from.Time)
		return from.Value + ease(p)*(to.Value-from.Value)
	}, nil
}
