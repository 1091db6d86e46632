package core

// MotionCurve describes a position as a function of time.
// A curve is either stationary or linear between two keyframes.
type MotionCurve struct {
	P0, P1 Vec3
	T0, T1 float64
	moving bool
}

// NewStationaryCurve creates a curve that stays at point p
func NewStationaryCurve(p Vec3) MotionCurve {
	return MotionCurve{P0: p, P1: p}
}

// NewLinearCurve creates a curve passing through p0 at t0 and p1 at t1.
// Times outside [t0, t1] extrapolate along the same line.
func NewLinearCurve(p0, p1 Vec3, t0, t1 float64) MotionCurve {
	if t0 == t1 {
		panic("core: linear curve keyframes must have distinct times")
	}
	return MotionCurve{P0: p0, P1: p1, T0: t0, T1: t1, moving: true}
}

// IsMoving reports whether the curve changes with time
func (c MotionCurve) IsMoving() bool {
	return c.moving
}

// At returns the position at the given time
func (c MotionCurve) At(time float64) Vec3 {
	if !c.moving {
		return c.P0
	}
	return c.P0.Add(c.P1.Subtract(c.P0).Multiply((time - c.T0) / (c.T1 - c.T0)))
}
