package motion

import "math"

// SpringConfig parameterises a critically damped spring.
type SpringConfig struct {
	Stiffness float64 `json:"stiffness"`
	Mass      float64 `json:"mass"`
}

// Damping is the damping coefficient that makes the spring critical.
func (c SpringConfig) Damping() float64 {
	return 2 * math.Sqrt(c.Stiffness*c.Mass)
}

// Spring smooths a value toward a moving target without overshoot.
type Spring struct {
	omega    float64
	value    float64
	velocity float64
	target   float64
}

// NewCriticalSpring returns a spring at rest at zero.
func NewCriticalSpring(cfg SpringConfig) *Spring {
	mass := cfg.Mass
	if mass <= 0 {
		mass = 1
	}
	return &Spring{omega: math.Sqrt(max(cfg.Stiffness, 0) / mass)}
}

// SetTarget moves the rest position. The current value and velocity carry over.
func (s *Spring) SetTarget(target float64) { s.target = target }

// Value is the current position.
func (s *Spring) Value() float64 { return s.value }

// Step advances the spring by dt seconds using the closed-form solution, so
// large steps stay stable.
func (s *Spring) Step(dt float64) float64 {
	if dt <= 0 {
		return s.value
	}
	x0 := s.value - s.target
	v0 := s.velocity
	w := s.omega
	decay := math.Exp(-w * dt)
	c := v0 + w*x0

	s.value = s.target + (x0+c*dt)*decay
	s.velocity = (v0 - w*c*dt) * decay
	return s.value
}

// Settled reports whether the spring is within eps of its target and nearly
// still.
func (s *Spring) Settled(eps float64) bool {
	return math.Abs(s.value-s.target) < eps && math.Abs(s.velocity) < eps
}
