package models

// CircuitBreakerState tracks a breaker's position in the closed/open/half-open cycle.
type CircuitBreakerState int

// String renders the state for logs and metrics tags.
func (s CircuitBreakerState) String() string {
	switch s {
	case 0:
		return "closed"
	case 1:
		return "open"
	case 2:
		return "half_open"
	default:
		return "unknown"
	}
}
