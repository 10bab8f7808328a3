package entity

// Qubit is a simulated qubit record exposed by the API. The values are demo
// data: state labels are free-form physics-inspired tags and amplitude/phase
// carry no enforced range.
type Qubit struct {
	id        int
	state     string
	amplitude float64
	phase     float64
}

// NewQubit constructs a qubit record. No validation is performed; the API
// contract documents the values as given.
func NewQubit(id int, state string, amplitude, phase float64) *Qubit {
	return &Qubit{
		id:        id,
		state:     state,
		amplitude: amplitude,
		phase:     phase,
	}
}

func (q *Qubit) ID() int {
	return q.id
}

func (q *Qubit) State() string {
	return q.state
}

func (q *Qubit) Amplitude() float64 {
	return q.amplitude
}

// Phase returns the phase in radians.
func (q *Qubit) Phase() float64 {
	return q.phase
}

// DemoQubits returns the fixed demo set served by the API, in id order.
// Each call returns a fresh slice so callers cannot mutate shared state.
func DemoQubits() []*Qubit {
	return []*Qubit{
		NewQubit(1, "entangled", 0.707, 0),
		NewQubit(2, "superposition", 0.5, 1.57),
	}
}
