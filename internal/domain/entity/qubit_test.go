package entity

import "testing"

func TestDemoQubitsOrderAndValues(t *testing.T) {
	qubits := DemoQubits()

	if len(qubits) != 2 {
		t.Fatalf("len = %d, want 2", len(qubits))
	}

	first := qubits[0]
	if first.ID() != 1 || first.State() != "entangled" || first.Amplitude() != 0.707 || first.Phase() != 0 {
		t.Errorf("first = {%d %s %v %v}, want {1 entangled 0.707 0}",
			first.ID(), first.State(), first.Amplitude(), first.Phase())
	}

	second := qubits[1]
	if second.ID() != 2 || second.State() != "superposition" || second.Amplitude() != 0.5 || second.Phase() != 1.57 {
		t.Errorf("second = {%d %s %v %v}, want {2 superposition 0.5 1.57}",
			second.ID(), second.State(), second.Amplitude(), second.Phase())
	}
}

func TestDemoQubitsReturnsFreshSlice(t *testing.T) {
	a := DemoQubits()
	b := DemoQubits()

	a[0] = NewQubit(99, "collapsed", 0, 0)

	if b[0].ID() != 1 {
		t.Error("mutating one result affected another call")
	}
}
