package transport

import (
	"math"
	"testing"
	"time"
)

func TestStageOrderAcrossCycle(t *testing.T) {
	s := NewSchedule(PathDiagonal)

	want := []Stage{StageHandoverStart, StageTransport, StageHandoverEnd, StageReset}
	seen := make([]Stage, 0, 4)

	for tt := 0.0; tt < 1.0; tt += 0.001 {
		stage := s.StateAt(tt).Stage
		if len(seen) == 0 || seen[len(seen)-1] != stage {
			seen = append(seen, stage)
		}
	}

	if len(seen) != len(want) {
		t.Fatalf("expected %d stages, saw %v", len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("stage %d: got %v, want %v", i, seen[i], want[i])
		}
	}
}

func TestPowersStayInRange(t *testing.T) {
	for _, policy := range []PathPolicy{PathDiagonal, PathSequential} {
		s := NewSchedule(policy)
		for tt := 0.0; tt < 1.0; tt += 0.0005 {
			st := s.StateAt(tt)
			if st.SLMPower < 0 || st.SLMPower > 1 {
				t.Fatalf("%v: slm power out of range at t=%v: %v", policy, tt, st.SLMPower)
			}
			if st.AODPower < 0 || st.AODPower > 1 {
				t.Fatalf("%v: aod power out of range at t=%v: %v", policy, tt, st.AODPower)
			}
		}
	}
}

func TestHandoverRamps(t *testing.T) {
	s := NewSchedule(PathDiagonal)

	st := s.StateAt(0)
	if st.SLMPower != 1 || st.AODPower != 0 {
		t.Errorf("cycle start: slm=%v aod=%v, want 1/0", st.SLMPower, st.AODPower)
	}

	mid := s.StateAt(0.075) // middle of the start handover
	if math.Abs(mid.SLMPower-0.5) > 1e-9 || math.Abs(mid.AODPower-0.5) > 1e-9 {
		t.Errorf("handover midpoint: slm=%v aod=%v, want 0.5/0.5", mid.SLMPower, mid.AODPower)
	}

	rst := s.StateAt(0.95)
	if rst.SLMPower != 1 || rst.AODPower != 0 || rst.Pos != s.Start {
		t.Errorf("reset phase: %+v", rst)
	}
}

func TestTransportEasesWithPinnedEnds(t *testing.T) {
	s := NewSchedule(PathDiagonal)

	begin := s.StateAt(0.15)
	if begin.Pos != s.Start {
		t.Errorf("transport begins away from start: %+v", begin.Pos)
	}
	end := s.StateAt(0.749999)
	if end.Pos.DistanceFrom(s.End) > 1e-4 {
		t.Errorf("transport does not reach end: %+v", end.Pos)
	}

	mid := s.StateAt(0.45)
	if math.Abs(mid.Pos.X-0.5) > 1e-9 || math.Abs(mid.Pos.Y-0.5) > 1e-9 {
		t.Errorf("diagonal midpoint: %+v, want (0.5, 0.5)", mid.Pos)
	}
}

func TestSequentialPolicyMovesOneAxisAtATime(t *testing.T) {
	s := NewSchedule(PathSequential)

	// First half of the transport window: only x moves.
	for tt := 0.15; tt < 0.45; tt += 0.01 {
		st := s.StateAt(tt)
		if st.Pos.Y != s.Start.Y {
			t.Fatalf("y moved during first leg at t=%v: %+v", tt, st.Pos)
		}
	}
	// Second half: x is already done.
	for tt := 0.451; tt < 0.75; tt += 0.01 {
		st := s.StateAt(tt)
		if math.Abs(st.Pos.X-s.End.X) > 1e-9 {
			t.Fatalf("x not finished during second leg at t=%v: %+v", tt, st.Pos)
		}
	}
}

func TestStateAtIsPure(t *testing.T) {
	s := NewSchedule(PathSequential)
	for _, tt := range []float64{0, 0.1, 0.3, 0.5, 0.8, 0.95} {
		a := s.StateAt(tt)
		b := s.StateAt(tt)
		if a != b {
			t.Errorf("StateAt(%v) not pure: %+v vs %+v", tt, a, b)
		}
	}
}

func TestTimeOfCycle(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		want    float64
	}{
		{"zero", 0, 0},
		{"negative clamps", -3 * time.Second, 0},
		{"mid cycle", 3 * time.Second, 0.5},
		{"wraps", 9 * time.Second, 0.5},
		{"full cycle wraps to zero", 6 * time.Second, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeOfCycle(tt.elapsed, 6*time.Second)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("TimeOfCycle(%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestWaveformsMatchSchedule(t *testing.T) {
	s := NewSchedule(PathDiagonal)
	slm, aod := s.Waveforms(200)

	if len(slm) != 200 || len(aod) != 200 {
		t.Fatalf("unexpected waveform lengths: %d, %d", len(slm), len(aod))
	}
	for i := range slm {
		st := s.StateAt(slm[i].T)
		if slm[i].Amplitude != st.SLMPower || aod[i].Amplitude != st.AODPower {
			t.Fatalf("waveform sample %d disagrees with schedule", i)
		}
	}
}

func TestCursorIndex(t *testing.T) {
	if got := CursorIndex(0, 200); got != 0 {
		t.Errorf("cursor at t=0: %d", got)
	}
	if got := CursorIndex(0.5, 200); got != 100 {
		t.Errorf("cursor at t=0.5: %d", got)
	}
	if got := CursorIndex(0.9999, 200); got != 199 {
		t.Errorf("cursor at end: %d", got)
	}
}
