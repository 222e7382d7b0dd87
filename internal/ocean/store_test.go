package ocean

import (
	"errors"
	"sync"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestStoreAppliesOnlyOnApply(t *testing.T) {
	s := NewStore(DefaultParams())
	s.Set(NameBigWaveElevation, Scalar(0.5))

	if got := s.Snapshot().BigWaveElevation; got != 0.2 {
		t.Fatalf("snapshot changed before Apply: %v", got)
	}
	if s.Pending() != 1 {
		t.Fatalf("expected 1 pending command, got %d", s.Pending())
	}

	if errs := s.Apply(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := s.Snapshot().BigWaveElevation; got != 0.5 {
		t.Errorf("expected elevation 0.5 after Apply, got %v", got)
	}
	if s.Pending() != 0 {
		t.Errorf("queue not drained: %d", s.Pending())
	}
}

func TestStoreAppliesInOrder(t *testing.T) {
	s := NewStore(DefaultParams())
	s.Set(NameColorOffset, Scalar(0.1))
	s.Set(NameColorOffset, Scalar(0.9))
	s.SetAxis(NameBigWaveFrequency, AxisX, 7)
	s.SetAxis(NameBigWaveFrequency, AxisY, 2)
	s.Apply()

	p := s.Snapshot()
	if p.ColorOffset != 0.9 {
		t.Errorf("last write should win, got offset %v", p.ColorOffset)
	}
	if p.BigWaveFrequency != (mgl32.Vec2{7, 2}) {
		t.Errorf("expected frequency (7, 2), got %v", p.BigWaveFrequency)
	}
}

func TestStoreRejections(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		want error
	}{
		{"unknown", Command{Name: "tideHeight", Axis: AxisAll, Value: Scalar(1)}, ErrUnknownParameter},
		{"elapsed is loop-owned", Command{Name: NameElapsedTime, Axis: AxisAll, Value: Scalar(9)}, ErrReadOnly},
		{"negative iterations", Command{Name: NameSmallWaveIterations, Axis: AxisAll, Value: Scalar(-1)}, ErrInvalidValue},
		{"fractional iterations", Command{Name: NameSmallWaveIterations, Axis: AxisAll, Value: Scalar(2.5)}, ErrInvalidValue},
		{"axis on scalar", Command{Name: NameBigWaveSpeed, Axis: AxisX, Value: Scalar(1)}, ErrInvalidValue},
		{"bad axis", Command{Name: NameBigWaveFrequency, Axis: Axis(5), Value: Scalar(1)}, ErrInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := DefaultParams()
			s := NewStore(before)
			s.Post(tt.cmd)
			s.Set(NameSmallWaveSpeed, Scalar(1.5))

			errs := s.Apply()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %v", errs)
			}
			if !errors.Is(errs[0], tt.want) {
				t.Errorf("expected %v, got %v", tt.want, errs[0])
			}

			after := s.Snapshot()
			if after.SmallWaveSpeed != 1.5 {
				t.Error("valid command after a rejected one was not applied")
			}
			after.SmallWaveSpeed = before.SmallWaveSpeed
			if after != before {
				t.Errorf("rejected command changed params: %+v", after)
			}
		})
	}
}

func TestStoreIterationsStayIntegral(t *testing.T) {
	s := NewStore(DefaultParams())
	for _, n := range []float32{0, 5, 3} {
		s.Set(NameSmallWaveIterations, Scalar(n))
		if errs := s.Apply(); len(errs) != 0 {
			t.Fatalf("iterations=%v rejected: %v", n, errs)
		}
		if got := s.Snapshot().SmallWaveIterations; got != int(n) {
			t.Errorf("expected %d iterations, got %d", int(n), got)
		}
	}
}

func TestStoreConcurrentPost(t *testing.T) {
	s := NewStore(DefaultParams())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Set(NameSmallWaveFrequency, Scalar(float32(j)))
			}
		}()
	}
	wg.Wait()

	if s.Pending() != 800 {
		t.Fatalf("expected 800 pending commands, got %d", s.Pending())
	}
	if errs := s.Apply(); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if got := s.Snapshot().SmallWaveFrequency; got != 99 {
		t.Errorf("every writer ends at 99, got %v", got)
	}
}

func TestParamsGet(t *testing.T) {
	p := DefaultParams()
	for _, c := range Controls() {
		if _, ok := p.Get(c.Name); !ok {
			t.Errorf("control %s reads unknown parameter %q", c.Label, c.Name)
		}
	}
	if _, ok := p.Get(NameElapsedTime); !ok {
		t.Error("elapsedTime should be readable")
	}
	if _, ok := p.Get("nope"); ok {
		t.Error("expected unknown parameter to be reported")
	}
}
