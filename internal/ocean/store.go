package ocean

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Errors returned by Store.Apply for rejected commands.
var (
	ErrUnknownParameter = errors.New("unknown parameter")
	ErrReadOnly         = errors.New("parameter is read-only")
	ErrInvalidValue     = errors.New("invalid value")
)

// Value carries a scalar (X), a 2-vector (X, Y) or a color (X, Y, Z).
type Value struct {
	X, Y, Z float32
}

// Scalar wraps a single number.
func Scalar(v float32) Value { return Value{X: v} }

// Vec2 wraps a 2-vector.
func Vec2(v mgl32.Vec2) Value { return Value{X: v[0], Y: v[1]} }

// RGB wraps a color.
func RGB(c mgl32.Vec3) Value { return Value{X: c[0], Y: c[1], Z: c[2]} }

// Vec3 returns the value as a color.
func (v Value) Vec3() mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

// Command is a setParameter(name, value) message. Axis selects one component
// of a vector parameter; AxisAll replaces the whole value.
type Command struct {
	Name  string
	Axis  Axis
	Value Value
}

func (c Command) String() string {
	if c.Axis != AxisAll {
		return fmt.Sprintf("%s[%d]=%g", c.Name, c.Axis, c.Value.X)
	}
	return fmt.Sprintf("%s=%+v", c.Name, c.Value)
}

// Get returns the named parameter as a Value.
func (p Params) Get(name string) (Value, bool) {
	switch name {
	case NameElapsedTime:
		return Scalar(p.ElapsedTime), true
	case NameBigWaveElevation:
		return Scalar(p.BigWaveElevation), true
	case NameBigWaveFrequency:
		return Vec2(p.BigWaveFrequency), true
	case NameBigWaveSpeed:
		return Scalar(p.BigWaveSpeed), true
	case NameDepthColor:
		return RGB(p.DepthColor), true
	case NameSurfaceColor:
		return RGB(p.SurfaceColor), true
	case NameColorOffset:
		return Scalar(p.ColorOffset), true
	case NameColorMultiplier:
		return Scalar(p.ColorMultiplier), true
	case NameSmallWaveElevation:
		return Scalar(p.SmallWaveElevation), true
	case NameSmallWaveFrequency:
		return Scalar(p.SmallWaveFrequency), true
	case NameSmallWaveSpeed:
		return Scalar(p.SmallWaveSpeed), true
	case NameSmallWaveIterations:
		return Scalar(float32(p.SmallWaveIterations)), true
	}
	return Value{}, false
}

// apply writes one command into p. elapsedTime is owned by the loop.
func (p *Params) apply(cmd Command) error {
	if cmd.Axis != AxisAll && cmd.Name != NameBigWaveFrequency {
		return fmt.Errorf("%s: axis %d on non-vector parameter: %w", cmd.Name, cmd.Axis, ErrInvalidValue)
	}

	v := cmd.Value
	switch cmd.Name {
	case NameElapsedTime:
		return fmt.Errorf("%s: %w", cmd.Name, ErrReadOnly)
	case NameBigWaveElevation:
		p.BigWaveElevation = v.X
	case NameBigWaveFrequency:
		switch cmd.Axis {
		case AxisAll:
			p.BigWaveFrequency = mgl32.Vec2{v.X, v.Y}
		case AxisX, AxisY:
			p.BigWaveFrequency[cmd.Axis] = v.X
		default:
			return fmt.Errorf("%s: axis %d: %w", cmd.Name, cmd.Axis, ErrInvalidValue)
		}
	case NameBigWaveSpeed:
		p.BigWaveSpeed = v.X
	case NameDepthColor:
		p.DepthColor = v.Vec3()
	case NameSurfaceColor:
		p.SurfaceColor = v.Vec3()
	case NameColorOffset:
		p.ColorOffset = v.X
	case NameColorMultiplier:
		p.ColorMultiplier = v.X
	case NameSmallWaveElevation:
		p.SmallWaveElevation = v.X
	case NameSmallWaveFrequency:
		p.SmallWaveFrequency = v.X
	case NameSmallWaveSpeed:
		p.SmallWaveSpeed = v.X
	case NameSmallWaveIterations:
		n, err := iterationCount(v.X)
		if err != nil {
			return fmt.Errorf("%s: %w", cmd.Name, err)
		}
		p.SmallWaveIterations = n
	default:
		return fmt.Errorf("%q: %w", cmd.Name, ErrUnknownParameter)
	}
	return nil
}

// iterationCount accepts only non-negative whole numbers.
func iterationCount(v float32) (int, error) {
	if v < 0 || float64(v) != math.Trunc(float64(v)) {
		return 0, fmt.Errorf("%g is not a non-negative integer: %w", v, ErrInvalidValue)
	}
	return int(v), nil
}

// Store owns the live parameters. Writers post commands; the loop applies
// them at the start of a frame, so a frame never sees a half-applied edit.
type Store struct {
	mu      sync.Mutex
	current Params
	pending []Command
}

// NewStore creates a store holding initial.
func NewStore(initial Params) *Store {
	return &Store{current: initial}
}

// Post queues a command. Safe for concurrent use.
func (s *Store) Post(cmd Command) {
	s.mu.Lock()
	s.pending = append(s.pending, cmd)
	s.mu.Unlock()
}

// Set queues a whole-value write.
func (s *Store) Set(name string, v Value) {
	s.Post(Command{Name: name, Axis: AxisAll, Value: v})
}

// SetAxis queues a write to one component of a vector parameter.
func (s *Store) SetAxis(name string, axis Axis, v float32) {
	s.Post(Command{Name: name, Axis: axis, Value: Scalar(v)})
}

// Pending returns the number of queued commands.
func (s *Store) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Apply drains the queue in order. Rejected commands are skipped and
// reported; the others still apply.
func (s *Store) Apply() []error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var errs []error
	for _, cmd := range s.pending {
		if err := s.current.apply(cmd); err != nil {
			errs = append(errs, err)
		}
	}
	s.pending = s.pending[:0]
	return errs
}

// Snapshot returns a copy of the current parameters.
func (s *Store) Snapshot() Params {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// setElapsed is the loop's write path for elapsedTime.
func (s *Store) setElapsed(t float32) {
	s.mu.Lock()
	s.current.ElapsedTime = t
	s.mu.Unlock()
}
