package probe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSurface struct {
	closed int
}

func (s *fakeSurface) Close() error {
	s.closed++
	return nil
}

func TestInvokeReleasesSurface(t *testing.T) {
	s := &fakeSurface{}
	factory := func() (Surface, error) { return s, nil }

	inv := Invoke(func(Surface, Args) (*Drawing, error) {
		return &Drawing{}, nil
	}, factory, Args{})

	require.NoError(t, inv.Err)
	assert.Equal(t, 1, s.closed)
}

func TestInvokeReleasesSurfaceOnError(t *testing.T) {
	s := &fakeSurface{}
	factory := func() (Surface, error) { return s, nil }

	inv := Invoke(func(Surface, Args) (*Drawing, error) {
		return nil, InvalidArgument("bar", "bad width")
	}, factory, Args{})

	assert.True(t, IsKind(inv.Err, KindInvalidArgument))
	assert.Equal(t, 1, s.closed)
	assert.False(t, inv.Panicked)
}

func TestInvokeCapturesPanic(t *testing.T) {
	s := &fakeSurface{}
	factory := func() (Surface, error) { return s, nil }

	inv := Invoke(func(Surface, Args) (*Drawing, error) {
		panic("index out of range")
	}, factory, Args{})

	assert.True(t, inv.Panicked)
	assert.Nil(t, inv.Drawing)
	require.Error(t, inv.Err)
	assert.Equal(t, KindRuntime, KindOf(inv.Err))
	assert.Contains(t, inv.Err.Error(), "index out of range")
	assert.Equal(t, 1, s.closed, "surface released even on panic")
}

func TestInvokeFactoryFailure(t *testing.T) {
	factory := func() (Surface, error) { return nil, errors.New("no canvas") }

	inv := Invoke(func(Surface, Args) (*Drawing, error) {
		t.Fatal("target must not run without a surface")
		return nil, nil
	}, factory, Args{})

	require.Error(t, inv.Err)
	assert.Equal(t, KindRuntime, KindOf(inv.Err))
}

func TestInvokeFreshSurfacePerCall(t *testing.T) {
	var surfaces []*fakeSurface
	factory := func() (Surface, error) {
		s := &fakeSurface{}
		surfaces = append(surfaces, s)
		return s, nil
	}
	op := func(Surface, Args) (*Drawing, error) { return &Drawing{}, nil }

	Invoke(op, factory, Args{})
	Invoke(op, factory, Args{})

	require.Len(t, surfaces, 2)
	assert.NotSame(t, surfaces[0], surfaces[1])
	for i, s := range surfaces {
		assert.Equal(t, 1, s.closed, "surface %d", i)
	}
}
