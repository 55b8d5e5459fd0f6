package probe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{
			name: "invalid argument",
			err:  InvalidArgument("bar", "width %v", -1.0),
			want: KindInvalidArgument,
		},
		{
			name: "unsupported shape",
			err:  UnsupportedShape("contour", "ragged grid"),
			want: KindUnsupportedShape,
		},
		{
			name: "environment missing",
			err:  EnvironmentMissing("violin", "no density backend"),
			want: KindEnvironmentMissing,
		},
		{
			name: "wrapped target error",
			err:  fmt.Errorf("invoking: %w", InvalidArgument("pie", "zero sum")),
			want: KindInvalidArgument,
		},
		{
			name: "foreign error is runtime",
			err:  errors.New("index out of range"),
			want: KindRuntime,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestIsKind(t *testing.T) {
	err := InvalidArgument("bar", "bad align")
	assert.True(t, IsKind(err, KindInvalidArgument))
	assert.False(t, IsKind(err, KindUnsupportedShape))
	assert.False(t, IsKind(nil, KindInvalidArgument))
}

func TestTargetErrorMessage(t *testing.T) {
	err := InvalidArgument("bar", "width %v is not positive", -0.5)
	assert.Equal(t, "bar: invalid_argument: width -0.5 is not positive", err.Error())
}
