package decimal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	m := NewMoney(12.345)
	if m.String() != "12.35" { // rounded for display
		t.Fatalf("NewMoney display mismatch: got %s", m.String())
	}
	assert.Equal(t, "12.35", m.Round().String())
}

func TestFromFloat(t *testing.T) {
	m, ok := FromFloat(4291870.7197)
	require.True(t, ok)
	assert.Equal(t, "4291870.72", m.String())

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, ok := FromFloat(v)
		assert.False(t, ok)
	}
}

func TestFormatWhole(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1234.5, "$1,235"},
		{4291870.7197, "$4,291,871"},
		{0, "$0"},
		{-98765.432, "-$98,765"},
		{0.999, "$1"},
		{-0.001, "$0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NewMoney(tt.in).FormatWhole(), "FormatWhole(%v)", tt.in)
	}
}

func TestFormatWhole_BeyondInt64(t *testing.T) {
	assert.Equal(t, "$9,300,000,000,000,000,000", NewMoney(9.3e18).FormatWhole())
	assert.Equal(t, "$100,000,000,000,000,000,000", NewMoney(1e20).FormatWhole())
	assert.Equal(t, "-$100,000,000,000,000,000,000", NewMoney(-1e20).FormatWhole())
}
