package png2xsp

import (
	"testing"

	"github.com/Mikejmoffitt/png2xsp/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOrigin(t *testing.T) {
	tests := []struct {
		spec string
		x, y int
	}{
		{"lt", 0, 0},
		{"cc", 16, 24},
		{"rb", 32, 48},
		{"cb", 16, 48},
		{"lc", 0, 24},
	}
	for _, tt := range tests {
		x, y, err := ParseOrigin(tt.spec, 32, 48)
		require.NoError(t, err, tt.spec)
		assert.Equal(t, tt.x, x, tt.spec)
		assert.Equal(t, tt.y, y, tt.spec)
	}
}

func TestParseOriginInvalid(t *testing.T) {
	for _, spec := range []string{"", "c", "ccc", "xt", "cx"} {
		_, _, err := ParseOrigin(spec, 32, 32)
		assert.Error(t, err, spec)
	}
}

func TestSummaryString(t *testing.T) {
	sp := &Summary{Mode: record.ModeSP, Patterns: 3}
	assert.Equal(t, "3 SP.", sp.String())

	xobj := &Summary{Mode: record.ModeXOBJ, Patterns: 4, Frm: 6, Ref: 2}
	assert.Equal(t, "4 XSP.\n6 FRM.\n2 REF.", xobj.String())
}

func TestClampOrigin(t *testing.T) {
	assert.Equal(t, 16, clampOrigin(-1, 32)) // default center
	assert.Equal(t, 0, clampOrigin(0, 32))
	assert.Equal(t, 32, clampOrigin(40, 32)) // clamped to frame bound
	assert.Equal(t, 10, clampOrigin(10, 32))
}
