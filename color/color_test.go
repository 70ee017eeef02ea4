package color_test

import (
	"testing"

	"github.com/katalvlaran/nonogram/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPalette_Errors(t *testing.T) {
	cases := []struct {
		name    string
		entries []color.Info
		wantErr error
	}{
		{
			name:    "MissingBackground",
			entries: []color.Info{{Color: color.Color(1)}},
			wantErr: color.ErrMissingBackground,
		},
		{
			name: "Duplicate",
			entries: []color.Info{
				color.DefaultBackground(),
				color.DefaultBackground(),
			},
			wantErr: color.ErrDuplicateColor,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := color.NewPalette(tc.entries)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestNewPalette_TooMany(t *testing.T) {
	entries := []color.Info{color.DefaultBackground()}
	for i := 1; i < color.MaxColors+1; i++ {
		entries = append(entries, color.DefaultForeground(color.Color(i)))
	}
	_, err := color.NewPalette(entries)
	assert.ErrorIs(t, err, color.ErrTooManyColors)
}

func TestPalette_MaskAndLookup(t *testing.T) {
	fg := color.DefaultForeground(color.Color(1))
	p, err := color.NewPalette([]color.Info{color.DefaultBackground(), fg})
	require.NoError(t, err)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, uint32(0b11), p.Mask())
	assert.True(t, p.Has(color.Color(1)))
	assert.False(t, p.Has(color.Color(5)))

	info, err := p.Lookup(color.Color(1))
	require.NoError(t, err)
	assert.Equal(t, fg, info)

	_, err = p.Lookup(color.Color(5))
	assert.ErrorIs(t, err, color.ErrUnknownColor)
}
