package growl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growlkit/pkg/growl"
)

func TestParseType(t *testing.T) {
	t.Parallel()

	for _, typ := range growl.Types {
		got, err := growl.ParseType(string(typ))
		require.NoError(t, err)
		assert.Equal(t, typ, got)
	}

	got, err := growl.ParseType("")
	require.NoError(t, err)
	assert.Equal(t, growl.TypeInfo, got)

	got, err = growl.ParseType(" Danger ")
	require.NoError(t, err)
	assert.Equal(t, growl.TypeDanger, got)

	_, err = growl.ParseType("error")
	require.ErrorIs(t, err, growl.ErrInvalidType)
}

func TestType_IsTheme(t *testing.T) {
	t.Parallel()

	themes := map[growl.Type]bool{
		growl.TypeGrowl:      true,
		growl.TypeMinimalist: true,
		growl.TypePastel:     true,
	}
	for _, typ := range growl.Types {
		assert.Equal(t, themes[typ], typ.IsTheme(), typ)
	}
}

func TestType_UnmarshalText(t *testing.T) {
	t.Parallel()

	var typ growl.Type
	require.NoError(t, typ.UnmarshalText([]byte("pastel")))
	assert.Equal(t, growl.TypePastel, typ)
	assert.ErrorIs(t, typ.UnmarshalText([]byte("nope")), growl.ErrInvalidType)
}
