package cfgnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolString(t *testing.T) {
	require.Equal(t, "A1", NT("A1").String())
	require.Equal(t, "a", T("a").String())
	require.Equal(t, "E", Eps().String())
}

func TestProductionString(t *testing.T) {
	p := Production{T("a"), NT("B1"), T("b")}
	require.Equal(t, "aB1b", p.String())
	require.Equal(t, "E", Production{Eps()}.String())
}

func TestProductionPredicates(t *testing.T) {
	require.True(t, Production{Eps()}.IsEpsilon())
	require.False(t, Production{T("a")}.IsEpsilon())
	require.True(t, Production{NT("A1")}.IsUnit())
	require.False(t, Production{T("a")}.IsUnit())
	require.False(t, Production{NT("A1"), NT("B1")}.IsUnit())
}
