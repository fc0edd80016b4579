package cfgnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFreshOrder(t *testing.T) {
	g := New("A0")
	for _, expected := range []string{"B0", "C0", "D0", "F0"} {
		name, err := g.Fresh()
		require.NoError(t, err)
		require.Equal(t, expected, name)
	}
}

func TestFreshDigitMajor(t *testing.T) {
	g := New("S9")
	for _, l := range freshLetters {
		g.Add(string(l) + "0")
	}
	name, err := g.Fresh()
	require.NoError(t, err)
	require.Equal(t, "A1", name)
}

func TestFreshExhaustion(t *testing.T) {
	g := New("S9")
	for d := '0'; d <= '9'; d++ {
		for _, l := range freshLetters {
			g.Add(string(l) + string(d))
		}
	}
	_, err := g.Fresh()
	require.Error(t, err)
	var rerr *ResourceError
	require.ErrorAs(t, err, &rerr)
}

func TestAddProductionDeduplicates(t *testing.T) {
	g := New("A1")
	g.AddProduction("A1", Production{T("a"), NT("B1")})
	g.AddProduction("A1", Production{T("a"), NT("B1")})
	require.Len(t, g.Productions("A1"), 1)
}

func TestAddProductionRegistersReferences(t *testing.T) {
	g := New("A1")
	g.AddProduction("A1", Production{T("a"), NT("B1")})
	require.Equal(t, []string{"A1", "B1"}, g.NonTerminals())
}

func TestCloneIsDeep(t *testing.T) {
	g := New("A1")
	g.AddProduction("A1", Production{T("a")})
	c := g.Clone()
	c.AddProduction("A1", Production{T("b")})
	c.AddProduction("B1", Production{T("c")})
	require.Len(t, g.Productions("A1"), 1)
	require.False(t, g.Contains("B1"))
	require.Equal(t, g.Start(), c.Start())
}

func TestTerminalsSorted(t *testing.T) {
	g := New("A1")
	g.AddProduction("A1", Production{T("c"), NT("B1")})
	g.AddProduction("B1", Production{T("a"), T("b")})
	require.Equal(t, []string{"a", "b", "c"}, g.Terminals())
}
