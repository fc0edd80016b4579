package cfgnorm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCleanupRemovesNonProductive(t *testing.T) {
	g := New("S1")
	g.AddProduction("S1", Production{T("a")})
	g.AddProduction("S1", Production{NT("C1")})
	g.AddProduction("C1", Production{NT("C1"), T("c")})
	g.Cleanup()
	require.Equal(t, []string{"S1"}, g.NonTerminals())
	require.Len(t, g.Productions("S1"), 1)
	require.Equal(t, "a", g.Productions("S1")[0].String())
}

func TestCleanupRemovesUnreachable(t *testing.T) {
	g := New("S1")
	g.AddProduction("S1", Production{T("a")})
	g.AddProduction("D1", Production{T("d")})
	g.Cleanup()
	require.Equal(t, []string{"S1"}, g.NonTerminals())
}

func TestCleanupRemovesEmptyRuleLists(t *testing.T) {
	g := New("S1")
	g.AddProduction("S1", Production{T("a")})
	g.AddProduction("S1", Production{T("b"), NT("B1")})
	g.Add("B1")
	g.Cleanup()
	require.Equal(t, []string{"S1"}, g.NonTerminals())
	require.Len(t, g.Productions("S1"), 1)
}

func TestCleanupEmptyLanguageKeepsStart(t *testing.T) {
	g := New("S1")
	g.AddProduction("S1", Production{NT("S1"), T("a")})
	g.Cleanup()
	require.Equal(t, []string{"S1"}, g.NonTerminals())
	require.Empty(t, g.Productions("S1"))
	require.Equal(t, "", g.String())
}

func TestCleanupIdempotent(t *testing.T) {
	g := New("S1")
	g.AddProduction("S1", Production{T("a"), NT("B1")})
	g.AddProduction("B1", Production{T("b")})
	g.AddProduction("B1", Production{NT("C1")})
	g.AddProduction("C1", Production{NT("C1")})
	g.Cleanup()
	first := g.String()
	g.Cleanup()
	require.Equal(t, first, g.String())
}
