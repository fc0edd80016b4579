package cfgnorm_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfgnorm/cfgnorm"
)

func TestWriteStartLineFirst(t *testing.T) {
	g := cfgnorm.New("Z1")
	g.AddProduction("Z1", cfgnorm.Production{cfgnorm.T("a"), cfgnorm.NT("B1")})
	g.AddProduction("B1", cfgnorm.Production{cfgnorm.T("b")})
	var out strings.Builder
	require.NoError(t, cfgnorm.Write(&out, g))
	require.Equal(t, "Z1 : aB1\nB1 : b\n", out.String())
}

func TestWriteSortsRemainingRules(t *testing.T) {
	g := cfgnorm.New("M1")
	g.AddProduction("M1", cfgnorm.Production{cfgnorm.NT("Z1"), cfgnorm.NT("B1")})
	g.AddProduction("Z1", cfgnorm.Production{cfgnorm.T("z")})
	g.AddProduction("B1", cfgnorm.Production{cfgnorm.T("b")})
	var out strings.Builder
	require.NoError(t, cfgnorm.Write(&out, g))
	require.Equal(t, "M1 : Z1B1\nB1 : b\nZ1 : z\n", out.String())
}

func TestWriteEpsilon(t *testing.T) {
	g := cfgnorm.New("A1")
	g.AddProduction("A1", cfgnorm.Production{cfgnorm.Eps()})
	var out strings.Builder
	require.NoError(t, cfgnorm.Write(&out, g))
	require.Equal(t, "A1 : E\n", out.String())
}

func TestWriteEmptyLanguageWritesNothing(t *testing.T) {
	g := cfgnorm.New("A1")
	var out strings.Builder
	require.NoError(t, cfgnorm.Write(&out, g))
	require.Equal(t, "", out.String())
}

func TestWriteReadEmptyLanguageRoundTrip(t *testing.T) {
	g := mustRead(t, "A1 : A1a\n")
	require.Equal(t, "", g.String())
	again, err := cfgnorm.Read(strings.NewReader(g.String()))
	require.NoError(t, err)
	words, err := cfgnorm.Generate(again, 3)
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestWriteReadRoundTrip(t *testing.T) {
	text := "A1 : aB1b | E\nB1 : c\n"
	g := mustRead(t, text)
	require.Equal(t, text, g.String())
	again := mustRead(t, g.String())
	require.Equal(t, text, again.String())
}
