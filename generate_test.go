package cfgnorm_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cfgnorm/cfgnorm"
)

func TestGenerateBalancedPairs(t *testing.T) {
	g := mustRead(t, "A1 : aA1b | E\n")
	words, err := cfgnorm.Generate(g, 4)
	require.NoError(t, err)
	require.Equal(t, []string{"", "aabb", "ab"}, words)
}

func TestGeneratePalindromes(t *testing.T) {
	g := mustRead(t, "A1 : aA1a | bA1b | a | b | E\n")
	words, err := cfgnorm.Generate(g, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"", "a", "aa", "aaa", "aba", "b", "bab", "bb", "bbb"}, words)
}

func TestGenerateEmptyLanguage(t *testing.T) {
	g := mustRead(t, "A1 : A1a\n")
	words, err := cfgnorm.Generate(g, 5)
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestGenerateNegativeBound(t *testing.T) {
	g := mustRead(t, "A1 : a\n")
	words, err := cfgnorm.Generate(g, -1)
	require.NoError(t, err)
	require.Empty(t, words)
}

func TestGenerateZeroBound(t *testing.T) {
	g := mustRead(t, "A1 : aA1b | E\n")
	words, err := cfgnorm.Generate(g, 0)
	require.NoError(t, err)
	require.Equal(t, []string{""}, words)
}

func TestGenerateLeftRecursive(t *testing.T) {
	g := mustRead(t, "A1 : A1a | b\n")
	words, err := cfgnorm.Generate(g, 3)
	require.NoError(t, err)
	require.Equal(t, []string{"b", "ba", "baa"}, words)
}

func TestGenerateExpansionLimit(t *testing.T) {
	g := mustRead(t, "A1 : aA1b | E\n")
	_, err := cfgnorm.Generate(g, 4, cfgnorm.WithExpansionLimit(1))
	var rerr *cfgnorm.ResourceError
	require.ErrorAs(t, err, &rerr)
}

func TestFormatWords(t *testing.T) {
	require.Equal(t, "\na\nab\n", cfgnorm.FormatWords([]string{"", "a", "ab"}))
	require.Equal(t, "", cfgnorm.FormatWords(nil))
}
