package language_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"linguabridge/backend/internal/language"
)

func TestCodeOf_AllRegistryEntries(t *testing.T) {
	expected := map[string]string{
		"English":    "en",
		"Spanish":    "es",
		"French":     "fr",
		"German":     "de",
		"Italian":    "it",
		"Portuguese": "pt",
		"Russian":    "ru",
		"Chinese":    "zh",
		"Japanese":   "ja",
		"Korean":     "ko",
		"Arabic":     "ar",
		"Hindi":      "hi",
	}

	require.Len(t, language.All(), len(expected))
	for name, want := range expected {
		code, err := language.CodeOf(name)
		require.NoError(t, err, "CodeOf(%q)", name)
		require.Equal(t, want, code)

		back, err := language.NameOf(code)
		require.NoError(t, err)
		require.Equal(t, name, back)
	}
}

func TestCodeOf_UnknownLanguage(t *testing.T) {
	for _, name := range []string{"Klingon", "english", "", "EN"} {
		_, err := language.CodeOf(name)
		require.ErrorIs(t, err, language.ErrUnknownLanguage, "CodeOf(%q)", name)
	}
}

func TestAll_OrderIsStable(t *testing.T) {
	all := language.All()
	require.Equal(t, "English", all[0].Name, "UI default source is the first entry")
	require.Equal(t, "Spanish", all[1].Name, "UI default target is the second entry")

	// Mutating the returned slice must not affect the registry.
	all[0].Name = "Esperanto"
	require.Equal(t, "English", language.All()[0].Name)
}

func TestPair(t *testing.T) {
	require.Equal(t, "English → Spanish", language.Pair("English", "Spanish"))
}
