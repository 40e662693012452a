// Package language holds the fixed registry of supported languages. The
// registry is read-only after initialization and maps human-readable names
// to ISO-639-1 two-letter codes.
package language

import (
	"errors"
	"fmt"
)

// ErrUnknownLanguage is returned when a name is not a registry key.
var ErrUnknownLanguage = errors.New("unknown language")

// Language is one (name, code) registry entry.
type Language struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// registry order matters: the UI defaults its source/target selections to
// the first two entries.
var registry = []Language{
	{Name: "English", Code: "en"},
	{Name: "Spanish", Code: "es"},
	{Name: "French", Code: "fr"},
	{Name: "German", Code: "de"},
	{Name: "Italian", Code: "it"},
	{Name: "Portuguese", Code: "pt"},
	{Name: "Russian", Code: "ru"},
	{Name: "Chinese", Code: "zh"},
	{Name: "Japanese", Code: "ja"},
	{Name: "Korean", Code: "ko"},
	{Name: "Arabic", Code: "ar"},
	{Name: "Hindi", Code: "hi"},
}

var byName = func() map[string]string {
	m := make(map[string]string, len(registry))
	for _, l := range registry {
		m[l.Name] = l.Code
	}
	return m
}()

var byCode = func() map[string]string {
	m := make(map[string]string, len(registry))
	for _, l := range registry {
		m[l.Code] = l.Name
	}
	return m
}()

// CodeOf resolves a language name to its code. Unknown names fail with
// ErrUnknownLanguage; selections are never silently defaulted.
func CodeOf(name string) (string, error) {
	code, ok := byName[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, name)
	}
	return code, nil
}

// NameOf resolves a code back to its registry name. Used to build provider
// prompts from wire codes.
func NameOf(code string) (string, error) {
	name, ok := byCode[code]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}
	return name, nil
}

// All returns the registry entries in their fixed order.
func All() []Language {
	out := make([]Language, len(registry))
	copy(out, registry)
	return out
}

// Pair formats a source/target selection the way transcripts and saved
// conversations record it.
func Pair(sourceName, targetName string) string {
	return sourceName + " → " + targetName
}
