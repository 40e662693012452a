package translate

import (
	"strings"

	"golang.org/x/net/html"
)

// CleanOutput normalizes provider output for direct display in the chat:
// code fences and wrapping quotes are removed, any markup the model slipped
// in is reduced to its text content, and whitespace is trimmed.
func CleanOutput(s string) string {
	s = strings.TrimSpace(s)
	s = stripCodeFence(s)
	if strings.ContainsAny(s, "<>") {
		s = stripMarkup(s)
	}
	s = strings.TrimSpace(s)

	// Models occasionally quote the whole answer.
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}
	return s
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop an optional language tag on the fence line.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return s
}

func stripMarkup(s string) string {
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return b.String()
}
