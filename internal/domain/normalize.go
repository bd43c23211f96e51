package domain

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeMultiselect canonicalizes a multi-valued attribute for display:
//   - nil or "" returns an empty (non-nil) slice
//   - a string is split on ",", each piece trimmed, empty pieces dropped
//   - a []string or []any is flat-mapped through the same rule, so an element
//     that itself carries embedded commas is split as well
//
// Order of first occurrence is preserved. Duplicates are kept.
func NormalizeMultiselect(value any) []string {
	out := []string{}
	switch v := value.(type) {
	case nil:
	case string:
		out = appendTokens(out, v)
	case []string:
		for _, s := range v {
			out = appendTokens(out, s)
		}
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = appendTokens(out, s)
			}
		}
	}
	return out
}

func appendTokens(dst []string, s string) []string {
	for _, piece := range strings.Split(s, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			dst = append(dst, piece)
		}
	}
	return dst
}

// JoinMultiselect produces the persisted form of a multiselect value.
func JoinMultiselect(items []string) string {
	return strings.Join(items, ",")
}

// DedupeTokens removes repeated tokens, keeping the first occurrence.
func DedupeTokens(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it]; ok {
			continue
		}
		seen[it] = struct{}{}
		out = append(out, it)
	}
	return out
}

// NormalizeOption trims an option label and brings it to Unicode NFC so that
// "Średnie" typed with a combining accent matches the precomposed form.
func NormalizeOption(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
