// Package pattern pulls candidate operator names out of decoded trace text.
//
// Three independent scans run over the same text. Their results are concatenated without
// deduplication: a name produced by two scans, or present twice in the text, counts twice.
package pattern

import "regexp"

// space is the Unicode whitespace set, ASCII information separators included.
// \s only covers [\t\n\f\r ] and misses the \v and \x1c-\x1f bytes common in trace payloads.
const space = `[\t\n\v\f\r\x1c-\x1f \x{85}\x{a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}]`

//nolint:gochecknoglobals // compiled once, effectively const
var (
	// name="value", name: value, NAME='value'...
	labeledField = regexp.MustCompile(`(?i)name["']?` + space + `*[:=]` + space + `*["']?([^"']+)["']?`)
	// transformer.0.mha.qkv
	dottedIdentifier = regexp.MustCompile(`[a-zA-Z_][a-zA-Z0-9_.]*\.[a-zA-Z0-9_.]+`)
	// COMP_NODE transformer.0.mha, coll_comm_node: all_reduce
	nodeMarker = regexp.MustCompile(`(?i)(?:COMP_NODE|COLL_COMM_NODE|COMP|COMM)[^a-zA-Z]*([a-zA-Z_][a-zA-Z0-9_.]*)`)
)

// Scanner extracts name tokens from text.
type Scanner func(text string) []string

// Scanners lists every scan, in the order their results are pooled.
func Scanners() []Scanner {
	return []Scanner{LabeledFields, DottedIdentifiers, NodeMarkers}
}

// LabeledFields returns the values of name labels.
func LabeledFields(text string) []string {
	return submatches(labeledField, text)
}

// DottedIdentifiers returns identifier runs holding at least one dot.
func DottedIdentifiers(text string) []string {
	return dottedIdentifier.FindAllString(text, -1)
}

// NodeMarkers returns the identifiers following a computation or communication node marker.
func NodeMarkers(text string) []string {
	return submatches(nodeMarker, text)
}

// Tokens runs all scans and pools their results.
func Tokens(text string) []string {
	var tokens []string

	for _, scan := range Scanners() {
		tokens = append(tokens, scan(text)...)
	}

	return tokens
}

func submatches(expr *regexp.Regexp, text string) []string {
	matches := expr.FindAllStringSubmatch(text, -1)
	tokens := make([]string, 0, len(matches))

	for _, match := range matches {
		tokens = append(tokens, match[1])
	}

	return tokens
}

