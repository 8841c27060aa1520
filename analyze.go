package etgrep

import (
	"slices"

	"github.com/farcloser/etgrep/internal/decode"
	"github.com/farcloser/etgrep/internal/group"
	"github.com/farcloser/etgrep/internal/loader"
	"github.com/farcloser/etgrep/internal/pattern"
)

/*
Usage:

result := etgrep.Analyze("generated_attn/moe_attn_8exp_4ep.0.et")
fmt.Printf("%d unique operations\n", len(result.Operations))
for _, key := range result.Groups.Keys() {
    fmt.Println(key, result.Groups.Members(key))
}

// Already decoded text
result := etgrep.Extract(`COMP_NODE transformer.0.mha.qkv`)
fmt.Println(result.Count("transformer.0.mha.qkv")) // 2: dotted identifier + node marker

*/

// Analyze reads the trace file at path and extracts its operator names.
// An unreadable file is reported and yields an empty result.
func Analyze(path string) *Result {
	return Extract(decode.Lossy(loader.Load(path)))
}

// Extract runs every scan over text and builds the result.
func Extract(text string) *Result {
	tokens := pattern.Tokens(text)

	counts := make(map[string]int, len(tokens))
	for _, token := range tokens {
		counts[token]++
	}

	operations := make([]string, 0, len(counts))
	for name := range counts {
		operations = append(operations, name)
	}

	slices.Sort(operations)

	return &Result{
		Operations: operations,
		Counts:     counts,
		Groups:     group.By(operations),
	}
}
