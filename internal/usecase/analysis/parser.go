package analysis

import (
	"regexp"
	"strings"
)

var (
	fencedBlockRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")
	jsonSpanRe    = regexp.MustCompile(`(?s)(\{.*\})`)
)

// ExtractJSON pulls the JSON document out of a model response. Models
// wrap their output unpredictably, so three shapes are tried in order:
// a fenced code block, the outermost brace-delimited span, and finally
// the whole text as-is.
func ExtractJSON(text string) string {
	if m := fencedBlockRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := jsonSpanRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return strings.TrimSpace(text)
}
