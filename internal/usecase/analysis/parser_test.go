package analysis

import "testing"

func TestExtractJSONFencedBlock(t *testing.T) {
	text := "Here is the result:\n```json\n{\"name\": \"Standup\"}\n```\nLet me know."
	got := ExtractJSON(text)
	if got != `{"name": "Standup"}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONFencedBlockWithoutLanguage(t *testing.T) {
	text := "```\n{\"a\": 1}\n```"
	got := ExtractJSON(text)
	if got != `{"a": 1}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONBraceSpan(t *testing.T) {
	text := `The meeting analysis follows. {"name": "Planning", "breakdown": {}} Hope this helps.`
	got := ExtractJSON(text)
	if got != `{"name": "Planning", "breakdown": {}}` {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONWholeText(t *testing.T) {
	text := "  [1, 2, 3]  "
	got := ExtractJSON(text)
	if got != "[1, 2, 3]" {
		t.Fatalf("unexpected extraction: %q", got)
	}
}

func TestExtractJSONPrefersFencedBlock(t *testing.T) {
	text := "{\"outer\": true}\n```json\n{\"inner\": true}\n```"
	got := ExtractJSON(text)
	if got != `{"inner": true}` {
		t.Fatalf("fenced block should win, got %q", got)
	}
}
