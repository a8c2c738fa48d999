package analysis

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/minutemind/minutemind/pkg/ai"
)

type stubGenerator struct {
	response string
	err      error

	mu     sync.Mutex
	prompt string
	genCfg *ai.GenerationConfig
}

func (s *stubGenerator) GenerateContent(_ context.Context, prompt string, genCfg *ai.GenerationConfig) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompt = prompt
	s.genCfg = genCfg
	return s.response, s.err
}

func TestExtractParsesFencedResponse(t *testing.T) {
	gen := &stubGenerator{response: "```json\n{\"name\": \"Sprint Planning\", \"summary\": \"We planned.\", \"breakdown\": {\"Tasks\": [{\"task\": \"Write report\", \"owner\": \"Alice\", \"dueDate\": \"2026-09-01\"}]}}\n```"}
	e := NewExtractor(gen, nil)

	got := e.Extract(context.Background(), "Alice: let's plan the sprint.")

	if got.Name != "Sprint Planning" {
		t.Fatalf("expected parsed name, got %q", got.Name)
	}
	if got.Description != "No description provided." {
		t.Fatalf("missing description default, got %q", got.Description)
	}
	if len(got.Breakdown.Tasks) != 1 || got.Breakdown.Tasks[0].Owner != "Alice" {
		t.Fatalf("unexpected tasks: %+v", got.Breakdown.Tasks)
	}
	// Every category must be non-nil even when the model omitted it.
	if got.Breakdown.Risks == nil || got.Breakdown.FollowUps == nil {
		t.Fatal("expected non-nil category slices")
	}
}

func TestExtractGatewayFailureYieldsEmptyCategories(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	e := NewExtractor(gen, nil)

	got := e.Extract(context.Background(), "transcript")

	if got.Name != "Untitled Meeting" {
		t.Fatalf("unexpected name: %q", got.Name)
	}
	if !strings.HasPrefix(got.Summary, "Failed to generate summary") {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
	if len(got.Breakdown.Tasks) != 0 || len(got.Breakdown.Attendees) != 0 {
		t.Fatalf("gateway failure must not fabricate items: %+v", got.Breakdown)
	}
}

func TestExtractParseFailureYieldsPlaceholders(t *testing.T) {
	gen := &stubGenerator{response: "I could not produce JSON today, sorry."}
	e := NewExtractor(gen, nil)

	got := e.Extract(context.Background(), "transcript")

	if !strings.HasPrefix(got.Summary, "Could not generate summary") {
		t.Fatalf("unexpected summary: %q", got.Summary)
	}
	if len(got.Breakdown.Tasks) != 1 || got.Breakdown.Tasks[0].Task != "Review transcript manually" {
		t.Fatalf("expected manual-review placeholder task: %+v", got.Breakdown.Tasks)
	}
	if len(got.Breakdown.Risks) != 1 || got.Breakdown.Risks[0].Impact != "Information loss" {
		t.Fatalf("expected placeholder risk: %+v", got.Breakdown.Risks)
	}
}

func TestExtractFallbacksAreDistinguishable(t *testing.T) {
	gateway := NewExtractor(&stubGenerator{err: errors.New("down")}, nil).Extract(context.Background(), "t")
	parse := NewExtractor(&stubGenerator{response: "not json"}, nil).Extract(context.Background(), "t")

	if gateway.Summary == parse.Summary {
		t.Fatal("the two failure modes must produce different summaries")
	}
	if len(gateway.Breakdown.Tasks) == len(parse.Breakdown.Tasks) {
		t.Fatal("the two failure modes must produce different breakdowns")
	}
}

func TestExtractTruncatesLongTranscripts(t *testing.T) {
	gen := &stubGenerator{response: `{"name": "X"}`}
	e := NewExtractor(gen, nil)

	long := strings.Repeat("a", maxTranscriptChars+500)
	e.Extract(context.Background(), long)

	if strings.Contains(gen.prompt, long) {
		t.Fatal("full transcript should not reach the model")
	}
	if !strings.Contains(gen.prompt, strings.Repeat("a", maxTranscriptChars)+"...") {
		t.Fatal("truncated transcript should end with ellipsis")
	}
}

func TestTruncateTranscriptShortInputUnchanged(t *testing.T) {
	if got := TruncateTranscript("short"); got != "short" {
		t.Fatalf("short transcript must pass through, got %q", got)
	}
}
