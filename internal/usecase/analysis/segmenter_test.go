package analysis

import (
	"context"
	"errors"
	"testing"
)

func TestSegmentParsesResponse(t *testing.T) {
	gen := &stubGenerator{
		response: "```json\n" + `{
			"totalTopics": 0,
			"estimatedDuration": "25 minutes",
			"topics": [
				{"title": "Budget Review", "startPoint": "Alice: budgets", "endPoint": "Bob: moving on", "summary": "Spending plan", "keySpeakers": ["Alice", "Bob"], "estimatedMinutes": 15},
				{"title": "", "summary": ""}
			]
		}` + "\n```",
	}
	seg := NewSegmenter(gen, nil)

	got := seg.Segment(context.Background(), "Alice: budgets. Bob: moving on.")

	if got.TotalTopics != 2 {
		t.Fatalf("total topics should backfill from the slice, got %d", got.TotalTopics)
	}
	if got.Topics[0].ID != 1 || got.Topics[1].ID != 2 {
		t.Fatalf("missing ids must be filled sequentially, got %d and %d", got.Topics[0].ID, got.Topics[1].ID)
	}
	if got.Topics[1].Title != "Untitled Topic" {
		t.Fatalf("blank title must get a placeholder, got %q", got.Topics[1].Title)
	}
	if got.Topics[1].KeySpeakers == nil {
		t.Fatal("key speakers must never be nil")
	}
}

func TestSegmentAPIFailureFallback(t *testing.T) {
	gen := &stubGenerator{err: errors.New("gateway timeout")}
	seg := NewSegmenter(gen, nil)

	got := seg.Segment(context.Background(), "some transcript")

	if len(got.Topics) != 1 || got.Topics[0].Title != "API Error" {
		t.Fatalf("expected API Error fallback topic, got %+v", got.Topics)
	}
	if got.EstimatedDuration != "Unknown" {
		t.Fatalf("fallback duration should be Unknown, got %q", got.EstimatedDuration)
	}
}

func TestSegmentParseFailureFallback(t *testing.T) {
	gen := &stubGenerator{response: "the transcript covers three topics"}
	seg := NewSegmenter(gen, nil)

	got := seg.Segment(context.Background(), "some transcript")

	if len(got.Topics) != 1 || got.Topics[0].Title != "Error processing transcript" {
		t.Fatalf("expected parse fallback topic, got %+v", got.Topics)
	}
}

func TestSegmentUsesLowTemperature(t *testing.T) {
	gen := &stubGenerator{response: `{"totalTopics": 1, "topics": [{"id": 1, "title": "Only"}]}`}
	seg := NewSegmenter(gen, nil)

	seg.Segment(context.Background(), "short transcript")

	if gen.genCfg == nil {
		t.Fatal("generation config must be set")
	}
	if gen.genCfg.Temperature != 0.2 {
		t.Fatalf("segmentation runs at temperature 0.2, got %v", gen.genCfg.Temperature)
	}
}
