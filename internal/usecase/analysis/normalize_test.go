package analysis

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/minutemind/minutemind/internal/domain/entities"
)

func TestParseDateFormats(t *testing.T) {
	if got := ParseDate("2026-09-01"); got == nil || got.Year() != 2026 {
		t.Fatalf("expected ISO date to parse, got %v", got)
	}
	if got := ParseDate("January 2, 2026"); got == nil || got.Month() != time.January {
		t.Fatalf("expected long-form date to parse, got %v", got)
	}
	if got := ParseDate("not-a-date"); got != nil {
		t.Fatalf("garbage must coerce to nil, got %v", got)
	}
	if got := ParseDate(""); got != nil {
		t.Fatalf("empty string must coerce to nil, got %v", got)
	}
}

func TestNormalizeDateCoercion(t *testing.T) {
	meetingID := uuid.New()
	a := &entities.MeetingAnalysis{
		Breakdown: entities.AnalysisBreakdown{
			Tasks:     []entities.TaskItem{{Task: "Prep deck", Owner: "Bob", DueDate: "next Friday"}},
			Decisions: []entities.DecisionItem{{Decision: "Ship it", Date: "whenever"}},
			Deadlines: []entities.DeadlineItem{{Description: "Budget", DueDate: "2026-10-01"}},
		},
	}
	a.EnsureDefaults()

	before := time.Now()
	w := Normalize(a, meetingID, "", false)

	if w.Tasks[0].DueDate != nil {
		t.Fatalf("unparseable task date must be nil, got %v", w.Tasks[0].DueDate)
	}
	if w.Tasks[0].Status != entities.TaskStatusOpen {
		t.Fatalf("new tasks must start OPEN, got %v", w.Tasks[0].Status)
	}
	// Decisions always carry a date; an unparseable one becomes now.
	if w.Decisions[0].Date.Before(before) {
		t.Fatalf("decision date should default to now, got %v", w.Decisions[0].Date)
	}
	if w.Deadlines[0].DueDate == nil {
		t.Fatal("valid deadline date must survive")
	}
}

func TestNormalizeQuestionAndAttendeeDefaults(t *testing.T) {
	meetingID := uuid.New()
	a := &entities.MeetingAnalysis{
		Breakdown: entities.AnalysisBreakdown{
			Questions: []entities.QuestionItem{{Question: "When do we launch?"}},
			Attendees: []entities.AttendeeItem{{Name: "Carol"}},
		},
	}
	a.EnsureDefaults()

	w := Normalize(a, meetingID, "", false)

	if w.Questions[0].Status != "PENDING" {
		t.Fatalf("question status must default to PENDING, got %q", w.Questions[0].Status)
	}
	if w.Questions[0].Answer != nil {
		t.Fatalf("empty answer must be nil, got %v", w.Questions[0].Answer)
	}
	if w.Attendees[0].Role != "PARTICIPANT" {
		t.Fatalf("attendee role must default to PARTICIPANT, got %q", w.Attendees[0].Role)
	}
}

func TestNormalizeAppendsActingUserAsOrganizer(t *testing.T) {
	a := &entities.MeetingAnalysis{
		Breakdown: entities.AnalysisBreakdown{
			Attendees: []entities.AttendeeItem{{Name: "Carol", Role: "Engineer"}},
		},
	}
	a.EnsureDefaults()

	w := Normalize(a, uuid.New(), "Dana", false)

	if len(w.Attendees) != 2 {
		t.Fatalf("expected organizer appended, got %+v", w.Attendees)
	}
	last := w.Attendees[1]
	if last.Name != "Dana" || last.Role != "ORGANIZER" {
		t.Fatalf("unexpected organizer row: %+v", last)
	}
}

func TestNormalizeDoesNotDuplicateActingUser(t *testing.T) {
	a := &entities.MeetingAnalysis{
		Breakdown: entities.AnalysisBreakdown{
			Attendees: []entities.AttendeeItem{
				{Name: "Dana", Role: "Engineer"},
				{Name: "Dana", Role: "Engineer"},
			},
		},
	}
	a.EnsureDefaults()

	w := Normalize(a, uuid.New(), "Dana", false)

	if len(w.Attendees) != 1 {
		t.Fatalf("expected a single Dana row, got %+v", w.Attendees)
	}
	// The model already listed Dana, so the original role wins.
	if w.Attendees[0].Role != "Engineer" {
		t.Fatalf("model-provided role must win, got %q", w.Attendees[0].Role)
	}
}

func TestNormalizeCarriesPreserveTasksFlag(t *testing.T) {
	a := &entities.MeetingAnalysis{}
	a.EnsureDefaults()

	if w := Normalize(a, uuid.New(), "", true); !w.PreserveTasks {
		t.Fatal("preserve flag must be carried through")
	}
	if w := Normalize(a, uuid.New(), "", false); w.PreserveTasks {
		t.Fatal("preserve flag must be off when disabled")
	}
}
