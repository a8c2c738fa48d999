package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
)

// dateLayouts are tried in order when coercing the model's free-form
// date strings. Anything unparseable becomes a null date rather than an
// error; the model frequently emits values like "next Friday".
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
}

// ParseDate coerces a model-produced date string to a concrete time,
// or nil when the string is empty or unparseable
func ParseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

// Normalize converts a MeetingAnalysis into database rows ready for the
// replace transaction. The acting user is recorded as an ORGANIZER
// attendee when the model did not already list them.
func Normalize(a *entities.MeetingAnalysis, meetingID uuid.UUID, actingUserName string, preserveTasks bool) *repositories.BreakdownWrite {
	w := &repositories.BreakdownWrite{
		MeetingName:        a.Name,
		MeetingDescription: a.Description,
		Summary:            a.Summary,
		PreserveTasks:      preserveTasks,
	}

	for _, item := range a.Breakdown.Tasks {
		w.Tasks = append(w.Tasks, entities.Task{
			MeetingID:   meetingID,
			Description: item.Task,
			Owner:       item.Owner,
			DueDate:     ParseDate(item.DueDate),
			Status:      entities.TaskStatusOpen,
		})
	}

	for _, item := range a.Breakdown.Decisions {
		date := ParseDate(item.Date)
		if date == nil {
			now := time.Now()
			date = &now
		}
		w.Decisions = append(w.Decisions, entities.Decision{
			MeetingID: meetingID,
			Content:   item.Decision,
			Date:      *date,
		})
	}

	for _, item := range a.Breakdown.Questions {
		status := item.Status
		if status == "" {
			status = entities.QuestionStatusPending
		}
		var answer *string
		if item.Answer != "" {
			answerCopy := item.Answer
			answer = &answerCopy
		}
		w.Questions = append(w.Questions, entities.Question{
			MeetingID: meetingID,
			Content:   item.Question,
			Status:    status,
			Answer:    answer,
		})
	}

	for _, item := range a.Breakdown.Insights {
		var ref *string
		if item.Reference != "" {
			refCopy := item.Reference
			ref = &refCopy
		}
		w.Insights = append(w.Insights, entities.Insight{
			MeetingID: meetingID,
			Content:   item.Insight,
			Reference: ref,
		})
	}

	for _, item := range a.Breakdown.Deadlines {
		w.Deadlines = append(w.Deadlines, entities.Deadline{
			MeetingID:   meetingID,
			Description: item.Description,
			DueDate:     ParseDate(item.DueDate),
		})
	}

	seen := make(map[string]bool)
	for _, item := range a.Breakdown.Attendees {
		if item.Name == "" || seen[item.Name] {
			continue
		}
		seen[item.Name] = true

		role := item.Role
		if role == "" {
			role = entities.AttendeeRoleParticipant
		}
		w.Attendees = append(w.Attendees, entities.Attendee{
			MeetingID: meetingID,
			Name:      item.Name,
			Role:      role,
		})
	}
	if actingUserName != "" && !seen[actingUserName] {
		w.Attendees = append(w.Attendees, entities.Attendee{
			MeetingID: meetingID,
			Name:      actingUserName,
			Role:      entities.AttendeeRoleOrganizer,
		})
	}

	for _, item := range a.Breakdown.FollowUps {
		var owner *string
		if item.Owner != "" {
			ownerCopy := item.Owner
			owner = &ownerCopy
		}
		w.FollowUps = append(w.FollowUps, entities.FollowUp{
			MeetingID:   meetingID,
			Description: item.Description,
			Owner:       owner,
		})
	}

	for _, item := range a.Breakdown.Risks {
		var impact *string
		if item.Impact != "" {
			impactCopy := item.Impact
			impact = &impactCopy
		}
		w.Risks = append(w.Risks, entities.Risk{
			MeetingID: meetingID,
			Content:   item.Risk,
			Impact:    impact,
		})
	}

	return w
}
