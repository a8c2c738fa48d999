package analysis

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/pkg/ai"
)

// maxTranscriptChars bounds the transcript sent to the model so a long
// meeting never blows the token limit.
const maxTranscriptChars = 30000

const extractionPrompt = `Tasks: Tasks with varying priorities, owners, and due dates. Example task assignments include preparing reports, setting up meetings, and submitting proposals.
Decisions: Important decisions made during the meeting Decisions include vendor choice, marketing strategy, and budget approval.
Questions: Questions raised during the meeting, with their status (answered/unanswered). Answered questions include additional context in the form of answers.
Insights: Insights based on the conversation, ranging from sales performance to concerns about deadlines.Each insight refer back to the exact part of the conversation.
Deadlines: Upcoming deadlines related to the budget, product launch, and client presentation. This helps track time-sensitive matters.
Attendees: Attendees who attended the meeting This tracks attendance and their respective roles.
Follow-ups: Follow-up tasks assigned to individuals after the meeting, each with a due date. Follow-up items focus on clarifying budget, design, and scheduling next actions.
Risks: Risks identified during the meeting, each with potential impacts on the project. These include risks like budget overruns, delays, and potential staff turnover.
Description: A high-level overview of the meeting's purpose and key areas of focus. The description captures the essential topics discussed, decisions made, and the overall scope of the meeting, such as infrastructure updates, budget approvals, and key community concerns.
Summary: A brief consolidation of the main points and outcomes from the meeting. The summary encapsulates the flow of the meeting, including major tasks, decisions, and action points, along with any significant challenges or risks highlighted, offering a concise review of the meeting's results.


Format your response as JSON with the following structure:
{
  "name": "Meeting Title",
  "description": "Brief meeting description",
  "summary": "Detailed meeting summary",
  "breakdown": {
    "Tasks": [{"task": "task description", "owner": "person name", "dueDate": "date"}],
    "Decisions": [{"decision": "decision made", "date": "date of decision"}],
    "Questions": [{"question": "question asked", "status": "PENDING/ANSWERED", "answer": "answer if available"}],
    "Insights": [{"insight": "insight description", "reference": "context"}],
    "Deadlines": [{"description": "deadline description", "dueDate": "date"}],
    "Attendees": [{"name": "person name", "role": "their role"}],
    "Follow-ups": [{"description": "follow-up item", "owner": "responsible person"}],
    "Risks": [{"risk": "risk description", "impact": "potential impact"}]
  }
}`

// ContentGenerator is the slice of the Gemini client the analysis
// usecase needs
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string, genCfg *ai.GenerationConfig) (string, error)
}

// Extractor turns a raw transcript into a structured MeetingAnalysis.
// It never returns an error: every failure mode degrades into a usable
// analysis so the meeting record always ends up in a consistent state.
type Extractor struct {
	generator ContentGenerator
	logger    *zap.Logger
}

// NewExtractor creates a new extractor
func NewExtractor(generator ContentGenerator, logger *zap.Logger) *Extractor {
	return &Extractor{
		generator: generator,
		logger:    logger,
	}
}

// Extract sends the transcript to the model once and parses the reply.
// A gateway failure yields an analysis with empty categories; a reply
// that cannot be parsed yields placeholder items pointing the team at
// the transcript. The two fallbacks are deliberately distinguishable.
func (e *Extractor) Extract(ctx context.Context, transcript string) *entities.MeetingAnalysis {
	prompt := extractionPrompt + "\n\nTranscript: " + TruncateTranscript(transcript)

	responseText, err := e.generator.GenerateContent(ctx, prompt, nil)
	if err != nil {
		if e.logger != nil {
			e.logger.Error("❌ Transcript analysis request failed", zap.Error(err))
		}
		return gatewayFailureAnalysis()
	}

	var analysis entities.MeetingAnalysis
	if err := json.Unmarshal([]byte(ExtractJSON(responseText)), &analysis); err != nil {
		if e.logger != nil {
			e.logger.Warn("⚠️ Could not parse analysis response",
				zap.Error(err),
				zap.String("response_prefix", prefix(responseText, 500)))
		}
		return parseFailureAnalysis()
	}

	analysis.EnsureDefaults()

	if e.logger != nil {
		e.logger.Info("✅ Transcript analysis parsed",
			zap.String("meeting_name", analysis.Name),
			zap.Int("tasks", len(analysis.Breakdown.Tasks)),
			zap.Int("attendees", len(analysis.Breakdown.Attendees)))
	}
	return &analysis
}

// TruncateTranscript caps the transcript at the model input limit,
// marking the cut with an ellipsis
func TruncateTranscript(transcript string) string {
	if len(transcript) > maxTranscriptChars {
		return transcript[:maxTranscriptChars] + "..."
	}
	return transcript
}

// gatewayFailureAnalysis is returned when the model never produced a
// reply. Categories stay empty so nothing fabricated reaches the
// database.
func gatewayFailureAnalysis() *entities.MeetingAnalysis {
	a := &entities.MeetingAnalysis{
		Name:        "Untitled Meeting",
		Description: "Failed to generate description. Please review the transcript directly.",
		Summary:     "Failed to generate summary. Please review the transcript directly.",
	}
	a.EnsureDefaults()
	return a
}

// parseFailureAnalysis is returned when the model replied but the reply
// was not valid JSON. Each category gets a single placeholder item that
// tells the team to review the transcript by hand.
func parseFailureAnalysis() *entities.MeetingAnalysis {
	return &entities.MeetingAnalysis{
		Name:        "Untitled Meeting",
		Description: "Could not generate description from transcript. Please review directly.",
		Summary:     "Could not generate summary from transcript. Please review the transcript directly.",
		Breakdown: entities.AnalysisBreakdown{
			Tasks:     []entities.TaskItem{{Task: "Review transcript manually", Owner: "Team", DueDate: ""}},
			Decisions: []entities.DecisionItem{{Decision: "See transcript for details", Date: ""}},
			Questions: []entities.QuestionItem{{Question: "Review transcript for questions", Status: "Pending", Answer: ""}},
			Insights:  []entities.InsightItem{{Insight: "Manual analysis needed", Reference: "Transcript"}},
			Deadlines: []entities.DeadlineItem{{Description: "Review transcript promptly", DueDate: ""}},
			Attendees: []entities.AttendeeItem{{Name: "Meeting participants", Role: "See transcript"}},
			FollowUps: []entities.FollowUpItem{{Description: "Process transcript manually", Owner: "Team"}},
			Risks:     []entities.RiskItem{{Risk: "Missing important details", Impact: "Information loss"}},
		},
	}
}

func prefix(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
