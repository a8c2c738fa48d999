package entities

// Breakdown category keys as produced by the extraction prompt. "Follow-ups"
// is hyphenated because that is the vocabulary the model is instructed to use.
const (
	CategoryTasks     = "Tasks"
	CategoryDecisions = "Decisions"
	CategoryQuestions = "Questions"
	CategoryInsights  = "Insights"
	CategoryDeadlines = "Deadlines"
	CategoryAttendees = "Attendees"
	CategoryFollowUps = "Follow-ups"
	CategoryRisks     = "Risks"
)

// TaskItem is one extracted task assignment
type TaskItem struct {
	Task    string `json:"task"`
	Owner   string `json:"owner"`
	DueDate string `json:"dueDate"`
}

// DecisionItem is one extracted decision
type DecisionItem struct {
	Decision string `json:"decision"`
	Date     string `json:"date"`
}

// QuestionItem is one extracted question with its status
type QuestionItem struct {
	Question string `json:"question"`
	Status   string `json:"status"`
	Answer   string `json:"answer"`
}

// InsightItem is one extracted insight with its transcript reference
type InsightItem struct {
	Insight   string `json:"insight"`
	Reference string `json:"reference"`
}

// DeadlineItem is one extracted deadline
type DeadlineItem struct {
	Description string `json:"description"`
	DueDate     string `json:"dueDate"`
}

// AttendeeItem is one extracted attendee
type AttendeeItem struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// FollowUpItem is one extracted follow-up item
type FollowUpItem struct {
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

// RiskItem is one extracted risk with its potential impact
type RiskItem struct {
	Risk   string `json:"risk"`
	Impact string `json:"impact"`
}

// AnalysisBreakdown groups the eight extraction categories. After
// normalization every slice is non-nil; consumers never need nil checks.
type AnalysisBreakdown struct {
	Tasks     []TaskItem     `json:"Tasks"`
	Decisions []DecisionItem `json:"Decisions"`
	Questions []QuestionItem `json:"Questions"`
	Insights  []InsightItem  `json:"Insights"`
	Deadlines []DeadlineItem `json:"Deadlines"`
	Attendees []AttendeeItem `json:"Attendees"`
	FollowUps []FollowUpItem `json:"Follow-ups"`
	Risks     []RiskItem     `json:"Risks"`
}

// MeetingAnalysis is the canonical result of one extraction call. It is
// transient: it only exists between the extraction adapter and the
// persistence transaction.
type MeetingAnalysis struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Summary     string            `json:"summary"`
	Breakdown   AnalysisBreakdown `json:"breakdown"`
}

// EnsureDefaults fills every missing string field and nil category slice so
// downstream consumers always see a complete structure.
func (a *MeetingAnalysis) EnsureDefaults() {
	if a.Name == "" {
		a.Name = "Untitled Meeting"
	}
	if a.Description == "" {
		a.Description = "No description provided."
	}
	if a.Summary == "" {
		a.Summary = "Summary not generated"
	}
	if a.Breakdown.Tasks == nil {
		a.Breakdown.Tasks = []TaskItem{}
	}
	if a.Breakdown.Decisions == nil {
		a.Breakdown.Decisions = []DecisionItem{}
	}
	if a.Breakdown.Questions == nil {
		a.Breakdown.Questions = []QuestionItem{}
	}
	if a.Breakdown.Insights == nil {
		a.Breakdown.Insights = []InsightItem{}
	}
	if a.Breakdown.Deadlines == nil {
		a.Breakdown.Deadlines = []DeadlineItem{}
	}
	if a.Breakdown.Attendees == nil {
		a.Breakdown.Attendees = []AttendeeItem{}
	}
	if a.Breakdown.FollowUps == nil {
		a.Breakdown.FollowUps = []FollowUpItem{}
	}
	if a.Breakdown.Risks == nil {
		a.Breakdown.Risks = []RiskItem{}
	}
}

// Topic is one segment of a topic segmentation
type Topic struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	StartPoint       string   `json:"startPoint"`
	EndPoint         string   `json:"endPoint"`
	Summary          string   `json:"summary"`
	KeySpeakers      []string `json:"keySpeakers"`
	EstimatedMinutes float64  `json:"estimatedMinutes"`
}

// TopicSegmentation is the best-effort enrichment produced alongside a
// meeting analysis. Its absence never invalidates the meeting record.
type TopicSegmentation struct {
	TotalTopics       int     `json:"totalTopics"`
	EstimatedDuration string  `json:"estimatedDuration"`
	Topics            []Topic `json:"topics"`
}

// EnsureDefaults normalizes a parsed segmentation: sequential fallback ids,
// non-nil speaker lists, and placeholder titles/summaries.
func (s *TopicSegmentation) EnsureDefaults() {
	if s.EstimatedDuration == "" {
		s.EstimatedDuration = "Unknown"
	}
	if s.Topics == nil {
		s.Topics = []Topic{}
	}
	for i := range s.Topics {
		if s.Topics[i].ID == 0 {
			s.Topics[i].ID = i + 1
		}
		if s.Topics[i].Title == "" {
			s.Topics[i].Title = "Untitled Topic"
		}
		if s.Topics[i].Summary == "" {
			s.Topics[i].Summary = "No summary available"
		}
		if s.Topics[i].KeySpeakers == nil {
			s.Topics[i].KeySpeakers = []string{}
		}
	}
	if s.TotalTopics < 0 {
		s.TotalTopics = 0
	}
	if s.TotalTopics == 0 {
		s.TotalTopics = len(s.Topics)
	}
}
