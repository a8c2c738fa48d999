package meeting

import "github.com/minutemind/minutemind/internal/domain/entities"

// CreateMeetingRequest is the payload for creating a meeting
type CreateMeetingRequest struct {
	Name        string  `json:"name" validate:"max=255"`
	Description string  `json:"description"`
	TeamID      *string `json:"team_id,omitempty" validate:"omitempty,uuid"`
}

// ProcessTranscriptRequest carries a raw transcript to store and analyze
type ProcessTranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required"`
}

// TranscribeResponse returns the text produced from an audio upload and
// the analyzed meeting built from it
type TranscribeResponse struct {
	Transcript string            `json:"transcript"`
	Meeting    *entities.Meeting `json:"meeting,omitempty"`
}
