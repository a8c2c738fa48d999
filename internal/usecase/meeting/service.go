package meeting

import (
	"bytes"
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
	"github.com/minutemind/minutemind/internal/infrastructure/storage"
)

// Transcriber is the slice of the Whisper client the meeting usecase
// needs
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio []byte) (string, error)
}

// Service handles meeting CRUD and audio transcription
type Service struct {
	meetingRepo repositories.MeetingRepository
	teamRepo    repositories.TeamRepository
	transcriber Transcriber
	store       *storage.MinIOClient
	logger      *zap.Logger
}

// NewService creates a new meeting service. The storage client is
// optional; without it recordings are transcribed but not archived.
func NewService(
	meetingRepo repositories.MeetingRepository,
	teamRepo repositories.TeamRepository,
	transcriber Transcriber,
	store *storage.MinIOClient,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		teamRepo:    teamRepo,
		transcriber: transcriber,
		store:       store,
		logger:      logger,
	}
}

// Create creates a meeting, optionally under a team the user belongs to
func (s *Service) Create(ctx context.Context, userID uuid.UUID, name, description string, teamID *uuid.UUID) (*entities.Meeting, error) {
	if name == "" {
		name = "Untitled Meeting"
	}

	if teamID != nil {
		team, err := s.teamRepo.FindByID(ctx, *teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound("Team")
			}
			return nil, apperrors.ErrInternal(err)
		}
		if !team.HasMember(userID) {
			return nil, apperrors.ErrForbidden("You are not a member of this team")
		}
	}

	meeting := entities.NewMeeting(name, userID)
	meeting.Description = description
	meeting.TeamID = teamID

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("📅 Meeting created", zap.String("meeting_id", meeting.ID.String()))
	}
	return meeting, nil
}

// CreateFromRecording creates a meeting for an uploaded recording. Team
// meetings created this way are restricted to the team leader.
func (s *Service) CreateFromRecording(ctx context.Context, userID uuid.UUID, name string, teamID *uuid.UUID) (*entities.Meeting, error) {
	if name == "" {
		name = "Untitled Meeting"
	}

	if teamID != nil {
		team, err := s.teamRepo.FindByID(ctx, *teamID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrNotFound("Team")
			}
			return nil, apperrors.ErrInternal(err)
		}
		if !team.IsLeader(userID) {
			return nil, apperrors.ErrNotTeamLeader()
		}
	}

	meeting := entities.NewMeeting(name, userID)
	meeting.TeamID = teamID

	if err := s.meetingRepo.Create(ctx, meeting); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("🎙️ Meeting created from recording", zap.String("meeting_id", meeting.ID.String()))
	}
	return meeting, nil
}

// Get returns a meeting with its full breakdown
func (s *Service) Get(ctx context.Context, meetingID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByIDWithBreakdown(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, apperrors.ErrInternal(err)
	}
	return meeting, nil
}

// ListByCreator returns meetings created by the user
func (s *Service) ListByCreator(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	meetings, total, err := s.meetingRepo.FindByCreatorID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.ErrInternal(err)
	}
	return meetings, total, nil
}

// ListByTeam returns a team's meetings; members only
func (s *Service) ListByTeam(ctx context.Context, userID, teamID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, apperrors.ErrNotFound("Team")
		}
		return nil, 0, apperrors.ErrInternal(err)
	}
	if !team.HasMember(userID) {
		return nil, 0, apperrors.ErrForbidden("You are not a member of this team")
	}

	meetings, total, err := s.meetingRepo.FindByTeamID(ctx, teamID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.ErrInternal(err)
	}
	return meetings, total, nil
}

// Delete removes a meeting and everything derived from it. Creator only.
func (s *Service) Delete(ctx context.Context, meetingID, userID uuid.UUID) error {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound("Meeting")
		}
		return apperrors.ErrInternal(err)
	}
	if meeting.CreatorID != userID {
		return apperrors.ErrForbidden("Only the meeting creator can delete this meeting")
	}

	if err := s.meetingRepo.Delete(ctx, meetingID); err != nil {
		return apperrors.ErrInternal(err)
	}
	return nil
}

// Transcribe converts an uploaded recording to text. The recording is
// archived in object storage best effort; a storage failure never loses
// the transcript.
func (s *Service) Transcribe(ctx context.Context, meetingID *uuid.UUID, userID uuid.UUID, filename, contentType string, audio []byte) (string, error) {
	if len(audio) == 0 {
		return "", apperrors.ErrInvalidArgument("No audio file provided")
	}

	transcript, err := s.transcriber.Transcribe(ctx, filename, audio)
	if err != nil {
		return "", apperrors.ErrExternalAPIFailed("whisper", err)
	}

	if s.store != nil && meetingID != nil {
		if _, err := s.store.UploadAudio(ctx, *meetingID, filename, bytes.NewReader(audio), int64(len(audio)), contentType); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to archive recording", zap.Error(err))
		}
	}

	if meetingID != nil {
		meeting, err := s.meetingRepo.FindByID(ctx, *meetingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return "", apperrors.ErrNotFound("Meeting")
			}
			return "", apperrors.ErrInternal(err)
		}
		if !meeting.CanAnalyze(userID) {
			return "", apperrors.ErrForbidden("Only the meeting creator or team leader can attach a transcript")
		}
		if err := s.meetingRepo.UpdateTranscript(ctx, *meetingID, transcript); err != nil {
			return "", apperrors.ErrInternal(err)
		}
	}

	if s.logger != nil {
		s.logger.Info("🎙️ Audio transcribed",
			zap.Int("audio_bytes", len(audio)),
			zap.Int("transcript_chars", len(transcript)))
	}
	return transcript, nil
}
