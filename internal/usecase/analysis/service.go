package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
	"github.com/minutemind/minutemind/internal/infrastructure/cache"
	"github.com/minutemind/minutemind/pkg/config"
)

// Service orchestrates a meeting analysis run: authorization, locking,
// the extraction and segmentation calls, normalization, and the replace
// transaction.
type Service struct {
	meetingRepo   repositories.MeetingRepository
	breakdownRepo repositories.BreakdownRepository
	userRepo      repositories.UserRepository
	extractor     *Extractor
	segmenter     *Segmenter
	locker        cache.Locker
	cfg           config.AnalysisConfig
	logger        *zap.Logger
}

// NewService creates a new analysis service
func NewService(
	meetingRepo repositories.MeetingRepository,
	breakdownRepo repositories.BreakdownRepository,
	userRepo repositories.UserRepository,
	extractor *Extractor,
	segmenter *Segmenter,
	locker cache.Locker,
	cfg config.AnalysisConfig,
	logger *zap.Logger,
) *Service {
	return &Service{
		meetingRepo:   meetingRepo,
		breakdownRepo: breakdownRepo,
		userRepo:      userRepo,
		extractor:     extractor,
		segmenter:     segmenter,
		locker:        locker,
		cfg:           cfg,
		logger:        logger,
	}
}

func lockKey(meetingID uuid.UUID) string {
	return fmt.Sprintf("analysis:lock:%s", meetingID)
}

// dropKnownTasks filters out extracted tasks whose description already
// exists on the meeting
func dropKnownTasks(existing, extracted []entities.Task) []entities.Task {
	seen := make(map[string]struct{}, len(existing))
	for _, t := range existing {
		seen[strings.ToLower(strings.TrimSpace(t.Description))] = struct{}{}
	}

	kept := extracted[:0]
	for _, t := range extracted {
		if _, ok := seen[strings.ToLower(strings.TrimSpace(t.Description))]; ok {
			continue
		}
		kept = append(kept, t)
	}
	return kept
}

// Analyze runs the full analysis pipeline for a meeting. Only the
// meeting's creator or its team leader may trigger it. A second run on
// the same meeting while one is in flight is refused with a conflict.
func (s *Service) Analyze(ctx context.Context, meetingID, userID uuid.UUID) (*entities.Meeting, error) {
	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, apperrors.ErrInternal(err)
	}

	if !meeting.CanAnalyze(userID) {
		return nil, apperrors.ErrForbidden("Only the meeting creator or team leader can analyze this meeting")
	}

	if !meeting.HasTranscript() {
		return nil, apperrors.ErrNoTranscript(meetingID.String())
	}

	key := lockKey(meetingID)
	acquired, err := s.locker.Acquire(ctx, key, s.cfg.LockTTL)
	if err != nil {
		// A broken lock backend should not block analysis entirely.
		if s.logger != nil {
			s.logger.Warn("⚠️ Analysis lock unavailable, proceeding unlocked", zap.Error(err))
		}
	} else if !acquired {
		return nil, apperrors.ErrAnalysisInProgress(meetingID.String())
	} else {
		defer func() {
			if err := s.locker.Release(context.WithoutCancel(ctx), key); err != nil && s.logger != nil {
				s.logger.Warn("⚠️ Failed to release analysis lock", zap.Error(err))
			}
		}()
	}

	actingUser, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("🔍 Starting meeting analysis",
			zap.String("meeting_id", meetingID.String()),
			zap.Int("transcript_chars", len(meeting.RawTranscript)))
	}

	// Segmentation runs alongside extraction but the pipeline never
	// waits on its success, only its completion.
	segCh := make(chan *entities.TopicSegmentation, 1)
	go func() {
		segCh <- s.segmenter.Segment(ctx, meeting.RawTranscript)
	}()

	analysis := s.extractor.Extract(ctx, meeting.RawTranscript)
	segmentation := <-segCh

	write := Normalize(analysis, meetingID, actingUser.Name, s.cfg.PreserveTasks)

	// Preserved tasks stay in place; re-extracting the same transcript
	// must not pile up duplicates next to them.
	if s.cfg.PreserveTasks && len(write.Tasks) > 0 {
		if existing, err := s.meetingRepo.FindByIDWithBreakdown(ctx, meetingID); err == nil {
			write.Tasks = dropKnownTasks(existing.Tasks, write.Tasks)
		}
	}

	if err := s.breakdownRepo.Replace(ctx, meetingID, write); err != nil {
		return nil, apperrors.ErrDBTransactionFailed(err)
	}

	// The segmentation enrichment is stored best effort; losing it never
	// fails the analysis that already landed. Only the segmentation
	// column is touched so the row Replace just wrote stays intact.
	if raw, err := json.Marshal(segmentation); err == nil {
		if err := s.meetingRepo.UpdateSegmentation(ctx, meetingID, datatypes.JSON(raw)); err != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to store topic segmentation", zap.Error(err))
		}
	} else if s.logger != nil {
		s.logger.Warn("⚠️ Failed to encode topic segmentation", zap.Error(err))
	}

	result, err := s.meetingRepo.FindByIDWithBreakdown(ctx, meetingID)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if s.logger != nil {
		s.logger.Info("✅ Meeting analysis complete",
			zap.String("meeting_id", meetingID.String()),
			zap.String("meeting_name", result.Name),
			zap.Int("tasks", len(result.Tasks)))
	}
	return result, nil
}

// ProcessTranscript stores a transcript on the meeting and immediately
// runs the analysis pipeline on it
func (s *Service) ProcessTranscript(ctx context.Context, meetingID, userID uuid.UUID, transcript string) (*entities.Meeting, error) {
	if transcript == "" {
		return nil, apperrors.ErrInvalidArgument("Transcript must not be empty")
	}

	meeting, err := s.meetingRepo.FindByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Meeting")
		}
		return nil, apperrors.ErrInternal(err)
	}

	if !meeting.CanAnalyze(userID) {
		return nil, apperrors.ErrForbidden("Only the meeting creator or team leader can process this meeting's transcript")
	}

	if err := s.meetingRepo.UpdateTranscript(ctx, meetingID, transcript); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	return s.Analyze(ctx, meetingID, userID)
}
