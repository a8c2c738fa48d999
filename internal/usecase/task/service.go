package task

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/domain/repositories"
)

// Service implements the task lifecycle: assignment, proof submission,
// approval and rework. Leadership is resolved through the task's
// meeting and team; a task without a team has no leader and its
// leader-only operations are refused. Membership is always checked
// against the team repository, never against whatever association set
// the caller happened to load.
type Service struct {
	taskRepo   repositories.TaskRepository
	teamRepo   repositories.TeamRepository
	dispatcher Dispatcher
	logger     *zap.Logger
}

// NewService creates a new task service
func NewService(taskRepo repositories.TaskRepository, teamRepo repositories.TeamRepository, dispatcher Dispatcher, logger *zap.Logger) *Service {
	return &Service{
		taskRepo:   taskRepo,
		teamRepo:   teamRepo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// EditInput carries the fields a leader may change on a task. Nil
// pointers mean "leave unchanged". ClearDueDate and Unassign exist
// because nil cannot distinguish "unchanged" from "remove".
type EditInput struct {
	Description  *string
	DueDate      *time.Time
	ClearDueDate bool
	AssigneeID   *uuid.UUID
	Unassign     bool
	Status       *entities.TaskStatus
}

func (s *Service) load(ctx context.Context, taskID uuid.UUID) (*entities.Task, error) {
	task, err := s.taskRepo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Task")
		}
		return nil, apperrors.ErrInternal(err)
	}
	return task, nil
}

// leaderID resolves the team leader governing a task
func leaderID(task *entities.Task) (uuid.UUID, bool) {
	if task.Meeting == nil || task.Meeting.Team == nil {
		return uuid.Nil, false
	}
	return task.Meeting.Team.LeaderID, true
}

func requireLeader(task *entities.Task, userID uuid.UUID) error {
	leader, ok := leaderID(task)
	if !ok {
		return apperrors.ErrNotFound("Task or associated team")
	}
	if leader != userID {
		return apperrors.ErrNotTeamLeader()
	}
	return nil
}

// requireMember verifies the user belongs to the task's team. The team
// is fetched fresh so the check does not depend on preloaded members.
func (s *Service) requireMember(ctx context.Context, task *entities.Task, userID uuid.UUID) error {
	if task.Meeting == nil || task.Meeting.TeamID == nil {
		return nil
	}
	team, err := s.teamRepo.FindByID(ctx, *task.Meeting.TeamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotFound("Team")
		}
		return apperrors.ErrInternal(err)
	}
	if !team.HasMember(userID) {
		return apperrors.ErrInvalidArgument("Assignee is not a member of this team")
	}
	return nil
}

// AssignInput carries the assignment-path update. Nil pointers mean
// "leave unchanged"; Unassign and ClearDueDate exist because nil cannot
// distinguish "unchanged" from "remove".
type AssignInput struct {
	AssigneeID   *uuid.UUID
	Unassign     bool
	DueDate      *time.Time
	ClearDueDate bool
}

// Assign gives the task to a team member, clears the assignment, or
// moves the due date. Leader only.
func (s *Service) Assign(ctx context.Context, taskID, actingUserID uuid.UUID, input AssignInput) (*entities.Task, error) {
	task, err := s.load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireLeader(task, actingUserID); err != nil {
		return nil, err
	}

	changed := false

	if input.Unassign {
		task.AssigneeID = nil
		changed = true
	} else if input.AssigneeID != nil {
		if err := s.requireMember(ctx, task, *input.AssigneeID); err != nil {
			return nil, err
		}
		task.AssigneeID = input.AssigneeID
		changed = true
	}
	if input.ClearDueDate {
		task.DueDate = nil
		changed = true
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
		changed = true
	}

	if !changed {
		return nil, apperrors.ErrInvalidArgument("No update data provided")
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if input.AssigneeID != nil && !input.Unassign {
		s.dispatcher.Dispatch(ctx, Event{
			Type:        entities.NotificationTaskAssigned,
			RecipientID: *input.AssigneeID,
			TaskID:      task.ID,
			MeetingID:   task.MeetingID,
			TaskTitle:   task.Description,
		})

		if s.logger != nil {
			s.logger.Info("📌 Task assigned",
				zap.String("task_id", taskID.String()),
				zap.String("assignee_id", input.AssigneeID.String()))
		}
	}
	return s.load(ctx, taskID)
}

// Edit updates task details. Leader only. The status field only accepts
// OPEN, which lets a leader reopen a completed task; all other
// transitions go through the dedicated operations.
func (s *Service) Edit(ctx context.Context, taskID, actingUserID uuid.UUID, input EditInput) (*entities.Task, error) {
	task, err := s.load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireLeader(task, actingUserID); err != nil {
		return nil, err
	}

	changed := false

	if input.Description != nil {
		trimmed := strings.TrimSpace(*input.Description)
		if trimmed == "" {
			return nil, apperrors.ErrInvalidArgument("Task description cannot be empty")
		}
		task.Description = trimmed
		changed = true
	}
	if input.ClearDueDate {
		task.DueDate = nil
		changed = true
	} else if input.DueDate != nil {
		task.DueDate = input.DueDate
		changed = true
	}
	if input.Unassign {
		task.AssigneeID = nil
		changed = true
	} else if input.AssigneeID != nil {
		if err := s.requireMember(ctx, task, *input.AssigneeID); err != nil {
			return nil, err
		}
		task.AssigneeID = input.AssigneeID
		changed = true
	}
	if input.Status != nil {
		if *input.Status != entities.TaskStatusOpen {
			return nil, apperrors.ErrInvalidArgument("Status can only be set to 'OPEN' via general edit")
		}
		task.Status = *input.Status
		changed = true
	}

	if !changed {
		return nil, apperrors.ErrInvalidArgument("No update data provided")
	}

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	if task.AssigneeID != nil {
		s.dispatcher.Dispatch(ctx, Event{
			Type:        entities.NotificationTaskAssigned,
			RecipientID: *task.AssigneeID,
			TaskID:      task.ID,
			MeetingID:   task.MeetingID,
			TaskTitle:   task.Description,
		})
	}

	return s.load(ctx, taskID)
}

// SubmitProof records evidence of completion and moves the task to
// PENDING_APPROVAL. Only the assignee may submit, and only from OPEN or
// NEEDS_REWORK.
func (s *Service) SubmitProof(ctx context.Context, taskID, actingUserID uuid.UUID, fileURL string, description *string) (*entities.Task, error) {
	task, err := s.load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !task.IsAssignedTo(actingUserID) {
		return nil, apperrors.ErrNotAssignee()
	}
	if !task.Status.CanSubmitProof() {
		return nil, apperrors.ErrTaskInvalidState(taskID.String(), string(task.Status), "OPEN or NEEDS_REWORK")
	}

	proof := &entities.TaskProof{
		TaskID:      taskID,
		UserID:      actingUserID,
		FileURL:     fileURL,
		Description: description,
	}
	if err := s.taskRepo.AddProof(ctx, proof); err != nil {
		return nil, apperrors.ErrInternal(err)
	}

	// Rework feedback is consumed by the resubmission.
	ok, err := s.taskRepo.UpdateStatus(ctx, taskID, task.Status, entities.TaskStatusPendingApproval, map[string]interface{}{
		"comments": nil,
	})
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	if !ok {
		return nil, apperrors.ErrTaskInvalidState(taskID.String(), string(task.Status), "OPEN or NEEDS_REWORK")
	}

	if leader, hasLeader := leaderID(task); hasLeader {
		s.dispatcher.Dispatch(ctx, Event{
			Type:        entities.NotificationProofSubmitted,
			RecipientID: leader,
			TaskID:      task.ID,
			MeetingID:   task.MeetingID,
			TaskTitle:   task.Description,
		})
	}

	if s.logger != nil {
		s.logger.Info("📤 Proof submitted",
			zap.String("task_id", taskID.String()),
			zap.String("user_id", actingUserID.String()))
	}
	return s.load(ctx, taskID)
}

// Approve accepts a submitted proof and completes the task. Leader only,
// and only from PENDING_APPROVAL.
func (s *Service) Approve(ctx context.Context, taskID, actingUserID uuid.UUID) (*entities.Task, error) {
	return s.review(ctx, taskID, actingUserID, entities.TaskStatusCompleted, "")
}

// Reject sends a submitted proof back for rework with the leader's
// comments. Comments are mandatory so the assignee knows what to fix.
func (s *Service) Reject(ctx context.Context, taskID, actingUserID uuid.UUID, comments string) (*entities.Task, error) {
	if strings.TrimSpace(comments) == "" {
		return nil, apperrors.ErrInvalidArgument("Comments are required when rejecting a task")
	}
	return s.review(ctx, taskID, actingUserID, entities.TaskStatusNeedsRework, comments)
}

func (s *Service) review(ctx context.Context, taskID, actingUserID uuid.UUID, target entities.TaskStatus, comments string) (*entities.Task, error) {
	task, err := s.load(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if err := requireLeader(task, actingUserID); err != nil {
		return nil, err
	}
	if task.AssigneeID == nil {
		return nil, apperrors.ErrTaskNotAssigned(taskID.String())
	}
	if task.Status != entities.TaskStatusPendingApproval {
		return nil, apperrors.ErrTaskInvalidState(taskID.String(), string(task.Status), string(entities.TaskStatusPendingApproval))
	}

	fields := map[string]interface{}{"comments": nil}
	if target == entities.TaskStatusNeedsRework {
		fields["comments"] = comments
	}

	ok, err := s.taskRepo.UpdateStatus(ctx, taskID, entities.TaskStatusPendingApproval, target, fields)
	if err != nil {
		return nil, apperrors.ErrInternal(err)
	}
	if !ok {
		return nil, apperrors.ErrTaskInvalidState(taskID.String(), string(task.Status), string(entities.TaskStatusPendingApproval))
	}

	eventType := entities.NotificationTaskApproved
	if target == entities.TaskStatusNeedsRework {
		eventType = entities.NotificationTaskRejected
	}
	s.dispatcher.Dispatch(ctx, Event{
		Type:        eventType,
		RecipientID: *task.AssigneeID,
		TaskID:      task.ID,
		MeetingID:   task.MeetingID,
		TaskTitle:   task.Description,
		Comments:    comments,
	})

	if s.logger != nil {
		s.logger.Info("⚖️ Task reviewed",
			zap.String("task_id", taskID.String()),
			zap.String("new_status", string(target)))
	}
	return s.load(ctx, taskID)
}

// Delete removes a task and its proofs. Leader only.
func (s *Service) Delete(ctx context.Context, taskID, actingUserID uuid.UUID) error {
	task, err := s.load(ctx, taskID)
	if err != nil {
		return err
	}
	if err := requireLeader(task, actingUserID); err != nil {
		return err
	}
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return apperrors.ErrInternal(err)
	}
	return nil
}

// Get returns a single task
func (s *Service) Get(ctx context.Context, taskID uuid.UUID) (*entities.Task, error) {
	return s.load(ctx, taskID)
}

// ListAssigned returns the tasks assigned to a user
func (s *Service) ListAssigned(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entities.Task, int64, error) {
	tasks, total, err := s.taskRepo.FindByAssigneeID(ctx, userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.ErrInternal(err)
	}
	return tasks, total, nil
}
