package handler

import (
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/adapter/dto/common"
	taskdto "github.com/minutemind/minutemind/internal/adapter/dto/task"
	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/infrastructure/http/middleware"
	"github.com/minutemind/minutemind/internal/infrastructure/storage"
	"github.com/minutemind/minutemind/internal/usecase/analysis"
	"github.com/minutemind/minutemind/internal/usecase/task"
)

// maxProofBytes caps proof uploads at 20 MB
const maxProofBytes = 20 << 20

// Task handles task lifecycle endpoints
type Task struct {
	service *task.Service
	store   *storage.MinIOClient
	logger  *zap.Logger
}

// NewTask creates a new task handler
func NewTask(service *task.Service, store *storage.MinIOClient, logger *zap.Logger) *Task {
	return &Task{service: service, store: store, logger: logger}
}

// Get returns a single task
func (h *Task) Get(c echo.Context) error {
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	found, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, found)
}

// ListAssigned returns tasks assigned to the authenticated user
func (h *Task) ListAssigned(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	limit, offset := Pagination(c)
	tasks, total, err := h.service.ListAssigned(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ListResponse{Items: tasks, Total: total})
}

// Assign assigns the task to a team member, clears the assignment, or
// moves the due date
func (h *Task) Assign(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskdto.AssignRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}

	var input task.AssignInput

	if req.AssigneeID != nil {
		if *req.AssigneeID == "" || *req.AssigneeID == "unassigned" {
			input.Unassign = true
		} else {
			assigneeID, err := uuid.Parse(*req.AssigneeID)
			if err != nil {
				return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid assignee_id"))
			}
			input.AssigneeID = &assigneeID
		}
	}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			input.ClearDueDate = true
		} else {
			parsed := analysis.ParseDate(*req.DueDate)
			if parsed == nil {
				return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid date format for due_date"))
			}
			input.DueDate = parsed
		}
	}

	updated, err := h.service.Assign(c.Request().Context(), id, userID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, updated)
}

// Edit updates task details
func (h *Task) Edit(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskdto.EditRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	input := task.EditInput{Description: req.Task}

	if req.DueDate != nil {
		if *req.DueDate == "" {
			input.ClearDueDate = true
		} else {
			parsed := analysis.ParseDate(*req.DueDate)
			if parsed == nil {
				return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid date format for due_date"))
			}
			input.DueDate = parsed
		}
	}

	if req.AssigneeID != nil {
		if *req.AssigneeID == "" || *req.AssigneeID == "unassigned" {
			input.Unassign = true
		} else {
			assigneeID, err := uuid.Parse(*req.AssigneeID)
			if err != nil {
				return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid assignee_id"))
			}
			input.AssigneeID = &assigneeID
		}
	}

	if req.Status != nil {
		status := entities.TaskStatus(*req.Status)
		input.Status = &status
	}

	updated, err := h.service.Edit(c.Request().Context(), id, userID, input)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, updated)
}

// UpdateStatus approves or rejects a submitted task
func (h *Task) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req taskdto.StatusRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	var updated *entities.Task
	switch req.Status {
	case "APPROVE":
		updated, err = h.service.Approve(c.Request().Context(), id, userID)
	case "REJECT":
		updated, err = h.service.Reject(c.Request().Context(), id, userID, req.Comments)
	default:
		err = apperrors.ErrInvalidArgument("Status must be APPROVE or REJECT")
	}
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, updated)
}

// SubmitProof uploads a proof file and moves the task to PENDING_APPROVAL
func (h *Task) SubmitProof(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("No proof file provided"))
	}
	if fileHeader.Size > maxProofBytes {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Proof file too large"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInternal(err))
	}
	defer file.Close()

	fileURL := ""
	if h.store != nil {
		objectName, err := h.store.UploadProof(c.Request().Context(), id, fileHeader.Filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrStorageFailed("proof upload", err))
		}
		fileURL, err = h.store.GetFileURL(c.Request().Context(), objectName, 7*24*time.Hour)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrStorageFailed("proof url", err))
		}
	} else {
		// Without object storage the file content is discarded; keep a
		// reference so the proof record is still meaningful.
		if _, err := io.Copy(io.Discard, file); err != nil {
			return HandleError(h.logger, c, apperrors.ErrInternal(err))
		}
		fileURL = "/uploads/proofs/" + fileHeader.Filename
	}

	var description *string
	if v := c.FormValue("description"); v != "" {
		description = &v
	}

	updated, err := h.service.SubmitProof(c.Request().Context(), id, userID, fileURL, description)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, taskdto.ProofResponse{FileURL: fileURL, Task: updated})
}

// Delete removes a task
func (h *Task) Delete(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	if err := h.service.Delete(c.Request().Context(), id, userID); err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, map[string]string{"message": "Task deleted successfully"})
}
