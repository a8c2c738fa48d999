package handler

import (
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/adapter/dto/common"
	meetingdto "github.com/minutemind/minutemind/internal/adapter/dto/meeting"
	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/infrastructure/http/middleware"
	"github.com/minutemind/minutemind/internal/usecase/analysis"
	"github.com/minutemind/minutemind/internal/usecase/meeting"
)

// maxAudioBytes caps transcription uploads at 100 MB
const maxAudioBytes = 100 << 20

// Meeting handles meeting CRUD, transcription and analysis endpoints
type Meeting struct {
	service  *meeting.Service
	analyzer *analysis.Service
	logger   *zap.Logger
}

// NewMeeting creates a new meeting handler
func NewMeeting(service *meeting.Service, analyzer *analysis.Service, logger *zap.Logger) *Meeting {
	return &Meeting{service: service, analyzer: analyzer, logger: logger}
}

// Create creates a meeting
func (h *Meeting) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	var req meetingdto.CreateMeetingRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	var teamID *uuid.UUID
	if req.TeamID != nil {
		id, err := uuid.Parse(*req.TeamID)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid team_id"))
		}
		teamID = &id
	}

	created, err := h.service.Create(c.Request().Context(), userID, req.Name, req.Description, teamID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccessWithStatus(h.logger, c, http.StatusCreated, created)
}

// Get returns a meeting with its breakdown
func (h *Meeting) Get(c echo.Context) error {
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

// List returns the authenticated user's meetings
func (h *Meeting) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	limit, offset := Pagination(c)
	meetings, total, err := h.service.ListByCreator(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, common.ListResponse{Items: meetings, Total: total})
}

// Delete removes a meeting
func (h *Meeting) Delete(c echo.Context) error {
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
	return HandleSuccess(h.logger, c, map[string]string{"message": "Meeting deleted successfully"})
}

// Analyze runs the analysis pipeline on the stored transcript
func (h *Meeting) Analyze(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	result, err := h.analyzer.Analyze(c.Request().Context(), id, userID)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// ProcessTranscript stores a transcript and analyzes it in one call
func (h *Meeting) ProcessTranscript(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}
	id, err := ParamUUID(c, "id")
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.ProcessTranscriptRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument(err.Error()))
	}

	result, err := h.analyzer.ProcessTranscript(c.Request().Context(), id, userID, req.Transcript)
	if err != nil {
		return HandleError(h.logger, c, err)
	}
	return HandleSuccess(h.logger, c, result)
}

// Transcribe converts an uploaded recording to text and runs the analysis
// pipeline. When a meeting_id form field is present the transcript is
// attached to that meeting; otherwise a new meeting is created from the
// optional name and team_id form fields.
func (h *Meeting) Transcribe(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return HandleError(h.logger, c, apperrors.ErrUnauthenticated())
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("No audio file provided"))
	}
	if fileHeader.Size > maxAudioBytes {
		return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Audio file too large"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInternal(err))
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		return HandleError(h.logger, c, apperrors.ErrInternal(err))
	}

	var meetingID *uuid.UUID
	if raw := c.FormValue("meeting_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid meeting_id"))
		}
		meetingID = &id
	}

	contentType := fileHeader.Header.Get("Content-Type")
	transcript, err := h.service.Transcribe(c.Request().Context(), meetingID, userID, fileHeader.Filename, contentType, audio)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var analyzed *entities.Meeting
	if meetingID != nil {
		analyzed, err = h.analyzer.Analyze(c.Request().Context(), *meetingID, userID)
	} else {
		var teamID *uuid.UUID
		if raw := c.FormValue("team_id"); raw != "" {
			id, parseErr := uuid.Parse(raw)
			if parseErr != nil {
				return HandleError(h.logger, c, apperrors.ErrInvalidArgument("Invalid team_id"))
			}
			teamID = &id
		}

		name := c.FormValue("name")
		if name == "" {
			name = fileHeader.Filename
		}

		var created *entities.Meeting
		created, err = h.service.CreateFromRecording(c.Request().Context(), userID, name, teamID)
		if err != nil {
			return HandleError(h.logger, c, err)
		}
		analyzed, err = h.analyzer.ProcessTranscript(c.Request().Context(), created.ID, userID, transcript)
	}
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, meetingdto.TranscribeResponse{Transcript: transcript, Meeting: analyzed})
}
