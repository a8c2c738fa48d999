package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/usecase/task"
	"github.com/minutemind/minutemind/pkg/validator"
)

type stubTaskRepo struct {
	tasks map[uuid.UUID]*entities.Task
}

func (r *stubTaskRepo) Create(_ context.Context, t *entities.Task) error {
	r.tasks[t.ID] = t
	return nil
}

func (r *stubTaskRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *stubTaskRepo) FindByMeetingID(_ context.Context, _ uuid.UUID) ([]*entities.Task, error) {
	return nil, nil
}

func (r *stubTaskRepo) FindByAssigneeID(_ context.Context, _ uuid.UUID, _, _ int) ([]*entities.Task, int64, error) {
	return nil, 0, nil
}

func (r *stubTaskRepo) Update(_ context.Context, t *entities.Task) error {
	copied := *t
	r.tasks[t.ID] = &copied
	return nil
}

func (r *stubTaskRepo) UpdateStatus(_ context.Context, id uuid.UUID, from, to entities.TaskStatus, fields map[string]interface{}) (bool, error) {
	t, ok := r.tasks[id]
	if !ok || t.Status != from {
		return false, nil
	}
	t.Status = to
	if raw, present := fields["comments"]; present {
		if raw == nil {
			t.Comments = nil
		} else {
			c := raw.(string)
			t.Comments = &c
		}
	}
	return true, nil
}

func (r *stubTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.tasks, id)
	return nil
}

func (r *stubTaskRepo) AddProof(_ context.Context, _ *entities.TaskProof) error { return nil }

type stubTeamRepo struct {
	teams map[uuid.UUID]*entities.Team
}

func (r *stubTeamRepo) Create(_ context.Context, t *entities.Team) error {
	r.teams[t.ID] = t
	return nil
}

func (r *stubTeamRepo) FindByID(_ context.Context, id uuid.UUID) (*entities.Team, error) {
	t, ok := r.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (r *stubTeamRepo) FindByMemberID(_ context.Context, _ uuid.UUID) ([]*entities.Team, error) {
	return nil, nil
}

func (r *stubTeamRepo) Update(_ context.Context, _ *entities.Team) error { return nil }

func (r *stubTeamRepo) Delete(_ context.Context, _ uuid.UUID) error { return nil }

func (r *stubTeamRepo) AddMember(_ context.Context, _, _ uuid.UUID) error { return nil }

func (r *stubTeamRepo) RemoveMember(_ context.Context, _, _ uuid.UUID) error { return nil }

type noopDispatcher struct{}

func (noopDispatcher) Dispatch(_ context.Context, _ task.Event) {}

type taskHandlerFixture struct {
	handler *Task
	repo    *stubTaskRepo

	leaderID   uuid.UUID
	assigneeID uuid.UUID
	taskID     uuid.UUID
}

func newTaskHandlerFixture(t *testing.T, status entities.TaskStatus) *taskHandlerFixture {
	t.Helper()

	leaderID := uuid.New()
	assigneeID := uuid.New()
	team := entities.NewTeam("Platform", leaderID)
	team.Members = []*entities.User{{ID: assigneeID}}

	meeting := &entities.Meeting{ID: uuid.New(), TeamID: &team.ID, Team: team}
	tsk := &entities.Task{
		ID:          uuid.New(),
		MeetingID:   meeting.ID,
		Meeting:     meeting,
		Description: "Prepare launch checklist",
		Status:      status,
		AssigneeID:  &assigneeID,
	}

	repo := &stubTaskRepo{tasks: map[uuid.UUID]*entities.Task{tsk.ID: tsk}}
	teams := &stubTeamRepo{teams: map[uuid.UUID]*entities.Team{team.ID: team}}
	svc := task.NewService(repo, teams, noopDispatcher{}, nil)

	return &taskHandlerFixture{
		handler:    NewTask(svc, nil, nil),
		repo:       repo,
		leaderID:   leaderID,
		assigneeID: assigneeID,
		taskID:     tsk.ID,
	}
}

func (f *taskHandlerFixture) invoke(t *testing.T, method, body string, userID uuid.UUID, fn echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(f.taskID.String())
	c.Set("user_id", userID)

	if err := fn(c); err != nil {
		t.Fatalf("handler returned unhandled error: %v", err)
	}
	return rec
}

func TestUpdateStatusApproveAction(t *testing.T) {
	f := newTaskHandlerFixture(t, entities.TaskStatusPendingApproval)

	rec := f.invoke(t, http.MethodPatch, `{"status": "APPROVE"}`, f.leaderID, f.handler.UpdateStatus)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := f.repo.tasks[f.taskID].Status; got != entities.TaskStatusCompleted {
		t.Fatalf("APPROVE must complete the task, got %v", got)
	}
}

func TestUpdateStatusRejectAction(t *testing.T) {
	f := newTaskHandlerFixture(t, entities.TaskStatusPendingApproval)

	rec := f.invoke(t, http.MethodPatch, `{"status": "REJECT", "comments": "fix the totals"}`, f.leaderID, f.handler.UpdateStatus)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	stored := f.repo.tasks[f.taskID]
	if stored.Status != entities.TaskStatusNeedsRework {
		t.Fatalf("REJECT must send the task to rework, got %v", stored.Status)
	}
	if stored.Comments == nil || *stored.Comments != "fix the totals" {
		t.Fatalf("rejection comments not stored: %v", stored.Comments)
	}
}

func TestUpdateStatusRefusesInternalStatusValues(t *testing.T) {
	f := newTaskHandlerFixture(t, entities.TaskStatusPendingApproval)

	rec := f.invoke(t, http.MethodPatch, `{"status": "COMPLETED"}`, f.leaderID, f.handler.UpdateStatus)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("raw lifecycle states are not part of the contract, got %d", rec.Code)
	}
	if got := f.repo.tasks[f.taskID].Status; got != entities.TaskStatusPendingApproval {
		t.Fatalf("task must be untouched, got %v", got)
	}
}

func TestAssignPatchClearsAssignee(t *testing.T) {
	f := newTaskHandlerFixture(t, entities.TaskStatusOpen)

	rec := f.invoke(t, http.MethodPatch, `{"assignee_id": "unassigned"}`, f.leaderID, f.handler.Assign)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := f.repo.tasks[f.taskID].AssigneeID; got != nil {
		t.Fatalf("assignee should be cleared, got %v", got)
	}
}

func TestAssignPatchUpdatesDueDate(t *testing.T) {
	f := newTaskHandlerFixture(t, entities.TaskStatusOpen)

	rec := f.invoke(t, http.MethodPatch, `{"due_date": "2026-09-18"}`, f.leaderID, f.handler.Assign)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	stored := f.repo.tasks[f.taskID]
	if stored.DueDate == nil {
		t.Fatal("due date not stored")
	}
	if stored.AssigneeID == nil || *stored.AssigneeID != f.assigneeID {
		t.Fatal("assignee must survive a due date change")
	}

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("response is not the standard envelope: %v", err)
	}
}
