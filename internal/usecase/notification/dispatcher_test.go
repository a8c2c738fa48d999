package notification

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/minutemind/minutemind/internal/domain/entities"
	"github.com/minutemind/minutemind/internal/usecase/task"
)

type fakeNotificationRepo struct {
	created []*entities.Notification
	err     error
}

func (r *fakeNotificationRepo) Create(_ context.Context, n *entities.Notification) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, n)
	return nil
}

func (r *fakeNotificationRepo) FindByUserID(_ context.Context, _ uuid.UUID, _, _ int) ([]*entities.Notification, int64, error) {
	return nil, 0, nil
}

func (r *fakeNotificationRepo) CountUnread(_ context.Context, _ uuid.UUID) (int64, error) {
	return 0, nil
}

func (r *fakeNotificationRepo) MarkRead(_ context.Context, _, _ uuid.UUID) error { return nil }

func (r *fakeNotificationRepo) MarkAllRead(_ context.Context, _ uuid.UUID) error { return nil }

func event(eventType entities.NotificationType, title, comments string) task.Event {
	return task.Event{
		Type:        eventType,
		RecipientID: uuid.New(),
		TaskID:      uuid.New(),
		MeetingID:   uuid.New(),
		TaskTitle:   title,
		Comments:    comments,
	}
}

func TestDispatchWritesNotification(t *testing.T) {
	repo := &fakeNotificationRepo{}
	d := NewDispatcher(repo, nil)

	ev := event(entities.NotificationTaskAssigned, "Ship the release notes", "")
	d.Dispatch(context.Background(), ev)

	if len(repo.created) != 1 {
		t.Fatalf("expected one notification, got %d", len(repo.created))
	}
	n := repo.created[0]
	if n.UserID != ev.RecipientID {
		t.Fatal("notification must target the event recipient")
	}
	if n.TaskID == nil || *n.TaskID != ev.TaskID {
		t.Fatal("notification must reference the task")
	}
	if n.Message != `You have been assigned a new task: "Ship the release notes"` {
		t.Fatalf("unexpected message: %q", n.Message)
	}
}

func TestDispatchTruncatesLongTitles(t *testing.T) {
	repo := &fakeNotificationRepo{}
	d := NewDispatcher(repo, nil)

	long := strings.Repeat("x", 80)
	d.Dispatch(context.Background(), event(entities.NotificationProofSubmitted, long, ""))

	msg := repo.created[0].Message
	if strings.Contains(msg, long) {
		t.Fatal("title must be truncated")
	}
	if !strings.Contains(msg, strings.Repeat("x", 50)+"...") {
		t.Fatalf("truncated title must end with ellipsis: %q", msg)
	}
}

func TestDispatchShortTitleHasNoEllipsisOnAssign(t *testing.T) {
	repo := &fakeNotificationRepo{}
	d := NewDispatcher(repo, nil)

	d.Dispatch(context.Background(), event(entities.NotificationTaskAssigned, "Short task", ""))

	if strings.Contains(repo.created[0].Message, "...") {
		t.Fatalf("short titles are not marked as cut: %q", repo.created[0].Message)
	}
}

func TestDispatchReviewMessagesAlwaysCarryEllipsis(t *testing.T) {
	repo := &fakeNotificationRepo{}
	d := NewDispatcher(repo, nil)

	d.Dispatch(context.Background(), event(entities.NotificationTaskApproved, "Short task", ""))
	d.Dispatch(context.Background(), event(entities.NotificationTaskRejected, "Short task", "fix the totals"))

	approved := repo.created[0].Message
	if approved != `Your proof for task "Short task..." has been approved.` {
		t.Fatalf("unexpected approval message: %q", approved)
	}
	rejected := repo.created[1].Message
	if rejected != `Your task "Short task..." needs rework. Comments: fix the totals` {
		t.Fatalf("unexpected rejection message: %q", rejected)
	}
}

func TestDispatchSwallowsRepositoryFailure(t *testing.T) {
	repo := &fakeNotificationRepo{err: errors.New("connection refused")}
	d := NewDispatcher(repo, nil)

	// Must not panic or surface the error in any way.
	d.Dispatch(context.Background(), event(entities.NotificationTaskAssigned, "Anything", ""))

	if len(repo.created) != 0 {
		t.Fatal("nothing should be recorded on failure")
	}
}
