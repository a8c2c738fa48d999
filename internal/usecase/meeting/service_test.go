package meeting

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	apperrors "github.com/minutemind/minutemind/errors"
	"github.com/minutemind/minutemind/internal/domain/entities"
)

type fakeMeetingRepo struct {
	meetings    map[uuid.UUID]*entities.Meeting
	transcripts map[uuid.UUID]string
	deleted     []uuid.UUID
}

func newFakeMeetingRepo() *fakeMeetingRepo {
	return &fakeMeetingRepo{
		meetings:    make(map[uuid.UUID]*entities.Meeting),
		transcripts: make(map[uuid.UUID]string),
	}
}

func (f *fakeMeetingRepo) Create(ctx context.Context, meeting *entities.Meeting) error {
	f.meetings[meeting.ID] = meeting
	return nil
}

func (f *fakeMeetingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	m, ok := f.meetings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return m, nil
}

func (f *fakeMeetingRepo) FindByIDWithBreakdown(ctx context.Context, id uuid.UUID) (*entities.Meeting, error) {
	return f.FindByID(ctx, id)
}

func (f *fakeMeetingRepo) FindByCreatorID(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	var out []*entities.Meeting
	for _, m := range f.meetings {
		if m.CreatorID == creatorID {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeMeetingRepo) FindByTeamID(ctx context.Context, teamID uuid.UUID, limit, offset int) ([]*entities.Meeting, int64, error) {
	var out []*entities.Meeting
	for _, m := range f.meetings {
		if m.TeamID != nil && *m.TeamID == teamID {
			out = append(out, m)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeMeetingRepo) Update(ctx context.Context, meeting *entities.Meeting) error {
	f.meetings[meeting.ID] = meeting
	return nil
}

func (f *fakeMeetingRepo) UpdateTranscript(ctx context.Context, id uuid.UUID, transcript string) error {
	f.transcripts[id] = transcript
	return nil
}

func (f *fakeMeetingRepo) UpdateSegmentation(ctx context.Context, id uuid.UUID, segmentation datatypes.JSON) error {
	m, ok := f.meetings[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	m.TopicSegmentation = segmentation
	return nil
}

func (f *fakeMeetingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.meetings, id)
	f.deleted = append(f.deleted, id)
	return nil
}

type fakeTeamRepo struct {
	teams map[uuid.UUID]*entities.Team
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *entities.Team) error {
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) FindByID(ctx context.Context, id uuid.UUID) (*entities.Team, error) {
	t, ok := f.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return t, nil
}

func (f *fakeTeamRepo) FindByMemberID(ctx context.Context, userID uuid.UUID) ([]*entities.Team, error) {
	return nil, nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, team *entities.Team) error { return nil }

func (f *fakeTeamRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (f *fakeTeamRepo) AddMember(ctx context.Context, teamID, userID uuid.UUID) error { return nil }

func (f *fakeTeamRepo) RemoveMember(ctx context.Context, teamID, userID uuid.UUID) error { return nil }

type fakeTranscriber struct {
	transcript string
	err        error
	calls      int
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, filename string, audio []byte) (string, error) {
	f.calls++
	return f.transcript, f.err
}

func errorCode(t *testing.T, err error) apperrors.ErrorCode {
	t.Helper()
	if err == nil {
		t.Fatal("expected an error")
	}
	var appErr apperrors.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("expected AppError, got %T: %v", err, err)
	}
	return appErr.Code
}

func newTestService(meetingRepo *fakeMeetingRepo, teamRepo *fakeTeamRepo, tr *fakeTranscriber) *Service {
	return NewService(meetingRepo, teamRepo, tr, nil, nil)
}

func TestCreateDefaultsName(t *testing.T) {
	repo := newFakeMeetingRepo()
	svc := newTestService(repo, &fakeTeamRepo{teams: map[uuid.UUID]*entities.Team{}}, &fakeTranscriber{})

	created, err := svc.Create(context.Background(), uuid.New(), "", "notes", nil)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Name != "Untitled Meeting" {
		t.Fatalf("expected default name, got %q", created.Name)
	}
	if _, ok := repo.meetings[created.ID]; !ok {
		t.Fatal("meeting was not persisted")
	}
}

func TestCreateRejectsNonMember(t *testing.T) {
	leaderID := uuid.New()
	team := entities.NewTeam("Platform", leaderID)
	repo := newFakeMeetingRepo()
	svc := newTestService(repo, &fakeTeamRepo{teams: map[uuid.UUID]*entities.Team{team.ID: team}}, &fakeTranscriber{})

	_, err := svc.Create(context.Background(), uuid.New(), "Standup", "", &team.ID)
	if code := errorCode(t, err); code != apperrors.ErrorCode_FORBIDDEN {
		t.Fatalf("expected FORBIDDEN, got %s", code)
	}
}

func TestCreateFromRecordingLeaderOnly(t *testing.T) {
	leaderID := uuid.New()
	memberID := uuid.New()
	team := entities.NewTeam("Platform", leaderID)
	team.Members = []*entities.User{{ID: memberID}}
	teams := &fakeTeamRepo{teams: map[uuid.UUID]*entities.Team{team.ID: team}}

	repo := newFakeMeetingRepo()
	svc := newTestService(repo, teams, &fakeTranscriber{})

	_, err := svc.CreateFromRecording(context.Background(), memberID, "Standup", &team.ID)
	if code := errorCode(t, err); code != apperrors.ErrorCode_PERMISSION_DENIED {
		t.Fatalf("expected PERMISSION_DENIED, got %s", code)
	}

	created, err := svc.CreateFromRecording(context.Background(), leaderID, "Standup", &team.ID)
	if err != nil {
		t.Fatalf("CreateFromRecording as leader: %v", err)
	}
	if created.TeamID == nil || *created.TeamID != team.ID {
		t.Fatal("team was not attached to the meeting")
	}
}

func TestTranscribeAttachesToMeeting(t *testing.T) {
	creatorID := uuid.New()
	meeting := entities.NewMeeting("Weekly Sync", creatorID)
	repo := newFakeMeetingRepo()
	repo.meetings[meeting.ID] = meeting

	tr := &fakeTranscriber{transcript: "Alice: let's review the budget."}
	svc := newTestService(repo, &fakeTeamRepo{teams: map[uuid.UUID]*entities.Team{}}, tr)

	got, err := svc.Transcribe(context.Background(), &meeting.ID, creatorID, "sync.mp3", "audio/mpeg", []byte("audio"))
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if got != tr.transcript {
		t.Fatalf("unexpected transcript %q", got)
	}
	if repo.transcripts[meeting.ID] != tr.transcript {
		t.Fatal("transcript was not stored on the meeting")
	}
}

func TestTranscribeRejectsStranger(t *testing.T) {
	meeting := entities.NewMeeting("Weekly Sync", uuid.New())
	repo := newFakeMeetingRepo()
	repo.meetings[meeting.ID] = meeting

	svc := newTestService(repo, &fakeTeamRepo{teams: map[uuid.UUID]*entities.Team{}}, &fakeTranscriber{transcript: "text"})

	_, err := svc.Transcribe(context.Background(), &meeting.ID, uuid.New(), "sync.mp3", "audio/mpeg", []byte("audio"))
	if code := errorCode(t, err); code != apperrors.ErrorCode_FORBIDDEN {
		t.Fatalf("expected FORBIDDEN, got %s", code)
	}
	if _, ok := repo.transcripts[meeting.ID]; ok {
		t.Fatal("transcript should not be stored for a stranger")
	}
}

func TestTranscribeRequiresAudio(t *testing.T) {
	tr := &fakeTranscriber{transcript: "text"}
	svc := newTestService(newFakeMeetingRepo(), &fakeTeamRepo{teams: map[uuid.UUID]*entities.Team{}}, tr)

	_, err := svc.Transcribe(context.Background(), nil, uuid.New(), "sync.mp3", "audio/mpeg", nil)
	if code := errorCode(t, err); code != apperrors.ErrorCode_INVALID_ARGUMENT {
		t.Fatalf("expected INVALID_ARGUMENT, got %s", code)
	}
	if tr.calls != 0 {
		t.Fatal("transcriber should not be called for an empty upload")
	}
}

func TestTranscribeWrapsAPIFailure(t *testing.T) {
	tr := &fakeTranscriber{err: errors.New("rate limited")}
	svc := newTestService(newFakeMeetingRepo(), &fakeTeamRepo{teams: map[uuid.UUID]*entities.Team{}}, tr)

	_, err := svc.Transcribe(context.Background(), nil, uuid.New(), "sync.mp3", "audio/mpeg", []byte("audio"))
	if code := errorCode(t, err); code != apperrors.ErrorCode_EXTERNAL_API_FAILED {
		t.Fatalf("expected EXTERNAL_API_FAILED, got %s", code)
	}
}

func TestDeleteCreatorOnly(t *testing.T) {
	creatorID := uuid.New()
	meeting := entities.NewMeeting("Weekly Sync", creatorID)
	repo := newFakeMeetingRepo()
	repo.meetings[meeting.ID] = meeting

	svc := newTestService(repo, &fakeTeamRepo{teams: map[uuid.UUID]*entities.Team{}}, &fakeTranscriber{})

	if err := svc.Delete(context.Background(), meeting.ID, uuid.New()); err == nil {
		t.Fatal("expected delete by stranger to fail")
	}
	if len(repo.deleted) != 0 {
		t.Fatal("meeting should not be deleted by a stranger")
	}

	if err := svc.Delete(context.Background(), meeting.ID, creatorID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(repo.deleted) != 1 {
		t.Fatal("meeting was not deleted")
	}
}
