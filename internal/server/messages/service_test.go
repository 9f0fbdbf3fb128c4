package messages

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/messagely/messagely/internal/common"
	"github.com/messagely/messagely/internal/dbx"
)

type fakeRepo struct {
	created   *Message
	createErr error
	detail    *Detail
	getErr    error
	readAt    time.Time
	markErr   error
	markedID  int64
	inbox     []InboxItem
	outbox    []OutboxItem
}

func (f *fakeRepo) Create(ctx context.Context, msg *Message) (*Message, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	msg.ID = 7
	msg.SentAt = time.Now()
	f.created = msg
	return msg, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*Detail, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.detail, nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, id int64) (time.Time, error) {
	if f.markErr != nil {
		return time.Time{}, f.markErr
	}
	f.markedID = id
	return f.readAt, nil
}

func (f *fakeRepo) Inbox(ctx context.Context, username string) ([]InboxItem, error) {
	return f.inbox, nil
}

func (f *fakeRepo) Outbox(ctx context.Context, username string) ([]OutboxItem, error) {
	return f.outbox, nil
}

func newServiceWithFake(t *testing.T, repo *fakeRepo) (*Service, *sql.DB) {
	t.Helper()
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewService(db, func(dbx.DBTX) Repository { return repo }), db
}

func TestSend_Success(t *testing.T) {
	repo := &fakeRepo{}
	svc, db := newServiceWithFake(t, repo)
	defer db.Close()

	got, err := svc.Send(context.Background(), "alice", "bob", "hi there")
	if err != nil {
		t.Fatalf("Send error: %v", err)
	}
	if got.ID != 7 || got.SentAt.IsZero() {
		t.Fatalf("unexpected message: %+v", got)
	}
	if repo.created.FromUsername != "alice" || repo.created.ToUsername != "bob" || repo.created.Body != "hi there" {
		t.Fatalf("unexpected stored message: %+v", repo.created)
	}
}

func TestSend_UnknownRecipient(t *testing.T) {
	repo := &fakeRepo{createErr: common.ErrorNotFound}
	svc, db := newServiceWithFake(t, repo)
	defer db.Close()

	_, err := svc.Send(context.Background(), "alice", "ghost", "hi")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestMarkRead_ReturnsReceipt(t *testing.T) {
	readAt := time.Now()
	repo := &fakeRepo{readAt: readAt}
	svc, db := newServiceWithFake(t, repo)
	defer db.Close()

	got, err := svc.MarkRead(context.Background(), 7)
	if err != nil {
		t.Fatalf("MarkRead error: %v", err)
	}
	if got.ID != 7 || !got.ReadAt.Equal(readAt) {
		t.Fatalf("unexpected receipt: %+v", got)
	}
	if repo.markedID != 7 {
		t.Fatalf("want id 7 marked, got %d", repo.markedID)
	}
}

func TestServiceMarkRead_NotFound(t *testing.T) {
	repo := &fakeRepo{markErr: common.ErrorNotFound}
	svc, db := newServiceWithFake(t, repo)
	defer db.Close()

	_, err := svc.MarkRead(context.Background(), 404)
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestGet_Delegates(t *testing.T) {
	detail := &Detail{ID: 7, Body: "hi"}
	svc, db := newServiceWithFake(t, &fakeRepo{detail: detail})
	defer db.Close()

	got, err := svc.Get(context.Background(), 7)
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if got != detail {
		t.Fatalf("unexpected detail: %+v", got)
	}
}

func TestInboxOutbox_Delegate(t *testing.T) {
	repo := &fakeRepo{
		inbox:  []InboxItem{{ID: 1}},
		outbox: []OutboxItem{{ID: 2}, {ID: 3}},
	}
	svc, db := newServiceWithFake(t, repo)
	defer db.Close()

	in, err := svc.Inbox(context.Background(), "bob")
	if err != nil {
		t.Fatalf("Inbox error: %v", err)
	}
	out, err := svc.Outbox(context.Background(), "bob")
	if err != nil {
		t.Fatalf("Outbox error: %v", err)
	}
	if len(in) != 1 || len(out) != 2 {
		t.Fatalf("unexpected box sizes: in=%d out=%d", len(in), len(out))
	}
}
