package app

import (
	"context"
	"fmt"
	"io"

	"compliance_reminder_service/internal/domain/history"
	"compliance_reminder_service/internal/domain/mail"
	"compliance_reminder_service/internal/domain/task"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var errFakeNotFound = fmt.Errorf("reminder task not found")

type fakeTaskRepo struct {
	tasks   []*task.ReminderTask
	updated []*task.ReminderTask
	created []*task.ReminderTask
	deleted []uuid.UUID

	listErr   error
	updateErr error
}

func (f *fakeTaskRepo) Create(_ context.Context, t *task.ReminderTask) error {
	f.created = append(f.created, t)
	f.tasks = append(f.tasks, t)
	return nil
}

func (f *fakeTaskRepo) GetByID(_ context.Context, id uuid.UUID) (*task.ReminderTask, error) {
	for _, t := range f.tasks {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, errFakeNotFound
}

func (f *fakeTaskRepo) Update(_ context.Context, t *task.ReminderTask) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = append(f.updated, t)
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id uuid.UUID) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeTaskRepo) ListActive(_ context.Context) ([]*task.ReminderTask, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	active := make([]*task.ReminderTask, 0)
	for _, t := range f.tasks {
		if t.Active {
			active = append(active, t)
		}
	}
	return active, nil
}

func (f *fakeTaskRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*task.ReminderTask, error) {
	owned := make([]*task.ReminderTask, 0)
	for _, t := range f.tasks {
		if t.OwnerID == ownerID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}

func (f *fakeTaskRepo) ListAll(_ context.Context) ([]*task.ReminderTask, error) {
	return f.tasks, nil
}

type fakeHistoryRepo struct {
	records   []*history.DispatchRecord
	appendErr error
}

func (f *fakeHistoryRepo) Append(_ context.Context, rec *history.DispatchRecord) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeHistoryRepo) ListByTask(_ context.Context, taskID uuid.UUID) ([]*history.DispatchRecord, error) {
	out := make([]*history.DispatchRecord, 0)
	for _, rec := range f.records {
		if rec.TaskID == taskID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeHistoryRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*history.DispatchRecord, error) {
	out := make([]*history.DispatchRecord, 0)
	for _, rec := range f.records {
		if rec.OwnerID == ownerID {
			out = append(out, rec)
		}
	}
	return out, nil
}

// fakeSender records messages and delegates outcomes to sendFn when set.
type fakeSender struct {
	sent   []mail.Message
	sendFn func(msg mail.Message) error
}

func (f *fakeSender) Send(_ context.Context, msg mail.Message) error {
	f.sent = append(f.sent, msg)
	if f.sendFn != nil {
		return f.sendFn(msg)
	}
	return nil
}

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
