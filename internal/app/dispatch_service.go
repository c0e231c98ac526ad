package app

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"compliance_reminder_service/internal/domain/history"
	"compliance_reminder_service/internal/domain/mail"
	"compliance_reminder_service/internal/domain/task"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Custom application-level errors for dispatch service
var ErrTaskInactive = fmt.Errorf("reminder task is inactive")

// DispatchService defines the operations for evaluating and delivering
// reminder notifications.
type DispatchService interface {
	// RunScheduledDispatch evaluates every active task against today's civil
	// date and dispatches the due ones. today must already be normalized to
	// the reference timezone by the caller.
	RunScheduledDispatch(ctx context.Context, today time.Time) error
	// SendNow dispatches a single task immediately, bypassing the due check.
	SendNow(ctx context.Context, taskID uuid.UUID) (history.Status, error)
}

// DispatchServiceImpl implements the DispatchService interface.
type DispatchServiceImpl struct {
	taskRepo       task.Repository
	historyRepo    history.Repository
	sender         mail.Sender
	logger         *logrus.Logger
	defaultSubject string
}

func NewDispatchServiceImpl(
	tr task.Repository,
	hr history.Repository,
	sender mail.Sender,
	logger *logrus.Logger,
	defaultSubject string,
) *DispatchServiceImpl {
	return &DispatchServiceImpl{
		taskRepo:       tr,
		historyRepo:    hr,
		sender:         sender,
		logger:         logger,
		defaultSubject: defaultSubject,
	}
}

// RunScheduledDispatch runs one dispatch tick. Per-task failures are isolated:
// a panic or error while processing one task never stops the rest of the batch.
func (s *DispatchServiceImpl) RunScheduledDispatch(ctx context.Context, today time.Time) error {
	tasks, err := s.taskRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active reminder tasks: %w", err)
	}
	s.logger.Infof("Dispatch tick: evaluating %d active tasks for %s", len(tasks), today.Format("2006-01-02"))

	for _, t := range tasks {
		s.processScheduledTask(ctx, t, today)
	}
	return nil
}

func (s *DispatchServiceImpl) processScheduledTask(ctx context.Context, t *task.ReminderTask, today time.Time) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Errorf("Panic while processing task %s: %v", t.ID, r)
		}
	}()

	if !t.IsDueOn(today) {
		return
	}
	if alreadySentOn(t, today) {
		s.logger.Infof("Task %s already dispatched on %s. Skipping duplicate send.", t.ID, today.Format("2006-01-02"))
		return
	}
	s.dispatchAndRecord(ctx, t)
}

// alreadySentOn guards against a second successful send for the same
// occurrence date, e.g. when a manual send already ran earlier that day.
func alreadySentOn(t *task.ReminderTask, today time.Time) bool {
	if !t.LastSentAt.Valid {
		return false
	}
	last := t.LastSentAt.Time.In(today.Location())
	return last.Year() == today.Year() && last.YearDay() == today.YearDay()
}

// SendNow dispatches a single task outside the schedule (administrative
// override). The due check and the duplicate-send guard are intentionally
// skipped; inactive tasks are rejected.
func (s *DispatchServiceImpl) SendNow(ctx context.Context, taskID uuid.UUID) (history.Status, error) {
	t, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return "", fmt.Errorf("failed to get reminder task %s: %w", taskID, err)
	}
	if !t.Active {
		return "", ErrTaskInactive
	}

	s.logger.Infof("Manual dispatch requested for task %s (recipient %s)", t.ID, t.Recipient)
	return s.dispatchAndRecord(ctx, t), nil
}

// dispatchAndRecord performs one delivery attempt, appends exactly one history
// record for it, and on success persists LastSentAt. History and task-save
// failures are logged and never roll back the send: the mail is already out.
func (s *DispatchServiceImpl) dispatchAndRecord(ctx context.Context, t *task.ReminderTask) history.Status {
	now := time.Now()
	sendErr := s.sender.Send(ctx, s.buildMessage(t))

	rec := &history.DispatchRecord{
		ID:        uuid.New(),
		TaskID:    t.ID,
		OwnerID:   t.OwnerID,
		Recipient: t.Recipient,
		Status:    history.StatusSent,
		SentAt:    now,
	}
	if sendErr != nil {
		rec.Status = history.StatusFailed
		rec.Error = sql.NullString{String: sendErr.Error(), Valid: true}
	}
	if err := s.historyRepo.Append(ctx, rec); err != nil {
		s.logger.Errorf("Failed to append dispatch record for task %s: %v", t.ID, err)
	}

	if sendErr != nil {
		s.logger.Errorf("Failed to send reminder for task %s to %s: %v", t.ID, t.Recipient, sendErr)
		return history.StatusFailed
	}

	t.LastSentAt = sql.NullTime{Time: now, Valid: true}
	if err := s.taskRepo.Update(ctx, t); err != nil {
		s.logger.Errorf("Failed to update LastSentAt for task %s: %v", t.ID, err)
	}
	s.logger.Infof("Reminder sent for task %s to %s", t.ID, t.Recipient)
	return history.StatusSent
}

func (s *DispatchServiceImpl) buildMessage(t *task.ReminderTask) mail.Message {
	subject := t.Subject
	if subject == "" {
		subject = s.defaultSubject
	}
	return mail.Message{
		To:      t.Recipient,
		Subject: subject,
		Text:    t.Message,
	}
}
