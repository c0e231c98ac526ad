package app

import (
	"context"
	"fmt"
	"time"

	"compliance_reminder_service/internal/domain/task"

	"github.com/google/uuid"
)

// Custom application-level errors for admin service
var ErrInvalidRecipient = fmt.Errorf("recipient must not be empty")
var ErrInvalidFrequency = fmt.Errorf("frequency is not one of the supported cadences")
var ErrInvalidStartDate = fmt.Errorf("start date must be set")
var ErrTaskAlreadyInactive = fmt.Errorf("reminder task is already inactive")

// AdminService handles the administrative lifecycle of reminder tasks.
// Frequency and start date are immutable after creation; changing the cadence
// of an existing reminder means deleting it and creating a new one.
type AdminService struct {
	taskRepo task.Repository
}

func NewAdminService(tr task.Repository) *AdminService {
	return &AdminService{taskRepo: tr}
}

// CreateTask validates and persists a new reminder task. New tasks are active
// by default.
func (s *AdminService) CreateTask(
	ctx context.Context,
	ownerID uuid.UUID,
	recipient string,
	frequency task.Frequency,
	startDate time.Time,
	subject, message string,
) (*task.ReminderTask, error) {
	if recipient == "" {
		return nil, ErrInvalidRecipient
	}
	if frequency.StepMonths() == 0 {
		return nil, ErrInvalidFrequency
	}
	if startDate.IsZero() {
		return nil, ErrInvalidStartDate
	}

	newTask := &task.ReminderTask{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Recipient: recipient,
		Frequency: frequency,
		StartDate: startDate,
		Subject:   subject,
		Message:   message,
		Active:    true,
	}

	if err := s.taskRepo.Create(ctx, newTask); err != nil {
		return nil, fmt.Errorf("failed to create reminder task in repository: %w", err)
	}
	return newTask, nil
}

// UpdateTask edits the mutable fields of an existing task.
func (s *AdminService) UpdateTask(
	ctx context.Context,
	taskID uuid.UUID,
	recipient, subject, message string,
	active bool,
) (*task.ReminderTask, error) {
	if recipient == "" {
		return nil, ErrInvalidRecipient
	}

	targetTask, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder task for update: %w", err)
	}

	targetTask.Recipient = recipient
	targetTask.Subject = subject
	targetTask.Message = message
	targetTask.Active = active

	if err := s.taskRepo.Update(ctx, targetTask); err != nil {
		return nil, fmt.Errorf("failed to update reminder task in repository: %w", err)
	}
	return targetTask, nil
}

// DeactivateTask takes a task out of the dispatch rotation without losing it.
func (s *AdminService) DeactivateTask(ctx context.Context, taskID uuid.UUID) (*task.ReminderTask, error) {
	targetTask, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reminder task for deactivation: %w", err)
	}

	if !targetTask.Active {
		return targetTask, ErrTaskAlreadyInactive
	}

	targetTask.Active = false
	if err := s.taskRepo.Update(ctx, targetTask); err != nil {
		return nil, fmt.Errorf("failed to update reminder task to inactive in repository: %w", err)
	}
	return targetTask, nil
}

// DeleteTask removes a task permanently. Dispatch records are denormalized
// and outlive the task.
func (s *AdminService) DeleteTask(ctx context.Context, taskID uuid.UUID) error {
	if err := s.taskRepo.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("failed to delete reminder task: %w", err)
	}
	return nil
}

func (s *AdminService) GetTask(ctx context.Context, taskID uuid.UUID) (*task.ReminderTask, error) {
	return s.taskRepo.GetByID(ctx, taskID)
}

func (s *AdminService) ListTasksByOwner(ctx context.Context, ownerID uuid.UUID) ([]*task.ReminderTask, error) {
	return s.taskRepo.ListByOwner(ctx, ownerID)
}

func (s *AdminService) ListAllTasks(ctx context.Context) ([]*task.ReminderTask, error) {
	return s.taskRepo.ListAll(ctx)
}
