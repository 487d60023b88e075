package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
)

const TypeSessionReminder = "booking:reminder"

// ReminderPayload pins the slot the reminder was scheduled for, so a
// reminder that outlived a reschedule is dropped by the handler.
type ReminderPayload struct {
	BookingID uuid.UUID          `json:"booking_id"`
	Date      availability.Date  `json:"date"`
	StartTime availability.Clock `json:"start_time"`
}

// TaskID is unique per booking and slot; enqueueing twice is a no-op.
func TaskID(p ReminderPayload) string {
	return fmt.Sprintf("reminder:%s:%s:%s", p.BookingID, p.Date, p.StartTime)
}

func NewReminderTask(r booking.Reminder) (*asynq.Task, []asynq.Option, error) {
	p := ReminderPayload{BookingID: r.BookingID, Date: r.Date, StartTime: r.StartTime}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{
		asynq.ProcessAt(r.At),
		asynq.TaskID(TaskID(p)),
		asynq.MaxRetry(5),
	}
	return task, opts, nil
}

// ---------------------------------------------------------------------------
// Scheduler
// ---------------------------------------------------------------------------

type enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Scheduler enqueues reminders on asynq.
type Scheduler struct {
	client enqueuer
}

func NewScheduler(client *asynq.Client) *Scheduler {
	return &Scheduler{client: client}
}

func (s *Scheduler) ScheduleReminder(ctx context.Context, r booking.Reminder) error {
	task, opts, err := NewReminderTask(r)
	if err != nil {
		return fmt.Errorf("build reminder task: %w", err)
	}
	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("enqueue reminder: %w", err)
	}
	slog.DebugContext(ctx, "reminder scheduled", "booking_id", r.BookingID, "task_id", info.ID, "at", r.At)
	return nil
}

// ---------------------------------------------------------------------------
// Handler
// ---------------------------------------------------------------------------

// ReminderSender is the booking operation a reminder task invokes.
type ReminderSender interface {
	SendReminder(ctx context.Context, id uuid.UUID, date availability.Date, start availability.Clock) error
}

func HandleReminder(svc ReminderSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			slog.ErrorContext(ctx, "invalid reminder payload", "error", err)
			return fmt.Errorf("decode reminder payload: %v: %w", err, asynq.SkipRetry)
		}

		if err := svc.SendReminder(ctx, p.BookingID, p.Date, p.StartTime); err != nil {
			slog.WarnContext(ctx, "reminder delivery failed", "booking_id", p.BookingID, "error", err)
			return err
		}
		return nil
	}
}

func NewServeMux(svc ReminderSender) *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeSessionReminder, HandleReminder(svc))
	return mux
}
