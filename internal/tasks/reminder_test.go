package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"github.com/jasimarif/psychology-app/internal/service/availability"
	"github.com/jasimarif/psychology-app/internal/service/booking"
)

type fakeEnqueuer struct {
	tasks []*asynq.Task
	err   error
}

func (f *fakeEnqueuer) EnqueueContext(_ context.Context, task *asynq.Task, _ ...asynq.Option) (*asynq.TaskInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.tasks = append(f.tasks, task)
	return &asynq.TaskInfo{ID: "t1"}, nil
}

type fakeSender struct {
	calls []ReminderPayload
	err   error
}

func (f *fakeSender) SendReminder(_ context.Context, id uuid.UUID, date availability.Date, start availability.Clock) error {
	f.calls = append(f.calls, ReminderPayload{BookingID: id, Date: date, StartTime: start})
	return f.err
}

func reminder() booking.Reminder {
	return booking.Reminder{
		BookingID: uuid.New(),
		Date:      availability.Date{Year: 2026, Month: time.November, Day: 2},
		StartTime: availability.MustClock("10:00"),
		At:        time.Date(2026, time.November, 2, 14, 0, 0, 0, time.UTC),
	}
}

func TestScheduler_Enqueue(t *testing.T) {
	q := &fakeEnqueuer{}
	s := &Scheduler{client: q}
	r := reminder()

	if err := s.ScheduleReminder(context.Background(), r); err != nil {
		t.Fatalf("ScheduleReminder: %v", err)
	}
	if len(q.tasks) != 1 || q.tasks[0].Type() != TypeSessionReminder {
		t.Fatalf("tasks = %v", q.tasks)
	}

	var p ReminderPayload
	if err := json.Unmarshal(q.tasks[0].Payload(), &p); err != nil {
		t.Fatalf("payload: %v", err)
	}
	if p.BookingID != r.BookingID || p.Date != r.Date || p.StartTime != r.StartTime {
		t.Errorf("payload = %+v", p)
	}
}

func TestScheduler_DuplicateIsNotAnError(t *testing.T) {
	s := &Scheduler{client: &fakeEnqueuer{err: asynq.ErrTaskIDConflict}}
	if err := s.ScheduleReminder(context.Background(), reminder()); err != nil {
		t.Errorf("duplicate: %v", err)
	}

	s = &Scheduler{client: &fakeEnqueuer{err: errors.New("redis down")}}
	if err := s.ScheduleReminder(context.Background(), reminder()); err == nil {
		t.Error("expected enqueue error")
	}
}

func TestTaskID_DependsOnSlot(t *testing.T) {
	p := ReminderPayload{BookingID: uuid.New(), Date: reminder().Date, StartTime: availability.MustClock("10:00")}
	moved := p
	moved.StartTime = availability.MustClock("14:00")
	if TaskID(p) == TaskID(moved) {
		t.Error("rescheduled reminder reuses the task id")
	}
}

func TestHandleReminder(t *testing.T) {
	sender := &fakeSender{}
	task, _, err := NewReminderTask(reminder())
	if err != nil {
		t.Fatalf("NewReminderTask: %v", err)
	}

	if err := HandleReminder(sender)(context.Background(), task); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if len(sender.calls) != 1 || sender.calls[0].StartTime != availability.MustClock("10:00") {
		t.Errorf("calls = %+v", sender.calls)
	}

	bad := asynq.NewTask(TypeSessionReminder, []byte("{"))
	if err := HandleReminder(sender)(context.Background(), bad); !errors.Is(err, asynq.SkipRetry) {
		t.Errorf("bad payload err = %v, want SkipRetry", err)
	}

	sender.err = errors.New("smtp down")
	if err := HandleReminder(sender)(context.Background(), task); err == nil {
		t.Error("expected delivery error to be returned for retry")
	}
}
