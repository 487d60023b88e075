package booking

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/gateway"
)

// spawn runs fn after the caller's state change is committed. The effect
// outlives the request context but is bounded by the side-effect timeout.
func (e *engine) spawn(ctx context.Context, name string, bookingID uuid.UUID, fn func(context.Context)) {
	base := context.WithoutCancel(ctx)
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				slog.ErrorContext(base, "booking side effect panicked", "effect", name, "booking_id", bookingID, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(base, e.cfg.SideEffectTimeout)
		defer cancel()
		fn(ctx)
	}()
}

func (e *engine) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func provisionOutcome(err error) ProvisionStatus {
	switch {
	case err == nil:
		return ProvisionProvisioned
	case errors.Is(err, gateway.ErrUnavailable):
		return ProvisionSkipped
	default:
		return ProvisionFailed
	}
}

// logEffect records a collaborator failure. Unavailable collaborators are
// expected in some deployments and only logged at debug.
func logEffect(ctx context.Context, msg string, bookingID uuid.UUID, err error) {
	if errors.Is(err, gateway.ErrUnavailable) {
		slog.DebugContext(ctx, msg, "booking_id", bookingID, "error", err)
		return
	}
	slog.WarnContext(ctx, msg, "booking_id", bookingID, "error", err)
}

// provisionMeeting reloads the booking so a reschedule that landed first is
// honoured.
func (e *engine) provisionMeeting(ctx context.Context, id uuid.UUID) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "reload booking failed", "booking_id", id, "error", err)
		return
	}
	if !b.Status.Active() {
		return
	}

	appt := b.Appointment()
	m, err := e.gw.CreateMeeting(ctx, appt)
	update := MeetingUpdate{Status: provisionOutcome(err)}
	if err != nil {
		logEffect(ctx, "meeting provisioning failed", b.ID, err)
	} else {
		update.MeetingID = m.ID
		update.JoinURL = m.JoinURL
		update.Password = m.Password
	}

	applied, err := e.store.SetMeeting(ctx, b.ID, update)
	if err != nil {
		slog.ErrorContext(ctx, "recording meeting outcome failed", "booking_id", b.ID, "error", err)
		return
	}
	if update.MeetingID == "" {
		return
	}
	// The booking was cancelled while the meeting was being created.
	if !applied {
		if err := e.gw.DeleteMeeting(ctx, update.MeetingID); err != nil {
			logEffect(ctx, "orphan meeting cleanup failed", b.ID, err)
		}
		return
	}
	e.followReschedule(ctx, b.ID, update.MeetingID, appt)
}

// followReschedule moves a freshly created meeting when the booking was
// rescheduled during provisioning. That reschedule found no meeting to move.
func (e *engine) followReschedule(ctx context.Context, id uuid.UUID, meetingID string, created gateway.Appointment) {
	cur, err := e.store.Get(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "reload booking failed", "booking_id", id, "error", err)
		return
	}
	if cur.Appointment() == created {
		return
	}
	if err := e.gw.UpdateMeeting(ctx, meetingID, cur.Appointment()); err != nil {
		logEffect(ctx, "meeting update failed", id, err)
	}
}

// moveMeeting follows a reschedule. A booking whose earlier provisioning
// failed or was skipped is provisioned again.
func (e *engine) moveMeeting(ctx context.Context, b *Booking) {
	cur, err := e.store.Get(ctx, b.ID)
	if err != nil {
		slog.ErrorContext(ctx, "reload booking failed", "booking_id", b.ID, "error", err)
		return
	}
	if cur.MeetingID == "" {
		if cur.MeetingProvisionStatus != ProvisionPending {
			e.provisionMeeting(ctx, cur.ID)
		}
		return
	}
	if err := e.gw.UpdateMeeting(ctx, cur.MeetingID, cur.Appointment()); err != nil {
		logEffect(ctx, "meeting update failed", b.ID, err)
	}
}

// sendInvite reloads the booking so the invite carries the latest meeting
// details.
func (e *engine) sendInvite(ctx context.Context, id uuid.UUID, rescheduled bool) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "reload booking failed", "booking_id", id, "error", err)
		return
	}
	if !b.Status.Active() {
		return
	}
	n, err := e.notice(ctx, b)
	if err != nil {
		slog.WarnContext(ctx, "cannot build invite", "booking_id", id, "error", err)
		return
	}
	n.Rescheduled = rescheduled
	if err := e.gw.SendInvite(ctx, n); err != nil {
		logEffect(ctx, "invite failed", id, err)
	}
}

func (e *engine) teardown(ctx context.Context, id uuid.UUID) {
	b, err := e.store.Get(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "reload booking failed", "booking_id", id, "error", err)
		return
	}
	if b.MeetingID != "" {
		if err := e.gw.DeleteMeeting(ctx, b.MeetingID); err != nil {
			logEffect(ctx, "meeting teardown failed", id, err)
		}
	}

	n, err := e.notice(ctx, b)
	if err != nil {
		slog.WarnContext(ctx, "cannot build cancellation notice", "booking_id", id, "error", err)
		return
	}
	if err := e.gw.SendCancellationNotice(ctx, n); err != nil {
		logEffect(ctx, "cancellation notice failed", id, err)
	}
}
