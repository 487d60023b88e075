package gateway

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/jasimarif/psychology-app/internal/service/availability"
)

type fakeVideo struct {
	available bool
	err       error
	delay     time.Duration
	got       MeetingRequest
}

func (f *fakeVideo) IsAvailable() bool { return f.available }

func (f *fakeVideo) CreateMeeting(ctx context.Context, req MeetingRequest) (*Meeting, error) {
	f.got = req
	if f.delay > 0 {
		select {
		case <-time.After(f.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if f.err != nil {
		return nil, f.err
	}
	return &Meeting{ID: "m1", JoinURL: "https://video.test/m1", Password: "pw"}, nil
}

func (f *fakeVideo) UpdateMeeting(context.Context, string, time.Time, int, string) error { return f.err }
func (f *fakeVideo) DeleteMeeting(context.Context, string) error                        { return f.err }

type fakeNotifier struct {
	invites []Notice
	cancels []Notice
}

func (f *fakeNotifier) IsAvailable() bool { return true }
func (f *fakeNotifier) SendInvite(_ context.Context, n Notice) error {
	f.invites = append(f.invites, n)
	return nil
}
func (f *fakeNotifier) SendCancellationNotice(_ context.Context, n Notice) error {
	f.cancels = append(f.cancels, n)
	return nil
}
func (f *fakeNotifier) SendReminder(context.Context, Notice) error { return nil }

func appointment(t *testing.T, tz string) Appointment {
	t.Helper()
	if _, err := time.LoadLocation(tz); err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	return Appointment{
		BookingID: uuid.New(),
		Date:      availability.Date{Year: 2026, Month: time.March, Day: 2},
		Start:     availability.MustClock("09:00"),
		End:       availability.MustClock("09:50"),
		Timezone:  tz,
	}
}

func TestCreateMeeting_ResolvesInstant(t *testing.T) {
	video := &fakeVideo{available: true}
	g := New(nil, video, nil, Timeouts{})

	m, err := g.CreateMeeting(context.Background(), appointment(t, "America/New_York"))
	if err != nil {
		t.Fatalf("CreateMeeting: %v", err)
	}
	if m.ID != "m1" {
		t.Errorf("meeting = %+v", m)
	}
	want := time.Date(2026, time.March, 2, 14, 0, 0, 0, time.UTC)
	if !video.got.Start.Equal(want) || video.got.Start.Location() != time.UTC {
		t.Errorf("start = %s, want %s", video.got.Start, want)
	}
	if video.got.DurationMinutes != 50 || video.got.Timezone != "America/New_York" {
		t.Errorf("request = %+v", video.got)
	}
}

func TestCall_Unavailable(t *testing.T) {
	g := New(nil, &fakeVideo{available: false}, nil, Timeouts{})

	_, err := g.CreateMeeting(context.Background(), appointment(t, "UTC"))
	if !errors.Is(err, ErrUnavailable) || !errors.Is(err, ErrIntegration) {
		t.Fatalf("err = %v, want ErrUnavailable and ErrIntegration", err)
	}
	if _, err := g.Refund(context.Background(), RefundRequest{}); !errors.Is(err, ErrUnavailable) {
		t.Errorf("nil payment provider: err = %v", err)
	}
}

func TestCall_WrapsFailure(t *testing.T) {
	boom := errors.New("zoom is down")
	g := New(nil, &fakeVideo{available: true, err: boom}, nil, Timeouts{})

	err := g.DeleteMeeting(context.Background(), "m1")
	var ie *IntegrationError
	if !errors.As(err, &ie) {
		t.Fatalf("err %T is not *IntegrationError", err)
	}
	if ie.Collaborator != CollaboratorVideo || ie.Operation != "delete_meeting" {
		t.Errorf("integration error = %+v", ie)
	}
	if !errors.Is(err, boom) {
		t.Error("cause not preserved")
	}
}

func TestCall_Timeout(t *testing.T) {
	g := New(nil, &fakeVideo{available: true, delay: time.Second}, nil, Timeouts{Video: 20 * time.Millisecond})

	start := time.Now()
	_, err := g.CreateMeeting(context.Background(), appointment(t, "UTC"))
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", err)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("timeout was not applied")
	}
}

func TestSendInvite_AttachesEvent(t *testing.T) {
	notify := &fakeNotifier{}
	stamp := time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC)
	g := New(nil, nil, notify, Timeouts{}, WithClock(func() time.Time { return stamp }))

	appt := appointment(t, "Europe/Berlin")
	n := Notice{
		Client:      Participant{Name: "Sam", Email: "sam@example.com"},
		Provider:    Participant{Name: "Dr. Lee", Email: "lee@example.com"},
		Appointment: appt,
		JoinURL:     "https://video.test/m1",
		Sequence:    2,
	}
	if err := g.SendInvite(context.Background(), n); err != nil {
		t.Fatalf("SendInvite: %v", err)
	}
	if err := g.SendCancellationNotice(context.Background(), n); err != nil {
		t.Fatalf("SendCancellationNotice: %v", err)
	}

	ev := notify.invites[0].Event
	if ev == nil || ev.Method != MethodRequest {
		t.Fatalf("invite event = %+v", ev)
	}
	if got := ev.Start.UTC().Format(icsTimeLayout); got != "20260302T080000Z" {
		t.Errorf("DTSTART = %s", got)
	}
	if !strings.HasPrefix(ev.UID, appt.BookingID.String()) || ev.Sequence != 2 {
		t.Errorf("uid/sequence = %s/%d", ev.UID, ev.Sequence)
	}
	if notify.cancels[0].Event.Method != MethodCancel {
		t.Errorf("cancel method = %s", notify.cancels[0].Event.Method)
	}
}
