package gateway

import (
	"context"
	"time"

	"github.com/jasimarif/psychology-app/pkg/zoom"
)

// ZoomMeetings is the VideoMeetingProvider backed by Zoom.
type ZoomMeetings struct {
	client  *zoom.Client
	enabled bool
}

func NewZoomMeetings(c *zoom.Client, enabled bool) *ZoomMeetings {
	return &ZoomMeetings{client: c, enabled: enabled}
}

func (z *ZoomMeetings) IsAvailable() bool {
	return z.enabled && z.client != nil && z.client.Configured()
}

func (z *ZoomMeetings) CreateMeeting(ctx context.Context, req MeetingRequest) (*Meeting, error) {
	m, err := z.client.CreateMeeting(ctx, zoom.CreateMeetingRequest{
		Topic:    req.Topic,
		Start:    req.Start,
		Duration: time.Duration(req.DurationMinutes) * time.Minute,
		Timezone: req.Timezone,
		Agenda:   "Booking " + req.BookingID.String(),
	})
	if err != nil {
		return nil, err
	}
	return &Meeting{ID: m.ID, JoinURL: m.JoinURL, Password: m.Password}, nil
}

func (z *ZoomMeetings) UpdateMeeting(ctx context.Context, meetingID string, start time.Time, durationMinutes int, timezone string) error {
	return z.client.UpdateMeeting(ctx, meetingID, start, time.Duration(durationMinutes)*time.Minute, timezone)
}

func (z *ZoomMeetings) DeleteMeeting(ctx context.Context, meetingID string) error {
	return z.client.DeleteMeeting(ctx, meetingID)
}
