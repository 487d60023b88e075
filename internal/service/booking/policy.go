package booking

import (
	"fmt"
	"slices"
	"time"
)

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

func canTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

// checkWindow enforces the client cutoff. A client may act only while
// now <= start - window. Other roles are not bound by it.
func checkWindow(b *Booking, actor Actor, now time.Time, window time.Duration, action string) error {
	if actor.Role != RoleClient {
		return nil
	}
	start, err := b.StartsAt()
	if err != nil {
		return fmt.Errorf("resolve booking start: %w", err)
	}
	cutoff := start.Add(-window)
	if now.After(cutoff) {
		return &WindowExpiredError{Action: action, Cutoff: cutoff, Start: start}
	}
	return nil
}

func isOwner(actor Actor, b *Booking) bool {
	return actor.Role == RoleClient && actor.ID == b.UserID
}

func isProvider(actor Actor, b *Booking) bool {
	return actor.Role == RoleProvider && actor.ID == b.ProviderID
}

func isStaff(actor Actor) bool {
	return actor.Role == RoleAdmin || actor.Role == RoleSystem
}

func canRead(actor Actor, b *Booking) bool {
	return isOwner(actor, b) || isProvider(actor, b) || isStaff(actor)
}

// canModify covers cancel and reschedule.
func canModify(actor Actor, b *Booking) bool {
	return canRead(actor, b)
}

func canComplete(actor Actor, b *Booking) bool {
	return isProvider(actor, b) || isStaff(actor)
}

func canRefund(actor Actor, b *Booking) bool {
	return isOwner(actor, b) || actor.Role == RoleAdmin
}
