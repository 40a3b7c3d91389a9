package mocks

import (
	"sync"

	"github.com/umlstudio/umlstudio/internal/domain"
)

// RecordingNotifier is a ports.Notifier that keeps every notification
type RecordingNotifier struct {
	mu            sync.Mutex
	notifications []domain.Notification
}

func (r *RecordingNotifier) Notify(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, n)
}

// All returns the notifications received so far
func (r *RecordingNotifier) All() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Notification, len(r.notifications))
	copy(out, r.notifications)
	return out
}

// Last returns the latest notification and whether there was one
func (r *RecordingNotifier) Last() (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.notifications) == 0 {
		return domain.Notification{}, false
	}
	return r.notifications[len(r.notifications)-1], true
}

// Count returns how many notifications of kind were received
func (r *RecordingNotifier) Count(kind domain.NotificationKind) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, notification := range r.notifications {
		if notification.Kind == kind {
			n++
		}
	}
	return n
}
