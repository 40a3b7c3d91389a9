package ports

import "github.com/umlstudio/umlstudio/internal/domain"

// Notifier shows transient notifications to the user
type Notifier interface {
	Notify(n domain.Notification)
}
