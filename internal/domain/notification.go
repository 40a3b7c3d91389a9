package domain

// NotificationKind selects how a notification is presented
type NotificationKind string

const (
	NotifyError   NotificationKind = "error"
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
)

// Notification is a transient message for the user (a toast)
type Notification struct {
	Kind    NotificationKind
	Message string
}
