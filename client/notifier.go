package client

// Notification is a user-facing toast. Destructive marks error styling.
type Notification struct {
	Title       string
	Description string
	Destructive bool
}

// Notifier receives notifications emitted by the data layer. Injecting
// it keeps fetch and filter logic testable without a UI.
type Notifier interface {
	Notify(n Notification)
}

type NotifierFunc func(n Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

type nopNotifier struct{}

func (nopNotifier) Notify(Notification) {}

// NopNotifier discards every notification.
func NopNotifier() Notifier { return nopNotifier{} }
