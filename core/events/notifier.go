package events

// Notifier receives hero notifications. Delivery is synchronous.
type Notifier interface {
	Notify(Notification)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(Notification) {}

// Multi forwards each notification to every notifier in order.
type Multi []Notifier

// NewMulti builds a Multi, skipping nil notifiers.
func NewMulti(ns ...Notifier) Multi {
	out := make(Multi, 0, len(ns))
	for _, n := range ns {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}

// Notify fans the notification out.
func (m Multi) Notify(n Notification) {
	for _, s := range m {
		s.Notify(n)
	}
}

// Recorder keeps every notification it receives.
type Recorder struct {
	Notifications []Notification
}

// Notify appends n.
func (r *Recorder) Notify(n Notification) {
	r.Notifications = append(r.Notifications, n)
}

// Last returns the most recent notification and false if none was recorded.
func (r *Recorder) Last() (Notification, bool) {
	if len(r.Notifications) == 0 {
		return Notification{}, false
	}
	return r.Notifications[len(r.Notifications)-1], true
}

// Reset drops recorded notifications.
func (r *Recorder) Reset() { r.Notifications = nil }
