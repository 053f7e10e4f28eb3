package client

// Notifier surfaces mutation outcomes to a UI layer, e.g. as toasts.
type Notifier interface {
	Success(title, description string)
	Error(title, description string)
}

type nopNotifier struct{}

func (nopNotifier) Success(string, string) {}
func (nopNotifier) Error(string, string)   {}
