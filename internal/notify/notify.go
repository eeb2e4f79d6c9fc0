package notify

import "go.uber.org/zap"

// Kind classifies a user-facing notification
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Notifier is the port through which the engine surfaces user feedback
// (item added, empty cart, validation failures, checkout success). Any
// implementation satisfies the contract as long as each call produces
// exactly one notification of the given kind.
type Notifier interface {
	Notify(kind Kind, message string)
}

// ZapNotifier surfaces notifications through the application logger. It
// is the default sink when no UI-facing channel is wired in.
type ZapNotifier struct {
	logger *zap.Logger
}

// NewZapNotifier creates a logger-backed notifier
func NewZapNotifier(logger *zap.Logger) *ZapNotifier {
	return &ZapNotifier{logger: logger}
}

func (n *ZapNotifier) Notify(kind Kind, message string) {
	switch kind {
	case KindError:
		n.logger.Warn("notification", zap.String("kind", string(kind)), zap.String("message", message))
	default:
		n.logger.Info("notification", zap.String("kind", string(kind)), zap.String("message", message))
	}
}

// Noop discards all notifications
type Noop struct{}

func (Noop) Notify(Kind, string) {}
