package session

import (
	"github.com/charmbracelet/log"
	"github.com/filmplane/filmplane/internal/shared"
)

// Notification is a user-visible message emitted by the session core.
type Notification struct {
	ID      string
	Message string
}

// Notifier surfaces user-visible notifications. Views decide how to render
// them; the core only emits.
type Notifier interface {
	Notify(message string)
}

// FeedNotifier publishes notifications on a replay-last-value [Signal] so a
// view constructed after the emission still renders the latest message.
type FeedNotifier struct {
	signal *Signal[Notification]
}

// NewFeedNotifier creates an empty notification feed.
func NewFeedNotifier() *FeedNotifier {
	return &FeedNotifier{signal: NewSignal(Notification{})}
}

func (n *FeedNotifier) Notify(message string) {
	n.signal.Set(Notification{ID: shared.GenerateID(), Message: message})
}

// Latest returns the most recent notification, which may be the zero value.
func (n *FeedNotifier) Latest() Notification {
	return n.signal.Get()
}

// Subscribe returns a replay-last-value subscription to the feed.
func (n *FeedNotifier) Subscribe() (<-chan Notification, func()) {
	return n.signal.Subscribe()
}

// LogNotifier writes notifications to the application log. Used by headless
// commands where no view renders the feed.
type LogNotifier struct {
	logger *log.Logger
}

func NewLogNotifier(logger *log.Logger) *LogNotifier {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Notify(message string) {
	n.logger.Warn(message)
}
