package services

import "github.com/rs/zerolog"

// Notifier receives the local notification events the polling loop raises.
// The OS push layer sits behind this interface; the headless binary logs.
type Notifier interface {
	NewOrders(count int)
	NewCalls(count int)
}

type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) LogNotifier { return LogNotifier{log: log} }

func (n LogNotifier) NewOrders(count int) {
	n.log.Info().Int("count", count).Msg("new orders received")
}

func (n LogNotifier) NewCalls(count int) {
	n.log.Info().Int("count", count).Msg("new waiter calls")
}
