// Package notify delivers seller notifications. Dispatch is fire-and-forget:
// a failed or slow send is logged and never surfaces to the workflow that
// triggered it.
package notify

import (
	"context"
	"time"

	"tradepost/internal/domain"
	applog "tradepost/internal/log"
)

// Sender delivers one message on one channel.
type Sender interface {
	Send(ctx context.Context, recipientID int64, message string, channel domain.Channel) error
}

// Dispatcher fans a notification out to the sender for its channel, falling
// back to the default sender for channels with no dedicated transport.
type Dispatcher struct {
	Default   Sender
	ByChannel map[domain.Channel]Sender

	// Timeout bounds one delivery attempt.
	Timeout time.Duration
}

func NewDispatcher(def Sender) *Dispatcher {
	return &Dispatcher{
		Default:   def,
		ByChannel: map[domain.Channel]Sender{},
		Timeout:   5 * time.Second,
	}
}

// Dispatch attempts delivery in the background. The caller never waits and
// never sees a failure.
func (d *Dispatcher) Dispatch(recipientID int64, message string, channel domain.Channel) {
	snd := d.Default
	if s, ok := d.ByChannel[channel]; ok {
		snd = s
	}
	if snd == nil {
		return
	}
	timeout := d.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := snd.Send(ctx, recipientID, message, channel); err != nil {
			applog.Error(nil, "notify.send.fail", err, map[string]any{
				"recipient": recipientID, "channel": string(channel),
			})
		}
	}()
}

// LogSender reports the attempt to the log; the default transport for
// channels without real delivery configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, recipientID int64, message string, channel domain.Channel) error {
	applog.Info(nil, "notify.send", map[string]any{
		"recipient": recipientID, "channel": string(channel), "message": message,
	})
	return nil
}
