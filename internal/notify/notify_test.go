package notify_test

import (
	"context"
	"testing"
	"time"

	"tradepost/internal/domain"
	"tradepost/internal/notify"
)

type chanSender struct {
	got chan string
}

func (s *chanSender) Send(_ context.Context, _ int64, message string, _ domain.Channel) error {
	s.got <- message
	return nil
}

func waitFor(t *testing.T, ch chan string) string {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("no dispatch within 2s")
		return ""
	}
}

func TestDispatchRoutesByChannel(t *testing.T) {
	def := &chanSender{got: make(chan string, 1)}
	whatsapp := &chanSender{got: make(chan string, 1)}

	d := notify.NewDispatcher(def)
	d.ByChannel[domain.ChannelWhatsapp] = whatsapp

	d.Dispatch(2, "via whatsapp", domain.ChannelWhatsapp)
	if m := waitFor(t, whatsapp.got); m != "via whatsapp" {
		t.Fatalf("whatsapp sender got %q", m)
	}

	d.Dispatch(2, "via default", domain.ChannelTelegram)
	if m := waitFor(t, def.got); m != "via default" {
		t.Fatalf("default sender got %q", m)
	}
}

func TestDispatchWithoutSenderIsANoOp(t *testing.T) {
	d := notify.NewDispatcher(nil)
	// must not panic or block
	d.Dispatch(2, "dropped", domain.ChannelEmail)
}
