package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestHub_RegisterAndUnregister(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil, uuid.New())

	hub.Register(client)
	waitFor(t, "client registered", func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(client)
	waitFor(t, "client unregistered", func() bool { return hub.ClientCount() == 0 })
}

func TestHub_EvictsSlowConsumerWithoutStalling(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	userID := uuid.New()
	slow := NewClient(hub, nil, userID) // no write pump, so its send buffer fills

	hub.Register(slow)
	waitFor(t, "client registered", func() bool { return hub.ClientCount() == 1 })

	// Overflow the send buffer well past capacity. The hub must evict the
	// client and keep draining deliveries instead of wedging its own loop.
	for i := 0; i < 200; i++ {
		hub.Publish(userID, "notification", map[string]int{"seq": i})
	}
	waitFor(t, "slow client evicted", func() bool { return hub.ClientCount() == 0 })

	fresh := NewClient(hub, nil, uuid.New())
	hub.Register(fresh)
	waitFor(t, "hub still accepts clients", func() bool { return hub.ClientCount() == 1 })
}
