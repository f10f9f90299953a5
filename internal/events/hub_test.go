package events

import (
	"testing"
	"time"
)

func TestHub(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Close()

	ch := hub.Subscribe()
	// Give the Run loop a moment to register the subscriber.
	time.Sleep(10 * time.Millisecond)

	hub.Publish(ScopeCatalog)

	select {
	case ev := <-ch:
		if ev.Scope != ScopeCatalog {
			t.Errorf("Subscriber received wrong scope: got %s, want %s", ev.Scope, ScopeCatalog)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Subscriber did not receive event in time")
	}

	// Test unsubscription: the channel must be closed by the hub.
	hub.Unsubscribe(ch)
	select {
	case _, open := <-ch:
		if open {
			t.Error("Expected channel to be closed after unsubscribe")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Channel was not closed after unsubscribe")
	}
}

func TestHub_SlowSubscriberIsDropped(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Close()

	ch := hub.Subscribe()
	time.Sleep(10 * time.Millisecond)

	// Overflow the subscriber buffer without draining.
	for i := 0; i < subscriberBuffer+1; i++ {
		hub.Publish(ScopeUsers)
		time.Sleep(time.Millisecond)
	}

	deadline := time.After(1 * time.Second)
	for {
		select {
		case _, open := <-ch:
			if !open {
				return // dropped, channel closed
			}
		case <-deadline:
			t.Fatal("Slow subscriber was never dropped")
		}
	}
}

func TestHub_CloseClosesSubscribers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	ch := hub.Subscribe()
	time.Sleep(10 * time.Millisecond)
	hub.Close()

	select {
	case _, open := <-ch:
		if open {
			t.Error("Expected no event after close")
		}
	case <-time.After(1 * time.Second):
		t.Fatal("Subscriber channel was not closed on hub shutdown")
	}
}
