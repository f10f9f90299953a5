// The application-state container for the admin console. Console owns
// the entity store, the navigation machine, the notification queue, the
// confirmation slot and the insight service, and exposes one transition
// method per user action. Views read snapshots and listen on the event
// hub; they never mutate shared state directly.

package console

import (
	"time"

	"github.com/Nicolas-29/nexus-admin/internal/confirm"
	"github.com/Nicolas-29/nexus-admin/internal/events"
	"github.com/Nicolas-29/nexus-admin/internal/insight"
	"github.com/Nicolas-29/nexus-admin/internal/nav"
	"github.com/Nicolas-29/nexus-admin/internal/notify"
	"github.com/Nicolas-29/nexus-admin/internal/store"
)

// Options configures a Console.
type Options struct {
	NotificationTTL time.Duration
	Insight         insight.Config
}

// Console aggregates the console's state and services.
type Console struct {
	store    *store.Store
	notifier *notify.Notifier
	confirm  *confirm.Slot
	nav      *nav.Machine
	hub      *events.Hub
	insight  *insight.Service
}

// New wires up a Console and starts its event hub.
func New(opts Options) *Console {
	c := &Console{
		store:    store.New(),
		notifier: notify.New(opts.NotificationTTL),
		confirm:  confirm.New(),
		nav:      nav.NewMachine(),
		hub:      events.NewHub(),
		insight:  insight.New(opts.Insight),
	}
	c.notifier.SetOnChange(func() { c.publish(events.ScopeNotifications) })
	go c.hub.Run()
	return c
}

// Store exposes the entity collections.
func (c *Console) Store() *store.Store { return c.store }

// Notifier exposes the toast queue.
func (c *Console) Notifier() *notify.Notifier { return c.notifier }

// Confirm exposes the confirmation slot.
func (c *Console) Confirm() *confirm.Slot { return c.confirm }

// Nav exposes the page-routing machine.
func (c *Console) Nav() *nav.Machine { return c.nav }

// Events exposes the change-event hub.
func (c *Console) Events() *events.Hub { return c.hub }

// Navigate switches the current page through the routing machine.
func (c *Console) Navigate(page nav.Page) {
	c.nav.Go(page)
	c.publish(events.ScopeNav)
}

// AcceptConfirm runs the pending destructive action, if any.
func (c *Console) AcceptConfirm() bool {
	ok := c.confirm.Accept()
	if ok {
		c.publish(events.ScopeConfirm)
	}
	return ok
}

// CancelConfirm discards the pending destructive action, if any.
func (c *Console) CancelConfirm() bool {
	ok := c.confirm.Cancel()
	if ok {
		c.publish(events.ScopeConfirm)
	}
	return ok
}

// Close releases timers and the event hub.
func (c *Console) Close() {
	c.notifier.Close()
	c.hub.Close()
}

func (c *Console) publish(scope events.Scope) {
	c.hub.Publish(scope)
}
