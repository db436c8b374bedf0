// File: internal/app/controller.go

// Package app wires the long-lived components together and owns their
// lifecycle. The controller is what a UI shell binds to: it exposes the
// session store, the navigation machine, the unread badge, and the domain
// services, and guarantees deterministic teardown.
package app

import (
	"context"

	"go.uber.org/zap"

	"worklink_app/internal/bootstrap"
	"worklink_app/internal/config"
	"worklink_app/internal/conversation"
	"worklink_app/internal/filestorage"
	"worklink_app/internal/identity"
	"worklink_app/internal/job"
	"worklink_app/internal/jobs"
	"worklink_app/internal/listing"
	"worklink_app/internal/navigation"
	"worklink_app/internal/session"
	"worklink_app/internal/user"
)

// Controller holds the application core.
type Controller struct {
	cfg    *config.Config
	logger *zap.Logger

	provider   identity.Provider
	store      *session.Store
	nav        *navigation.Machine
	reactor    *bootstrap.Reactor
	aggregator *conversation.Aggregator
	expiryJob  *jobs.ListingExpiryJob

	users         *user.Service
	listings      *listing.Service
	jobRequests   *job.Service
	conversations *conversation.Service
	files         *filestorage.Service

	aggregatorUnsub func()
}

// NewController creates the controller from its wired components.
func NewController(
	cfg *config.Config,
	logger *zap.Logger,
	provider identity.Provider,
	store *session.Store,
	nav *navigation.Machine,
	reactor *bootstrap.Reactor,
	aggregator *conversation.Aggregator,
	expiryJob *jobs.ListingExpiryJob,
	users *user.Service,
	listings *listing.Service,
	jobRequests *job.Service,
	conversations *conversation.Service,
	files *filestorage.Service,
) (*Controller, error) {
	return &Controller{
		cfg:           cfg,
		logger:        logger,
		provider:      provider,
		store:         store,
		nav:           nav,
		reactor:       reactor,
		aggregator:    aggregator,
		expiryJob:     expiryJob,
		users:         users,
		listings:      listings,
		jobRequests:   jobRequests,
		conversations: conversations,
		files:         files,
	}, nil
}

// Start begins the reactive pieces: the bootstrap redirect evaluation, the
// unread-badge aggregation keyed off the session identity, and the
// background expiry job.
func (c *Controller) Start() error {
	c.reactor.Start()

	// The aggregator's subscription follows identity presence: re-keyed on
	// every sign-in, forced to zero on sign-out.
	c.aggregatorUnsub = c.store.Subscribe(func(state session.State) {
		if state.Session != nil {
			c.aggregator.SetIdentity(state.Session.UID)
		} else {
			c.aggregator.SetIdentity("")
		}
	})

	if c.expiryJob != nil {
		if err := c.expiryJob.SetupAndStart(); err != nil {
			c.logger.Error("Failed to start listing expiry job", zap.Error(err))
		}
	}

	c.logger.Info("Application controller started")
	return nil
}

// Shutdown tears everything down deterministically: no listener or live
// subscription survives it.
func (c *Controller) Shutdown(_ context.Context) error {
	c.logger.Info("Shutting down application controller...")
	if c.expiryJob != nil {
		c.expiryJob.Stop()
	}
	if c.aggregatorUnsub != nil {
		c.aggregatorUnsub()
		c.aggregatorUnsub = nil
	}
	c.aggregator.Close()
	c.reactor.Stop()
	c.store.Close()
	return nil
}

// CheckEmailVerified re-fetches server truth of the verification flag. The
// email-verification screen polls this; a flipped flag flows through the
// session store and re-triggers the bootstrap redirect.
func (c *Controller) CheckEmailVerified(ctx context.Context) (bool, error) {
	sess, err := c.provider.Reload(ctx)
	if err != nil {
		return false, err
	}
	if sess == nil {
		return false, nil
	}
	return sess.EmailVerified, nil
}

// Identity exposes the auth provider for the auth screens.
func (c *Controller) Identity() identity.Provider { return c.provider }

// Session exposes the session store.
func (c *Controller) Session() *session.Store { return c.store }

// Navigation exposes the navigation controller for leaf screens.
func (c *Controller) Navigation() navigation.Controller { return c.nav }

// NavigationState returns the current navigation state snapshot.
func (c *Controller) NavigationState() navigation.State { return c.nav.Current() }

// UnreadBadge exposes the badge aggregator for the bottom-navigation bars.
func (c *Controller) UnreadBadge() *conversation.Aggregator { return c.aggregator }

// Users exposes the profile service.
func (c *Controller) Users() *user.Service { return c.users }

// Listings exposes the listing service.
func (c *Controller) Listings() *listing.Service { return c.listings }

// JobRequests exposes the job-request service.
func (c *Controller) JobRequests() *job.Service { return c.jobRequests }

// Conversations exposes the messaging service.
func (c *Controller) Conversations() *conversation.Service { return c.conversations }

// Files exposes the upload service.
func (c *Controller) Files() *filestorage.Service { return c.files }
