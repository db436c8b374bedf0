// File: cmd/app/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"worklink_app/internal/app"
	"worklink_app/internal/bootstrap"
	"worklink_app/internal/config"
	"worklink_app/internal/conversation"
	"worklink_app/internal/filestorage"
	"worklink_app/internal/firebase"
	"worklink_app/internal/identity"
	"worklink_app/internal/job"
	"worklink_app/internal/jobs"
	"worklink_app/internal/listing"
	"worklink_app/internal/navigation"
	"worklink_app/internal/platform/logger"
	"worklink_app/internal/session"
	"worklink_app/internal/user"

	"github.com/google/wire"
)

// initializeController is the main Wire injector.
func initializeController(cfg *config.Config) (*app.Controller, func(), error) {
	wire.Build(
		// Platform Layer
		logger.New,
		firebase.NewService,
		provideAuthClient,
		provideFirestoreClient,
		provideBucket,
		provideCleanup,

		// Identity
		identity.NewFirebaseProvider,
		wire.Bind(new(identity.Provider), new(*identity.FirebaseProvider)),
		wire.Bind(new(user.AuthGateway), new(*identity.FirebaseProvider)),

		// Profiles
		user.NewFirestoreRepository,
		wire.Bind(new(user.Repository), new(*user.FirestoreRepository)),
		user.NewService,
		wire.Bind(new(session.ProfileFetcher), new(*user.Service)),
		wire.Bind(new(conversation.NameResolver), new(*user.Service)),

		// Session / navigation / bootstrap
		session.NewStore,
		navigation.NewMachine,
		wire.Bind(new(navigation.Controller), new(*navigation.Machine)),
		bootstrap.NewReactor,

		// Domain modules
		listing.NewFirestoreRepository,
		wire.Bind(new(listing.Repository), new(*listing.FirestoreRepository)),
		listing.NewService,
		job.NewFirestoreRepository,
		wire.Bind(new(job.Repository), new(*job.FirestoreRepository)),
		job.NewService,
		conversation.NewFirestoreRepository,
		wire.Bind(new(conversation.Repository), new(*conversation.FirestoreRepository)),
		wire.Bind(new(conversation.Watcher), new(*conversation.FirestoreRepository)),
		conversation.NewService,
		conversation.NewAggregator,
		filestorage.NewService,
		jobs.NewListingExpiryJob,

		// Application Layer
		app.NewController,
	)
	return nil, nil, nil
}
