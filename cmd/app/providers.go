// File: cmd/app/providers.go
package main

import (
	"log"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebaseauth "firebase.google.com/go/v4/auth"
	"go.uber.org/zap"

	"worklink_app/internal/firebase"
)

func provideAuthClient(fb *firebase.Service) *firebaseauth.Client {
	return fb.Auth()
}

func provideFirestoreClient(fb *firebase.Service) *firestore.Client {
	return fb.Firestore()
}

func provideBucket(fb *firebase.Service) *storage.BucketHandle {
	return fb.Bucket()
}

func provideCleanup(logger *zap.Logger, fb *firebase.Service) func() {
	return func() {
		logger.Info("Executing cleanup tasks...")
		fb.Close()
		if err := logger.Sync(); err != nil {
			log.Printf("ERROR: Failed to sync logger during cleanup: %v", err)
		}
		log.Println("Cleanup finished.")
	}
}
