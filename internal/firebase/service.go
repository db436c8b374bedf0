// File: internal/firebase/service.go
package firebase

import (
	"context"
	"fmt"
	"path/filepath"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"worklink_app/internal/config"
)

// Service provides handles to the managed backend: authentication, the
// document store, and object storage. All three come from one Firebase app
// initialized with the service account credentials.
type Service struct {
	app             *firebase.App
	authClient      *auth.Client
	firestoreClient *firestore.Client
	bucket          *storage.BucketHandle
	logger          *zap.Logger
}

// NewService initializes the Firebase Admin SDK and the service clients.
func NewService(cfg *config.Config, logger *zap.Logger) (*Service, error) {
	if cfg.FirebaseServiceAccountKeyPath == "" {
		logger.Error("Firebase service account key path is not configured.")
		return nil, fmt.Errorf("firebase service account key path is required")
	}

	cleanPath := filepath.Clean(cfg.FirebaseServiceAccountKeyPath)
	opt := option.WithCredentialsFile(cleanPath)

	conf := &firebase.Config{StorageBucket: cfg.FirebaseStorageBucket}
	if cfg.FirebaseProjectID != "" {
		conf.ProjectID = cfg.FirebaseProjectID
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		logger.Error("Failed to initialize Firebase Admin SDK app", zap.Error(err), zap.String("keyPath", cleanPath))
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		logger.Error("Failed to get Firebase Auth client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firebase Auth client: %w", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to get Firestore client", zap.Error(err))
		return nil, fmt.Errorf("error getting Firestore client: %w", err)
	}

	var bucket *storage.BucketHandle
	if cfg.FirebaseStorageBucket != "" {
		storageClient, err := app.Storage(ctx)
		if err != nil {
			logger.Error("Failed to get Cloud Storage client", zap.Error(err))
			return nil, fmt.Errorf("error getting Cloud Storage client: %w", err)
		}
		bucket, err = storageClient.DefaultBucket()
		if err != nil {
			logger.Error("Failed to resolve default storage bucket", zap.Error(err))
			return nil, fmt.Errorf("error resolving default storage bucket: %w", err)
		}
	} else {
		logger.Warn("FIREBASE_STORAGE_BUCKET not set; file uploads are disabled.")
	}

	logger.Info("Firebase Admin SDK initialized successfully.")
	return &Service{
		app:             app,
		authClient:      authClient,
		firestoreClient: firestoreClient,
		bucket:          bucket,
		logger:          logger,
	}, nil
}

// Auth returns the authentication client.
func (s *Service) Auth() *auth.Client {
	return s.authClient
}

// Firestore returns the document store client.
func (s *Service) Firestore() *firestore.Client {
	return s.firestoreClient
}

// Bucket returns the object storage bucket handle, nil when not configured.
func (s *Service) Bucket() *storage.BucketHandle {
	return s.bucket
}

// Close releases the underlying clients.
func (s *Service) Close() {
	if s.firestoreClient != nil {
		if err := s.firestoreClient.Close(); err != nil {
			s.logger.Error("Failed to close Firestore client", zap.Error(err))
		}
	}
}
