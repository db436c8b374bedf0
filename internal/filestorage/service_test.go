// File: internal/filestorage/service_test.go
package filestorage

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worklink_app/internal/config"
)

func newTestService() *Service {
	cfg := &config.Config{FirebaseStorageBucket: "worklink-test.appspot.com"}
	return NewService(cfg, nil, zap.NewNop())
}

func TestService_BuildPath(t *testing.T) {
	s := newTestService()

	got := s.BuildPath("avatars", "uid-1", "me.png")

	assert.True(t, strings.HasPrefix(got, "avatars/uid-1/"), "got %q", got)
	assert.True(t, strings.HasSuffix(got, ".png"), "got %q", got)
}

func TestService_BuildPath_NoExtension(t *testing.T) {
	s := newTestService()

	got := s.BuildPath("listings", "uid-1", "photo")

	assert.True(t, strings.HasPrefix(got, "listings/uid-1/"), "got %q", got)
	assert.False(t, strings.Contains(got, "."), "got %q", got)
}

func TestService_PublicURL(t *testing.T) {
	s := newTestService()

	got := s.PublicURL("avatars/uid-1/123.png")
	assert.Equal(t, "https://storage.googleapis.com/worklink-test.appspot.com/avatars/uid-1/123.png", got)
}

func TestService_Upload_UnconfiguredBucketFailsCleanly(t *testing.T) {
	s := newTestService()

	_, err := s.Upload(context.Background(), "avatars/uid-1/123.png", "image/png", strings.NewReader("data"))
	require.Error(t, err)
}

func TestService_Upload_RejectsTraversalPaths(t *testing.T) {
	cfg := &config.Config{FirebaseStorageBucket: "worklink-test.appspot.com"}
	s := NewService(cfg, nil, zap.NewNop())

	for _, p := range []string{"../secrets", "/etc/passwd", "avatars/../../x"} {
		_, err := s.Upload(context.Background(), p, "image/png", strings.NewReader("data"))
		assert.Error(t, err, "path %q must be rejected", p)
	}
}
