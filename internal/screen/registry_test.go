// File: internal/screen/registry_test.go
package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoneOf(t *testing.T) {
	tests := []struct {
		id   ID
		want Zone
	}{
		{FreelancerHome, ZoneFreelancer},
		{CreateListing, ZoneFreelancer},
		{FreelancerSettings, ZoneFreelancer},
		{ClientHome, ZoneClient},
		{SearchResults, ZoneClient},
		{JobDetails, ZoneClient},
		{Onboarding, ZoneNone},
		{Login, ZoneNone},
		{Chat, ZoneNone},
		{Checkout, ZoneNone},
		{AccountDeletion, ZoneNone},
	}

	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			assert.Equal(t, tt.want, ZoneOf(tt.id))
		})
	}
}

func TestRequiredParam(t *testing.T) {
	assert.Equal(t, ParamListing, RequiredParam(ServiceDetail))
	assert.Equal(t, ParamListing, RequiredParam(EditListing))
	assert.Equal(t, ParamFreelancer, RequiredParam(FreelancerPublic))
	assert.Equal(t, ParamFreelancer, RequiredParam(JobRequestForm))
	assert.Equal(t, ParamJob, RequiredParam(JobDetails))
	assert.Equal(t, ParamConversation, RequiredParam(Chat))
	assert.Equal(t, ParamSearch, RequiredParam(SearchResults))

	// Unguarded screens require nothing.
	assert.Equal(t, ParamNone, RequiredParam(ClientHome))
	assert.Equal(t, ParamNone, RequiredParam(Login))
}

func TestFallbackFor(t *testing.T) {
	assert.Equal(t, FreelancerHome, FallbackFor(EditListing))
	assert.Equal(t, ClientHome, FallbackFor(ServiceDetail))
	assert.Equal(t, Onboarding, FallbackFor(Chat))
}

func TestEveryGuardedScreenHasAFallback(t *testing.T) {
	for id := range requiredParams {
		assert.NotEqual(t, id, FallbackFor(id), "fallback for %s must differ from the screen itself", id)
	}
}
