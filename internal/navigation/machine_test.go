// File: internal/navigation/machine_test.go
package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"worklink_app/internal/listing"
	"worklink_app/internal/screen"
	"worklink_app/internal/user"
)

func newTestMachine() *Machine {
	return NewMachine(zap.NewNop())
}

func TestMachine_InitialPlacement(t *testing.T) {
	m := newTestMachine()
	assert.Equal(t, screen.Onboarding, m.Current().Current)
}

func TestMachine_Go_RecordsPrevious(t *testing.T) {
	m := newTestMachine()

	m.Go(screen.Login, nil)
	state := m.Current()
	assert.Equal(t, screen.Login, state.Current)
	assert.Equal(t, screen.Onboarding, state.Previous)

	m.Go(screen.Register, nil)
	state = m.Current()
	assert.Equal(t, screen.Register, state.Current)
	assert.Equal(t, screen.Login, state.Previous)
}

func TestMachine_SlotIsolation(t *testing.T) {
	// Starting a second flow of a different kind must not clear unrelated
	// slots: a job selection survives a later listing selection.
	m := newTestMachine()

	m.Go(screen.JobDetails, JobParam{JobID: "job-1"})
	m.Go(screen.ServiceDetail, ListingParam{Listing: &listing.Listing{ID: "lst-9"}})

	state := m.Current()
	assert.Equal(t, screen.ServiceDetail, state.Current)
	assert.Equal(t, "job-1", state.SelectedJobID)
	require.NotNil(t, state.EditingListing)
	assert.Equal(t, "lst-9", state.EditingListing.ID)
}

func TestMachine_SameKindOverwritesOwnSlot(t *testing.T) {
	m := newTestMachine()

	m.Go(screen.JobDetails, JobParam{JobID: "job-1"})
	m.Go(screen.JobDetails, JobParam{JobID: "job-2"})

	assert.Equal(t, "job-2", m.Current().SelectedJobID)
}

func TestMachine_GuardFallback(t *testing.T) {
	tests := []struct {
		name   string
		target screen.ID
		want   screen.ID
	}{
		{"service detail without listing", screen.ServiceDetail, screen.ClientHome},
		{"edit listing without listing", screen.EditListing, screen.FreelancerHome},
		{"job details without job id", screen.JobDetails, screen.ClientHome},
		{"chat without conversation", screen.Chat, screen.Onboarding},
		{"search results without params", screen.SearchResults, screen.ClientHome},
		{"job request form without freelancer", screen.JobRequestForm, screen.ClientHome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestMachine()
			m.Go(tt.target, nil)
			assert.Equal(t, tt.want, m.Current().Current)
		})
	}
}

func TestMachine_GuardPassesWithSlotPopulated(t *testing.T) {
	m := newTestMachine()

	m.Go(screen.FreelancerPublic, FreelancerParam{Freelancer: &user.Profile{ID: "f1"}})
	assert.Equal(t, screen.FreelancerPublic, m.Current().Current)

	// The slot persists, so a follow-on screen of the same kind needs no
	// fresh payload.
	m.Go(screen.JobRequestForm, nil)
	assert.Equal(t, screen.JobRequestForm, m.Current().Current)
}

func TestMachine_ConversationParamFillsAllThreeSlots(t *testing.T) {
	m := newTestMachine()

	m.Go(screen.Chat, ConversationParam{ID: "c1", RecipientID: "u2", RecipientName: "Dana"})

	state := m.Current()
	assert.Equal(t, screen.Chat, state.Current)
	assert.Equal(t, "c1", state.SelectedConversationID)
	assert.Equal(t, "u2", state.SelectedRecipientID)
	assert.Equal(t, "Dana", state.SelectedRecipientName)
}

func TestMachine_Back_UsesPrevious(t *testing.T) {
	m := newTestMachine()

	m.Go(screen.ClientHome, nil)
	m.Go(screen.Search, nil)
	m.Back()

	assert.Equal(t, screen.ClientHome, m.Current().Current)
}

func TestMachine_Back_SecondBackFallsToZoneHome(t *testing.T) {
	m := newTestMachine()

	m.Go(screen.ClientHome, nil)
	m.Go(screen.Search, nil)
	m.Back()
	// Previous was consumed; a second Back lands on the zone home rather
	// than bouncing forward to Search.
	m.Back()

	assert.Equal(t, screen.ClientHome, m.Current().Current)
}

func TestMachine_Back_WithoutHistoryFallsToZoneHome(t *testing.T) {
	m := newTestMachine()
	m.state = State{Current: screen.MyListings}

	m.Back()
	assert.Equal(t, screen.FreelancerHome, m.Current().Current)
}

func TestMachine_SubscribeAndUnsubscribe(t *testing.T) {
	m := newTestMachine()

	var seen []screen.ID
	unsub := m.Subscribe(func(s State) {
		seen = append(seen, s.Current)
	})

	m.Go(screen.Login, nil)
	m.Go(screen.Register, nil)
	unsub()
	m.Go(screen.TermsOfService, nil)

	assert.Equal(t, []screen.ID{screen.Login, screen.Register}, seen)
}
