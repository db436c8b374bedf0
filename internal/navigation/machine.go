// File: internal/navigation/machine.go

// Package navigation holds the screen state machine. The current screen and
// the transient cross-screen parameter bag live in one State value owned by
// one Machine; every transition is an explicit typed message dispatched
// through a single reducer, never inferred.
package navigation

import (
	"sync"

	"go.uber.org/zap"

	"worklink_app/internal/listing"
	"worklink_app/internal/screen"
	"worklink_app/internal/user"
)

// State is the navigation state: the current screen plus dedicated named
// slots for in-flight parameters. Slots are independent: a transition
// carries at most one payload and touches only its own slot, so starting a
// second flow of the same kind overwrites that slot and nothing else.
type State struct {
	Current  screen.ID
	Previous screen.ID

	PendingEmail           string
	EditingListing         *listing.Listing
	SelectedFreelancer     *user.Profile
	SelectedJobID          string
	SelectedConversationID string
	SelectedRecipientID    string
	SelectedRecipientName  string
	SearchParams           *listing.SearchParams
}

// Param is the tagged union of transition payloads.
type Param interface {
	applySlot(*State)
}

// ListingParam selects a listing for detail or edit screens.
type ListingParam struct{ Listing *listing.Listing }

func (p ListingParam) applySlot(s *State) { s.EditingListing = p.Listing }

// FreelancerParam selects a freelancer for public profile or job request.
type FreelancerParam struct{ Freelancer *user.Profile }

func (p FreelancerParam) applySlot(s *State) { s.SelectedFreelancer = p.Freelancer }

// JobParam selects a job request by id.
type JobParam struct{ JobID string }

func (p JobParam) applySlot(s *State) { s.SelectedJobID = p.JobID }

// ConversationParam selects a conversation together with its counterpart.
type ConversationParam struct {
	ID            string
	RecipientID   string
	RecipientName string
}

func (p ConversationParam) applySlot(s *State) {
	s.SelectedConversationID = p.ID
	s.SelectedRecipientID = p.RecipientID
	s.SelectedRecipientName = p.RecipientName
}

// SearchParam carries the search-filter bag to the results screen.
type SearchParam struct{ Params *listing.SearchParams }

func (p SearchParam) applySlot(s *State) { s.SearchParams = p.Params }

// EmailParam carries the pending email to the verification screen.
type EmailParam struct{ Email string }

func (p EmailParam) applySlot(s *State) { s.PendingEmail = p.Email }

// message is the tagged union of dispatchable transitions.
type message interface {
	reduce(State) State
}

type goTo struct {
	target screen.ID
	param  Param
}

func (m goTo) reduce(s State) State {
	next := s
	if m.param != nil {
		m.param.applySlot(&next)
	}

	target := m.target
	if required := screen.RequiredParam(target); required != screen.ParamNone && !hasParam(next, required) {
		// The slot the target depends on is empty. Land on the safe home
		// screen instead of rendering a screen with no subject.
		target = screen.FallbackFor(target)
	}

	next.Previous = s.Current
	next.Current = target
	return next
}

type goBack struct{}

func (goBack) reduce(s State) State {
	next := s
	if s.Previous != "" {
		next.Current = s.Previous
	} else {
		next.Current = screen.FallbackFor(s.Current)
	}
	// A second Back from the restored screen must not bounce forward again.
	next.Previous = ""
	return next
}

func hasParam(s State, kind screen.ParamKind) bool {
	switch kind {
	case screen.ParamListing:
		return s.EditingListing != nil
	case screen.ParamFreelancer:
		return s.SelectedFreelancer != nil
	case screen.ParamJob:
		return s.SelectedJobID != ""
	case screen.ParamConversation:
		return s.SelectedConversationID != ""
	case screen.ParamSearch:
		return s.SearchParams != nil
	default:
		return true
	}
}

// Controller is the navigation surface injected into leaf screens. The
// caller decides the next screen; the controller only validates and records.
type Controller interface {
	Go(target screen.ID, param Param)
	Back()
}

// Listener receives navigation state snapshots after each transition.
type Listener func(State)

// Machine owns the navigation state. All writes go through dispatch under
// one mutex, preserving single-writer discipline.
type Machine struct {
	logger *zap.Logger

	mu          sync.Mutex
	state       State
	subscribers map[int]Listener
	nextSubID   int
}

var _ Controller = (*Machine)(nil)

// NewMachine creates a machine with Onboarding as the initial placement.
func NewMachine(logger *zap.Logger) *Machine {
	return &Machine{
		logger:      logger.Named("navigation"),
		state:       State{Current: screen.Onboarding},
		subscribers: make(map[int]Listener),
	}
}

// Go transitions to a target screen, optionally carrying one payload.
func (m *Machine) Go(target screen.ID, param Param) {
	m.dispatch(goTo{target: target, param: param})
}

// Back returns to the recorded prior screen, or the zone home when none was
// recorded.
func (m *Machine) Back() {
	m.dispatch(goBack{})
}

// Current returns the latest navigation state.
func (m *Machine) Current() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Subscribe registers a state listener and returns its teardown function.
func (m *Machine) Subscribe(l Listener) func() {
	m.mu.Lock()
	id := m.nextSubID
	m.nextSubID++
	m.subscribers[id] = l
	m.mu.Unlock()

	return func() {
		m.mu.Lock()
		delete(m.subscribers, id)
		m.mu.Unlock()
	}
}

func (m *Machine) dispatch(msg message) {
	m.mu.Lock()
	from := m.state.Current
	m.state = msg.reduce(m.state)
	state := m.state
	listeners := make([]Listener, 0, len(m.subscribers))
	for _, l := range m.subscribers {
		listeners = append(listeners, l)
	}
	m.mu.Unlock()

	m.logger.Debug("Screen transition",
		zap.String("from", string(from)),
		zap.String("to", string(state.Current)),
	)
	for _, l := range listeners {
		l(state)
	}
}
