// File: internal/screen/registry.go

// Package screen enumerates every reachable screen of the application and
// partitions them into the two navigable zones. The registry is pure data:
// it renders nothing and knows nothing about transitions.
package screen

// ID identifies a single screen.
type ID string

// Auth and onboarding screens.
const (
	Onboarding        ID = "onboarding"
	Login             ID = "login"
	Register          ID = "register"
	ForgotPassword    ID = "forgot_password"
	EmailVerification ID = "email_verification"
	TermsOfService    ID = "terms_of_service"
)

// Freelancer-zone screens.
const (
	FreelancerHome        ID = "freelancer_home"
	FreelancerDashboard   ID = "freelancer_dashboard"
	MyListings            ID = "my_listings"
	CreateListing         ID = "create_listing"
	EditListing           ID = "edit_listing"
	JobRequests           ID = "job_requests"
	FreelancerEarnings    ID = "freelancer_earnings"
	FreelancerMessages    ID = "freelancer_messages"
	FreelancerProfile     ID = "freelancer_profile"
	FreelancerEditProfile ID = "freelancer_edit_profile"
	FreelancerSettings    ID = "freelancer_settings"
)

// Client-zone screens.
const (
	ClientHome        ID = "client_home"
	Search            ID = "search"
	SearchResults     ID = "search_results"
	ServiceDetail     ID = "service_detail"
	FreelancerPublic  ID = "freelancer_public_profile"
	JobRequestForm    ID = "job_request_form"
	MyJobs            ID = "my_jobs"
	JobDetails        ID = "job_details"
	ClientMessages    ID = "client_messages"
	ClientProfile     ID = "client_profile"
	ClientEditProfile ID = "client_edit_profile"
	ClientSettings    ID = "client_settings"
)

// Shared screens rendered without a bottom bar.
const (
	Chat            ID = "chat"
	Checkout        ID = "checkout"
	Payment         ID = "payment"
	Notifications   ID = "notifications"
	Help            ID = "help"
	About           ID = "about"
	AccountDeletion ID = "account_deletion"
)

// Zone names which bottom-navigation bar, if any, overlays a screen.
type Zone int

const (
	ZoneNone Zone = iota
	ZoneFreelancer
	ZoneClient
)

var freelancerZone = map[ID]struct{}{
	FreelancerHome:        {},
	FreelancerDashboard:   {},
	MyListings:            {},
	CreateListing:         {},
	EditListing:           {},
	JobRequests:           {},
	FreelancerEarnings:    {},
	FreelancerMessages:    {},
	FreelancerProfile:     {},
	FreelancerEditProfile: {},
	FreelancerSettings:    {},
}

var clientZone = map[ID]struct{}{
	ClientHome:        {},
	Search:            {},
	SearchResults:     {},
	ServiceDetail:     {},
	FreelancerPublic:  {},
	JobRequestForm:    {},
	MyJobs:            {},
	JobDetails:        {},
	ClientMessages:    {},
	ClientProfile:     {},
	ClientEditProfile: {},
	ClientSettings:    {},
}

// ZoneOf reports which zone a screen belongs to. Screens outside both zones
// (auth flows, chat, checkout-style flows) report ZoneNone.
func ZoneOf(id ID) Zone {
	if _, ok := freelancerZone[id]; ok {
		return ZoneFreelancer
	}
	if _, ok := clientZone[id]; ok {
		return ZoneClient
	}
	return ZoneNone
}

// ParamKind names the one semantic payload a screen may require.
type ParamKind int

const (
	ParamNone ParamKind = iota
	ParamListing
	ParamFreelancer
	ParamJob
	ParamConversation
	ParamSearch
)

var requiredParams = map[ID]ParamKind{
	ServiceDetail:    ParamListing,
	EditListing:      ParamListing,
	FreelancerPublic: ParamFreelancer,
	JobRequestForm:   ParamFreelancer,
	JobDetails:       ParamJob,
	Chat:             ParamConversation,
	SearchResults:    ParamSearch,
}

// RequiredParam reports which param slot must be populated before a screen
// may be entered. Most screens require none.
func RequiredParam(id ID) ParamKind {
	return requiredParams[id]
}

// FallbackFor is the safe screen to land on when a screen requiring a param
// is entered with its slot empty. Parameter presence is a runtime invariant,
// not a type-level one, so every guarded screen has a fallback.
func FallbackFor(id ID) ID {
	switch ZoneOf(id) {
	case ZoneFreelancer:
		return FreelancerHome
	case ZoneClient:
		return ClientHome
	default:
		return Onboarding
	}
}
