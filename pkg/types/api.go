package types

// NotifyRequest is the body of POST /notify.
type NotifyRequest struct {
	// Value broadcast to every current subscriber.
	// example: Hello
	Message string `json:"message" example:"Hello"`
}

// DeliveryFailure describes one subscriber that failed during a broadcast.
type DeliveryFailure struct {
	// Position of the subscriber in the broadcast snapshot.
	// example: 1
	Index int `json:"index" example:"1"`
	// Subscription id of the failing subscriber.
	// example: 6f1c9a7e-3f8e-4c3a-9a55-0a1f5b2c8d11
	SubscriptionID string `json:"subscription_id" example:"6f1c9a7e-3f8e-4c3a-9a55-0a1f5b2c8d11"`
	// Error reported by the subscriber.
	Error string `json:"error"`
}

// NotifyResponse is returned by POST /notify.
type NotifyResponse struct {
	// Number of subscribers the value was delivered to (including failures).
	// example: 3
	Subscribers int `json:"subscribers" example:"3"`
	// Subscribers that returned an error or panicked.
	Failures []DeliveryFailure `json:"failures"`
}

// EventsResponse is returned by GET /events.
type EventsResponse struct {
	// Most recent broadcast values, oldest first.
	Events []string `json:"events"`
}

// AgentResponse is returned by GET /agent and PUT /agent/state.
type AgentResponse struct {
	// Current mood.
	// example: happy
	State string `json:"state" example:"happy"`
	// Thought produced by the current mood.
	// example: I am happy 😃
	Thought string `json:"thought" example:"I am happy 😃"`
}

// ChangeStateRequest is the body of PUT /agent/state.
type ChangeStateRequest struct {
	// Target mood (happy or sad).
	// example: sad
	State string `json:"state" example:"sad"`
}

// HouseResponse is returned by the /house endpoints.
type HouseResponse struct {
	Electric ElectricStatus `json:"electric"`
	Plumbing PlumbingStatus `json:"plumbing"`
}

type ElectricStatus struct {
	// example: true
	On bool `json:"on" example:"true"`
	// example: 100
	PowerW int `json:"power_w" example:"100"`
}

type PlumbingStatus struct {
	// example: true
	On bool `json:"on" example:"true"`
	// example: 300
	PressurePSI int `json:"pressure_psi" example:"300"`
}

// RangeResponse is returned by GET /range.
type RangeResponse struct {
	// example: [5,10,15]
	Values []int `json:"values"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
