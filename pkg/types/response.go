package types

// SuccessEnvelope wraps every successful payload. Notification carries an
// informational signal the UI should surface (e.g. the "added to cart" alert).
type SuccessEnvelope struct {
	Data         any           `json:"data"`
	Notification *Notification `json:"notification,omitempty"`
}

type Notification struct {
	Kind    string `json:"kind"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}
