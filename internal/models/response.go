package models

// Response is the envelope every endpoint answers with.
// Response holds the payload on success and a human-readable
// message on failure; internal error details never appear here.
type Response struct {
	Success  bool   `json:"success"`
	Response any    `json:"response"`
	Message  string `json:"message,omitempty"`
}

// OK wraps a payload in a successful envelope.
func OK(payload any) Response {
	return Response{Success: true, Response: payload}
}

// OKWithMessage wraps a payload in a successful envelope with a message.
func OKWithMessage(payload any, message string) Response {
	return Response{Success: true, Response: payload, Message: message}
}

// Fail wraps a failure message in an unsuccessful envelope.
func Fail(message string) Response {
	return Response{Success: false, Response: message}
}
