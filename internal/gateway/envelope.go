package gateway

// Messages surfaced to the user when the failure did not come with one.
const (
	MsgNotAuthenticated = "not authenticated"
	MsgConnectivity     = "could not reach the HistoryCar API"
)

// Envelope is the uniform result of every gateway call. Page controllers
// depend on this contract only and never see raw transport status codes.
type Envelope[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func failure[T any](message, code string) Envelope[T] {
	return Envelope[T]{Success: false, Message: message, Code: code}
}
