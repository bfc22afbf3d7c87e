package session

import "net/http"

// FakeStore is an in-memory Store for tests. It ignores the request and
// response entirely and just tracks the last token written.
type FakeStore struct {
	TokenValue string
}

func (f *FakeStore) SetToken(_ http.ResponseWriter, token string, _ int) {
	f.TokenValue = token
}

func (f *FakeStore) Token(_ *http.Request) (string, bool) {
	return f.TokenValue, f.TokenValue != ""
}

func (f *FakeStore) ClearToken(_ http.ResponseWriter) {
	f.TokenValue = ""
}

func (f *FakeStore) HasValidSession(_ *http.Request) bool {
	return f.TokenValue != ""
}
