package httpapi

import (
	"net/http"

	"github.com/messagely/messagely/internal/common"
)

// bodyToken is embedded in request DTOs to accept the token as a body field.
type bodyToken struct {
	Token string `json:"_token"`
}

// tokenOf resolves the bearer token for a request: the decoded body field
// wins, the _token query parameter is the fallback. Guards treat an empty
// result the same as a malformed one.
func tokenOf(r *http.Request, body string) string {
	if body != "" {
		return body
	}
	return r.URL.Query().Get(common.TokenField)
}
