package auth

import "github.com/messagely/messagely/internal/common"

// Guard checks bearer tokens in front of protected operations. It holds the
// process-wide signing secret, read-only after construction, and never
// mutates any state of its own.
//
// Every failure is reported as common.ErrorUnauthorized: whether the token
// was missing, garbled, signed with the wrong key, or minted for a different
// user is deliberately not distinguishable by the caller.
type Guard struct {
	secret []byte
}

func NewGuard(secretKey string) *Guard {
	return &Guard{secret: []byte(secretKey)}
}

// EnsureAuthenticated verifies the token and returns the identity it carries.
func (g *Guard) EnsureAuthenticated(token string) (string, error) {
	if token == "" {
		return "", common.ErrorUnauthorized
	}

	username, err := GetUsernameFromToken(token, g.secret)
	if err != nil {
		return "", common.ErrorUnauthorized
	}

	return username, nil
}

// EnsureSelf verifies the token and additionally requires the identity it
// carries to equal targetUsername exactly (case-sensitive).
func (g *Guard) EnsureSelf(token, targetUsername string) (string, error) {
	username, err := g.EnsureAuthenticated(token)
	if err != nil {
		return "", err
	}

	if username != targetUsername {
		return "", common.ErrorUnauthorized
	}

	return username, nil
}
