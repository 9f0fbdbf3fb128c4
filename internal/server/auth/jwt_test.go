package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/messagely/messagely/internal/common"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	username := "alice"

	tok, err := GenerateToken(username, secret, 0)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	got, err := GetUsernameFromToken(tok, secret)
	if err != nil {
		t.Fatalf("GetUsernameFromToken error: %v", err)
	}
	if got != username {
		t.Fatalf("username mismatch: got %q want %q", got, username)
	}
}

func TestGenerateToken_NoExpiryByDefault(t *testing.T) {
	t.Parallel()

	secret := []byte("k")

	tok, err := GenerateToken("alice", secret, 0)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	// A token without an expiry claim stays valid indefinitely.
	time.Sleep(10 * time.Millisecond)
	if _, err := GetUsernameFromToken(tok, secret); err != nil {
		t.Fatalf("expected token to stay valid, got %v", err)
	}
}

func TestGetUsernameFromToken_Expired(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("alice", []byte("k"), -1*time.Second)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUsernameFromToken(tok, []byte("k"))
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken for expired token, got %v", err)
	}
}

func TestGetUsernameFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("bob", []byte("right-secret"), 0)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	_, err = GetUsernameFromToken(tok, []byte("wrong-secret"))
	if err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken, got %v", err)
	}
}

func TestGetUsernameFromToken_MalformedString(t *testing.T) {
	t.Parallel()

	for _, tok := range []string{"", "not.a.jwt", "garbage"} {
		if _, err := GetUsernameFromToken(tok, []byte("k")); err != common.ErrInvalidToken {
			t.Fatalf("token %q: expected common.ErrInvalidToken, got %v", tok, err)
		}
	}
}

func TestGetUsernameFromToken_TamperedPayload(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("alice", secret, 0)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	parts := strings.Split(tok, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", tok)
	}

	// Flip a byte in the payload segment; the signature no longer matches.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := GetUsernameFromToken(tampered, secret); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken for tampered payload, got %v", err)
	}
}

func TestGetUsernameFromToken_EmptyUsernameClaim(t *testing.T) {
	t.Parallel()

	secret := []byte("k")
	tok, err := GenerateToken("", secret, 0)
	if err != nil {
		t.Fatalf("GenerateToken error: %v", err)
	}

	if _, err := GetUsernameFromToken(tok, secret); err != common.ErrInvalidToken {
		t.Fatalf("expected common.ErrInvalidToken for empty username, got %v", err)
	}
}
