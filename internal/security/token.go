// Package security keeps API credentials out of logs and status lines.
package security

import "fmt"

const (
	minTokenLengthForPartialMask = 8
	maskShowChars                = 4
	maskEmpty                    = "[empty]"
	maskRedacted                 = "[redacted]"
)

// SecureToken wraps the API credential read from GH_TOKEN or GITLAB_TOKEN.
// Every fmt verb prints a masked form, so a Config can be logged as a whole.
//
//	token := NewSecureToken("ghp_abcdefghijklmnopqrstuvwxyz")
//	fmt.Printf("%v", token) // [token:****wxyz]
type SecureToken struct {
	value string
}

// NewSecureToken creates a new SecureToken from a string value.
func NewSecureToken(token string) SecureToken {
	return SecureToken{value: token}
}

// String returns the masked token.
func (t SecureToken) String() string {
	if t.value == "" {
		return maskEmpty
	}
	if len(t.value) < minTokenLengthForPartialMask {
		return maskRedacted
	}
	return fmt.Sprintf("[token:****%s]", t.value[len(t.value)-maskShowChars:])
}

// GoString masks %#v output.
func (t SecureToken) GoString() string {
	return t.String()
}

// Value returns the raw credential. Only pass it to an HTTP client.
func (t SecureToken) Value() string {
	return t.value
}

// IsEmpty reports whether no credential was supplied.
func (t SecureToken) IsEmpty() bool {
	return t.value == ""
}
