package ssh

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// IsPublicKey reports whether key is a syntactically valid SSH public key:
// exactly three whitespace-separated tokens (type, base64 blob, comment),
// a key type from the approved set, and a blob that decodes as base64.
func IsPublicKey(key string) bool {
	fields := strings.Fields(key)
	if len(fields) != 3 {
		return false
	}
	if _, err := base64.StdEncoding.DecodeString(fields[1]); err != nil {
		return false
	}
	return isApprovedKeyType(fields[0])
}

// ValidatePublicKey is the dynamic-input variant of IsPublicKey. A non-string
// value fails with ErrInvalidInputType, marking a programming error at the
// call site rather than bad key data.
func ValidatePublicKey(key any) (bool, error) {
	s, ok := key.(string)
	if !ok {
		return false, fmt.Errorf("%w, received %T", ErrInvalidInputType, key)
	}
	return IsPublicKey(s), nil
}

func isApprovedKeyType(keyType string) bool {
	switch keyType {
	case "ecdsa-sha2-nistp256", "ssh-dss", "ssh-rsa", "ssh-ed25519":
		return true
	default:
		return false
	}
}
