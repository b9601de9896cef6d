package commiterrors

import (
	"strings"

	"github.com/pkg/errors"
)

// Generation (E) Errors
var (
	ErrEntropyUnavailable = errors.New("E1|EntropyUnavailable: The entropy source could not supply a 32-byte nonce.")
)

// Configuration (C) Errors
var (
	ErrInvalidAccount    = errors.New("C1|InvalidAccount: Account identifier is not 20 bytes of hex.")
	ErrInvalidChoice     = errors.New("C2|InvalidChoice: Choice is not an unsigned 8-bit value or a known name.")
	ErrInvalidNonce      = errors.New("C3|InvalidNonce: Nonce is not 32 bytes of hex.")
	ErrInvalidCommitHash = errors.New("C4|InvalidCommitHash: Commit hash is not 32 bytes of hex.")
	ErrInvalidDevAccount = errors.New("C5|InvalidDevAccount: Dev account index must be between 0 and 9.")
)

// Reveal (V) Errors
var (
	ErrCommitMismatch = errors.New("V1|CommitMismatch: Revealed choice and nonce do not reproduce the commit hash.")
)

// GetErrorName extracts the error name, e.g. "EntropyUnavailable", from a
// coded error or anything wrapping one.
func GetErrorName(err error) string {
	if err == nil {
		return "No Error"
	}
	errStr := errors.Cause(err).Error()
	if !strings.Contains(errStr, "|") || !strings.Contains(errStr, ":") {
		return errStr
	}
	parts := strings.SplitN(errStr, "|", 2)
	nameParts := strings.SplitN(parts[1], ":", 2)
	return strings.TrimSpace(nameParts[0])
}

// GetErrorCode extracts the error code from the error message.
func GetErrorCode(err error) string {
	if err == nil {
		return ""
	}
	errStr := errors.Cause(err).Error()
	if !strings.Contains(errStr, "|") {
		return ""
	}
	parts := strings.SplitN(errStr, "|", 2)
	return strings.TrimSpace(parts[0])
}

// GetErrorCodeWithName returns the error code and name in the format "Code_ErrorName".
func GetErrorCodeWithName(err error) string {
	code := GetErrorCode(err)
	name := GetErrorName(err)
	if code == "" || name == "" {
		return ""
	}
	return code + "_" + name
}
