// errors.go
package fix

import "errors"

// Decode and accessor failures. Callers match with errors.Is; retry or
// resend policy belongs to the session layer, never here.
var (
	ErrVersionTagMissing     = errors.New("fix: version tag (8) not found in source")
	ErrMessageTypeTagMissing = errors.New("fix: message type tag (35) not found in source")
	ErrChecksumTagMissing    = errors.New("fix: checksum tag (10) not found in source")
	ErrChecksumMismatch      = errors.New("fix: checksum mismatch")
	ErrInvalidEncoding       = errors.New("fix: value is not valid UTF-8")
)
