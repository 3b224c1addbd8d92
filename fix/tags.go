// tags.go
package fix

// Wire bytes of the tag=value encoding.
const (
	soh    byte = 0x01 // field terminator
	equals byte = 0x3d // tag/value separator
)

// Session tags that frame every message. These are synthesised on encode and
// consumed on decode; they never appear in a Message body.
const (
	TagBeginString = "8"
	TagBodyLength  = "9"
	TagCheckSum    = "10"
	TagMsgType     = "35"
)

// isSessionTag reports whether tag is one of the framing tags above.
func isSessionTag(tag string) bool {
	switch tag {
	case TagBeginString, TagBodyLength, TagCheckSum, TagMsgType:
		return true
	}
	return false
}
