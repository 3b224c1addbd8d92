/*
fixwire — FIX protocol wire-format tools
Copyright (C) 2025 Steve Clarke <stephenlclarke@mac.com>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.

In accordance with section 13 of the AGPL, if you modify this program,
your modified version must prominently offer all users interacting with it
remotely through a computer network an opportunity to receive the source
code of your version.
*/
package fix

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Field is one body entry: a tag and its raw value bytes. Values are opaque
// here; interpreting them is a dictionary concern and lives elsewhere.
type Field struct {
	Tag   []byte
	Value []byte
}

// Message models one FIX message: the BeginString and MsgType header values
// plus an ordered body. Body length and checksum are never stored; encode
// synthesises them and decode consumes them. A Message is a plain value with
// no shared state, so copies may be used concurrently without locking.
type Message struct {
	version []byte
	msgType []byte
	fields  []Field
}

// New returns an empty-body message for the given BeginString and MsgType.
func New(version, msgType string) *Message {
	return &Message{
		version: []byte(version),
		msgType: []byte(msgType),
	}
}

// AddField appends one body field. Fields keep call order, and repeated tags
// are kept as separate entries — required to represent repeating groups.
func (m *Message) AddField(tag int, value string) {
	m.AddFieldBytes([]byte(strconv.Itoa(tag)), []byte(value))
}

// AddFieldBytes is AddField for callers that already hold wire bytes.
func (m *Message) AddFieldBytes(tag, value []byte) {
	m.fields = append(m.fields, Field{Tag: tag, Value: value})
}

// Decode materialises a Message from one complete framed payload. Tags 8, 9,
// 10 and 35 are consumed into the frame; everything else becomes a body
// field in the splitter's first-seen tag order, with per-tag value order
// preserved exactly. With validateChecksum set, tag 10 must be present and
// must equal the checksum recomputed from the decoded fields.
func Decode(payload []byte, validateChecksum bool) (*Message, error) {
	tags := SplitTags(payload)

	version, ok := tags.Get(TagBeginString)
	if !ok {
		return nil, ErrVersionTagMissing
	}

	msgType, ok := tags.Get(TagMsgType)
	if !ok {
		return nil, ErrMessageTypeTagMissing
	}

	wireSum, haveSum := tags.Get(TagCheckSum)
	if validateChecksum && !haveSum {
		return nil, ErrChecksumTagMissing
	}

	m := &Message{version: version, msgType: msgType}

	for _, tag := range tags.Tags() {
		if isSessionTag(tag) {
			continue
		}
		for _, value := range tags.All(tag) {
			m.AddFieldBytes([]byte(tag), value)
		}
	}

	if validateChecksum {
		if want := Checksum(m.checksumInput()); want != string(wireSum) {
			return nil, fmt.Errorf("%w: message has %s, computed %s", ErrChecksumMismatch, wireSum, want)
		}
	}

	return m, nil
}

// Bytes encodes the message as wire bytes: version chunk, body-length chunk,
// body (MsgType chunk then each field chunk in order), checksum chunk. Pure
// and repeatable; identical state always yields identical bytes.
func (m *Message) Bytes() []byte {
	out := m.checksumInput()
	return append(out, CompileChunk([]byte(TagCheckSum), []byte(Checksum(out)))...)
}

// String renders the encoded message with SOH shown as '|', for logs only.
func (m *Message) String() string {
	return DisplayString(m.Bytes())
}

// checksumInput returns everything the checksum covers: version chunk,
// body-length chunk and body, in wire order.
func (m *Message) checksumInput() []byte {
	body := m.compileBody()

	out := CompileChunk([]byte(TagBeginString), m.version)
	out = append(out, CompileChunk([]byte(TagBodyLength), []byte(strconv.Itoa(len(body))))...)
	out = append(out, body...)

	return out
}

func (m *Message) compileBody() []byte {
	body := CompileChunk([]byte(TagMsgType), m.msgType)

	for _, f := range m.fields {
		body = append(body, CompileChunk(f.Tag, f.Value)...)
	}

	return body
}

// Version returns the BeginString value, e.g. "FIX.4.4".
func (m *Message) Version() []byte {
	return m.version
}

// MsgType returns the message type value, e.g. "A" for Logon.
func (m *Message) MsgType() []byte {
	return m.msgType
}

// Fields returns the body fields in order. The slice is the message's own;
// callers must not mutate it.
func (m *Message) Fields() []Field {
	return m.fields
}

// Value returns the first body value recorded for tag.
func (m *Message) Value(tag string) ([]byte, bool) {
	key := []byte(tag)

	for _, f := range m.fields {
		if bytes.Equal(f.Tag, key) {
			return f.Value, true
		}
	}

	return nil, false
}

// Values returns every body value recorded for tag, in insertion order.
func (m *Message) Values(tag string) [][]byte {
	key := []byte(tag)

	var out [][]byte
	for _, f := range m.fields {
		if bytes.Equal(f.Tag, key) {
			out = append(out, f.Value)
		}
	}

	return out
}

// Text returns the first value for tag as text. The bool mirrors Value's
// presence flag. Non-UTF-8 bytes yield ErrInvalidEncoding rather than
// corrupt output.
func (m *Message) Text(tag string) (string, bool, error) {
	value, ok := m.Value(tag)
	if !ok {
		return "", false, nil
	}

	if !utf8.Valid(value) {
		return "", true, fmt.Errorf("%w: tag %s", ErrInvalidEncoding, tag)
	}

	return string(value), true, nil
}

// Texts returns every value for tag as text, failing on the first value
// that is not valid UTF-8.
func (m *Message) Texts(tag string) ([]string, error) {
	values := m.Values(tag)

	out := make([]string, 0, len(values))
	for _, value := range values {
		if !utf8.Valid(value) {
			return nil, fmt.Errorf("%w: tag %s", ErrInvalidEncoding, tag)
		}
		out = append(out, string(value))
	}

	return out, nil
}
