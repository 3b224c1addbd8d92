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
package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/stephenlclarke/fixwire/fix"
)

const soh = "\x01"

// Verify runs the structural checks on one framed message and returns a
// human-readable problem list. Structural means tag presence, checksum and
// body length only; what the values mean is not this tool's business.
func Verify(msg string) []string {
	var problems []string

	if _, err := fix.Decode([]byte(msg), true); err != nil {
		problems = append(problems, err.Error())
	}

	if p, ok := bodyLengthProblem(msg); ok {
		problems = append(problems, p)
	}

	return problems
}

// bodyLengthProblem compares the declared tag-9 value against the byte count
// of the body: everything from the MsgType chunk up to and including the SOH
// that precedes the checksum chunk.
func bodyLengthProblem(msg string) (string, bool) {
	declared, ok := fix.SplitTags([]byte(msg)).Get(fix.TagBodyLength)
	if !ok {
		return "body length tag (9) not found in source", true
	}

	start := strings.Index(msg, soh+"35=")
	end := strings.Index(msg, soh+"10=")
	if start == -1 || end == -1 {
		// Without both anchors there is no body to measure; the decode
		// checks above already cover the missing tags.
		return "", false
	}

	computed := end - start
	if strconv.Itoa(computed) != string(declared) {
		return fmt.Sprintf("body length mismatch: message has %s, computed %d", declared, computed), true
	}

	return "", false
}
