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
	"strings"
	"testing"

	"github.com/stephenlclarke/fixwire/fix"
)

func logonMessage() string {
	m := fix.New("FIX.4.4", "A")
	m.AddField(34, "1092")
	m.AddField(49, "TESTBUY1")
	m.AddField(108, "60")
	return string(m.Bytes())
}

func TestVerifyCleanMessage(t *testing.T) {
	if problems := Verify(logonMessage()); len(problems) != 0 {
		t.Errorf("Expected no problems for a well-formed message, got %v", problems)
	}
}

func TestVerifyChecksumMismatch(t *testing.T) {
	msg := strings.Replace(logonMessage(), "10=", "10=9", 1) // corrupt checksum

	problems := Verify(msg)
	if len(problems) == 0 {
		t.Fatal("Expected a checksum problem")
	}
	if !strings.Contains(strings.Join(problems, "\n"), "checksum mismatch") {
		t.Errorf("Expected checksum mismatch in %v", problems)
	}
}

func TestVerifyMissingVersion(t *testing.T) {
	msg := "9=5\x0135=A\x0110=123\x01"

	problems := Verify(msg)
	if len(problems) == 0 || !strings.Contains(problems[0], "version tag") {
		t.Errorf("Expected version tag problem, got %v", problems)
	}
}

func TestVerifyBodyLengthMismatch(t *testing.T) {
	// Declared length 99 does not match the actual 32-byte body
	msg := strings.Replace(logonMessage(), "9=32", "9=99", 1)

	problems := Verify(msg)
	found := false
	for _, p := range problems {
		if strings.Contains(p, "body length mismatch") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected body length mismatch in %v", problems)
	}
}

func TestVerifyMissingBodyLengthTag(t *testing.T) {
	msg := "8=FIX.4.4\x0135=A\x0110=085\x01"

	problems := Verify(msg)
	found := false
	for _, p := range problems {
		if strings.Contains(p, "body length tag") {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected missing body length report in %v", problems)
	}
}
