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

// CompileChunk encodes one tag=value pair as wire bytes: the tag, the '='
// separator, the value, then the SOH terminator. Both the encoder and the
// checksum depend on this output being byte-exact.
func CompileChunk(tag, value []byte) []byte {
	out := make([]byte, 0, len(tag)+len(value)+2)

	out = append(out, tag...)
	out = append(out, equals)
	out = append(out, value...)
	out = append(out, soh)

	return out
}

// DisplayString renders encoded message bytes for logs, with each SOH shown
// as '|'. Never valid as wire output.
func DisplayString(data []byte) string {
	out := make([]byte, len(data))

	for i, b := range data {
		if b == soh {
			out[i] = '|'
		} else {
			out[i] = b
		}
	}

	return string(out)
}
