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
package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stephenlclarke/fixwire/fix"
)

// handleVersion prints version information. Returns true if handled.
func handleVersion(opts CLIOptions, out io.Writer) bool {
	if !opts.ShowVersion {
		return false
	}

	fmt.Fprintf(out, "fixwire %s (branch:%s, commit:%s)\n", Version, Branch, Sha)

	return true
}

// handleBuild composes a message from positional VERSION MSGTYPE tag=value
// arguments and prints its display form plus the computed frame values.
// Returns true if the -build flag was given.
func handleBuild(opts CLIOptions, rest []string, out, errOut io.Writer) (int, bool) {
	if !opts.Build {
		return 0, false
	}

	if len(rest) < 2 {
		fmt.Fprintln(errOut, "usage: fixwire -build VERSION MSGTYPE [tag=value ...]")
		return 1, true
	}

	msg := fix.New(rest[0], rest[1])

	for _, pair := range rest[2:] {
		tagStr, value, ok := strings.Cut(pair, "=")
		if !ok {
			fmt.Fprintf(errOut, "not a tag=value pair: %q\n", pair)
			return 1, true
		}

		tag, err := strconv.Atoi(tagStr)
		if err != nil {
			fmt.Fprintf(errOut, "invalid tag: %q\n", tagStr)
			return 1, true
		}

		msg.AddField(tag, value)
	}

	fmt.Fprintln(out, msg.String())

	return 0, true
}

// runHandlers invokes the "-version" and "-build" handlers. The second
// return reports whether any handler took the run.
func runHandlers(opts CLIOptions, rest []string, out, errOut io.Writer) (int, bool) {
	if handleVersion(opts, out) {
		return 0, true
	}

	if code, handled := handleBuild(opts, rest, out, errOut); handled {
		return code, true
	}

	return 0, false
}
