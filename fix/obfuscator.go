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
	"fmt"
	"maps"
	"strconv"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// Obfuscator replaces values of sensitive FIX tags with stable aliases so
// that logs can be shared without leaking identities or accounts.
// It is safe for concurrent use.
type Obfuscator struct {
	enabled  bool              // global enable/disable flag
	tags     map[int]string    // tag -> alias prefix
	log      zerolog.Logger    // first-use events
	mu       sync.Mutex        // protects aliasMap and counter
	aliasMap map[string]string // "tag=value" -> alias
	counter  map[int]int       // per-tag, for zero-padded suffixes
}

// NewObfuscator constructs an Obfuscator over the given sensitive-tag map.
// If enabled is false, Enabled returns every line unchanged.
func NewObfuscator(tags map[int]string, enabled bool, log zerolog.Logger) *Obfuscator {
	cp := make(map[int]string, len(tags))
	maps.Copy(cp, tags)

	return &Obfuscator{
		enabled:  enabled,
		tags:     cp,
		log:      log,
		aliasMap: make(map[string]string),
		counter:  make(map[int]int),
	}
}

// Enabled returns the original line when obfuscation is disabled, otherwise
// the obfuscated version.
func (o *Obfuscator) Enabled(line string) string {
	if !o.enabled {
		return line
	}
	return o.ObfuscateLine(line)
}

// ObfuscateLine rewrites one SOH-delimited line, replacing the value of
// every sensitive tag with its alias. The first occurrence of each distinct
// tag=value pair mints a new alias and logs the mapping.
func (o *Obfuscator) ObfuscateLine(line string) string {
	fields := strings.Split(line, string(soh))

	for i, f := range fields {
		tagStr, val, ok := splitOnce(f)
		if !ok {
			continue
		}

		tagNum, err := strconv.Atoi(tagStr)
		if err != nil {
			continue
		}

		name, sensitive := o.tags[tagNum]
		if !sensitive {
			continue
		}

		fields[i] = tagStr + "=" + o.alias(tagNum, name, tagStr, val)
	}

	return strings.Join(fields, string(soh))
}

func (o *Obfuscator) alias(tagNum int, name, tagStr, val string) string {
	key := tagStr + "=" + val

	o.mu.Lock()
	defer o.mu.Unlock()

	alias, exists := o.aliasMap[key]
	if !exists {
		o.counter[tagNum]++
		alias = fmt.Sprintf("%s%04d", name, o.counter[tagNum])
		o.aliasMap[key] = alias

		o.log.Debug().
			Int("tag", tagNum).
			Str("name", name).
			Str("value", val).
			Str("alias", alias).
			Msg("first use of sensitive value")
	}

	return alias
}

// splitOnce splits a fragment at its first '=' or SOH. Empty left or right
// sides are accepted; fragments with neither byte are rejected.
func splitOnce(s string) (left, right string, ok bool) {
	idx := strings.IndexAny(s, "=\x01")
	if idx < 0 {
		return "", "", false
	}
	return s[:idx], s[idx+1:], true
}
