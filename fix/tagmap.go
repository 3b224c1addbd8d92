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

// TagMap groups the fields of one framed message by tag. Values for a tag
// keep their wire order, and distinct tags keep first-seen order, so a
// message rebuilt from a TagMap lays its tags out the way the wire did.
type TagMap struct {
	order  []string
	values map[string][][]byte
}

// SplitTags scans a complete framed message into a TagMap. The scan walks
// payload once, accumulating tag bytes until '=' and value bytes until SOH.
// A trailing field not closed by SOH is dropped; this layer never fails.
// Missing required tags are the caller's problem, not the splitter's.
func SplitTags(payload []byte) *TagMap {
	tm := &TagMap{values: make(map[string][][]byte)}

	var key, value []byte
	pastSeparator := false

	for _, b := range payload {
		switch {
		case b == soh:
			if pastSeparator && len(key) > 0 {
				tm.add(string(key), value)
			}
			key, value = nil, nil
			pastSeparator = false
		case b == equals && !pastSeparator:
			pastSeparator = true
		case pastSeparator:
			value = append(value, b)
		default:
			key = append(key, b)
		}
	}

	return tm
}

func (tm *TagMap) add(tag string, value []byte) {
	if _, seen := tm.values[tag]; !seen {
		tm.order = append(tm.order, tag)
	}
	tm.values[tag] = append(tm.values[tag], value)
}

// Get returns the first value recorded for tag.
func (tm *TagMap) Get(tag string) ([]byte, bool) {
	vs, ok := tm.values[tag]
	if !ok {
		return nil, false
	}
	return vs[0], true
}

// All returns every value recorded for tag, in wire order.
func (tm *TagMap) All(tag string) [][]byte {
	return tm.values[tag]
}

// Has reports whether tag was seen at all.
func (tm *TagMap) Has(tag string) bool {
	_, ok := tm.values[tag]
	return ok
}

// Tags returns the distinct tags in first-seen order.
func (tm *TagMap) Tags() []string {
	return tm.order
}

// Len returns the number of distinct tags.
func (tm *TagMap) Len() int {
	return len(tm.order)
}
