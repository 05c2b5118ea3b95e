// SPDX-License-Identifier: MIT

package scenario

import "strconv"

// Labels names vertices by index. A missing or empty label falls back to the
// decimal index.
type Labels []string

// Name returns the display name of vertex i.
func (l Labels) Name(i int) string {
	if i >= 0 && i < len(l) && l[i] != "" {
		return l[i]
	}

	return strconv.Itoa(i)
}

// Index resolves name to a vertex: first as a label, then as a decimal index
// below n. The second result is false if neither applies.
func (l Labels) Index(name string, n int) (int, bool) {
	for i, s := range l {
		if s == name {
			return i, true
		}
	}
	if i, err := strconv.Atoi(name); err == nil && i >= 0 && i < n {
		return i, true
	}

	return 0, false
}

// Letters returns n labels "A", "B", … "Z", "AA", "AB", … in spreadsheet order.
func Letters(n int) Labels {
	out := make(Labels, n)
	for i := range out {
		var buf []byte
		for k := i + 1; k > 0; k = (k - 1) / 26 {
			buf = append([]byte{byte('A' + (k-1)%26)}, buf...)
		}
		out[i] = string(buf)
	}

	return out
}
