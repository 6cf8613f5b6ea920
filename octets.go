// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import "crypto/subtle"

// concat returns a fresh buffer holding parts in order.
func concat(parts ...[]byte) []byte {
	var size int
	for _, p := range parts {
		size += len(p)
	}
	out := make([]byte, 0, size)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// equal reports whether a and b hold the same octets. The running time
// depends only on the lengths.
func equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
