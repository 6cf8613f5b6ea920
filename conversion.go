// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import (
	"fmt"
	"math/big"
)

// I2OSP converts a nonnegative integer to an octet string of length xLen.
// https://tools.ietf.org/html/rfc8017#section-4.1
func I2OSP(x *big.Int, xLen int) ([]byte, error) {
	if xLen < 1 {
		return nil, fmt.Errorf("i2osp: xLen %d: %w", xLen, ErrInvalidLength)
	}
	mag, err := magnitude(x)
	if err != nil {
		return nil, fmt.Errorf("i2osp: %w", err)
	}

	// 1. If x >= 256^xLen, output "integer too large" and stop.
	if len(mag) > xLen {
		return nil, fmt.Errorf("i2osp: %d octets needed, %d requested: %w", len(mag), xLen, ErrIntegerTooLarge)
	}

	// 2. ~ 3. big endian, left padded with zeros
	out := make([]byte, xLen)
	copy(out[xLen-len(mag):], mag)
	return out, nil
}

// OS2IP converts an octet string to a nonnegative integer.
// The empty string converts to 0.
// https://tools.ietf.org/html/rfc8017#section-4.2
func OS2IP(X []byte) *big.Int {
	return new(big.Int).SetBytes(X)
}

// magnitude returns the minimal unsigned big-endian encoding of x.
// It never carries a sign octet, so its length is the number of octets x
// really needs. Zero encodes to the empty slice.
func magnitude(x *big.Int) ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	if x.Sign() < 0 {
		return nil, ErrNegativeInteger
	}
	return x.Bytes(), nil
}

// octetLen returns k, the length in octets of the modulus n.
func octetLen(n *big.Int) int {
	return (n.BitLen() + 7) / 8
}
