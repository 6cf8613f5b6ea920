// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import (
	"fmt"
	"hash"
	"math/big"
)

// MGF1 is the mask generation function based on a hash function.
// A new hash.Hash is taken from hasher for every call, so concurrent calls
// never share digest state.
// https://tools.ietf.org/html/rfc8017#appendix-B.2.1
func MGF1(hasher func() hash.Hash, seed []byte, maskLen int) ([]byte, error) {
	if maskLen < 0 {
		return nil, fmt.Errorf("mgf1: maskLen %d: %w", maskLen, ErrInvalidLength)
	}
	h := hasher()
	hLen := h.Size()
	if hLen < 1 {
		return nil, fmt.Errorf("mgf1: hash size %d: %w", hLen, ErrInvalidLength)
	}

	// 1. If maskLen > 2^32 hLen, output "mask too long" and stop.
	if uint64(maskLen) > uint64(hLen)<<32 {
		return nil, fmt.Errorf("mgf1: maskLen %d: %w", maskLen, ErrMaskTooLong)
	}

	// 2. Let T be the empty octet string.
	blocks := (maskLen + hLen - 1) / hLen
	t := make([]byte, 0, blocks*hLen)

	// 3. For counter from 0 to ceil(maskLen / hLen) - 1:
	//    C = I2OSP(counter, 4), T = T || Hash(mgfSeed || C)
	counter := new(big.Int)
	for i := 0; i < blocks; i++ {
		c, err := I2OSP(counter.SetInt64(int64(i)), 4)
		if err != nil {
			return nil, fmt.Errorf("mgf1: counter %d: %w", i, err)
		}
		h.Reset()
		h.Write(seed)
		h.Write(c)
		t = h.Sum(t)
	}

	// 4. Output the leading maskLen octets of T.
	return t[:maskLen], nil
}
