// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import (
	"fmt"
	"math/big"
)

var (
	oneString = []byte{0x01} // I2OSP(1, 1)
	twoString = []byte{0x02} // I2OSP(2, 1)
)

type core struct {
	*Config
}

// HashLen returns hLen, the digest length of the hash engine.
func (c *core) HashLen() int {
	return c.Hasher().Size()
}

func (c *core) Hash(data ...[]byte) []byte {
	h := c.Hasher()
	for _, e := range data {
		h.Write(e)
	}
	return h.Sum(nil)
}

func (c *core) MGF1(seed []byte, maskLen int) ([]byte, error) {
	return MGF1(c.Hasher, seed, maskLen)
}

// EncodeMessage computes
//
//	EM = MGF1(one_string || I2OSP(k, 4) || I2OSP(n, k) || alpha_string, k - 1)
//
// which both proving and verification derive the message representative from.
// https://tools.ietf.org/html/draft-irtf-cfrg-vrf-06#section-4.1
func (c *core) EncodeMessage(n *big.Int, alpha []byte) ([]byte, error) {
	k := octetLen(n)

	kString, err := I2OSP(big.NewInt(int64(k)), 4)
	if err != nil {
		return nil, fmt.Errorf("encode k: %w", err)
	}
	nString, err := I2OSP(n, k)
	if err != nil {
		return nil, fmt.Errorf("encode n: %w", err)
	}

	return c.MGF1(concat(oneString, kString, nString, alpha), k-1)
}

// ProofToHash https://tools.ietf.org/html/draft-irtf-cfrg-vrf-06#section-4.2
func (c *core) ProofToHash(pi []byte) []byte {
	return c.Hash(twoString, pi)
}
