// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import (
	"crypto"
	"crypto/sha256"
	"fmt"
	"hash"
)

// Config selects the hash engine of an RSA-FDH-VRF instance.
type Config struct {
	// Name identifies the suite, e.g. "sha256".
	Name string
	// Hasher returns a new hash.Hash on every call. The digest length of
	// the returned hash is hLen, the length of the VRF output.
	Hasher func() hash.Hash
}

// New creates a VRF that hashes with cfg.Hasher, or SHA-256 if it is nil.
func New(cfg *Config) VRF {
	v := &vrf{}
	if cfg != nil {
		v.cfg = *cfg
	}
	if v.cfg.Hasher == nil {
		v.cfg.Hasher = sha256.New
		if v.cfg.Name == "" {
			v.cfg.Name = "sha256"
		}
	}
	return v
}

// NewWithHash creates a VRF that hashes with h.
func NewWithHash(h crypto.Hash) (VRF, error) {
	if !h.Available() {
		return nil, fmt.Errorf("%w: %v", ErrHashUnavailable, h)
	}
	return New(&Config{Name: h.String(), Hasher: h.New}), nil
}
