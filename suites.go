// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"sort"

	simd "github.com/spacemeshos/sha256-simd"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var (
	// RsaFdhSha256 is RSA-FDH-VRF with SHA-256.
	RsaFdhSha256 = New(&Config{Name: "sha256", Hasher: sha256.New})
	// RsaFdhSha384 is RSA-FDH-VRF with SHA-384.
	RsaFdhSha384 = New(&Config{Name: "sha384", Hasher: sha512.New384})
	// RsaFdhSha512 is RSA-FDH-VRF with SHA-512.
	RsaFdhSha512 = New(&Config{Name: "sha512", Hasher: sha512.New})
	// RsaFdhSha256Simd produces the same outputs as RsaFdhSha256, hashing
	// with SIMD instructions where the CPU has them.
	RsaFdhSha256Simd = New(&Config{Name: "sha256-simd", Hasher: simd.New})
	// RsaFdhSha3_256 is RSA-FDH-VRF with SHA3-256.
	RsaFdhSha3_256 = New(&Config{Name: "sha3-256", Hasher: sha3.New256})
	// RsaFdhBlake2b256 is RSA-FDH-VRF with unkeyed BLAKE2b-256.
	RsaFdhBlake2b256 = New(&Config{Name: "blake2b-256", Hasher: newBlake2b256})
)

var suites = map[string]VRF{
	"sha256":      RsaFdhSha256,
	"sha384":      RsaFdhSha384,
	"sha512":      RsaFdhSha512,
	"sha256-simd": RsaFdhSha256Simd,
	"sha3-256":    RsaFdhSha3_256,
	"blake2b-256": RsaFdhBlake2b256,
}

// Suite returns the preconfigured VRF registered under name.
func Suite(name string) (VRF, error) {
	v, ok := suites[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
	}
	return v, nil
}

// Suites returns the names accepted by Suite, sorted.
func Suites() []string {
	names := make([]string, 0, len(suites))
	for name := range suites {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newBlake2b256() hash.Hash {
	// only fails for keys longer than 64 bytes
	h, _ := blake2b.New256(nil)
	return h
}
