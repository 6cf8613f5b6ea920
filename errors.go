// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import "errors"

var (
	// ErrInvalidLength is returned when a requested output length is not positive.
	ErrInvalidLength = errors.New("invalid length")
	// ErrIntegerTooLarge is returned when an integer does not fit in the requested number of octets.
	ErrIntegerTooLarge = errors.New("integer too large")
	// ErrNegativeInteger is returned when a negative integer is passed where a nonnegative one is required.
	ErrNegativeInteger = errors.New("integer is negative")
	// ErrRepresentativeOutOfRange is returned when a message or signature representative is not in [0, n-1].
	ErrRepresentativeOutOfRange = errors.New("representative out of range")
	// ErrMaskTooLong is returned when MGF1 is asked for more than 2^32 hash blocks.
	ErrMaskTooLong = errors.New("mask too long")
	// ErrInvalidKey is returned for RSA key material that cannot be used.
	ErrInvalidKey = errors.New("invalid rsa key")
	// ErrInvalidProof is returned when a proof does not verify.
	ErrInvalidProof = errors.New("invalid proof")
	// ErrHashUnavailable is returned when a crypto.Hash is not linked into the binary.
	ErrHashUnavailable = errors.New("hash function unavailable")
	// ErrUnknownSuite is returned by Suite for a name that is not registered.
	ErrUnknownSuite = errors.New("unknown suite")
)
