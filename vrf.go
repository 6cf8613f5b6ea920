// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import (
	"crypto/rsa"
	"fmt"
)

// VRF is the RSA full-domain-hash verifiable random function.
// https://tools.ietf.org/html/draft-irtf-cfrg-vrf-06#section-4
type VRF interface {
	// Prove returns the proof pi for alpha. pi is always k octets long, where
	// k is the length of the modulus of sk.
	Prove(sk *rsa.PrivateKey, alpha []byte) (pi []byte, err error)

	// ProofToHash returns the VRF output beta of pi, hLen octets long.
	// It must only be run on a pi known to come from Prove; untrusted
	// proofs go through Verify or VerifyProof.
	ProofToHash(pi []byte) (beta []byte)

	// Verify reports whether pi is the proof of alpha under pk.
	// pi must be exactly k octets long, so a proof with its leading zero
	// octets stripped is rejected. It never panics, whatever pi holds.
	Verify(pk *rsa.PublicKey, alpha, pi []byte) bool

	// Evaluate runs Prove and ProofToHash in one go.
	Evaluate(sk *rsa.PrivateKey, alpha []byte) (beta, pi []byte, err error)

	// VerifyProof verifies pi like Verify does, and returns the VRF output of
	// a valid proof. Any rejection is reported as an error wrapping
	// ErrInvalidProof.
	VerifyProof(pk *rsa.PublicKey, alpha, pi []byte) (beta []byte, err error)

	// HashLen returns hLen, the length of beta.
	HashLen() int
}

type vrf struct {
	cfg Config
}

func (v *vrf) core() *core {
	return &core{Config: &v.cfg}
}

func (v *vrf) HashLen() int {
	return v.core().HashLen()
}

func (v *vrf) Prove(sk *rsa.PrivateKey, alpha []byte) (pi []byte, err error) {
	if err = checkPrivateKey(sk); err != nil {
		return nil, err
	}
	var (
		c = v.core()
		k = octetLen(sk.N)
	)

	// step 1 ~ 2: EM = MGF1(one_string || I2OSP(k, 4) || I2OSP(n, k) || alpha_string, k - 1)
	em, err := c.EncodeMessage(sk.N, alpha)
	if err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}

	// step 3: m = OS2IP(EM)
	m := OS2IP(em)

	// step 4: s = RSASP1(K, m)
	s, err := RSASP1(sk, m)
	if err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}

	// step 5: pi_string = I2OSP(s, k)
	if pi, err = I2OSP(s, k); err != nil {
		return nil, fmt.Errorf("prove: %w", err)
	}
	return pi, nil
}

func (v *vrf) ProofToHash(pi []byte) []byte {
	return v.core().ProofToHash(pi)
}

func (v *vrf) Evaluate(sk *rsa.PrivateKey, alpha []byte) (beta, pi []byte, err error) {
	if pi, err = v.Prove(sk, alpha); err != nil {
		return nil, nil, err
	}
	return v.ProofToHash(pi), pi, nil
}

func (v *vrf) Verify(pk *rsa.PublicKey, alpha, pi []byte) bool {
	_, err := v.VerifyProof(pk, alpha, pi)
	return err == nil
}

func (v *vrf) VerifyProof(pk *rsa.PublicKey, alpha, pi []byte) (beta []byte, err error) {
	if err = checkPublicKey(pk); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}
	var (
		c = v.core()
		k = octetLen(pk.N)
	)

	// a zero-extended pi maps to the same s but not to the same beta
	if len(pi) != k {
		return nil, fmt.Errorf("%w: len(pi) %d, want %d", ErrInvalidProof, len(pi), k)
	}

	// step 1: s = OS2IP(pi_string)
	s := OS2IP(pi)

	// step 2: m = RSAVP1((n, e), s)
	m, err := RSAVP1(pk, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}

	// step 3: EM = I2OSP(m, k - 1)
	em, err := I2OSP(m, k-1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}

	// step 4: EM' = MGF1(one_string || I2OSP(k, 4) || I2OSP(n, k) || alpha_string, k - 1)
	emPrime, err := c.EncodeMessage(pk.N, alpha)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProof, err)
	}

	// step 5: EM == EM'
	if !equal(em, emPrime) {
		return nil, fmt.Errorf("%w: encoded message mismatch", ErrInvalidProof)
	}
	return c.ProofToHash(pi), nil
}
