// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package rsavrf

import (
	"crypto/rsa"
	"fmt"
	"math/big"
)

// RSASP1 is the raw RSA signature primitive, s = m^d mod n.
// Only the (n, d) form of the private key is used.
// https://tools.ietf.org/html/rfc8017#section-5.2.1
func RSASP1(sk *rsa.PrivateKey, m *big.Int) (*big.Int, error) {
	if err := checkPrivateKey(sk); err != nil {
		return nil, err
	}
	// 1. If m is not between 0 and n - 1, output "message representative out of range".
	if err := checkRepresentative(m, sk.N); err != nil {
		return nil, fmt.Errorf("rsasp1: message %w", err)
	}
	// 2. ~ 3. s = m^d mod n
	return new(big.Int).Exp(m, sk.D, sk.N), nil
}

// RSAVP1 is the raw RSA verification primitive, m = s^e mod n.
// https://tools.ietf.org/html/rfc8017#section-5.2.2
func RSAVP1(pk *rsa.PublicKey, s *big.Int) (*big.Int, error) {
	if err := checkPublicKey(pk); err != nil {
		return nil, err
	}
	// 1. If s is not between 0 and n - 1, output "signature representative out of range".
	if err := checkRepresentative(s, pk.N); err != nil {
		return nil, fmt.Errorf("rsavp1: signature %w", err)
	}
	// 2. ~ 3. m = s^e mod n
	return new(big.Int).Exp(s, big.NewInt(int64(pk.E)), pk.N), nil
}

func checkRepresentative(x, n *big.Int) error {
	if x == nil || x.Sign() < 0 || x.Cmp(n) >= 0 {
		return ErrRepresentativeOutOfRange
	}
	return nil
}

func checkPublicKey(pk *rsa.PublicKey) error {
	switch {
	case pk == nil:
		return fmt.Errorf("%w: nil public key", ErrInvalidKey)
	case pk.N == nil || pk.N.Sign() <= 0:
		return fmt.Errorf("%w: modulus must be positive", ErrInvalidKey)
	case pk.E < 1:
		return fmt.Errorf("%w: public exponent must be positive", ErrInvalidKey)
	}
	return nil
}

func checkPrivateKey(sk *rsa.PrivateKey) error {
	switch {
	case sk == nil:
		return fmt.Errorf("%w: nil private key", ErrInvalidKey)
	case sk.N == nil || sk.N.Sign() <= 0:
		return fmt.Errorf("%w: modulus must be positive", ErrInvalidKey)
	case sk.D == nil || sk.D.Sign() <= 0:
		return fmt.Errorf("%w: private exponent must be positive", ErrInvalidKey)
	}
	return nil
}
