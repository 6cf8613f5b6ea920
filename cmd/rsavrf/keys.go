// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

package main

import (
	"crypto/rsa"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/google/trillian/crypto/keys/der"
	keyspem "github.com/google/trillian/crypto/keys/pem"
)

// loadPrivateKey reads a PEM encoded PKCS#1 or PKCS#8 RSA private key.
// An empty password reads an unencrypted key.
func loadPrivateKey(file, password string) (*rsa.PrivateKey, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %s: %v", file, err)
	}
	signer, err := keyspem.UnmarshalPrivateKey(string(data), password)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %s: %v", file, err)
	}
	sk, ok := signer.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%s: got %T, want an RSA private key", file, signer)
	}
	return sk, nil
}

// loadPublicKey reads a PEM encoded PKIX RSA public key.
func loadPublicKey(file string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key %s: %v", file, err)
	}
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block found", file)
	}
	pub, err := der.UnmarshalPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to read public key %s: %v", file, err)
	}
	pk, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%s: got %T, want an RSA public key", file, pub)
	}
	return pk, nil
}
