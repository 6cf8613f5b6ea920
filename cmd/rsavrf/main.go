// Copyright (c) 2020 vechain.org.
// Licensed under the MIT license.

// Command rsavrf proves, hashes and verifies RSA-FDH-VRF proofs.
package main

import (
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
