package rsavrf

import (
	"bytes"
	"testing"
)

func FuzzProveVerify(f *testing.F) {
	// Seed with a simple example
	f.Add([]byte("Hello VeChain"), uint8(0), uint16(0))
	f.Add([]byte{}, uint8(1), uint16(7))
	f.Add([]byte{0x00, 0x01, 0x02}, uint8(2), uint16(127))

	f.Fuzz(func(t *testing.T, alpha []byte, keyIdx uint8, pos uint16) {
		ks := testKeys(t)
		sk := ks[int(keyIdx)%len(ks)]
		vrf := RsaFdhSha256

		beta1, pi, err := vrf.Evaluate(sk, alpha)
		if err != nil {
			t.Fatalf("Prove failed: %v", err)
		}

		beta2, err := vrf.VerifyProof(&sk.PublicKey, alpha, pi)
		if err != nil {
			t.Fatalf("Verify failed for self-produced proof: %v", err)
		}
		if !bytes.Equal(beta1, beta2) {
			t.Fatalf("beta mismatch: got %x vs %x", beta1, beta2)
		}

		// Negative check: mutate the proof slightly and expect verification to fail
		mutated := make([]byte, len(pi))
		copy(mutated, pi)
		mutated[int(pos)%len(mutated)] ^= 0x01
		if vrf.Verify(&sk.PublicKey, alpha, mutated) {
			t.Fatalf("mutated proof unexpectedly verified")
		}
	})
}

func FuzzVerify(f *testing.F) {
	f.Add([]byte("sample"), []byte{0x00})
	f.Add([]byte{}, bytes.Repeat([]byte{0xff}, 128))
	f.Add([]byte{0x01}, make([]byte, 128))

	f.Fuzz(func(t *testing.T, alpha []byte, pi []byte) {
		sk := testKeys(t)[0]

		// Ensure no panic occurs on untrusted proofs
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("Verify panicked: %v", r)
			}
		}()

		ok := RsaFdhSha256.Verify(&sk.PublicKey, alpha, pi)
		_, err := RsaFdhSha256.VerifyProof(&sk.PublicKey, alpha, pi)
		if ok != (err == nil) {
			t.Fatalf("Verify = %v, VerifyProof err = %v", ok, err)
		}
	})
}
