package crypto

import (
	"bytes"
	"encoding/hex"
	"testing"

	"golang.org/x/crypto/ed25519"

	"xymsign/signcore"
)

func TestDevStdSHA3_256_KnownVector(t *testing.T) {
	p := DevStdCryptoProvider{}
	sum := p.SHA3_256([]byte("abc"))
	const want = "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"
	got := hex.EncodeToString(sum[:])
	if got != want {
		t.Fatalf("digest mismatch: got=%s want=%s", got, want)
	}
}

func TestDevStdPublicKeyDeterministic(t *testing.T) {
	p := DevStdCryptoProvider{Seed: [32]byte{1, 2, 3}}
	path := []uint32{44, 4343, 0, 0, 0}

	pub1, err := p.PublicKey(path, signcore.CurveEd25519)
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	pub2, err := p.PublicKey(path, signcore.CurveEd25519)
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	if !bytes.Equal(pub1, pub2) {
		t.Fatalf("PublicKey not deterministic across calls")
	}
	if len(pub1) != ed25519.PublicKeySize {
		t.Fatalf("want %d-byte ed25519 public key, got %d", ed25519.PublicKeySize, len(pub1))
	}

	other, err := p.PublicKey([]uint32{44, 4343, 0, 0, 1}, signcore.CurveEd25519)
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	if bytes.Equal(pub1, other) {
		t.Fatalf("different paths produced the same public key")
	}
}

func TestDevStdSignVerifies(t *testing.T) {
	p := DevStdCryptoProvider{Seed: [32]byte{9, 9, 9}}
	path := []uint32{44, 4343, 0, 0, 0}
	msg := []byte("signing range bytes")

	pub, err := p.PublicKey(path, signcore.CurveEd25519)
	if err != nil {
		t.Fatalf("PublicKey: %v", err)
	}
	sig, err := p.Sign(path, signcore.CurveEd25519, msg)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if len(sig) != ed25519.SignatureSize {
		t.Fatalf("want %d-byte ed25519 signature, got %d", ed25519.SignatureSize, len(sig))
	}
	if !ed25519.Verify(ed25519.PublicKey(pub), msg, sig) {
		t.Fatalf("signature did not verify against derived public key")
	}
}

func TestDevStdRejectsSecp256k1(t *testing.T) {
	p := DevStdCryptoProvider{}
	if _, err := p.PublicKey([]uint32{44}, signcore.CurveSecp256k1); err == nil {
		t.Fatalf("expected error for secp256k1 PublicKey")
	}
	if _, err := p.Sign([]uint32{44}, signcore.CurveSecp256k1, nil); err == nil {
		t.Fatalf("expected error for secp256k1 Sign")
	}
}
