package crypto

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/binary"
	"errors"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"xymsign/signcore"
)

// DevStdCryptoProvider is a development-only provider.
// It does NOT claim FIPS compliance and exists only to unblock early tooling.
// secp256k1 paths are rejected: no curve-agnostic derivation library is wired
// in, and every golden scenario this simulator drives is Ed25519.
type DevStdCryptoProvider struct {
	// Seed is the device's single master seed. A real device derives this
	// from hardware entropy at provisioning time; the simulator takes it
	// from the dev keystore instead.
	Seed [32]byte
}

func (p DevStdCryptoProvider) SHA3_256(input []byte) [32]byte {
	h := sha3.New256()
	_, _ = h.Write(input)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (p DevStdCryptoProvider) PublicKey(path []uint32, curve signcore.Curve) ([]byte, error) {
	if curve != signcore.CurveEd25519 {
		return nil, errors.New("crypto: devstd provider only supports ed25519")
	}
	priv := p.derive(path)
	pub := priv.Public().(ed25519.PublicKey)
	return []byte(pub), nil
}

func (p DevStdCryptoProvider) Sign(path []uint32, curve signcore.Curve, message []byte) ([]byte, error) {
	if curve != signcore.CurveEd25519 {
		return nil, errors.New("crypto: devstd provider only supports ed25519")
	}
	priv := p.derive(path)
	return ed25519.Sign(priv, message), nil
}

// derive walks path as a simplified hardened-only SLIP-0010-style chain:
// each component folds the running chain code and the 4-byte big-endian
// index through HMAC-SHA512, keeping only the Ed25519 scheme (which SLIP-0010
// restricts to hardened derivation throughout). This is not a conformance
// implementation of any published derivation scheme — it exists so the
// simulator returns a stable, path-dependent keypair, not an interoperable
// wallet derivation.
func (p DevStdCryptoProvider) derive(path []uint32) ed25519.PrivateKey {
	mac := hmac.New(sha512.New, []byte("xym seed"))
	mac.Write(p.Seed[:])
	sum := mac.Sum(nil)
	key, chainCode := sum[:32], sum[32:]

	for _, idx := range path {
		mac := hmac.New(sha512.New, chainCode)
		mac.Write(key)
		var idxBytes [4]byte
		binary.BigEndian.PutUint32(idxBytes[:], idx|0x80000000)
		mac.Write(idxBytes[:])
		sum := mac.Sum(nil)
		key, chainCode = sum[:32], sum[32:]
	}

	return ed25519.NewKeyFromSeed(key)
}
