// Package crypto isolates every cryptographic primitive the signing device
// depends on behind narrow interfaces, so signcore and apdu never import an
// algorithm package directly.
package crypto

import "xymsign/signcore"

// CryptoProvider is the narrow hashing interface; Provider embeds it.
type CryptoProvider interface {
	SHA3_256(input []byte) [32]byte
}

// Provider is the device's key-derivation and signing backend. A path is a
// BIP32 derivation path as decoded by signcore.DecodeBIP32Path; curve
// selects which scheme the path should be interpreted under.
type Provider interface {
	CryptoProvider

	// PublicKey derives the public key for path under curve.
	PublicKey(path []uint32, curve signcore.Curve) ([]byte, error)

	// Sign derives the private key for path under curve and signs message
	// (the transaction's signing range, per signcore.Session.SigningRange).
	Sign(path []uint32, curve signcore.Curve, message []byte) ([]byte, error)
}
