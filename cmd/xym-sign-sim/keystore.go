package main

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"xymsign/crypto"
)

// devKEK wraps the dev keystore's seed at rest. It is a fixed, publicly
// known constant: this tooling is for the simulator only, never a real
// device, where the KEK would instead come from provisioning hardware.
var devKEK = [32]byte{
	0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF,
	0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF,
	0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF,
	0xDE, 0xAD, 0xBE, 0xEF, 0xDE, 0xAD, 0xBE, 0xEF,
}

type keystoreFile struct {
	WrappedSeedHex string `json:"wrapped_seed_hex"`
}

// loadOrCreateSeed reads the wrapped seed at path, or generates and
// persists a fresh one if no keystore file exists yet.
func loadOrCreateSeed(path string, log zerolog.Logger) ([32]byte, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		log.Info().Str("path", path).Msg("no keystore found, provisioning a new dev seed")
		return provisionSeed(path)
	}
	if err != nil {
		return [32]byte{}, fmt.Errorf("read keystore: %w", err)
	}

	var kf keystoreFile
	if err := json.Unmarshal(raw, &kf); err != nil {
		return [32]byte{}, fmt.Errorf("parse keystore: %w", err)
	}
	wrapped, err := hex.DecodeString(kf.WrappedSeedHex)
	if err != nil {
		return [32]byte{}, fmt.Errorf("decode wrapped seed: %w", err)
	}
	plain, err := crypto.AESKeyUnwrapRFC3394(devKEK[:], wrapped)
	if err != nil {
		return [32]byte{}, fmt.Errorf("unwrap seed: %w", err)
	}
	var seed [32]byte
	copy(seed[:], plain)
	return seed, nil
}

func provisionSeed(path string) ([32]byte, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return seed, fmt.Errorf("generate seed: %w", err)
	}
	wrapped, err := crypto.AESKeyWrapRFC3394(devKEK[:], seed[:])
	if err != nil {
		return seed, fmt.Errorf("wrap seed: %w", err)
	}
	kf := keystoreFile{WrappedSeedHex: hex.EncodeToString(wrapped)}
	raw, err := json.MarshalIndent(kf, "", "  ")
	if err != nil {
		return seed, fmt.Errorf("marshal keystore: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return seed, fmt.Errorf("create keystore dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return seed, fmt.Errorf("write keystore: %w", err)
	}
	return seed, nil
}
