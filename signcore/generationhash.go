package signcore

import "bytes"

// Generation hashes distinguish mainnet from testnet and are prefixed to
// any data that is signed. The testnet hash matches the one hard-coded in
// the reference app (xym/parse/xym_parse.c); the mainnet hash was not
// present in the retrieved source and is unverified against a real Symbol
// mainnet genesis block (see DESIGN.md).
var (
	mainnetGenerationHash = [hashLength]byte{
		0x57, 0xf7, 0xda, 0x20, 0x5e, 0x37, 0xb9, 0xc6,
		0x9f, 0x4e, 0x79, 0x00, 0xcf, 0x0b, 0x84, 0x14,
		0xd5, 0x36, 0x36, 0xab, 0xaf, 0x55, 0xc2, 0x3e,
		0xb0, 0x82, 0x45, 0x13, 0x4b, 0x9e, 0xf6, 0x63,
	}
	testnetGenerationHash = [hashLength]byte{
		0x6C, 0x1B, 0x92, 0x39, 0x1C, 0xCB, 0x41, 0xC9,
		0x64, 0x78, 0x47, 0x1C, 0x26, 0x34, 0xC1, 0x11,
		0xD9, 0xE9, 0x89, 0xDE, 0xCD, 0x66, 0x13, 0x0C,
		0x04, 0x30, 0xB5, 0xB8, 0xD2, 0x01, 0x17, 0xCD,
	}

	// mainnetCoinType is the BIP32 coin-type component (4343) that selects
	// the mainnet generation hash; every other coin-type selects testnet.
	mainnetCoinType uint32 = 4343
)

// generationHashFor selects the active network generation hash from the
// second component of a BIP32 path (the coin-type level).
func generationHashFor(path []uint32) [hashLength]byte {
	if len(path) >= 2 && path[1] == mainnetCoinType {
		return mainnetGenerationHash
	}
	return testnetGenerationHash
}

func isNativeMosaic(id uint64) bool {
	return id == NativeMosaicID
}

func bytesEqualHash(a [hashLength]byte, b []byte) bool {
	return len(b) == hashLength && bytes.Equal(a[:], b)
}
