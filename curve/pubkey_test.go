package curve

import (
	"encoding/hex"
	"testing"
)

func mustDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture: %v", err)
	}
	return b
}

func padLeft(dst []byte, src []byte) []byte {
	for i := range dst {
		dst[i] = 0
	}
	copy(dst[len(dst)-len(src):], src)
	return dst
}

func TestParsePubkeyPuzzle20(t *testing.T) {
	pk := mustDecode(t, "033c4a45cbd643ff97d77f41ea37e843648d50fd894b864b0d52febc62f6454f7c")
	p, err := ParsePubkey(pk)
	if err != nil {
		t.Fatalf("ParsePubkey: %v", err)
	}
	if p.Infinity {
		t.Fatalf("parsed point should not be infinity")
	}

	var key Scalar
	var kb [32]byte
	key.setB32(padLeft(kb[:], mustDecode(t, "0d2c55")))
	if !VerifyKey(key, p) {
		t.Fatalf("expected_key for puzzle 20 did not verify against its pubkey")
	}
}

func TestParsePubkeyRejectsBadLength(t *testing.T) {
	if _, err := ParsePubkey([]byte{0x02, 0x01}); err == nil {
		t.Fatalf("expected ErrParse for short input")
	}
}

func TestParsePubkeyRejectsBadTag(t *testing.T) {
	pk := mustDecode(t, "033c4a45cbd643ff97d77f41ea37e843648d50fd894b864b0d52febc62f6454f7c")
	pk[0] = 0x04
	if _, err := ParsePubkey(pk); err == nil {
		t.Fatalf("expected ErrParse for an uncompressed tag byte")
	}
}
