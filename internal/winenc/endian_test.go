package winenc

import "testing"

func TestU32LE(t *testing.T) {
	if got := U32LE([]byte{0xBE, 0xBA, 0xFE, 0xCA}); got != 0xCAFEBABE {
		t.Errorf("U32LE = %#x, want 0xCAFEBABE", got)
	}
	if got := U32LE([]byte{1, 2}); got != 0 {
		t.Errorf("U32LE on short input = %#x, want 0", got)
	}
}

func TestU32BE(t *testing.T) {
	if got := U32BE([]byte{0xCA, 0xFE, 0xBA, 0xBE}); got != 0xCAFEBABE {
		t.Errorf("U32BE = %#x, want 0xCAFEBABE", got)
	}
}

func TestU64LE(t *testing.T) {
	b := []byte{0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01}
	if got := U64LE(b); got != 0x0123456789ABCDEF {
		t.Errorf("U64LE = %#x, want 0x0123456789ABCDEF", got)
	}
	if got := U64LE(b[:4]); got != 0 {
		t.Errorf("U64LE on short input = %#x, want 0", got)
	}
}

func TestPutRoundTrips(t *testing.T) {
	if got := U32LE(PutU32LE(0xDEADBEEF)); got != 0xDEADBEEF {
		t.Errorf("PutU32LE round trip = %#x", got)
	}
	if got := U32BE(PutU32BE(0xDEADBEEF)); got != 0xDEADBEEF {
		t.Errorf("PutU32BE round trip = %#x", got)
	}
	if got := U64LE(PutU64LE(0xFEEDFACECAFEF00D)); got != 0xFEEDFACECAFEF00D {
		t.Errorf("PutU64LE round trip = %#x", got)
	}
}
