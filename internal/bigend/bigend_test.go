package bigend

import (
	"bytes"
	"testing"

	"github.com/ony/leveldb-tl/internal/kverrors"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	for _, v := range []uint32{0, 1, 255, 256, 65535, 0xdeadbeef} {
		enc := Encode(v, 4)
		got, err := Decode[uint32](enc, 4)
		if err != nil {
			t.Fatalf("Decode(%d): %v", v, err)
		}
		if got != v {
			t.Fatalf("round-trip %d -> %x -> %d", v, enc, got)
		}
	}
}

func TestEncodeIsBigEndian(t *testing.T) {
	if got := Encode[uint16](0x0102, 2); !bytes.Equal(got, []byte{0x01, 0x02}) {
		t.Fatalf("Encode(0x0102, 2) = %x, want 0102", got)
	}
}

func TestEncodedOrderMatchesIntegerOrder(t *testing.T) {
	values := []uint32{0, 1, 2, 254, 255, 256, 65535, 65536}
	for i := 1; i < len(values); i++ {
		a, b := Encode(values[i-1], 4), Encode(values[i], 4)
		if bytes.Compare(a, b) >= 0 {
			t.Fatalf("Encode(%d)=%x not < Encode(%d)=%x", values[i-1], a, values[i], b)
		}
	}
}

func TestDecodeWrongSizeIsCorruption(t *testing.T) {
	_, err := Decode[uint32]([]byte{1, 2, 3}, 4)
	if !kverrors.IsCorruption(err) {
		t.Fatalf("Decode wrong size = %v, want Corruption", err)
	}
}

func TestNextNetCarries(t *testing.T) {
	b := []byte{0x00, 0xff}
	if overflowed := NextNet(b); overflowed {
		t.Fatalf("NextNet(00ff) reported overflow")
	}
	if !bytes.Equal(b, []byte{0x01, 0x00}) {
		t.Fatalf("NextNet(00ff) = %x, want 0100", b)
	}
}

func TestNextNetSaturates(t *testing.T) {
	b := []byte{0xff, 0xff}
	if overflowed := NextNet(b); !overflowed {
		t.Fatalf("NextNet(ffff) should report overflow")
	}
	if !bytes.Equal(b, []byte{0x00, 0x00}) {
		t.Fatalf("NextNet(ffff) wrapped to %x, want 0000", b)
	}
}

func TestNextNetNoCarryNeeded(t *testing.T) {
	b := []byte{0x00, 0x01}
	if overflowed := NextNet(b); overflowed {
		t.Fatalf("NextNet(0001) reported overflow")
	}
	if !bytes.Equal(b, []byte{0x00, 0x02}) {
		t.Fatalf("NextNet(0001) = %x, want 0002", b)
	}
}
