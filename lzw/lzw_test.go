package lzw

import (
	"bytes"
	"errors"
	"testing"
)

func TestEncodeEmptyProducesBareHeader(t *testing.T) {
	out, err := EncodeAll(nil, 16, true)
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	want := []byte{magic0, magic1, 16 | blockModeFlag}
	if !bytes.Equal(out, want) {
		t.Fatalf("header = % x, want % x", out, want)
	}
}

func TestRoundTripKnownStrings(t *testing.T) {
	cases := []string{
		"",
		"a",
		"TOBEORNOTTOBEORTOBEORNOT",
		"AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA",
		"the quick brown fox jumps over the lazy dog, the quick brown fox jumps again",
	}
	for _, mode := range []bool{true, false} {
		for _, maxbits := range []int{9, 12, 16} {
			for _, s := range cases {
				label := s
				if len(label) > 12 {
					label = label[:12]
				}
				t.Run(label, func(t *testing.T) {
					enc, err := EncodeAll([]byte(s), maxbits, mode)
					if err != nil {
						t.Fatalf("EncodeAll: %v", err)
					}
					dec, err := DecodeAll(enc)
					if err != nil {
						t.Fatalf("DecodeAll: %v", err)
					}
					if !bytes.Equal(dec, []byte(s)) {
						t.Fatalf("round trip mismatch: got %q want %q", dec, s)
					}
				})
			}
		}
	}
}

func TestRoundTripLargeRepetitiveInputTriggersClear(t *testing.T) {
	var buf bytes.Buffer
	for i := 0; i < 40000; i++ {
		buf.WriteByte(byte(i % 3))
	}
	// Follow the repetitive run with varied bytes so the compression
	// ratio drops and the encoder emits a CLEAR.
	x := uint32(1)
	for i := 0; i < 40000; i++ {
		x = x*1103515245 + 12345
		buf.WriteByte(byte(x >> 16))
	}
	enc, err := EncodeAll(buf.Bytes(), 9, true)
	if err != nil {
		t.Fatalf("EncodeAll: %v", err)
	}
	dec, err := DecodeAll(enc)
	if err != nil {
		t.Fatalf("DecodeAll: %v", err)
	}
	if !bytes.Equal(dec, buf.Bytes()) {
		t.Fatalf("round trip mismatch on large repetitive input")
	}
}

func TestDecodeBadMagic(t *testing.T) {
	_, err := DecodeAll([]byte{0x00, 0x00, 16})
	if !errors.Is(err, ErrBadMagic) {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestDecodeUnsupportedWidth(t *testing.T) {
	_, err := DecodeAll([]byte{magic0, magic1, 0x11})
	if !errors.Is(err, ErrUnsupportedWidth) {
		t.Fatalf("err = %v, want ErrUnsupportedWidth", err)
	}
}

func TestDecodeCorruptFirstCode(t *testing.T) {
	// A first code >= 256 at 9-bit width is never valid.
	bw := newBitWriter([]byte{magic0, magic1, 9})
	bw.writeCode(300, 9)
	_, err := DecodeAll(bw.bytes())
	if !errors.Is(err, ErrCorruptInput) {
		t.Fatalf("err = %v, want ErrCorruptInput", err)
	}
}
