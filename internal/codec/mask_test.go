package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/klauspost/compress/zlib"
)

func TestDecodeEncoded(t *testing.T) {
	raw := []byte{0, 0, 1, 0, 255, 7, 0, 0, 0, 3}
	enc, err := Encode(raw)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, _, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("Decode() = %v, want %v", got, raw)
	}
}

func TestDecodeLargerThanChunk(t *testing.T) {
	raw := make([]byte, ChunkSize*3+17)
	for i := range raw {
		if i%5 == 0 {
			raw[i] = 1
		}
	}
	enc, err := Encode(raw)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	got, _, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("Decode() returned %d bytes, want %d identical bytes", len(got), len(raw))
	}
}

func TestDecodeWhitespaceAndPadding(t *testing.T) {
	raw := []byte("surface")
	enc, err := Encode(raw)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	tests := []struct {
		name  string
		input string
	}{
		{"line breaks", enc[:4] + "\n" + enc[4:8] + "\r\n  " + enc[8:]},
		{"unpadded", strings.TrimRight(enc, "=")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, err := Decode(tt.input)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if !bytes.Equal(got, raw) {
				t.Errorf("Decode() = %q, want %q", got, raw)
			}
		})
	}
}

func TestDecodeCorrupt(t *testing.T) {
	valid, err := Encode(bytes.Repeat([]byte{1}, 4096))
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	compressed, _ := base64.StdEncoding.DecodeString(valid)
	headerOnly := base64.StdEncoding.EncodeToString(compressed[:2])

	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "!!!not base64!!!"},
		{"not zlib", base64.StdEncoding.EncodeToString([]byte("plain text, no header"))},
		{"header only", headerOnly},
		{"bad block type", base64.StdEncoding.EncodeToString([]byte{0x78, 0x9c, 0x07, 0x00})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Decode(tt.input)
			if !errors.Is(err, ErrCorrupt) {
				t.Errorf("Decode() error = %v, want ErrCorrupt", err)
			}
		})
	}
}

func TestDecodeEmptyPayload(t *testing.T) {
	enc, err := Encode(nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, _, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Decode() = %v, want empty", got)
	}
}

func TestInflateUnterminatedStream(t *testing.T) {
	raw := make([]byte, 20000)
	for i := range raw {
		if i%7 == 0 {
			raw[i] = 1
		}
	}

	// Flush without Close: the stream has no final block and no checksum.
	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		t.Fatal(err)
	}
	if err := zw.Flush(); err != nil {
		t.Fatal(err)
	}

	got, truncated, err := Inflate(buf.Bytes())
	if err != nil {
		t.Fatalf("Inflate() error = %v", err)
	}
	if !truncated {
		t.Error("Inflate() truncated = false, want true")
	}
	if !bytes.Equal(got, raw) {
		t.Errorf("Inflate() returned %d bytes, want %d identical bytes", len(got), len(raw))
	}

	enc := base64.StdEncoding.EncodeToString(buf.Bytes())
	if got, _, err := Decode(enc); err != nil || len(got) != len(raw) {
		t.Errorf("Decode() = %d bytes, %v, want %d bytes", len(got), err, len(raw))
	}
}

func TestInflateCompleteStream(t *testing.T) {
	enc, err := Encode([]byte{1, 2, 3})
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if _, truncated, err := Decode(enc); err != nil || truncated {
		t.Errorf("Decode() truncated = %v, err = %v, want false, nil", truncated, err)
	}
}
