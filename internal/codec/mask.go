// Package codec decodes the text encoding of surface masks: base64 over a
// zlib stream of one byte per pixel.
package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/klauspost/compress/zlib"
)

// ChunkSize is the read size used while inflating.
const ChunkSize = 2048

// ErrCorrupt is returned when the encoded mask is not valid base64 or not a
// valid zlib stream.
var ErrCorrupt = errors.New("codec: corrupt mask data")

// Decode returns the raw per-pixel bytes of an encoded mask. truncated
// reports a stream that ended without its final block (see Inflate).
func Decode(encoded string) (raw []byte, truncated bool, err error) {
	compressed, err := decodeBase64(encoded)
	if err != nil {
		return nil, false, err
	}
	return Inflate(compressed)
}

// decodeBase64 accepts padded or unpadded standard base64 and ignores
// embedded whitespace such as XML line breaks.
func decodeBase64(encoded string) ([]byte, error) {
	clean := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, encoded)

	data, err := base64.StdEncoding.DecodeString(clean)
	if err == nil {
		return data, nil
	}
	data, rawErr := base64.RawStdEncoding.DecodeString(strings.TrimRight(clean, "="))
	if rawErr != nil {
		return nil, fmt.Errorf("%w: base64: %v", ErrCorrupt, err)
	}
	return data, nil
}

// Inflate decompresses a zlib stream in ChunkSize reads. Reading stops at end
// of stream or at the first read that yields no bytes.
//
// Masks are often stored as flushed but unterminated streams. When input
// runs out after some data has been inflated, that data is returned with
// truncated set. Running out before any output, or a malformed block, is
// ErrCorrupt.
func Inflate(compressed []byte) (raw []byte, truncated bool, err error) {
	zr, err := zlib.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, false, fmt.Errorf("%w: zlib header: %v", ErrCorrupt, err)
	}
	defer func() { _ = zr.Close() }()

	var out bytes.Buffer
	chunk := make([]byte, ChunkSize)
	for {
		n, err := zr.Read(chunk)
		out.Write(chunk[:n])
		if errors.Is(err, io.EOF) {
			break
		}
		if errors.Is(err, io.ErrUnexpectedEOF) && out.Len() > 0 {
			return out.Bytes(), true, nil
		}
		if err != nil {
			return nil, false, fmt.Errorf("%w: inflate: %v", ErrCorrupt, err)
		}
		if n == 0 {
			break
		}
	}
	return out.Bytes(), false, nil
}

// Encode produces the text encoding of raw mask bytes.
func Encode(raw []byte) (string, error) {
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return "", fmt.Errorf("codec: zlib writer: %w", err)
	}
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("codec: deflate: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("codec: deflate: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
