package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a supported container format.
type Compression int

const (
	// None is plain, uncompressed data.
	None Compression = iota
	// Gzip is RFC 1952 gzip.
	Gzip
	// Zstd is a Zstandard frame.
	Zstd
	// LZ4 is an LZ4 frame.
	LZ4
)

func (c Compression) String() string {
	switch c {
	case None:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	case LZ4:
		return "lz4"
	default:
		return fmt.Sprintf("compression(%d)", int(c))
	}
}

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect identifies the compression of data by its magic bytes.
func Detect(data []byte) Compression {
	switch {
	case bytes.HasPrefix(data, zstdMagic):
		return Zstd
	case bytes.HasPrefix(data, gzipMagic):
		return Gzip
	case bytes.HasPrefix(data, lz4Magic):
		return LZ4
	default:
		return None
	}
}

// ErrTooLarge is returned when a dataset decodes to more bytes than allowed.
var ErrTooLarge = errors.New("source: decoded dataset too large")

// zstdMinWindow is the decoder memory floor for capped decodes. It admits the
// encoder's default window.
const zstdMinWindow = 8 << 20

// zstd decoders are expensive to build and safe for concurrent DecodeAll.
var zstdDecoder, _ = zstd.NewReader(nil, zstd.WithDecoderConcurrency(0))

// Decompress returns data with any recognized compression removed. Plain data
// is returned as is.
func Decompress(data []byte) ([]byte, Compression, error) {
	return DecompressLimit(data, 0)
}

// DecompressLimit is Decompress with a cap on the decoded size. Output larger
// than limit bytes fails with ErrTooLarge; a limit of zero or less disables
// the cap.
func DecompressLimit(data []byte, limit int64) ([]byte, Compression, error) {
	c := Detect(data)
	switch c {
	case Zstd:
		out, err := decodeZstd(data, limit)
		if err != nil {
			return nil, c, fmt.Errorf("zstd: %w", err)
		}
		return out, c, nil
	case Gzip:
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, c, fmt.Errorf("gzip: %w", err)
		}
		defer func() { _ = zr.Close() }()
		out, err := readAll(zr, limit)
		if err != nil {
			return nil, c, fmt.Errorf("gzip: %w", err)
		}
		return out, c, nil
	case LZ4:
		out, err := readAll(lz4.NewReader(bytes.NewReader(data)), limit)
		if err != nil {
			return nil, c, fmt.Errorf("lz4: %w", err)
		}
		return out, c, nil
	default:
		if limit > 0 && int64(len(data)) > limit {
			return nil, None, ErrTooLarge
		}
		return data, None, nil
	}
}

func decodeZstd(data []byte, limit int64) ([]byte, error) {
	if limit <= 0 {
		return zstdDecoder.DecodeAll(data, nil)
	}

	// The window may exceed small limits; the output itself is capped by readAll.
	zr, err := zstd.NewReader(bytes.NewReader(data),
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderMaxMemory(max(uint64(limit), zstdMinWindow)),
	)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	out, err := readAll(zr, limit)
	if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
		return nil, ErrTooLarge
	}
	return out, err
}

// readAll reads r to the end, failing with ErrTooLarge past limit bytes.
func readAll(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	out, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(out)) > limit {
		return nil, ErrTooLarge
	}
	return out, nil
}

// Compress encodes data with c. It exists so fixtures and tools can produce
// the formats Decompress accepts.
func Compress(data []byte, c Compression) ([]byte, error) {
	var buf bytes.Buffer
	switch c {
	case None:
		return data, nil
	case Zstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer func() { _ = enc.Close() }()
		return enc.EncodeAll(data, nil), nil
	case Gzip:
		zw := gzip.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	case LZ4:
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("source: unknown %s", c)
	}
	return buf.Bytes(), nil
}
