package splitics

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// Charset resolves an output character set by IANA name, for WithCharset and
// FileSink. Empty, "utf8" and "utf-8" select native UTF-8 and return nil so
// no transform runs on the hot path.
func Charset(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unsupported encoding %q", name)
	}
	return enc, nil
}

func encodeString(enc encoding.Encoding, s string) ([]byte, error) {
	if enc == nil {
		return []byte(s), nil
	}
	b, err := enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encoding output text: %w", err)
	}
	return b, nil
}

func encodedLen(enc encoding.Encoding, s string) (int64, error) {
	if enc == nil {
		return int64(len(s)), nil
	}
	b, err := encodeString(enc, s)
	if err != nil {
		return 0, err
	}
	return int64(len(b)), nil
}
