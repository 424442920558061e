package splitics

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

// Opt configures a Splitter.
type Opt func(*Splitter)

// MaxBytes sets the byte-size limit per output calendar. A chunk rolls over
// only when it grows strictly beyond the limit; landing exactly on it does
// not cut. Zero or negative disables the size limit.
func MaxBytes(n int64) Opt {
	return func(s *Splitter) {
		s.maxBytes = n
	}
}

// MaxEvents sets the event-count limit per output calendar. The chunk rolls
// over on the event that reaches the limit. Zero or negative disables the
// event limit.
func MaxEvents(n int) Opt {
	return func(s *Splitter) {
		s.maxEvents = n
	}
}

// WithCharset sets the output character set used for size accounting. The
// default, nil, counts native UTF-8 bytes. Resolve names with Charset.
func WithCharset(enc encoding.Encoding) Opt {
	return func(s *Splitter) {
		s.charset = enc
	}
}

// WithLogger replaces the default logrus standard logger entry.
func WithLogger(log *logrus.Entry) Opt {
	return func(s *Splitter) {
		s.log = log
	}
}
