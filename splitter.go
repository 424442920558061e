// Package splitics splits oversized iCalendar documents into smaller,
// independently valid calendar files bounded by byte size and event count.
package splitics

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

const (
	beginCalendar = "BEGIN:VCALENDAR"
	endCalendar   = "END:VCALENDAR"
	beginEvent    = "BEGIN:VEVENT"
	endEvent      = "END:VEVENT"
)

// Chunk describes one finalized output calendar, in delivery order.
type Chunk struct {
	Seq    int   // 1-based part number
	Size   int64 // byte length in the output character set
	Events int
}

// ChunkSink receives each finalized chunk. Delivery is blocking; an error
// aborts the split with no rollback of parts already delivered.
type ChunkSink interface {
	Deliver(content string, size int64, events, seq int) error
}

// Splitter reads a calendar line by line and cuts it into self-contained
// calendars. Each output begins with the lines preceding the first event in
// the source and ends with an END:VCALENDAR line.
type Splitter struct {
	maxBytes  int64
	maxEvents int
	charset   encoding.Encoding
	log       *logrus.Entry
}

// New returns a Splitter with no limits set. Without MaxBytes or MaxEvents
// the whole input lands in a single chunk.
func New(opts ...Opt) *Splitter {
	s := &Splitter{
		log: logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Split consumes r in one pass and delivers every chunk to sink. The input
// must start with a BEGIN:VCALENDAR line or Split fails with
// *InvalidFormatError before any delivery. The returned slice holds one
// descriptor per delivered chunk; on a sink or read failure it holds the
// chunks delivered before the error.
func (s *Splitter) Split(r io.Reader, sink ChunkSink) ([]Chunk, error) {
	br := bufio.NewReader(r)

	line, err := br.ReadString('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	if !strings.HasPrefix(line, beginCalendar) {
		return nil, &InvalidFormatError{Line: strings.TrimRight(line, "\r\n")}
	}
	eof := err == io.EOF

	var (
		headerBuf  strings.Builder
		chunk      strings.Builder
		header     string
		headerSize int64
		size       int64
		events     int
		captured   bool
		parts      []Chunk
	)

	for {
		if !captured && strings.HasPrefix(line, beginEvent) {
			captured = true
			header = headerBuf.String()
			headerSize = size
		}

		chunk.WriteString(line)
		n, err := encodedLen(s.charset, line)
		if err != nil {
			return parts, err
		}
		size += n

		if !captured {
			headerBuf.WriteString(line)
		} else if strings.HasPrefix(line, endEvent) {
			events++
			if s.exceeded(size, events) {
				chunk.WriteString(endCalendar + "\n")
				part, err := s.finalize(sink, chunk.String(), events, len(parts)+1)
				if err != nil {
					return parts, err
				}
				parts = append(parts, part)

				chunk.Reset()
				chunk.WriteString(header)
				size = headerSize
				events = 0
			}
		}

		if eof {
			break
		}
		line, err = br.ReadString('\n')
		if err == io.EOF {
			if line == "" {
				break
			}
			eof = true
		} else if err != nil {
			return parts, fmt.Errorf("reading input: %w", err)
		}
	}

	// The remainder is always flushed, even when a rollover landed exactly
	// on the end of input. In that case the trailing chunk holds only the
	// header and no events. No END:VCALENDAR is synthesized here: a
	// well-formed input already carried its own through the copy.
	part, err := s.finalize(sink, chunk.String(), events, len(parts)+1)
	if err != nil {
		return parts, err
	}
	return append(parts, part), nil
}

func (s *Splitter) exceeded(size int64, events int) bool {
	if s.maxBytes > 0 && size > s.maxBytes {
		return true
	}
	return s.maxEvents > 0 && events >= s.maxEvents
}

func (s *Splitter) finalize(sink ChunkSink, content string, events, seq int) (Chunk, error) {
	size, err := encodedLen(s.charset, content)
	if err != nil {
		return Chunk{}, err
	}
	if err := sink.Deliver(content, size, events, seq); err != nil {
		return Chunk{}, err
	}
	s.log.WithFields(logrus.Fields{
		"part":   seq,
		"bytes":  size,
		"events": events,
	}).Debug("Chunk delivered")
	return Chunk{Seq: seq, Size: size, Events: events}, nil
}
