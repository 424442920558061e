package splitics

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/encoding"
)

// PartName returns the filename for one output part, 1-based.
func PartName(prefix string, seq int) string {
	return fmt.Sprintf("%s_part%d.ics", prefix, seq)
}

// FileSink writes each chunk to {Dir}/{Prefix}_part{seq}.ics. Unless
// Overwrite is set it refuses to clobber an existing file, surfacing
// *WriteConflictError.
type FileSink struct {
	Dir       string
	Prefix    string
	Overwrite bool
	// Charset encodes the written bytes; nil writes UTF-8.
	Charset encoding.Encoding
	// Log defaults to the logrus standard logger.
	Log *logrus.Entry
}

var _ ChunkSink = (*FileSink)(nil)

func (s *FileSink) Deliver(content string, size int64, events, seq int) error {
	path := filepath.Join(s.Dir, PartName(s.Prefix, seq))

	data, err := encodeString(s.Charset, content)
	if err != nil {
		return &WriteIOError{Path: path, Err: err}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if s.Overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return &WriteConflictError{Path: path}
	}
	if err != nil {
		return &WriteIOError{Path: path, Err: err}
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return &WriteIOError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &WriteIOError{Path: path, Err: err}
	}

	s.logger().WithFields(logrus.Fields{
		"file":   path,
		"bytes":  size,
		"events": events,
	}).Debug("Wrote part")
	return nil
}

func (s *FileSink) logger() *logrus.Entry {
	if s.Log != nil {
		return s.Log
	}
	return logrus.NewEntry(logrus.StandardLogger())
}

// CollectedChunk is one delivery recorded by a Collector.
type CollectedChunk struct {
	Content string
	Size    int64
	Events  int
	Seq     int
}

// Collector is an in-memory ChunkSink. It backs dry runs and tests and
// never touches persistent storage.
type Collector struct {
	Parts []CollectedChunk
}

var _ ChunkSink = (*Collector)(nil)

func (c *Collector) Deliver(content string, size int64, events, seq int) error {
	c.Parts = append(c.Parts, CollectedChunk{
		Content: content,
		Size:    size,
		Events:  events,
		Seq:     seq,
	})
	return nil
}
