package splitics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	splitics "github.com/remytrichard/splitics"
	"github.com/remytrichard/splitics/fixtures"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSinkDeliver(t *testing.T) {
	dir := t.TempDir()
	sink := &splitics.FileSink{Dir: dir, Prefix: "cal"}

	require.NoError(t, sink.Deliver("BEGIN:VCALENDAR\nEND:VCALENDAR\n", 30, 0, 1))

	data, err := os.ReadFile(filepath.Join(dir, "cal_part1.ics"))
	require.NoError(t, err)
	assert.Equal(t, "BEGIN:VCALENDAR\nEND:VCALENDAR\n", string(data))
}

func TestFileSinkOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cal_part1.ics")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	sink := &splitics.FileSink{Dir: dir, Prefix: "cal"}
	err := sink.Deliver("new", 3, 0, 1)
	var conflictErr *splitics.WriteConflictError
	require.ErrorAs(t, err, &conflictErr)
	assert.Equal(t, path, conflictErr.Path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "old", string(data), "a refused delivery must not touch the existing file")

	sink.Overwrite = true
	require.NoError(t, sink.Deliver("new", 3, 0, 1))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestFileSinkCharset(t *testing.T) {
	charset, err := splitics.Charset("latin1")
	require.NoError(t, err)

	dir := t.TempDir()
	sink := &splitics.FileSink{Dir: dir, Prefix: "cal", Charset: charset}
	require.NoError(t, sink.Deliver("SUMMARY:Fête\n", 13, 0, 1))

	data, err := os.ReadFile(filepath.Join(dir, "cal_part1.ics"))
	require.NoError(t, err)
	assert.Equal(t, []byte("SUMMARY:F\xeate\n"), data)
}

func TestFileSinkMissingDir(t *testing.T) {
	sink := &splitics.FileSink{Dir: filepath.Join(t.TempDir(), "nope"), Prefix: "cal"}
	err := sink.Deliver("x", 1, 0, 1)
	var ioErr *splitics.WriteIOError
	require.ErrorAs(t, err, &ioErr)
}

func TestSplitToFiles(t *testing.T) {
	dir := t.TempDir()
	sink := &splitics.FileSink{Dir: dir, Prefix: "simple"}

	parts, err := splitics.New(splitics.MaxEvents(1)).
		Split(strings.NewReader(string(fixtures.CalSimple)), sink)
	require.NoError(t, err)
	require.Len(t, parts, 4)

	for _, part := range parts {
		path := filepath.Join(dir, splitics.PartName("simple", part.Seq))
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, part.Size, info.Size())
	}
}

func TestSplitToFilesHaltsOnConflict(t *testing.T) {
	dir := t.TempDir()
	// A leftover part2 from an earlier run blocks the split partway.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "simple_part2.ics"), []byte("old"), 0644))

	sink := &splitics.FileSink{Dir: dir, Prefix: "simple"}
	parts, err := splitics.New(splitics.MaxEvents(1)).
		Split(strings.NewReader(string(fixtures.CalSimple)), sink)

	var conflictErr *splitics.WriteConflictError
	require.ErrorAs(t, err, &conflictErr)
	require.Len(t, parts, 1, "only part1 was delivered before the conflict")

	// Part 1 stays on disk, nothing is rolled back and nothing after the
	// conflict is written.
	_, err = os.Stat(filepath.Join(dir, "simple_part1.ics"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "simple_part3.ics"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestCollector(t *testing.T) {
	var sink splitics.Collector
	require.NoError(t, sink.Deliver("a", 1, 0, 1))
	require.NoError(t, sink.Deliver("b", 1, 2, 2))

	require.Len(t, sink.Parts, 2)
	assert.Equal(t, splitics.CollectedChunk{Content: "a", Size: 1, Events: 0, Seq: 1}, sink.Parts[0])
	assert.Equal(t, splitics.CollectedChunk{Content: "b", Size: 1, Events: 2, Seq: 2}, sink.Parts[1])
}

func TestPartName(t *testing.T) {
	assert.Equal(t, "calendar_part1.ics", splitics.PartName("calendar", 1))
	assert.Equal(t, "calendar_part12.ics", splitics.PartName("calendar", 12))
}
