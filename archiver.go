// Package zipstore serializes an ordered set of in-memory files into a
// classic store-only (uncompressed) ZIP archive. The output is a single
// byte buffer any standards-compliant ZIP reader can open. No DEFLATE, no
// ZIP64, no encryption: archives are limited to 65535 entries of under
// 4 GiB each.
package zipstore

import (
	"runtime"
	"time"
	"unicode/utf8"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	maxEntryCount  = 0xFFFF
	maxNameLen     = 0xFFFF
	maxContentSize = 0xFFFFFFFE // 32-bit size fields, no ZIP64 fallback
	maxArchiveSize = 0xFFFFFFFF // offsets and sizes must stay addressable
)

// Entry is a single file to be placed in an archive. Name uses forward
// slashes and identifies the entry inside the archive.
type Entry struct {
	Name     string
	Content  []byte
	Modified time.Time
}

// entry is the validated, captured form held by the archiver. Content is
// copied at append time and the timestamp is packed up front, so Generate
// has nothing left to reject.
type entry struct {
	name    string
	content []byte
	dosTime uint16
	dosDate uint16
}

// Archiver accumulates entries and serializes them into a store-only ZIP
// archive. An Archiver is scoped to a single export: create one, append
// entries, call Generate, discard it. Appends are not safe for concurrent
// use.
type Archiver struct {
	entries     []entry
	names       map[string]struct{}
	localSize   uint64 // running length of all local records
	centralSize uint64 // running length of all central directory records
	concurrency int
}

// NewArchiver returns an empty archiver. It can be configured by passing in
// a number of options, such as ArchiverConcurrency(n).
func NewArchiver(options ...archiverOption) (*Archiver, error) {
	a := &Archiver{
		names:       make(map[string]struct{}),
		concurrency: runtime.GOMAXPROCS(0),
	}

	for _, option := range options {
		if err := option(a); err != nil {
			return nil, err
		}
	}

	return a, nil
}

// Add appends a file to the archive. Entries keep their insertion order in
// the output. The content slice is copied, so the caller may reuse it. Any
// entry the stored format cannot represent is rejected here, never at
// Generate time: oversize content, a 65536th entry, an archive grown past
// 32-bit offsets, a non-UTF-8 or duplicate name, or a timestamp outside the
// DOS range.
func (a *Archiver) Add(name string, content []byte, modified time.Time) error {
	if name == "" || len(name) > maxNameLen {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}
	if !utf8.ValidString(name) {
		return errors.Wrapf(ErrNameEncoding, "%q", name)
	}
	if _, taken := a.names[name]; taken {
		return errors.Wrap(ErrDuplicateName, name)
	}
	if uint64(len(content)) > maxContentSize {
		return errors.Wrapf(ErrContentTooLarge, "%s is %d bytes", name, len(content))
	}
	if len(a.entries) >= maxEntryCount {
		return errors.Wrap(ErrTooManyEntries, name)
	}

	localSize := a.localSize + localFileHeaderLen + uint64(len(name)) + uint64(len(content))
	centralSize := a.centralSize + centralDirectoryLen + uint64(len(name))
	if localSize+centralSize+endOfCentralDirLen > maxArchiveSize {
		return errors.Wrap(ErrArchiveTooLarge, name)
	}

	dosTime, dosDate, err := dosDateTime(modified)
	if err != nil {
		return errors.Wrapf(err, "could not encode timestamp of %s", name)
	}

	a.entries = append(a.entries, entry{
		name:    name,
		content: append([]byte(nil), content...),
		dosTime: dosTime,
		dosDate: dosDate,
	})
	a.names[name] = struct{}{}
	a.localSize = localSize
	a.centralSize = centralSize

	return nil
}

// AddEntry appends e to the archive.
func (a *Archiver) AddEntry(e Entry) error {
	return a.Add(e.Name, e.Content, e.Modified)
}

// Len returns the number of entries appended so far.
func (a *Archiver) Len() int {
	return len(a.entries)
}

// Generate serializes the accepted entries into a complete archive: all
// local records in insertion order, then the central directory, then the
// end-of-central-directory trailer. It is a pure function of the entry
// sequence, so calling it twice yields byte-identical buffers, and with
// zero entries it returns the valid 22-byte empty archive.
func (a *Archiver) Generate() []byte {
	crcs := a.checksums()

	out := make([]byte, 0, a.localSize+a.centralSize+endOfCentralDirLen)
	offsets := make([]uint32, len(a.entries))
	for i := range a.entries {
		offsets[i] = uint32(len(out))
		out = appendLocalRecord(out, &a.entries[i], crcs[i])
	}

	centralDirOffset := uint32(len(out))
	for i := range a.entries {
		out = appendCentralRecord(out, &a.entries[i], crcs[i], offsets[i])
	}
	centralDirSize := uint32(len(out)) - centralDirOffset

	return appendEndOfCentralDir(out, uint16(len(a.entries)), centralDirSize, centralDirOffset)
}

// checksums computes every entry's CRC-32. With concurrency above 1 the
// checksums are computed in parallel into index-addressed slots, so entry
// order never depends on scheduling and output bytes stay identical for any
// concurrency level.
func (a *Archiver) checksums() []uint32 {
	crcs := make([]uint32, len(a.entries))

	if a.concurrency <= 1 || len(a.entries) < 2 {
		for i := range a.entries {
			crcs[i] = Checksum(a.entries[i].content)
		}
		return crcs
	}

	g := new(errgroup.Group)
	g.SetLimit(a.concurrency)
	for i := range a.entries {
		i := i
		g.Go(func() error {
			crcs[i] = Checksum(a.entries[i].content)
			return nil
		})
	}
	_ = g.Wait() // checksum workers cannot fail

	return crcs
}
