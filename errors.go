package zipstore

import "errors"

// Append-boundary rejections. Every malformed entry is refused at Add time
// so that Generate stays a total function of the accepted entry sequence.
var (
	// ErrContentTooLarge signals content that cannot be represented in the
	// 32-bit size fields of the stored format (no ZIP64 fallback).
	ErrContentTooLarge = errors.New("ERROR: entry content exceeds 4 GiB size field")

	// ErrTooManyEntries signals that the 16-bit entry count fields of the
	// end-of-central-directory record would overflow.
	ErrTooManyEntries = errors.New("ERROR: archive cannot hold more than 65535 entries")

	// ErrArchiveTooLarge signals that an entry would push a local header
	// offset or the central directory past the 32-bit field capacity.
	ErrArchiveTooLarge = errors.New("ERROR: archive layout exceeds 4 GiB offset capacity")

	// ErrNameEncoding signals an entry name that is not valid UTF-8.
	ErrNameEncoding = errors.New("ERROR: entry name is not valid UTF-8")

	// ErrInvalidName signals an empty name or one longer than 65535 bytes.
	ErrInvalidName = errors.New("ERROR: entry name is empty or too long")

	// ErrDuplicateName signals a name already present in the archive.
	ErrDuplicateName = errors.New("ERROR: duplicate entry name")

	// ErrTimestampRange signals a modification time outside the DOS
	// representable range of years 1980 through 2107.
	ErrTimestampRange = errors.New("ERROR: timestamp outside DOS date range 1980-2107")

	// ErrMinConcurrency is returned when an archiver is configured with
	// fewer than one CRC worker.
	ErrMinConcurrency = errors.New("ERROR: concurrency must be 1 or greater")
)
