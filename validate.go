package zipstore

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
)

// Validate opens data with a conformant ZIP reader and re-reads every
// entry. Reading each entry to EOF forces the reader's CRC-32 check, so any
// layout or checksum corruption surfaces before the buffer is handed to
// delivery.
func Validate(data []byte) error {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return errors.Wrap(err, "ERROR: could not open generated archive")
	}

	for _, file := range reader.File {
		rc, err := file.Open()
		if err != nil {
			return errors.Wrapf(err, "ERROR: could not open entry %s", file.Name)
		}

		_, err = io.Copy(io.Discard, rc)
		rc.Close()
		if err != nil {
			return errors.Wrapf(err, "ERROR: corrupt entry %s", file.Name)
		}
	}

	return nil
}
