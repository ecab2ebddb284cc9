package zipstore

import (
	"context"
	"os"

	"github.com/pkg/errors"
)

// ArchiverCLI exports the project tree at Dir as a store-only ZIP archive
// written to ArchivePath. The archive is generated and verified fully
// in memory; nothing is written on failure.
type ArchiverCLI struct {
	ArchivePath string
	Dir         string
	Concurrency int
}

func (c *ArchiverCLI) Archive(ctx context.Context) error {
	entries, err := CollectDir(ctx, c.Dir, c.Concurrency)
	if err != nil {
		return errors.Wrapf(err, "ERROR: could not collect files under %s", c.Dir)
	}

	archiver, err := NewArchiver(ArchiverConcurrency(c.Concurrency))
	if err != nil {
		return errors.Wrap(err, "ERROR: could not create archiver")
	}

	for _, entry := range entries {
		if err := archiver.AddEntry(entry); err != nil {
			return errors.Wrap(err, "ERROR: could not add entry")
		}
	}

	data := archiver.Generate()

	if err := Validate(data); err != nil {
		return errors.Wrap(err, "ERROR: generated archive failed verification")
	}

	if err := os.WriteFile(c.ArchivePath, data, 0o644); err != nil {
		os.Remove(c.ArchivePath) // a truncated archive must not be left behind
		return errors.Wrapf(err, "ERROR: could not write archive to %s", c.ArchivePath)
	}

	return nil
}
