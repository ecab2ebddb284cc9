package zipstore

const minConcurrency = 1

type archiverOption func(*Archiver) error

// ArchiverConcurrency sets the number of goroutines used to checksum entry
// content during Generate. An error is returned if n is less than 1.
func ArchiverConcurrency(n int) archiverOption {
	return func(a *Archiver) error {
		if n < minConcurrency {
			return ErrMinConcurrency
		}

		a.concurrency = n
		return nil
	}
}
