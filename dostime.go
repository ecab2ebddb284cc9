package zipstore

import (
	"time"

	"github.com/pkg/errors"
)

const (
	dosEpochYear = 1980
	dosMaxYear   = 2107 // 7-bit year field
)

// dosDateTime packs t into the 16-bit DOS time and date fields used by both
// header records. Seconds have 2-second resolution and are truncated, not
// rounded. Times outside the representable year range are rejected rather
// than wrapped into a valid-looking value.
func dosDateTime(t time.Time) (dosTime, dosDate uint16, err error) {
	year := t.Year()
	if year < dosEpochYear || year > dosMaxYear {
		return 0, 0, errors.Wrapf(ErrTimestampRange, "year %d", year)
	}

	dosTime = uint16(t.Hour())<<11 | uint16(t.Minute())<<5 | uint16(t.Second()/2)
	dosDate = uint16(year-dosEpochYear)<<9 | uint16(t.Month())<<5 | uint16(t.Day())
	return dosTime, dosDate, nil
}
