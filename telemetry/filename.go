package telemetry

import (
	"regexp"
	"strconv"
	"time"

	"github.com/intcatch/platymeta/errors"
)

var filenameRe = regexp.MustCompile(
	`.*platypus` +
		`_(\d{4})(\d{2})(\d{2})` +
		`_(\d{2})(\d{2})(\d{2})` +
		`\.txt$`)

// StartTime extracts the nominal start time embedded in a log filename
// of the form *platypus_YYYYMMDD_HHMMSS.txt. The aggregator itself
// never uses it; it only labels the output.
func StartTime(path string) (time.Time, error) {
	m := filenameRe.FindStringSubmatch(path)
	if m == nil {
		return time.Time{}, errors.NewInvalidFilename(path)
	}
	f := make([]int, 6)
	for i := range f {
		f[i], _ = strconv.Atoi(m[i+1])
	}
	return time.Date(f[0], time.Month(f[1]), f[2], f[3], f[4], f[5], 0, time.UTC), nil
}
