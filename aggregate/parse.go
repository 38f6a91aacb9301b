package aggregate

import (
	"bufio"
	"os"
	"strings"

	"github.com/intcatch/platymeta/conf"
	"github.com/intcatch/platymeta/series"
	"github.com/intcatch/platymeta/telemetry"
)

// payload lines carry full JSON state dumps and can get long
const maxLineBytes = 1024 * 1024

// ParseFile runs the engine over one telemetry log file and returns
// the sampled series. Fail-fast: the first malformed line or payload
// aborts the run and no store is returned.
func ParseFile(path string, cfg conf.Engine) (*series.Store, error) {
	return ParseFileProgress(path, cfg, nil)
}

// ParseFileProgress is ParseFile with a progress callback, invoked
// every 1000 lines with the number of lines consumed so far.
func ParseFileProgress(path string, cfg conf.Engine, progress func(lines int)) (*series.Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	agg := New(cfg)
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lines := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ts, _, events, err := telemetry.DecodeLine(line)
		if err != nil {
			return nil, err
		}
		if len(events) == 0 {
			agg.Advance(ts)
		}
		for _, ev := range events {
			agg.Apply(ev)
		}
		lines++
		if progress != nil && lines%1000 == 0 {
			progress(lines)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return agg.Series(), nil
}
