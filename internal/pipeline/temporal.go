package pipeline

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts covers the wall-clock shapes seen across export batches.
// All values arrive without an offset and are interpreted in the source zone.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02",
}

// Clock converts the export's naive timestamps from the assumed source zone
// into the civil target zone and splits them into calendar-date and
// time-of-day strings.
type Clock struct {
	source *time.Location
	target *time.Location
}

func NewClock(sourceTZ, targetTZ string) (*Clock, error) {
	source, err := time.LoadLocation(sourceTZ)
	if err != nil {
		return nil, fmt.Errorf("load source timezone %q: %w", sourceTZ, err)
	}
	target, err := time.LoadLocation(targetTZ)
	if err != nil {
		return nil, fmt.Errorf("load target timezone %q: %w", targetTZ, err)
	}
	return &Clock{source: source, target: target}, nil
}

// Split converts value into the target zone and returns its yyyy-mm-dd date
// and hh:mm:ss time. Empty or missing-marker input yields two empty strings
// with no error.
func (c *Clock) Split(value string) (date, clock string, err error) {
	s := strings.TrimSpace(value)
	if s == "" || strings.EqualFold(s, "nan") {
		return "", "", nil
	}
	for _, layout := range timestampLayouts {
		ts, perr := time.ParseInLocation(layout, s, c.source)
		if perr != nil {
			continue
		}
		local := ts.In(c.target)
		return local.Format("2006-01-02"), local.Format("15:04:05"), nil
	}
	return "", "", fmt.Errorf("unparseable timestamp %q", value)
}
