package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	recurerrors "github.com/vnykmshr/recur/pkg/common/errors"
)

// Parse builds a schedule from a textual spec. Three forms are accepted:
//
//	"@every 5m30s"  - periodic, constant delay
//	"@once 10s"     - single firing after the delay
//	"5m30s"         - bare Go duration, treated as periodic
//
// "@every" specs go through the cron/v3 parser and therefore truncate to
// whole seconds (minimum one second). Calendar cron expressions such as
// "*/5 * * * *" or "@daily" are rejected with ErrCalendarSpec: the
// engine operates on monotonic durations, not wall-clock calendars.
func Parse(spec string) (*Schedule, error) {
	s := strings.TrimSpace(spec)
	if s == "" {
		return nil, fmt.Errorf("parse %q: %w", spec, recurerrors.ErrZeroDuration)
	}

	if rest, ok := strings.CutPrefix(s, "@once "); ok {
		d, err := time.ParseDuration(strings.TrimSpace(rest))
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", spec, err)
		}
		return newSchedule(KindOnce, d, s)
	}

	if strings.HasPrefix(s, "@every ") {
		parsed, err := cron.ParseStandard(s)
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", spec, err)
		}
		cd, ok := parsed.(cron.ConstantDelaySchedule)
		if !ok {
			return nil, fmt.Errorf("parse %q: %w", spec, recurerrors.ErrCalendarSpec)
		}
		return newSchedule(KindPeriodic, cd.Delay, s)
	}

	// Anything the cron parser accepts at this point is a calendar
	// expression or descriptor, which the monotonic engine cannot honor.
	if _, err := cron.ParseStandard(s); err == nil {
		return nil, fmt.Errorf("parse %q: %w", spec, recurerrors.ErrCalendarSpec)
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", spec, err)
	}
	return newSchedule(KindPeriodic, d, "@every "+s)
}
