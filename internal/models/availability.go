package models

import (
	"fmt"

	"github.com/mentorhub/mentorhub-api/pkg/interval"
)

// AvailabilityCheck is the result of validating a candidate interval against
// a mentor's weekly rules. When the interval does not fit, ClosestRule names
// the rule that came nearest to permitting it, for error messaging.
type AvailabilityCheck struct {
	Available   bool
	ClosestRule *AvailabilityRule
}

// Window parses the rule's boundaries into minutes since midnight
func (r AvailabilityRule) Window() (start, end interval.MinuteOfDay, err error) {
	start, err = interval.ParseClock(r.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err = interval.ParseClock(r.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Validate checks a rule is well-formed: day in 0-6 and a non-inverted,
// same-day window. Overnight spans are not supported by this model.
func (r AvailabilityRule) Validate() error {
	if r.DayOfWeek < 0 || r.DayOfWeek > 6 {
		return fmt.Errorf("dayOfWeek %d out of range 0-6", r.DayOfWeek)
	}
	start, end, err := r.Window()
	if err != nil {
		return err
	}
	if end <= start {
		return fmt.Errorf("rule window %s-%s is empty or crosses midnight", r.StartTime, r.EndTime)
	}
	return nil
}

// String renders the rule for error messages, e.g. "day 1 09:00-12:00"
func (r AvailabilityRule) String() string {
	return fmt.Sprintf("day %d %s-%s", r.DayOfWeek, r.StartTime, r.EndTime)
}

// CheckAvailability validates a candidate interval against the mentor's
// availability rules. A mentor with no rules is unconstrained and accepts any
// interval. Otherwise the candidate's day of week must match a rule and both
// its start and end time of day must lie inside the rule's window, boundaries
// included. Comparison is wall-clock only; callers supply times in the unit
// the rules were authored in.
func (p *MentorProfile) CheckAvailability(iv interval.Interval) AvailabilityCheck {
	if len(p.Availability) == 0 {
		return AvailabilityCheck{Available: true}
	}

	day := iv.Weekday()
	startClock := interval.ClockOf(iv.Start)
	endClock := interval.ClockOf(iv.End)

	var closest *AvailabilityRule
	closestDistance := -1

	for i := range p.Availability {
		rule := p.Availability[i]
		winStart, winEnd, err := rule.Window()
		if err != nil {
			// Malformed rules are rejected at write time
			continue
		}

		if rule.DayOfWeek == day &&
			startClock.WithinWindow(winStart, winEnd) &&
			endClock.WithinWindow(winStart, winEnd) {
			return AvailabilityCheck{Available: true}
		}

		distance := ruleDistance(rule.DayOfWeek, day, winStart, winEnd, startClock)
		if closest == nil || distance < closestDistance {
			closest = &p.Availability[i]
			closestDistance = distance
		}
	}

	return AvailabilityCheck{Available: false, ClosestRule: closest}
}

// ruleDistance ranks how near a rule came to permitting the candidate: rules
// on the candidate's weekday sort before other days, then by how far the
// candidate start sits from the rule's window.
func ruleDistance(ruleDay, day int, winStart, winEnd, startClock interval.MinuteOfDay) int {
	const dayWeight = 24 * 60

	dayDiff := ruleDay - day
	if dayDiff < 0 {
		dayDiff = -dayDiff
	}
	if dayDiff > 3 {
		// Weekly wrap-around: Saturday is one day from Sunday
		dayDiff = 7 - dayDiff
	}

	timeDiff := 0
	if startClock < winStart {
		timeDiff = winStart.Distance(startClock)
	} else if startClock > winEnd {
		timeDiff = startClock.Distance(winEnd)
	}

	return dayDiff*dayWeight + timeDiff
}
