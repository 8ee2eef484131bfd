// Package calendar computes the observed holiday dates used by the
// chargeable-day algorithm.
package calendar

import (
	"sync"
	"time"

	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// Calendar produces the list of observed holidays for a year and
// memoizes the result for the process lifetime. The rule set is fixed
// at construction, so a cached year never changes; the lock only
// protects the map itself.
type Calendar struct {
	mu    sync.RWMutex
	cache map[int][]time.Time
	rules []*cal.Holiday
}

// New returns a Calendar observing Independence Day (shifted to the
// nearest weekday when July 4 falls on a weekend) and Labor Day (first
// Monday of September). Extend the rule list to add holidays; callers
// are unaffected.
func New() *Calendar {
	return &Calendar{
		cache: make(map[int][]time.Time),
		rules: []*cal.Holiday{
			us.IndependenceDay,
			us.LaborDay,
		},
	}
}

// HolidaysForYear returns the observed holiday dates for the given
// year, in rule order (not necessarily date-sorted). Dates are
// normalized to midnight UTC.
func (c *Calendar) HolidaysForYear(year int) []time.Time {
	c.mu.RLock()
	holidays, ok := c.cache[year]
	c.mu.RUnlock()
	if ok {
		return holidays
	}

	holidays = make([]time.Time, 0, len(c.rules))
	for _, rule := range c.rules {
		_, observed := rule.Calc(year)
		holidays = append(holidays, time.Date(observed.Year(), observed.Month(), observed.Day(), 0, 0, 0, 0, time.UTC))
	}

	c.mu.Lock()
	c.cache[year] = holidays
	c.mu.Unlock()
	return holidays
}

// IsHoliday reports whether the given date falls on an observed holiday.
func (c *Calendar) IsHoliday(date time.Time) bool {
	for _, holiday := range c.HolidaysForYear(date.Year()) {
		if holiday.Year() == date.Year() && holiday.Month() == date.Month() && holiday.Day() == date.Day() {
			return true
		}
	}
	return false
}
