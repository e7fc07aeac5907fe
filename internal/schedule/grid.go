package schedule

import (
	"fmt"
	"time"

	"github.com/chirosmith/portal-api/internal/model"
)

// Grid layout constants. The visible day window and the bookable hours are
// fixed product decisions, not configuration.
const (
	SlotMinutes     = 15
	DayStartMinutes = 5 * 60  // 05:00
	DayEndMinutes   = 22 * 60 // 22:00, exclusive
	VisibleDays     = 5

	// SlotsPerDay is (22:00 - 05:00) / 15min.
	SlotsPerDay = (DayEndMinutes - DayStartMinutes) / SlotMinutes
)

// Grid is the full render model for one anchor date: five consecutive day
// columns and the shared slot rows rendered under each of them.
type Grid struct {
	Anchor time.Time         `json:"anchor"`
	Days   []model.DayColumn `json:"days"`
	Slots  []model.TimeSlot  `json:"slots"`
}

// Service computes grids. The clock is injectable so tests can pin the
// default anchor.
type Service struct {
	now func() time.Time
}

func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{now: now}
}

// Today returns the current date truncated to local midnight, the default
// anchor when the caller does not supply one.
func (s *Service) Today() time.Time {
	return Normalize(s.now())
}

// Grid builds the render model for the given anchor. The anchor is always
// normalized to midnight first, so a caller-supplied timestamp never shifts
// the day window by its time-of-day component.
func (s *Service) Grid(anchor time.Time) Grid {
	anchor = Normalize(anchor)
	return Grid{
		Anchor: anchor,
		Days:   DayColumns(anchor),
		Slots:  TimeSlots(),
	}
}

// Normalize truncates a time to midnight in its own location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ParseAnchor parses a YYYY-MM-DD date into a local midnight time.
func ParseAnchor(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid anchor date %q: %w", s, err)
	}
	return t, nil
}

// DayColumns returns exactly VisibleDays consecutive columns starting at the
// anchor date.
func DayColumns(anchor time.Time) []model.DayColumn {
	anchor = Normalize(anchor)
	days := make([]model.DayColumn, 0, VisibleDays)
	for i := 0; i < VisibleDays; i++ {
		d := anchor.AddDate(0, 0, i)
		days = append(days, model.DayColumn{
			ISODate: d.Format("2006-01-02"),
			Weekday: d.Format("Mon"),
			Date:    d.Format("Jan 2"),
		})
	}
	return days
}

// TimeSlots returns the fixed SlotsPerDay rows between 05:00 and 22:00.
// Rows are time-of-day only; the same slice is valid under every day column.
func TimeSlots() []model.TimeSlot {
	slots := make([]model.TimeSlot, 0, SlotsPerDay)
	for m := DayStartMinutes; m < DayEndMinutes; m += SlotMinutes {
		minute := m % 60
		slot := model.TimeSlot{
			Minutes:          m,
			HourBoundary:     minute == 0,
			HalfHourBoundary: minute == 30,
		}
		if minute == 0 || minute == 30 {
			slot.Label = TimeLabel(m)
		}
		slots = append(slots, slot)
	}
	return slots
}

// TimeLabel formats minutes-from-midnight on a 12-hour clock, e.g. "5:00 AM".
func TimeLabel(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	hour12 := ((hours + 11) % 12) + 1
	return fmt.Sprintf("%d:%02d %s", hour12, mins, period)
}

// DayLabel formats a column for the selection snapshot, e.g. "Mon Jan 1".
func DayLabel(day model.DayColumn) string {
	return day.Weekday + " " + day.Date
}
