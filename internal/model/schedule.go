package model

// DayColumn is one header cell of the weekly grid. Derived from the anchor
// date, never stored.
type DayColumn struct {
	ISODate string `json:"iso_date"`
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
}

// TimeSlot is a 15-minute row of the grid, independent of any particular day.
// Label is empty except on hour and half-hour rows.
type TimeSlot struct {
	Minutes          int    `json:"minutes"`
	Label            string `json:"label"`
	HourBoundary     bool   `json:"hour_boundary"`
	HalfHourBoundary bool   `json:"half_hour_boundary"`
}

// SelectedSlot is the display snapshot stored when a grid cell is clicked.
// It holds labels only, not a reference to the cell that produced it.
type SelectedSlot struct {
	DayLabel  string `json:"day_label"`
	TimeLabel string `json:"time_label"`
}
