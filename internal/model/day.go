package model

// Status is the terminal classification of a parsed day.
type Status string

const (
	// StatusMissing means the portal reported no data or no timestamps were found.
	StatusMissing Status = "missing"
	// StatusError means timestamps were found but could not be paired into sessions.
	StatusError Status = "error"
	// StatusNoTopup means the day already meets the required total.
	StatusNoTopup Status = "no-topup"
	// StatusNeedsTopup means a top-up window is required to reach the total.
	StatusNeedsTopup Status = "needs-topup"
)

// RawTimestamp is a clock time read from the portal text.
type RawTimestamp struct {
	Original string `json:"original"`
	Minutes  int    `json:"minutes"` // minutes since midnight, 0..1439
}

// DayBlock is the intermediate record extracted from one day's text slice.
type DayBlock struct {
	DayHeader      string         `json:"day_header"`
	PlannedShift   *string        `json:"planned_shift"`
	Timestamps     []RawTimestamp `json:"timestamps"`
	HasMissingData bool           `json:"has_missing_data"`
	RawText        string         `json:"raw_text"`
}

// DayResult is the processed attendance record for one day.
//
// TopupStart and TopupEnd are minutes since midnight and may be 1440 or
// more when the window spills past midnight into the following day.
type DayResult struct {
	DayHeader     string   `json:"day_header"`
	PlannedShift  *string  `json:"planned_shift"`
	WorkedMinutes *int     `json:"worked_minutes"`
	Status        Status   `json:"status"`
	TopupStart    *int     `json:"topup_start"`
	TopupEnd      *int     `json:"topup_end"`
	TopupLength   int      `json:"topup_length"`
	Logins        []string `json:"logins"`
	Logouts       []string `json:"logouts"`
}

// NeedsTopup reports whether the day carries a usable top-up window.
func (d DayResult) NeedsTopup() bool {
	return d.Status == StatusNeedsTopup && d.TopupLength > 0
}
