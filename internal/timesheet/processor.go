package timesheet

import (
	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/timecalc"
)

// DefaultRequiredHours is the daily quota used when nothing else is configured.
const DefaultRequiredHours = 10

// Config holds the quota a Processor measures each day against.
type Config struct {
	RequiredMinutes int
}

// DefaultConfig returns a Config requiring DefaultRequiredHours per day.
func DefaultConfig() Config {
	return Config{RequiredMinutes: DefaultRequiredHours * 60}
}

// Processor pairs a day's clock times into sessions and works out the top-up.
type Processor struct {
	cfg Config
}

// NewProcessor returns a Processor for cfg.
func NewProcessor(cfg Config) *Processor {
	return &Processor{cfg: cfg}
}

// Process classifies one day. Per-day problems are reported through the
// result's Status, never as an error.
func (p *Processor) Process(day model.DayBlock) model.DayResult {
	res := model.DayResult{
		DayHeader:    day.DayHeader,
		PlannedShift: day.PlannedShift,
		Logins:       []string{},
		Logouts:      []string{},
	}

	// A missing-data marker wins over any timestamps found alongside it.
	if day.HasMissingData || len(day.Timestamps) == 0 {
		res.Status = model.StatusMissing
		return res
	}

	logins, logouts := splitByParity(day.Timestamps)

	if len(day.Timestamps)%2 != 0 {
		res.Status = model.StatusError
		res.Logins = logins
		return res
	}

	var worked, lastLogout int
	for i := 0; i < len(day.Timestamps); i += 2 {
		in, out := day.Timestamps[i].Minutes, day.Timestamps[i+1].Minutes
		d, ok := timecalc.Duration(&in, &out)
		if !ok || d < 0 {
			res.Status = model.StatusError
			res.Logins, res.Logouts = logins, logouts
			return res
		}
		worked += d
		lastLogout = out
	}

	res.WorkedMinutes = &worked
	res.Logins, res.Logouts = logins, logouts

	deficit := max(0, p.cfg.RequiredMinutes-worked)
	if deficit == 0 {
		res.Status = model.StatusNoTopup
		return res
	}

	// One-minute buffers on both ends of the window.
	start := lastLogout + 1
	end := start + deficit + 1
	res.Status = model.StatusNeedsTopup
	res.TopupStart = &start
	res.TopupEnd = &end
	res.TopupLength = deficit
	return res
}

func splitByParity(ts []model.RawTimestamp) (even, odd []string) {
	even, odd = []string{}, []string{}
	for i, t := range ts {
		if i%2 == 0 {
			even = append(even, t.Original)
		} else {
			odd = append(odd, t.Original)
		}
	}
	return even, odd
}
