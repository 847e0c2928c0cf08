package timesheet

import "github.com/Tiliavir/topup/internal/model"

// Parse runs the whole pipeline over a raw paste and returns one result per
// recognizable day, in input order. Blocks without a day header are dropped.
// An empty slice means nothing in the text looked like a day.
func Parse(raw string, cfg Config) []model.DayResult {
	p := NewProcessor(cfg)
	results := []model.DayResult{}
	for _, text := range Segment(Normalize(raw)) {
		block, ok := ParseBlock(text)
		if !ok {
			continue
		}
		results = append(results, p.Process(block))
	}
	return results
}
