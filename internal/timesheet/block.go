package timesheet

import (
	"fmt"
	"strings"

	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/timecalc"
)

// Segment slices normalized text into one candidate block per day. Each block
// starts at a day header and runs up to the next one. When the text holds no
// header at all, blank lines are used as block boundaries instead.
func Segment(normalized string) []string {
	matches := dayHeaderAnywhere.FindAllStringIndex(normalized, -1)
	if len(matches) == 0 {
		return blankLine.Split(normalized, -1)
	}

	blocks := make([]string, 0, len(matches))
	for i, m := range matches {
		end := len(normalized)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		blocks = append(blocks, normalized[m[0]:end])
	}
	return blocks
}

// ParseBlock extracts the header, planned shift and ordered clock times from
// one day's text. ok is false when the block does not open with a day header.
func ParseBlock(text string) (block model.DayBlock, ok bool) {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			lines = append(lines, l)
		}
	}
	if len(lines) == 0 {
		return model.DayBlock{}, false
	}

	h := dayHeaderLine.FindStringSubmatch(lines[0])
	if h == nil {
		return model.DayBlock{}, false
	}

	block = model.DayBlock{
		DayHeader:      fmt.Sprintf("%s, %s %s", titleAbbrev(h[1]), h[2], titleAbbrev(h[3])),
		Timestamps:     []model.RawTimestamp{},
		HasMissingData: hasMissingData(text),
		RawText:        text,
	}

	if s := plannedShift.FindStringSubmatch(text); s != nil {
		shift := s[1] + "-" + s[2]
		block.PlannedShift = &shift
	}

	for _, line := range lines {
		if isNoise(line) {
			continue
		}
		if minutes, ok := timecalc.ParseClock(line); ok {
			block.Timestamps = append(block.Timestamps, model.RawTimestamp{Original: line, Minutes: minutes})
		}
	}
	return block, true
}
