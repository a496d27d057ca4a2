package model

import "strings"

// HeaderScanRows is the number of leading rows searched for a header row
const HeaderScanRows = 5

// HeaderMap is a resolved header row
type HeaderMap struct {
	// Row is the 1-based row number of the header row
	Row int
	// Columns maps each label to its 0-based column index
	Columns map[string]int
}

// Index returns the column index of label
func (h *HeaderMap) Index(label string) (int, bool) {
	idx, ok := h.Columns[label]
	return idx, ok
}

// LocateHeader finds the first row within the leading window rows whose cell
// texts contain every required label. optional labels are resolved when
// present in that row but never decide which row is the header. Duplicate
// labels resolve to the leftmost column.
func LocateHeader(rows [][]Cell, required []string, optional []string, window int) (*HeaderMap, error) {
	if window <= 0 {
		window = HeaderScanRows
	}

	for i := 0; i < len(rows) && i < window; i++ {
		positions := make(map[string]int)
		for col, cell := range rows[i] {
			text := cell.Text()
			if text == "" {
				continue
			}
			if _, seen := positions[text]; !seen {
				positions[text] = col
			}
		}

		if !containsAll(positions, required) {
			continue
		}

		columns := make(map[string]int, len(required)+len(optional))
		for _, label := range append(append([]string{}, required...), optional...) {
			if idx, ok := positions[strings.TrimSpace(label)]; ok {
				columns[label] = idx
			}
		}
		return &HeaderMap{Row: i + 1, Columns: columns}, nil
	}

	return nil, &HeaderNotFoundError{
		Required: append([]string{}, required...),
		Window:   window,
	}
}

func containsAll(positions map[string]int, labels []string) bool {
	for _, label := range labels {
		if _, ok := positions[strings.TrimSpace(label)]; !ok {
			return false
		}
	}
	return true
}
