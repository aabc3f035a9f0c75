package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"ev-charging-dashboard/internal/model"
)

// Pivot is a day x hour matrix of mean energy. Days are always
// Monday..Sunday; Hours are the distinct hours present, ascending.
// A nil cell means no session fell into that (day, hour) combination.
type Pivot struct {
	Days  []string     `json:"days"`
	Hours []int        `json:"hours"`
	Cells [][]*float64 `json:"cells"`
}

// Max returns the largest defined cell value.
func (p Pivot) Max() (float64, bool) {
	var best float64
	found := false
	for _, row := range p.Cells {
		for _, c := range row {
			if c != nil && (!found || *c > best) {
				best = *c
				found = true
			}
		}
	}
	return best, found
}

// PivotMeanKWh builds the mean kWh matrix. Sessions whose day is not a
// weekday name still contribute their hour to the column set but do not
// appear as a row.
func PivotMeanKWh(ds *model.Dataset) Pivot {
	type cellKey struct {
		day  string
		hour int
	}
	groups := map[cellKey][]float64{}
	hourSet := map[int]struct{}{}
	for _, s := range ds.Sessions() {
		hourSet[s.Hour] = struct{}{}
		k := cellKey{day: s.Day, hour: s.Hour}
		groups[k] = append(groups[k], s.KWhUsed)
	}

	hours := make([]int, 0, len(hourSet))
	for h := range hourSet {
		hours = append(hours, h)
	}
	sort.Ints(hours)

	p := Pivot{
		Days:  append([]string(nil), model.Weekdays...),
		Hours: hours,
		Cells: make([][]*float64, len(model.Weekdays)),
	}
	for i, day := range p.Days {
		row := make([]*float64, len(hours))
		for j, h := range hours {
			if vals, ok := groups[cellKey{day: day, hour: h}]; ok {
				m := stat.Mean(vals, nil)
				row[j] = &m
			}
		}
		p.Cells[i] = row
	}
	return p
}
