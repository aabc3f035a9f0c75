package analysis

import (
	"sort"

	"ev-charging-dashboard/internal/model"
)

// RankBySum sums value per key and sorts descending. Equal sums keep
// first-appearance order.
func RankBySum(ds *model.Dataset, key Key, value Value) []GroupValue {
	out := SumByOrdered(ds, key, value)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value > out[j].Value
	})
	return out
}

// ArgMaxSum returns the key with the largest summed value. Ties go to the
// key seen first in file order, not the alphabetically first key a sorted
// group-by would pick.
func ArgMaxSum(ds *model.Dataset, key Key, value Value) (string, bool) {
	ranked := RankBySum(ds, key, value)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].Key, true
}

// PeakHourByKWh returns the hour with the largest total energy. Ties go to
// the earliest hour.
func PeakHourByKWh(ds *model.Dataset) (int, bool) {
	best := HourValue{}
	found := false
	for _, hv := range SumByHour(ds, ValueKWh) {
		if !found || hv.Value > best.Value {
			best = hv
			found = true
		}
	}
	return best.Hour, found
}
