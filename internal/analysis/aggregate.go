// Package analysis computes grouped statistics over a sessions Dataset.
// All functions are pure and safe to call on an empty or nil Dataset.
package analysis

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"ev-charging-dashboard/internal/model"
)

// Key selects a categorical column.
type Key func(model.Session) string

// Value selects a numeric column.
type Value func(model.Session) float64

var (
	KeyLocation    Key = func(s model.Session) string { return s.Location }
	KeyChargerType Key = func(s model.Session) string { return s.ChargerType }
	KeyDay         Key = func(s model.Session) string { return s.Day }

	ValueKWh  Value = func(s model.Session) float64 { return s.KWhUsed }
	ValueCost Value = func(s model.Session) float64 { return s.EstimatedCostRM }
)

// HourCount is the number of sessions starting in one hour bucket.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// HourValue is an aggregated value for one hour bucket.
type HourValue struct {
	Hour  int     `json:"hour"`
	Value float64 `json:"value"`
}

// GroupCount is the number of sessions for one categorical value.
type GroupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// GroupValue is an aggregated value for one categorical value.
type GroupValue struct {
	Key   string  `json:"key"`
	Value float64 `json:"value"`
}

// CountByHour counts sessions per hour, ascending by hour. Only hours that
// occur in the data are returned.
func CountByHour(ds *model.Dataset) []HourCount {
	counts := map[int]int{}
	for _, s := range ds.Sessions() {
		counts[s.Hour]++
	}
	out := make([]HourCount, 0, len(counts))
	for h, c := range counts {
		out = append(out, HourCount{Hour: h, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// SumByHour sums value per hour, ascending by hour.
func SumByHour(ds *model.Dataset, value Value) []HourValue {
	sums := map[int]float64{}
	for _, s := range ds.Sessions() {
		sums[s.Hour] += value(s)
	}
	out := make([]HourValue, 0, len(sums))
	for h, v := range sums {
		out = append(out, HourValue{Hour: h, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Hour < out[j].Hour })
	return out
}

// CountBy counts sessions per key, most frequent first. Equal counts keep
// the order in which keys first appear in the data.
func CountBy(ds *model.Dataset, key Key) []GroupCount {
	var out []GroupCount
	pos := map[string]int{}
	for _, s := range ds.Sessions() {
		k := key(s)
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, GroupCount{Key: k})
		}
		out[i].Count++
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// SumByOrdered sums value per key in first-appearance order.
func SumByOrdered(ds *model.Dataset, key Key, value Value) []GroupValue {
	var out []GroupValue
	pos := map[string]int{}
	for _, s := range ds.Sessions() {
		k := key(s)
		i, ok := pos[k]
		if !ok {
			i = len(out)
			pos[k] = i
			out = append(out, GroupValue{Key: k})
		}
		out[i].Value += value(s)
	}
	return out
}

// SumBy sums value per key.
func SumBy(ds *model.Dataset, key Key, value Value) map[string]float64 {
	out := map[string]float64{}
	for _, g := range SumByOrdered(ds, key, value) {
		out[g.Key] = g.Value
	}
	return out
}

// MeanBy averages value per key.
func MeanBy(ds *model.Dataset, key Key, value Value) map[string]float64 {
	groups := map[string][]float64{}
	for _, s := range ds.Sessions() {
		k := key(s)
		groups[k] = append(groups[k], value(s))
	}
	out := make(map[string]float64, len(groups))
	for k, vals := range groups {
		out[k] = stat.Mean(vals, nil)
	}
	return out
}

// Mean averages value over all sessions. ok is false for an empty dataset.
func Mean(ds *model.Dataset, value Value) (mean float64, ok bool) {
	return MeanWhere(ds, nil, value)
}

// MeanWhere averages value over sessions accepted by keep (nil keeps all).
// ok is false when no session matches.
func MeanWhere(ds *model.Dataset, keep func(model.Session) bool, value Value) (float64, bool) {
	var vals []float64
	for _, s := range ds.Sessions() {
		if keep != nil && !keep(s) {
			continue
		}
		vals = append(vals, value(s))
	}
	if len(vals) == 0 {
		return 0, false
	}
	return stat.Mean(vals, nil), true
}

// SumWhere sums value over sessions accepted by keep.
func SumWhere(ds *model.Dataset, keep func(model.Session) bool, value Value) float64 {
	total := 0.0
	for _, s := range ds.Sessions() {
		if keep(s) {
			total += value(s)
		}
	}
	return total
}

// ChargerIs matches sessions of one charger type.
func ChargerIs(t model.ChargerType) func(model.Session) bool {
	return func(s model.Session) bool { return s.ChargerType == string(t) }
}

// Mode returns the most frequent key. Ties resolve to the key seen first
// in file order.
func Mode(ds *model.Dataset, key Key) (string, bool) {
	counts := CountBy(ds, key)
	if len(counts) == 0 {
		return "", false
	}
	return counts[0].Key, true
}
