package data

import (
	"time"

	"ev-charging-dashboard/internal/model"
)

// Location summarises sessions recorded at one location.
type Location struct {
	Name     string  `json:"name"`
	Sessions int     `json:"sessions"`
	TotalKWh float64 `json:"total_kwh"`
}

// LocationList represents the distinct locations of a dataset.
type LocationList struct {
	Source    string     `json:"source"`
	UpdatedAt string     `json:"updated_at"` // ISO 8601 timestamp of the load
	Locations []Location `json:"locations"`
}

// BuildLocations lists locations in order of first appearance.
func BuildLocations(ds *model.Dataset) *LocationList {
	list := &LocationList{Locations: []Location{}}
	if ds == nil {
		return list
	}
	list.Source = ds.Source
	list.UpdatedAt = ds.LoadedAt.UTC().Format(time.RFC3339)

	pos := map[string]int{}
	for _, s := range ds.Sessions() {
		i, ok := pos[s.Location]
		if !ok {
			i = len(list.Locations)
			pos[s.Location] = i
			list.Locations = append(list.Locations, Location{Name: s.Location})
		}
		list.Locations[i].Sessions++
		list.Locations[i].TotalKWh += s.KWhUsed
	}
	return list
}
