package model

// ChargerType is the categorical charger column of the sessions file.
// Keep these values stable; they must match the CSV contents exactly.
type ChargerType string

const (
	ChargerFast   ChargerType = "Fast Charger"
	ChargerNormal ChargerType = "Normal Charger"
)

func (c ChargerType) String() string { return string(c) }

// Weekdays lists day names in display order (Monday first).
var Weekdays = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}
