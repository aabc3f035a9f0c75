package models

// FormatQuery selects an output encoding, e.g. ?format=yaml.
type FormatQuery struct {
	Format string `form:"format"`
}

// TariffQuery represents the query of the tariff endpoints.
// Bounds match pages.MinHour..MaxHour and pages.MinKWh..MaxKWh.
type TariffQuery struct {
	Variant string   `form:"variant"`                               // "prediction" (default) or "alerts"
	Hour    *int     `form:"hour" binding:"omitempty,min=0,max=23"` // required by classify
	KWh     *float64 `form:"kwh" binding:"omitempty,gte=1,lte=100"` // optional energy for a cost estimate
}
