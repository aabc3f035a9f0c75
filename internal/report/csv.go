package report

import (
	"encoding/csv"
	"io"
	"strconv"
)

// WriteCSV writes the hourly breakdown of r, one row per hour present.
func WriteCSV(out io.Writer, r Report) error {
	w := csv.NewWriter(out)

	header := []string{
		"hour",
		"sessions",
		"kwh_total",
		"cost_total_rm",
		"prediction_label",
		"alerts_label",
		"alerts_rate_rm_per_kwh",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, h := range r.Hours {
		row := []string{
			strconv.Itoa(h.Hour),
			strconv.Itoa(h.Sessions),
			fmtFloat(h.KWh),
			fmtFloat(h.CostRM),
			string(h.Prediction),
			string(h.Alerts),
			fmtFloat(h.AlertsRateRM),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 2, 64)
}
