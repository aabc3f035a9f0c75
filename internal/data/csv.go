package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"ev-charging-dashboard/internal/model"
)

// Column names expected in the sessions file.
const (
	ColTimestamp   = "timestamp"
	ColHour        = "hour"
	ColDay         = "day"
	ColLocation    = "location"
	ColChargerType = "charger_type"
	ColKWhUsed     = "kWh_used"
	ColCostRM      = "estimated_cost_RM"
)

var requiredColumns = []string{
	ColTimestamp,
	ColHour,
	ColDay,
	ColLocation,
	ColChargerType,
	ColKWhUsed,
	ColCostRM,
}

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Timestamp layouts tried in order. Day-first layouts come before ISO forms
// so that ambiguous values like 03/04/2024 read as 3 April.
var timestampLayouts = []string{
	"02/01/2006 15:04",
	"02/01/2006 15:04:05",
	"2/1/2006 15:04",
	"2/1/2006 15:04:05",
	"02-01-2006 15:04",
	"02-01-2006 15:04:05",
	"02.01.2006 15:04",
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// LoadCSV reads a sessions file from disk. A missing file yields an error
// matching fs.ErrNotExist.
func LoadCSV(path string) (*model.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sessions file: %w", err)
	}
	defer f.Close()
	return ReadCSV(f, path)
}

// ReadCSV parses sessions from r. source is recorded on the Dataset.
func ReadCSV(r io.Reader, source string) (*model.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var sessions []model.Session
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if isBlank(rec) {
			continue
		}
		s, err := parseRow(rec, idx)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		sessions = append(sessions, s)
	}
	return model.NewDataset(source, sessions), nil
}

func indexColumns(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, dup := idx[h]; !dup {
			idx[h] = i
		}
	}
	for _, c := range requiredColumns {
		if _, ok := idx[c]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, c)
		}
	}
	return idx, nil
}

func parseRow(rec []string, idx map[string]int) (model.Session, error) {
	field := func(name string) string {
		i := idx[name]
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	hour, err := parseHour(field(ColHour))
	if err != nil {
		return model.Session{}, fmt.Errorf("column %s: %w", ColHour, err)
	}
	kwh, err := strconv.ParseFloat(field(ColKWhUsed), 64)
	if err != nil {
		return model.Session{}, fmt.Errorf("column %s: %w", ColKWhUsed, err)
	}
	cost, err := strconv.ParseFloat(field(ColCostRM), 64)
	if err != nil {
		return model.Session{}, fmt.Errorf("column %s: %w", ColCostRM, err)
	}

	return model.Session{
		Timestamp:       ParseTimestamp(field(ColTimestamp)),
		Hour:            hour,
		Day:             field(ColDay),
		Location:        field(ColLocation),
		ChargerType:     field(ColChargerType),
		KWhUsed:         kwh,
		EstimatedCostRM: cost,
	}, nil
}

// ParseTimestamp parses s day-first. Unparsable input yields the zero time.
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// parseHour accepts integers and integral floats ("20" or "20.0").
func parseHour(s string) (int, error) {
	if h, err := strconv.Atoi(s); err == nil {
		return h, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("hour %q is not an integer", s)
	}
	return int(f), nil
}

func isBlank(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
