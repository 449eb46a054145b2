package models

import (
	"math"

	"carrierdash/internal/carriers"
)

// ColumnSummaryModel carries the statistics of one numeric column. Undefined
// statistics are encoded as null.
type ColumnSummaryModel struct {
	Column string   `json:"column"`
	Count  int      `json:"count"`
	Mean   *float64 `json:"mean"`
	Std    *float64 `json:"std"`
	Min    *float64 `json:"min"`
	Q1     *float64 `json:"25%"`
	Median *float64 `json:"50%"`
	Q3     *float64 `json:"75%"`
	Max    *float64 `json:"max"`
}

// SummaryModel is the summary record of one dataset
type SummaryModel struct {
	Dataset    string               `json:"dataset"`
	Rows       int                  `json:"rows"`
	Statistics []string             `json:"statistics"`
	Columns    []ColumnSummaryModel `json:"columns"`
}

// NullableFloat returns nil for NaN and infinite values
func NullableFloat(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

func NewSummaryModel(s carriers.Summary) SummaryModel {
	columns := make([]ColumnSummaryModel, 0, len(s.Columns))
	for _, c := range s.Columns {
		columns = append(columns, ColumnSummaryModel{
			Column: c.Column,
			Count:  c.Count,
			Mean:   NullableFloat(c.Mean),
			Std:    NullableFloat(c.Std),
			Min:    NullableFloat(c.Min),
			Q1:     NullableFloat(c.Q1),
			Median: NullableFloat(c.Median),
			Q3:     NullableFloat(c.Q3),
			Max:    NullableFloat(c.Max),
		})
	}

	return SummaryModel{
		Dataset:    s.Dataset,
		Rows:       s.Rows,
		Statistics: carriers.SummaryStatistics,
		Columns:    columns,
	}
}
