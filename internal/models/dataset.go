package models

import (
	"time"

	"carrierdash/internal/carriers"
	"carrierdash/internal/traffic"
)

// DatasetModel describes one loaded carrier file
type DatasetModel struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Rows    int      `json:"rows"`
	Columns []string `json:"columns"`
	Years   []int    `json:"years"`
	Default bool     `json:"default"`
}

func NewDatasetModel(d *carriers.Dataset, isDefault bool) DatasetModel {
	years := traffic.AvailableYears(d)
	if years == nil {
		years = []int{}
	}
	return DatasetModel{
		Name:    d.Name,
		Label:   traffic.AirlineLabel(d.Name),
		Rows:    d.Rows(),
		Columns: d.Columns(),
		Years:   years,
		Default: isDefault,
	}
}

// WarningModel is a per-file loader failure
type WarningModel struct {
	File  string `json:"file"`
	Stage string `json:"stage"`
	Error string `json:"error"`
}

func NewWarningModel(w carriers.Warning) WarningModel {
	model := WarningModel{File: w.File, Stage: string(w.Stage)}
	if w.Err != nil {
		model.Error = w.Err.Error()
	}
	return model
}

// StatusModel describes what the dashboard has loaded
type StatusModel struct {
	Source         string `json:"source"`
	SingleFile     bool   `json:"singleFile"`
	Datasets       int    `json:"datasets"`
	Warnings       int    `json:"warnings"`
	DefaultDataset string `json:"defaultDataset"`
	LastUpdated    int64  `json:"lastUpdated"`
	ReadableTime   string `json:"readableTime"`
}

func NewStatusModel(m *carriers.Manager) StatusModel {
	updated := m.LastUpdated()
	return StatusModel{
		Source:         m.Source(),
		SingleFile:     m.IsSingleFile(),
		Datasets:       m.GetDatasets().Len(),
		Warnings:       len(m.GetWarnings()),
		DefaultDataset: m.DefaultDatasetName(),
		LastUpdated:    updated.UnixNano() / int64(time.Millisecond),
		ReadableTime:   updated.Format(time.RFC3339),
	}
}
