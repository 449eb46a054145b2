package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"carrierdash/internal/carriers"
)

var testdataDir = filepath.Join("..", "..", "testdata")

func TestRunPrintsSummaries(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-data", testdataDir}, &stdout, &stderr)
	require.NoError(t, err)

	output := stdout.String()
	assert.Contains(t, output, "Summary for AllCarriers.csv (72 rows):")
	assert.Contains(t, output, "Summary for UnitedAirlines.csv (24 rows):")
	assert.Contains(t, output, "TOTAL")
	assert.Contains(t, stderr.String(), "loaded file")
}

func TestRunWritesWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summaries.xlsx")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"-data", testdataDir, "-xlsx", path}, &stdout, &stderr))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close() // nolint
	assert.Len(t, f.GetSheetList(), 4)
	assert.Contains(t, stderr.String(), "summary workbook written")
}

func TestRunSingleFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-data", filepath.Join(testdataDir, "DeltaAirlines.csv")}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Summary for DeltaAirlines.csv (24 rows):")
}

func TestRunMissingData(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-data", filepath.Join(t.TempDir(), "missing")}, &stdout, &stderr)
	require.Error(t, err)
	assert.ErrorIs(t, err, carriers.ErrNotFound)
	assert.Empty(t, stdout.String())
}

func TestRunBadFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-nope"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, stderr.String(), "flag provided but not defined")
}
