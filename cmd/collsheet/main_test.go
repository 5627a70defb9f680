package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/collsheet-go/pkg/collsheet/models"
	"github.com/xuri/excelize/v2"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeSheet(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", "At Collection Level"))

	rows := [][]interface{}{
		{"Maintained by the collections team"},
		{"Collection ID", "Repository", "Collection URL", "Collection name", "Active / Inactive"},
		{123, "UA", "https://example.com/1", "Example One", "Active"},
		{456, "MS", "https://example.com/2", "Example Two", "Inactive"},
		{789, "HAY", "", "", "Active"},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("At Collection Level", cell, &row))
	}

	path := filepath.Join(t.TempDir(), "collections.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestJobsCommandFromWorkbook(t *testing.T) {
	t.Setenv("COLLECTION_ID_FILTER", "")
	os.Unsetenv("COLLECTION_ID_FILTER")

	out, err := execute(t, "jobs", "--xlsx", writeSheet(t))
	require.NoError(t, err)

	var jobs []models.CollectionJob
	require.NoError(t, json.Unmarshal([]byte(out), &jobs))
	require.Len(t, jobs, 2)
	assert.Equal(t, 123, jobs[0].CollectionID)
	assert.Equal(t, 3, jobs[0].RowNumber)
	assert.Equal(t, 789, jobs[1].CollectionID)
	assert.Nil(t, jobs[1].CollectionURL)
}

func TestJobsCommandFilterFlag(t *testing.T) {
	t.Setenv("COLLECTION_ID_FILTER", "123")

	out, err := execute(t, "jobs", "--xlsx", writeSheet(t), "--filter", "789, 456")
	require.NoError(t, err)

	var jobs []models.CollectionJob
	require.NoError(t, json.Unmarshal([]byte(out), &jobs))
	require.Len(t, jobs, 1)
	assert.Equal(t, 789, jobs[0].CollectionID)
}

func TestJobsCommandFilterFromEnv(t *testing.T) {
	t.Setenv("COLLECTION_ID_FILTER", "123")

	out, err := execute(t, "jobs", "--xlsx", writeSheet(t), "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "collection_id: 123")
	assert.NotContains(t, out, "789")
}

func TestJobsCommandMalformedFilter(t *testing.T) {
	_, err := execute(t, "jobs", "--xlsx", writeSheet(t), "--filter", "1,2 3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot mix commas and spaces")
}

func TestJobsCommandWritesOutputFile(t *testing.T) {
	t.Setenv("COLLECTION_ID_FILTER", "")
	os.Unsetenv("COLLECTION_ID_FILTER")
	outFile := filepath.Join(t.TempDir(), "jobs.json")

	out, err := execute(t, "jobs", "--xlsx", writeSheet(t), "-o", outFile, "--pretty")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"collection_id": 123`)
}

func TestJobsCommandMissingWorkbook(t *testing.T) {
	_, err := execute(t, "jobs", "--xlsx", filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "check", "--collection-ids", "id1, id2,id3")
	require.NoError(t, err)
	assert.Contains(t, out, "Processing collection: id1\n")
	assert.Contains(t, out, "Processing collection: id3\n")

	out, err = execute(t, "check", "--collection-id", "single id")
	require.NoError(t, err)
	assert.Contains(t, out, "Processing collection: single id\n")
}

func TestCheckCommandRejectsMixedSeparators(t *testing.T) {
	_, err := execute(t, "check", "--collection-ids", "id1,id2 id3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--collection-ids: collection IDs cannot mix commas and spaces")
}

func TestCheckCommandFlagRules(t *testing.T) {
	_, err := execute(t, "check")
	assert.Error(t, err)

	_, err = execute(t, "check", "--collection-id", "a", "--collection-ids", "b,c")
	assert.Error(t, err)
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", "id1,id2", " ", "id3")
	require.NoError(t, err)
	assert.Equal(t, "id1\nid2\nid3\n", out)

	_, err = execute(t, "validate")
	assert.Error(t, err)
}
