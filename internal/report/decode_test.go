package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neoexport/neoexport/internal/types"
)

func TestDecodeJSON_Scenario(t *testing.T) {
	got, err := DecodeJSON(strings.NewReader(scenarioDocument))
	require.NoError(t, err)
	require.Len(t, got, 1)
	ca := got[0]
	assert.Equal(t, "2025-01-01 00:00", ca.TimeString())
	assert.Equal(t, 0.3, ca.Distance)
	assert.Equal(t, 5.1, ca.Velocity)
	assert.Equal(t, "2020 AB", ca.NEO.Designation)
	assert.Nil(t, ca.NEO.Name)
	assert.Nil(t, ca.NEO.Diameter)
	assert.True(t, ca.NEO.Hazardous)
}

func TestRoundTrip_JSON(t *testing.T) {
	in := []types.CloseApproach{scenario(), named()}
	in[0].Distance = 0.1 + 0.2
	var buf bytes.Buffer
	_, err := EncodeJSON(&buf, types.Values(in))
	require.NoError(t, err)

	out, err := DecodeJSON(&buf)
	require.NoError(t, err)
	require.Len(t, out, len(in))
	for i := range in {
		assert.Equal(t, in[i].Distance, out[i].Distance)
		assert.Equal(t, in[i].Velocity, out[i].Velocity)
		assert.Equal(t, in[i].NEO.DisplayName(), out[i].NEO.DisplayName())
		assert.Equal(t, in[i].TimeString(), out[i].TimeString())
	}
	assert.Equal(t, 0.37, *out[1].NEO.Diameter)
}

func TestRoundTrip_CSV(t *testing.T) {
	in := []types.CloseApproach{scenario(), named()}
	var buf bytes.Buffer
	_, err := EncodeCSV(&buf, types.Values(in), CSVOptions{})
	require.NoError(t, err)

	out, err := DecodeCSV(&buf)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Nil(t, out[0].NEO.Name)
	assert.Nil(t, out[0].NEO.Diameter)
	assert.True(t, out[0].NEO.Hazardous)
	assert.Equal(t, "Apophis", out[1].NEO.DisplayName())
	assert.Equal(t, 0.000254099, out[1].Distance)
}

func TestDecodeCSV_BadHeader(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader("a,b,c,d,e,f,g\n"))
	assert.True(t, errors.Is(err, ErrBadHeader), "got %v", err)
}

func TestDecodeCSV_BadRow(t *testing.T) {
	_, err := DecodeCSV(strings.NewReader(headerLine + "\n2025-01-01 00:00,far,5.1,2020 AB,,nan,True\n"))
	assert.Error(t, err)
}

func TestQuoteNonFinite_LeavesStringsAlone(t *testing.T) {
	in := `[{"name": "NaN \"Infinity\"", "v": -Infinity, "w": NaN, "x": Infinity}]`
	out := quoteNonFinite([]byte(in))
	assert.Equal(t, `[{"name": "NaN \"Infinity\"", "v": "-Infinity", "w": "NaN", "x": "Infinity"}]`, string(out))

	var v []map[string]any
	require.NoError(t, json.Unmarshal(out, &v))
}

func TestFloat_UnmarshalJSON(t *testing.T) {
	var f Float
	require.NoError(t, f.UnmarshalJSON([]byte(`"NaN"`)))
	assert.True(t, math.IsNaN(float64(f)))
	require.NoError(t, f.UnmarshalJSON([]byte(`"-Infinity"`)))
	assert.True(t, math.IsInf(float64(f), -1))
	require.NoError(t, f.UnmarshalJSON([]byte(`1.25`)))
	assert.Equal(t, Float(1.25), f)
	assert.Error(t, f.UnmarshalJSON([]byte(`"far"`)))
}

func TestReadFile_DispatchesOnExtension(t *testing.T) {
	dir := t.TempDir()
	records := types.Values([]types.CloseApproach{scenario()})
	csvPath := filepath.Join(dir, "a.csv")
	jsonPath := filepath.Join(dir, "a.json")
	require.NoError(t, WriteCSV(csvPath, records))
	require.NoError(t, WriteJSON(jsonPath, records))

	for _, p := range []string{csvPath, jsonPath} {
		got, err := ReadFile(p)
		require.NoError(t, err, p)
		require.Len(t, got, 1, p)
		assert.Equal(t, "2020 AB", got[0].NEO.Designation)
	}

	_, err := ReadFile(filepath.Join(dir, "a.txt"))
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}
