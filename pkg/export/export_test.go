package export

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/superheroes/scenario"
)

var result = scenario.Result{
	Scenario: "demo",
	Actions:  13,
	Energy:   map[string]int{"Wolverine": 75, "Batman": 100},
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "csv", result))
	assert.Equal(t, "hero,energy\nBatman,100\nWolverine,75\n", buf.String())
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", result))

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, Report{
		Scenario: "demo",
		Actions:  13,
		Heroes:   []HeroEnergy{{Hero: "Batman", Energy: 100}, {Hero: "Wolverine", Energy: 75}},
	}, got)
	assert.NotContains(t, buf.String(), "mismatches")
}

func TestWriteUnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, "xml", result))
}
