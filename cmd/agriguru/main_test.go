package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAsk(t *testing.T) {
	out, err := run(t, "ask", "How much fertilizer?", "--crop", "wheat", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Wheat")
	assert.Contains(t, out, "basal: 60, crown_root: 40 (kg/hectare)")
}

func TestAsk_JSON(t *testing.T) {
	out, err := run(t, "ask", "market price", "--json")
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &payload))
	ctx := payload["context"].(map[string]interface{})
	assert.Equal(t, "market", ctx["advice_kind"])
}

func TestAsk_RequiresQuestion(t *testing.T) {
	_, err := run(t, "ask")
	assert.Error(t, err)
}

func TestWeather(t *testing.T) {
	out, err := run(t, "weather", "Pune", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Weather & Farming Advice for Pune")

	out, err = run(t, "weather", "--json", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, `"location": "Delhi"`)
}

func TestSoil(t *testing.T) {
	out, err := run(t, "soil", "kerala", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"dominant_soil": "laterite"`)
}

func TestCalendar(t *testing.T) {
	out, err := run(t, "calendar", "rabi")
	require.NoError(t, err)
	assert.Contains(t, out, "Rabi Season (November-April)")

	_, err = run(t, "calendar", "zaid", "--json")
	assert.Error(t, err)
}

func TestCrops(t *testing.T) {
	out, err := run(t, "crops")
	require.NoError(t, err)
	assert.Contains(t, out, "rice")
	assert.Contains(t, out, "Oryza sativa")
}
