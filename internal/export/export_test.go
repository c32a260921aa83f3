package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/forgo/clubhive/api/internal/model"
)

func sampleReport() *model.EventReport {
	capacity := 50
	rate := 2
	year := 3
	return &model.EventReport{
		EventID:            "event-1",
		Event:              "AI Workshop: Introduction to Machine Learning",
		Date:               "2026-01-15",
		Time:               "14:00",
		Location:           "Tech Lab 101",
		Capacity:           &capacity,
		FillRate:           &rate,
		TotalRegistrations: 1,
		Attendees: []model.ReportRow{{
			UserID:       "user-1",
			Name:         "Alex Johnson",
			Email:        "student@demo.com",
			Department:   "Computer Science",
			Year:         &year,
			RegisteredOn: time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC),
		}},
		GeneratedOn: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC),
	}
}

func TestFilename_ReplacesWhitespaceRuns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		title  string
		format Format
		want   string
	}{
		{"Hackathon 2026", FormatJSON, "Hackathon_2026_report.json"},
		{"Startup  Pitch\tNight", FormatYAML, "Startup_Pitch_Night_report.yaml"},
		{"AI Workshop: Introduction to Machine Learning", FormatCBOR, "AI_Workshop:_Introduction_to_Machine_Learning_report.cbor"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Filename(tt.title, tt.format))
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]Format{"": FormatJSON, "JSON": FormatJSON, "yml": FormatYAML, "cbor": FormatCBOR} {
		got, err := ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseFormat("xml")
	assert.Error(t, err)
}

func TestEncode_JSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleReport(), FormatJSON))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "AI Workshop: Introduction to Machine Learning", decoded["event"])
	assert.Equal(t, float64(1), decoded["total_registrations"])
	assert.Contains(t, buf.String(), "\n  \"event\"")
}

func TestEncode_YAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleReport(), FormatYAML))

	var decoded map[string]interface{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "Tech Lab 101", decoded["location"])
	assert.Equal(t, 50, decoded["capacity"])
}

func TestEncode_CBOR(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, sampleReport(), FormatCBOR))

	var decoded model.EventReport
	require.NoError(t, cbor.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "event-1", decoded.EventID)
	require.Len(t, decoded.Attendees, 1)
	assert.Equal(t, "Alex Johnson", decoded.Attendees[0].Name)
	assert.True(t, decoded.GeneratedOn.Equal(sampleReport().GeneratedOn))
}

func TestEncode_UnknownFormat(t *testing.T) {
	t.Parallel()

	assert.Error(t, Encode(&bytes.Buffer{}, sampleReport(), Format("xml")))
}
