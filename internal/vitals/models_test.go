package vitals

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTimestamp_DecodesEpochMillis(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1717257600000`), &ts))
	require.Equal(t, time.UnixMilli(1717257600000).UTC(), ts.Time)
}

func TestTimestamp_DecodesEpochSeconds(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`1717257600`), &ts))
	require.Equal(t, time.Unix(1717257600, 0).UTC(), ts.Time)
}

func TestTimestamp_DecodesRFC3339(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`"2024-06-01T16:00:00Z"`), &ts))
	require.Equal(t, time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC), ts.Time)
}

func TestTimestamp_RejectsGarbage(t *testing.T) {
	var ts Timestamp
	require.Error(t, json.Unmarshal([]byte(`"not a date"`), &ts))
}

func TestTimestamp_MarshalsAsMillis(t *testing.T) {
	ts := Timestamp{Time: time.UnixMilli(1717257600000).UTC()}
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	require.Equal(t, `1717257600000`, string(b))
}

func TestDecodeReading_FullDocument(t *testing.T) {
	raw := json.RawMessage(`{"userId":"u1","heartRate":72,"spo2":98,"bloodPressure":"120/80","temperature":36.6,"timestamp":1717257600000}`)
	rec, err := DecodeReading("-Nx1", raw)
	require.NoError(t, err)
	require.Equal(t, "-Nx1", rec.ID)
	require.Equal(t, "u1", rec.UserID)
	require.Equal(t, 72.0, rec.HeartRate)
	require.Equal(t, 98.0, rec.SpO2)
	require.Equal(t, "120/80", rec.BloodPressure)
	require.Equal(t, 36.6, rec.Temperature)
}

func TestDecodeReading_MissingFieldsDefault(t *testing.T) {
	rec, err := DecodeReading("-Nx2", json.RawMessage(`{"userId":"u1"}`))
	require.NoError(t, err)
	require.Equal(t, "u1", rec.UserID)
	require.Zero(t, rec.HeartRate)
	require.Empty(t, rec.BloodPressure)
	require.True(t, rec.Timestamp.IsZero())
}

func TestDecodeReading_MalformedDocument(t *testing.T) {
	_, err := DecodeReading("-Nx3", json.RawMessage(`"just a string"`))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedReading))

	_, err = DecodeReading("-Nx4", json.RawMessage(`{"heartRate":"fast"}`))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedReading))
}
