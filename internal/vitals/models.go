package vitals

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// ErrMalformedReading reports a stored document that cannot be shaped into a
// VitalReading.
var ErrMalformedReading = errors.New("malformed vital reading")

// Timestamp is the capture instant of a reading. Sensor writers store it
// either as an epoch number (seconds or milliseconds) or as an RFC3339
// string; both decode here. It marshals canonically as epoch milliseconds.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" || s == `""` {
		t.Time = time.Time{}
		return nil
	}
	if len(s) > 0 && s[0] == '"' {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		parsed, err := time.Parse(time.RFC3339, str)
		if err != nil {
			return fmt.Errorf("timestamp: %w", err)
		}
		t.Time = parsed
		return nil
	}
	var n float64
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	// epoch seconds fit well below 1e12; anything larger is milliseconds
	if n >= 1e12 {
		t.Time = time.UnixMilli(int64(n)).UTC()
	} else {
		t.Time = time.Unix(int64(n), 0).UTC()
	}
	return nil
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UnixMilli())
}

// VitalReading is a single sensor capture stored under the "vitals"
// collection. Readings are immutable from the gateway's perspective: the
// backend never writes, updates, or deletes them.
type VitalReading struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	HeartRate     float64   `json:"heartRate"`
	SpO2          float64   `json:"spo2"`
	BloodPressure string    `json:"bloodPressure"` // free-form, e.g. "120/80"; never parsed
	Temperature   float64   `json:"temperature"`
	Timestamp     Timestamp `json:"timestamp"`
}

// DecodeReading shapes one raw stored document into a typed reading carrying
// its store-assigned id. Missing fields default to zero values; a document
// that is not an object of the expected shape fails with ErrMalformedReading.
func DecodeReading(id string, raw json.RawMessage) (VitalReading, error) {
	var doc struct {
		UserID        string    `json:"userId"`
		HeartRate     float64   `json:"heartRate"`
		SpO2          float64   `json:"spo2"`
		BloodPressure string    `json:"bloodPressure"`
		Temperature   float64   `json:"temperature"`
		Timestamp     Timestamp `json:"timestamp"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return VitalReading{}, fmt.Errorf("%w: %s: %v", ErrMalformedReading, id, err)
	}
	return VitalReading{
		ID:            id,
		UserID:        doc.UserID,
		HeartRate:     doc.HeartRate,
		SpO2:          doc.SpO2,
		BloodPressure: doc.BloodPressure,
		Temperature:   doc.Temperature,
		Timestamp:     doc.Timestamp,
	}, nil
}
