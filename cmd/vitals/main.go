package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/vitalwatch/backend/internal/vitals"
	"github.com/vitalwatch/backend/pkg/client"
)

// Command-line counterpart of the mobile app's data fetcher: probes a running
// gateway and prints readings. Set VITALS_USER_ID to fetch one user's history
// instead of the shared recent window.
func main() {
	base := os.Getenv("VITALS_API_URL")
	if base == "" {
		base = "http://localhost:3000"
	}
	token := os.Getenv("VITALS_API_TOKEN")

	c := client.New(base, client.StaticToken(token))
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := c.Health(ctx); err != nil {
		log.Fatalf("gateway not healthy: %v", err)
	}

	var (
		readings []vitals.VitalReading
		err      error
	)
	if user := os.Getenv("VITALS_USER_ID"); user != "" {
		readings, err = c.UserVitals(ctx, user)
	} else {
		readings, err = c.LatestVitals(ctx)
	}
	if err != nil {
		log.Fatalf("fetch failed: %v", err)
	}

	for _, rec := range readings {
		fmt.Printf("%s  user=%s hr=%.0f spo2=%.0f bp=%s temp=%.1f at=%s\n",
			rec.ID, rec.UserID, rec.HeartRate, rec.SpO2, rec.BloodPressure,
			rec.Temperature, rec.Timestamp.Format(time.RFC3339))
	}
}
