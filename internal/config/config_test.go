package config

import (
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("FIREBASE_PROJECT_ID", "vitalwatch-test")
	t.Setenv("FIREBASE_DATABASE_URL", "https://vitalwatch-test-default-rtdb.firebaseio.com")
	t.Setenv("MONGODB_URI", "mongodb://localhost:27017/testdb")
	t.Setenv("REDIS_HOST", "localhost")
	t.Setenv("REDIS_PORT", "6379")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Firebase.ProjectID != "vitalwatch-test" {
		t.Fatalf("unexpected project id: %q", cfg.Firebase.ProjectID)
	}
	if cfg.Server.Port != "3000" || cfg.Server.Host != "0.0.0.0" {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.MongoDB.Timeout != 10*time.Second {
		t.Fatalf("unexpected mongo timeout: %v", cfg.MongoDB.Timeout)
	}
	if cfg.MongoDB.URI == "" || cfg.Redis.Host == "" {
		t.Fatalf("unexpected empty config values: %+v", cfg)
	}
}
