package database

import "testing"

func TestConfigDSN(t *testing.T) {
	cfg := Config{
		Host:     "db.internal",
		Port:     "5433",
		User:     "kitchen",
		Password: "secret",
		DBName:   "kitchendb",
		SSLMode:  "require",
	}

	want := "host=db.internal port=5433 user=kitchen password=secret dbname=kitchendb sslmode=require"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
