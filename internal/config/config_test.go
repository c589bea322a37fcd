package config

import "testing"

func TestLoadConfigDefaultsMatchTerminationBounds(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Parser.MaxRecursionDepth != 50 {
		t.Errorf("MaxRecursionDepth = %d, want 50", cfg.Parser.MaxRecursionDepth)
	}
	if cfg.Parser.MaxRecordsPerLevel != 100000 {
		t.Errorf("MaxRecordsPerLevel = %d, want 100000", cfg.Parser.MaxRecordsPerLevel)
	}
	if cfg.Parser.MaxRecordLengthBytes != 100*1024*1024 {
		t.Errorf("MaxRecordLengthBytes = %d, want %d", cfg.Parser.MaxRecordLengthBytes, 100*1024*1024)
	}
	if cfg.Parser.MaxPropertiesPerSet != 1000 {
		t.Errorf("MaxPropertiesPerSet = %d, want 1000", cfg.Parser.MaxPropertiesPerSet)
	}
	if cfg.AI.ActiveProvider != "gemini" {
		t.Errorf("ActiveProvider default = %q, want gemini", cfg.AI.ActiveProvider)
	}
}

func TestGetConnectStrPrefersURL(t *testing.T) {
	c := DatabaseConfig{URL: "postgres://explicit"}
	if got := c.GetConnectStr(); got != "postgres://explicit" {
		t.Errorf("GetConnectStr() = %q, want postgres://explicit", got)
	}
}

func TestGetConnectStrBuildsFromParts(t *testing.T) {
	c := DatabaseConfig{Host: "localhost", Port: "5432", User: "u", Password: "p", DBName: "db"}
	got := c.GetConnectStr()
	want := "postgres://u:p@localhost:5432/db?sslmode=disable"
	if got != want {
		t.Errorf("GetConnectStr() = %q, want %q", got, want)
	}
}
