package database

import (
	"path/filepath"
	"testing"

	"github.com/lshigami/polls/config"
)

func TestDialector_UnknownDriver(t *testing.T) {
	_, err := Dialector(config.Database{Driver: "oracle"})
	if err == nil {
		t.Fatal("expected error for unsupported driver")
	}
}

func TestDialector_Names(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{"postgres", "postgres"},
		{"", "postgres"},
		{"sqlite", "sqlite"},
	}

	for _, tt := range tests {
		d, err := Dialector(config.Database{Driver: tt.driver, SQLitePath: "x.db"})
		if err != nil {
			t.Fatalf("driver %q: %v", tt.driver, err)
		}
		if d.Name() != tt.want {
			t.Errorf("driver %q: dialector name = %s, want %s", tt.driver, d.Name(), tt.want)
		}
	}
}

func TestNewDatabase_SQLite(t *testing.T) {
	cfg := &config.Config{
		Database: config.Database{
			Driver:     "sqlite",
			SQLitePath: filepath.Join(t.TempDir(), "polls.db"),
		},
	}

	db, err := NewDatabase(cfg)
	if err != nil {
		t.Fatalf("NewDatabase failed: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		t.Errorf("ping failed: %v", err)
	}
}
