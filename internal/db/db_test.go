// SPDX-License-Identifier: MIT
package db

import (
	"path/filepath"
	"testing"

	"github.com/thatcatcamp/windpalette/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
)

func TestInitDBMigratesModels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	if err := InitDB("sqlite", path); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	t.Cleanup(func() { SetDB(nil) })

	for _, m := range models.All() {
		if !GetDB().Migrator().HasTable(m) {
			t.Errorf("table for %T not migrated", m)
		}
	}

	if !GetDB().Migrator().HasColumn(&models.Theme{}, "share_id") {
		t.Fatal("share_id column not found in themes table")
	}
	if !GetDB().Migrator().HasColumn(&models.Theme{}, "base_position") {
		t.Fatal("base_position column not found in themes table")
	}
}

func TestInitDBUnsupportedType(t *testing.T) {
	if err := InitDB("postgres", "whatever"); err == nil {
		t.Fatal("expected error for unsupported database type")
	}
}

func TestDialectorDSN(t *testing.T) {
	tests := []struct {
		dbType string
		dsn    string
		want   string
	}{
		{"sqlite", "/var/lib/windpalette/windpalette.db", "/var/lib/windpalette/windpalette.db?_busy_timeout=5000"},
		{"sqlite", "file.db?_busy_timeout=100", "file.db?_busy_timeout=100"},
		{"sqlite", ":memory:", ":memory:"},
		{"mysql", "wp:secret@tcp(db:3306)/windpalette", "wp:secret@tcp(db:3306)/windpalette?parseTime=true"},
		{"mariadb", "wp@tcp(db)/wp?charset=utf8mb4", "wp@tcp(db)/wp?charset=utf8mb4&parseTime=true"},
		{"mysql", "wp@tcp(db)/wp?parseTime=false", "wp@tcp(db)/wp?parseTime=false"},
	}
	for _, tt := range tests {
		d, err := dialectorFor(tt.dbType, tt.dsn)
		if err != nil {
			t.Fatalf("dialectorFor(%q, %q): %v", tt.dbType, tt.dsn, err)
		}
		var got string
		switch dd := d.(type) {
		case *sqlite.Dialector:
			got = dd.DSN
		case *mysql.Dialector:
			got = dd.Config.DSN
		default:
			t.Fatalf("unexpected dialector %T", d)
		}
		if got != tt.want {
			t.Errorf("%s DSN = %q, want %q", tt.dbType, got, tt.want)
		}
	}
}
