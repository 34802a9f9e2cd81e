package postgres

import (
	"io/fs"
	"strings"
	"testing"
)

func TestMigrationSourceOrdering(t *testing.T) {
	src, err := MigrationSource()
	if err != nil {
		t.Fatalf("failed to open migrations: %v", err)
	}
	defer src.Close()

	version, err := src.First()
	if err != nil {
		t.Fatalf("failed to read first migration: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected first version 1, got %d", version)
	}

	var versions []uint
	for {
		versions = append(versions, version)
		next, err := src.Next(version)
		if err != nil {
			break
		}
		version = next
	}

	if len(versions) != 3 {
		t.Fatalf("expected 3 migrations, got %v", versions)
	}
}

func TestMigrationsArePaired(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	if err != nil {
		t.Fatalf("failed to list migrations: %v", err)
	}

	names := make(map[string]bool, len(entries))
	for _, e := range entries {
		names[e.Name()] = true
	}

	for name := range names {
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}
		down := strings.TrimSuffix(name, ".up.sql") + ".down.sql"
		if !names[down] {
			t.Errorf("migration %s has no matching %s", name, down)
		}
	}
}

func TestRunMigrationsDownRejectsNonPositiveSteps(t *testing.T) {
	if err := RunMigrationsDown("postgres://localhost/db", 0); err == nil {
		t.Fatalf("expected error for zero steps")
	}
}
