package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestMigratePrintsSchema(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "unused.db"))

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"migrate", "--print", "--config", filepath.Join(t.TempDir(), "none.yaml")})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "CREATE TABLE IF NOT EXISTS customers") {
		t.Errorf("expected customers table in schema, got:\n%s", out.String())
	}
}

func TestRoutesListsWebAndAPI(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite3")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "routes.db"))

	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"routes", "--config", filepath.Join(t.TempDir(), "none.yaml")})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	for _, want := range []string{"GET    /search", "POST   /:id/add-reservation", "GET    /api/customers/best", "GET    /metrics"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in routes:\n%s", want, out.String())
		}
	}
}
