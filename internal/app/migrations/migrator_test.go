package migrations

import (
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var createTablePattern = regexp.MustCompile(`(?i)CREATE TABLE IF NOT EXISTS\s+(\w+)`)

// tablesCreatedByMigrations collects every table name declared across the
// SQL files in the migrations directory.
func tablesCreatedByMigrations(t *testing.T) map[string]bool {
	t.Helper()

	dir := filepath.Join("..", "..", "..", "migrations")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	tables := map[string]bool{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		content, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		require.NoError(t, err)
		for _, match := range createTablePattern.FindAllStringSubmatch(string(content), -1) {
			tables[strings.ToLower(match[1])] = true
		}
	}
	return tables
}

func TestMigrationsDeclareRepositoryTables(t *testing.T) {
	// Every table the repositories build queries against must be
	// created by a migration, under exactly the name the queries use.
	wanted := []string{
		"admins",
		"council_members",
		"email_campaigns",
		"news_items",
		"promotion_records",
		"resource_files",
		"resources",
		"students",
		"subscribers",
	}

	created := tablesCreatedByMigrations(t)
	require.NotEmpty(t, created)

	for _, table := range wanted {
		assert.Truef(t, created[table], "table %q is not created by any migration", table)
	}
}

func TestMigrationFilesAreVersionPrefixed(t *testing.T) {
	dir := filepath.Join("..", "..", "..", "migrations")
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	versionPrefix := regexp.MustCompile(`^\d{3}_`)

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".sql") {
			names = append(names, entry.Name())
		}
	}
	require.NotEmpty(t, names)
	sort.Strings(names)

	for _, name := range names {
		assert.Regexpf(t, versionPrefix, name, "migration %q lacks a numeric version prefix", name)
	}
}
