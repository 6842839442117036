package db

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The stores assign string UUID primary keys in Go, and the models carry
// free-form strings for deadlines, availability and expected salary. The
// schema has to accept those values as-is; serial or typed columns would
// reject every insert.
func TestMigrationColumnsAcceptModelValues(t *testing.T) {
	read := func(name string) string {
		contents, err := fs.ReadFile(Migrations, "migrations/"+name)
		require.NoError(t, err)
		return string(contents)
	}

	users := read("20230901000001_create_users.up.sql")
	jobs := read("20230901000002_create_jobs.up.sql")
	applications := read("20230901000003_create_applications.up.sql")

	for name, sql := range map[string]string{
		"users":        users,
		"jobs":         jobs,
		"applications": applications,
	} {
		assert.Contains(t, sql, "id TEXT PRIMARY KEY", "%s primary key must hold app-assigned ids", name)
		assert.NotContains(t, sql, "BIGSERIAL", "%s must not generate ids in the database", name)
	}

	assert.Contains(t, jobs, "employer_id TEXT NOT NULL")
	assert.Contains(t, jobs, "application_deadline TEXT")

	assert.Contains(t, applications, "job_id TEXT NOT NULL")
	assert.Contains(t, applications, "job_seeker_id TEXT NOT NULL")
	assert.Contains(t, applications, "expected_salary TEXT")
	assert.Contains(t, applications, "availability_date TEXT")
}

func TestMigrationsComeInUpDownPairs(t *testing.T) {
	entries, err := fs.ReadDir(Migrations, "migrations")
	require.NoError(t, err)

	seen := map[string]int{}
	for _, entry := range entries {
		name := entry.Name()
		base := strings.TrimSuffix(strings.TrimSuffix(name, ".up.sql"), ".down.sql")
		seen[base]++
	}

	require.NotEmpty(t, seen)
	for base, count := range seen {
		assert.Equal(t, 2, count, "migration %s must have both up and down files", base)
	}
}
