package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/goodhome/database"
	"github.com/blogem/goodhome/models"
	"github.com/blogem/goodhome/repositories"
)

// run executes the root command with args and returns its output
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

// useDatabase points the configuration at a fresh database path
func useDatabase(t *testing.T) string {
	t.Helper()

	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "goodhome.db")
	t.Setenv("DATABASE_PATH", path)
	t.Setenv("APP_ENV", "test")
	return path
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "goodhome dev")
}

func TestMigrate(t *testing.T) {
	useDatabase(t)

	out, err := run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "applied 2 migration(s): 001_create_error_journal, 002_index_error_journal_path")

	out, err = run(t, "migrate")
	require.NoError(t, err)
	assert.Contains(t, out, "database is up to date")
}

func TestMigrate_NoDatabase(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_PATH", "")

	_, err := run(t, "migrate")
	assert.ErrorIs(t, err, errNoDatabase)
}

func TestJournalListAndPurge(t *testing.T) {
	path := useDatabase(t)

	db, err := database.Initialize(path)
	require.NoError(t, err)
	repo := repositories.NewErrorJournalRepository(db)
	now := time.Now().UTC()
	require.NoError(t, repo.Create(context.Background(), &models.ErrorRecord{
		ID: "old", RequestID: "req-old", Timestamp: now.Add(-90 * 24 * time.Hour), Method: "GET", Path: "/", Status: 500,
	}))
	require.NoError(t, repo.Create(context.Background(), &models.ErrorRecord{
		ID: "new", RequestID: "req-new", Timestamp: now, Method: "GET", Path: "/", Status: 500,
		Message: "no default view engine was specified",
	}))
	require.NoError(t, db.Close())

	out, err := run(t, "journal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "REQUEST ID")
	assert.Contains(t, out, "req-new")
	assert.Contains(t, out, "no default view engine was specified")

	out, err = run(t, "journal", "list", "--json", "-n", "1")
	require.NoError(t, err)
	var records []models.ErrorRecord
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 1)
	assert.Equal(t, "new", records[0].ID)

	out, err = run(t, "journal", "purge", "--older-than", "720h")
	require.NoError(t, err)
	assert.Contains(t, out, "deleted 1 record(s)")

	out, err = run(t, "journal", "purge", "--older-than", "0s")
	assert.Error(t, err)
	_ = out
}

func TestJournalList_Empty(t *testing.T) {
	useDatabase(t)

	out, err := run(t, "journal", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "no errors recorded")
}

// chdir changes the working directory for the test and restores it on cleanup
func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
