package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"quote-crm/backend/internal/domain/quote"
)

// run executes the root command against a fresh temp database path.
func run(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Execute(context.Background(), append([]string{"--db", db, "--storage", "sqlite"}, args...), &out, &errOut)
	return out.String(), err
}

func setup(t *testing.T) (dir, db string) {
	t.Helper()
	dir = t.TempDir()
	chdir(t, dir)
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_LEVEL", "error")
	return dir, filepath.Join(dir, "quotes.db")
}

func TestImportListExport(t *testing.T) {
	dir, db := setup(t)

	sheet := filepath.Join(dir, "quotes.csv")
	require.NoError(t, os.WriteFile(sheet, []byte(
		"ID,Customer,Title,Value,Currency,Status\n"+
			"Q-1,Acme,Rack install,150.5,GBP,Sent\n"+
			"Q-2,Globex,Cabling,,usd,unknown\n"), 0644))

	out, err := run(t, db, "import", sheet)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 rows: 2 new, 0 updated (2 quotes total)")

	out, err = run(t, db, "import", sheet)
	require.NoError(t, err)
	assert.Contains(t, out, "0 new, 2 updated (2 quotes total)")

	out, err = run(t, db, "list", "--format", "json")
	require.NoError(t, err)
	var quotes []quote.Quote
	require.NoError(t, json.Unmarshal([]byte(out), &quotes))
	require.Len(t, quotes, 2)
	assert.Equal(t, "Q-1", quotes[0].ID)
	assert.Equal(t, 150.5, quotes[0].Value)
	assert.Equal(t, quote.USD, quotes[1].Currency)
	assert.Equal(t, quote.StatusDraft, quotes[1].Status)
	assert.Zero(t, quotes[1].Value)

	out, err = run(t, db, "export", "Q-1", "--out", dir)
	require.NoError(t, err)
	path := strings.TrimSpace(out)
	assert.Equal(t, filepath.Join(dir, "Acme_quote.pdf"), path)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("%PDF-")))
}

func TestAddAndListFormats(t *testing.T) {
	_, db := setup(t)

	out, err := run(t, db, "add", "--customer", "Initech", "--title", "Printers", "--value", "99", "--status", "sent")
	require.NoError(t, err)
	id := strings.TrimSpace(out)
	require.NotEmpty(t, id)

	out, err = run(t, db, "list", "--format", "yaml")
	require.NoError(t, err)
	var quotes []quote.Quote
	require.NoError(t, yaml.Unmarshal([]byte(out), &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, id, quotes[0].ID)
	assert.Equal(t, quote.StatusSent, quotes[0].Status)
	assert.Equal(t, 50.0, quotes[0].Probability)

	out, err = run(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Initech")
	assert.Contains(t, out, "Sent")
	assert.Contains(t, out, "Not Required")
}

func TestListEmptyAndBadFormat(t *testing.T) {
	_, db := setup(t)

	out, err := run(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No quotes yet.")

	_, err = run(t, db, "list", "--format", "xml")
	require.Error(t, err)
}

func TestImport_UnsupportedFileChangesNothing(t *testing.T) {
	dir, db := setup(t)
	bad := filepath.Join(dir, "quotes.txt")
	require.NoError(t, os.WriteFile(bad, []byte("hello"), 0644))

	_, err := run(t, db, "import", bad)
	require.Error(t, err)

	out, err := run(t, db, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No quotes yet.")
}

func TestExport_UnknownID(t *testing.T) {
	_, db := setup(t)
	_, err := run(t, db, "export", "nope")
	require.Error(t, err)
}

func TestFailedCommandStillClosesStorage(t *testing.T) {
	_, db := setup(t)

	s := &state{}
	var out, errOut bytes.Buffer
	err := execute(context.Background(), s, []string{"--db", db, "--storage", "sqlite", "export", "nope"}, &out, &errOut)
	require.Error(t, err)
	assert.Nil(t, s.app)

	// The database file is usable again straight away.
	_, err = run(t, db, "list")
	require.NoError(t, err)
}

func TestStorageFlagOverridesInvalidEnv(t *testing.T) {
	_, db := setup(t)
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := run(t, db, "list")
	require.NoError(t, err)
}
