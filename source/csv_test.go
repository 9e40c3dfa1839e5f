package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeaderKeyedRows(t *testing.T) {
	input := "pi_record_no,owner_name_1,document_type\n" +
		"N-100,\"Trip, Louis\",Inventory\n" +
		"N-101,,Inventory\n"

	rows, err := Read(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "N-100", rows[0].Get("pi_record_no"))
	assert.Equal(t, "Trip, Louis", rows[0].Get("owner_name_1"))
	assert.Equal(t, "", rows[1].Get("owner_name_1"))
	assert.Equal(t, "", rows[1].Get("no_such_column"))
}

func TestReadSkipsWrongFieldCount(t *testing.T) {
	input := "a,b,c\n" +
		"1,2,3\n" +
		"only,two\n" +
		"4,5,6\n"

	rows, err := Read(strings.NewReader(input), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "4", rows[1].Get("a"))
}

func TestReadEmptyInput(t *testing.T) {
	rows, err := Read(strings.NewReader(""), nil)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "descriptions.csv")
	require.NoError(t, os.WriteFile(path, []byte("id,name\n1,x\n"), 0o644))

	rows, err := ReadFile(path, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "x", rows[0].Get("name"))
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"), nil)
	assert.Error(t, err)
}

func TestResolveInputs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.csv", "b.csv", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x\n"), 0o644))
	}

	files, err := ResolveInputs([]string{filepath.Join(dir, "*.csv")})
	require.NoError(t, err)
	assert.Len(t, files, 2)

	// Plain paths pass through; duplicates collapse.
	files, err = ResolveInputs([]string{
		filepath.Join(dir, "a.csv"),
		filepath.Join(dir, "a.csv"),
	})
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestResolveInputsNoMatch(t *testing.T) {
	_, err := ResolveInputs([]string{filepath.Join(t.TempDir(), "*.csv")})
	assert.Error(t, err)
}
