package tally

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mibar/dictextra/internal/envconfig"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cli := NewCLI()
	cli.SetArgs(args)
	cli.SetIn(strings.NewReader(stdin))
	cli.SetOut(&stdout)
	cli.SetErr(&stderr)
	err := cli.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFreqCommand(t *testing.T) {
	out, _, err := run(t, "go\nrust\ngo\nzig\ngo\nrust\n", "freq")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"KEY", "COUNT"},
		{"go", "3"},
		{"rust", "2"},
		{"zig", "1"},
	}, rows(out))
}

func TestFreqCommandFilters(t *testing.T) {
	input := "Go go GO\nrust Rust\nzig\n"
	out, _, err := run(t, input, "freq", "--words", "--fold-case", "--min", "2", "--only", "rust,go")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"KEY", "COUNT"},
		{"rust", "2"},
		{"go", "3"},
	}, rows(out))
}

func TestFreqCommandFoldCaseFromEnv(t *testing.T) {
	t.Cleanup(envconfig.LoadConfig)
	t.Setenv("TALLY_FOLD_CASE", "1")
	envconfig.LoadConfig()

	out, _, err := run(t, "A\na\n", "freq")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"KEY", "COUNT"}, {"a", "2"}}, rows(out))
}

func TestFreqCommandFirstOver(t *testing.T) {
	input := "x\ny\ny\nz\nz\n"
	out, _, err := run(t, input, "freq", "--first-over", "1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"KEY", "COUNT"}, {"y", "2"}}, rows(out))

	_, _, err = run(t, input, "freq", "--first-over", "5")
	assert.True(t, errors.Is(err, ErrNoMatch))
}

func TestFreqCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\nb\na\n"), 0o644))

	out, _, err := run(t, "ignored\n", "freq", "--file", path)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"KEY", "COUNT"}, {"a", "2"}, {"b", "1"}}, rows(out))
}

func TestFreqCommandMissingFile(t *testing.T) {
	_, _, err := run(t, "", "freq", "--file", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRequireInput(t *testing.T) {
	_, _, err := run(t, "\n\n", "freq", "--require-input")
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, _, err = run(t, "\n", "freq")
	assert.NoError(t, err)
}

func TestGroupCommand(t *testing.T) {
	input := "GET /a 200\nPOST /b 201\nbroken\nGET /c 200\n"
	out, _, err := run(t, input, "group", "--by", "field:3")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"KEY", "COUNT", "MEMBERS"},
		{"200", "2", "GET", "/a", "200,", "GET", "/c", "200"},
		{"201", "1", "POST", "/b", "201"},
	}, rows(out))
}

func TestGroupCommandBadSpec(t *testing.T) {
	_, _, err := run(t, "a\n", "group", "--by", "field:zero")

	var kse *KeySpecError
	require.True(t, errors.As(err, &kse))
	assert.Equal(t, "field:zero", kse.Spec)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, stderr, err := run(t, "a\n", "freq", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, stderr, "counted records")
	assert.Contains(t, stderr, "keys=1")
}

func TestEnvCommand(t *testing.T) {
	out, _, err := run(t, "", "env")
	require.NoError(t, err)

	lines := rows(out)
	require.Len(t, lines, 3)
	assert.Equal(t, "TALLY_DEBUG", lines[1][0])
	assert.Equal(t, "TALLY_FOLD_CASE", lines[2][0])
}
