package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bjaus/table2md"
	"github.com/bjaus/table2md/internal/config"
	"github.com/bjaus/table2md/internal/input"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const constantsMarkdown = "| constant | value |\n" +
	"|----------|-------|\n" +
	"| e        | 2.71  |\n" +
	"| pi       | 3.14  |\n"

type result struct {
	out, errOut string
	err         error
}

// execute runs the command against stdin with a config path that does not
// exist unless the caller passes its own --config.
func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	if !containsFlag(args, "--config") {
		args = append(args, "--config", filepath.Join(t.TempDir(), "none.yaml"))
	}
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return result{out: out.String(), errOut: errOut.String(), err: err}
}

func containsFlag(args []string, flag string) bool {
	for _, a := range args {
		if a == flag || strings.HasPrefix(a, flag+"=") {
			return true
		}
	}
	return false
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootStdin(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"json rows default": {
			stdin: `[["foo","bar"],["spam","eggs"],["hello","world"]]`,
			want: "|  foo  |  bar  |\n" +
				"|-------|-------|\n" +
				"| spam  | eggs  |\n" +
				"| hello | world |\n",
		},
		"json objects": {
			stdin: `[{"constant": "e", "value": 2.71}, {"constant": "pi", "value": 3.14}]`,
			want:  constantsMarkdown,
		},
		"yaml flag": {
			stdin: "- constant: e\n  value: 2.71\n- constant: pi\n  value: 3.14\n",
			args:  []string{"-i", "yaml"},
			want:  constantsMarkdown,
		},
		"csv with dash": {
			stdin: "constant,value\ne,2.71\npi,3.14\n",
			args:  []string{"--input=csv", "-"},
			want:  constantsMarkdown,
		},
		"end": {
			stdin: "constant\tvalue\ne\t2.71\npi\t3.14\n",
			args:  []string{"-i", "tsv", "--end", "\n"},
			want:  constantsMarkdown + "\n",
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := execute(t, tt.stdin, tt.args...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.out)
		})
	}
}

func TestRootFileExtension(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "constants.csv", "constant,value\ne,2.71\npi,3.14\n")
	res := execute(t, "", path)
	require.NoError(t, res.err)
	assert.Equal(t, constantsMarkdown, res.out)
}

func TestRootFlagOverridesExtension(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "constants.txt.csv", `[["constant","value"],["e","2.71"],["pi","3.14"]]`)
	res := execute(t, "", "-i", "json", path)
	require.NoError(t, res.err)
	assert.Equal(t, constantsMarkdown, res.out)
}

func TestRootConfig(t *testing.T) {
	t.Parallel()
	cfg := writeFile(t, "config.yaml", "input: csv\nend: \"--\\n\"\n")
	res := execute(t, "constant,value\ne,2.71\npi,3.14\n", "--config", cfg)
	require.NoError(t, res.err)
	assert.Equal(t, constantsMarkdown+"--\n", res.out)

	res = execute(t, "constant,value\ne,2.71\npi,3.14\n", "--config", cfg, "--end=")
	require.NoError(t, res.err)
	assert.Equal(t, constantsMarkdown, res.out)
}

func TestRootSaveConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	res := execute(t, "", "--config", path, "--save-config", "-i", "CSV", "--end=--\n")
	require.NoError(t, res.err)
	assert.Empty(t, res.out)
	assert.Contains(t, res.errOut, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{Input: "csv", End: "--\n"}, cfg)

	// A second save keeps the fields it does not set.
	res = execute(t, "", "--config", path, "--save-config", "--flush")
	require.NoError(t, res.err)
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{Input: "csv", End: "--\n", Flush: true}, cfg)

	res = execute(t, "constant,value\ne,2.71\npi,3.14\n", "--config", path)
	require.NoError(t, res.err)
	assert.Equal(t, constantsMarkdown+"--\n", res.out)
}

func TestRootSaveConfigInvalidInput(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "config.yaml")

	res := execute(t, "", "--config", path, "--save-config", "-i", "xml")
	require.Error(t, res.err)
	assert.ErrorIs(t, res.err, input.ErrUnsupportedFormat)
	assert.NoFileExists(t, path)
}

func TestRootDebug(t *testing.T) {
	t.Parallel()
	res := execute(t, `[["a"],["b"]]`, "--debug")
	require.NoError(t, res.err)
	assert.Contains(t, res.errOut, "decoded table")
	assert.Contains(t, res.errOut, "rows=2")

	res = execute(t, `[["a"],["b"]]`)
	require.NoError(t, res.err)
	assert.Empty(t, res.errOut)
}

func TestRootErrors(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		stdin  string
		args   []string
		target error
	}{
		"header only":        {stdin: `[["a","b"]]`, target: table2md.ErrNoData},
		"empty":              {stdin: "", target: table2md.ErrNoData},
		"misaligned":         {stdin: "a,b\n1\n", args: []string{"-i", "csv"}, target: table2md.ErrMisalignedRows},
		"missing key":        {stdin: `[{"a":1,"b":2},{"a":3}]`, target: table2md.ErrMissingKey},
		"unsupported format": {stdin: "x", args: []string{"-i", "xml"}, target: input.ErrUnsupportedFormat},
		"bad shape":          {stdin: `{"a":1}`, target: input.ErrUnsupportedShape},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			res := execute(t, tt.stdin, tt.args...)
			require.ErrorIs(t, res.err, tt.target)
			assert.Empty(t, res.out)
		})
	}
}

func TestRootMissingFile(t *testing.T) {
	t.Parallel()
	res := execute(t, "", filepath.Join(t.TempDir(), "missing.json"))
	require.ErrorIs(t, res.err, os.ErrNotExist)
}

func TestRootTooManyArgs(t *testing.T) {
	t.Parallel()
	res := execute(t, "", "a.json", "b.json")
	require.Error(t, res.err)
}

func TestOpenSourceFile(t *testing.T) {
	t.Parallel()
	path := writeFile(t, "data.json", "[]")
	r, closeFn, err := openSource(path, nil)
	require.NoError(t, err)
	defer closeFn()
	assert.NotNil(t, r)
}

func TestExecuteReportsError(t *testing.T) {
	t.Parallel()
	err := Execute(context.Background(), []string{"--config", filepath.Join(t.TempDir(), "none.yaml"), filepath.Join(t.TempDir(), "missing.json")})
	require.ErrorIs(t, err, os.ErrNotExist)
}
