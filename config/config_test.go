package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/runpath/config"
	"github.com/katalvlaran/runpath/grid"
	"github.com/katalvlaran/runpath/runpath"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestFormatOf(t *testing.T) {
	cases := []struct {
		path string
		want config.Format
		err  error
	}{
		{"run.toml", config.TOML, nil},
		{"RUN.TOML", config.TOML, nil},
		{"run.yaml", config.YAML, nil},
		{"dir/run.yml", config.YAML, nil},
		{"run.json", "", config.ErrUnknownFormat},
		{"run", "", config.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := config.FormatOf(tc.path)
			if tc.err != nil {
				assert.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad_TOML(t *testing.T) {
	path := writeFile(t, "run.toml", `
mode    = "both"
max_run = 5
start   = [1, 2]
goal    = [3, 4]
render  = true
format  = "json"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "both", cfg.Mode)
	require.NotNil(t, cfg.MaxRun)
	assert.Equal(t, 5, *cfg.MaxRun)
	assert.Nil(t, cfg.MinRun)
	assert.Equal(t, []int{1, 2}, cfg.Start)
	assert.Equal(t, []int{3, 4}, cfg.Goal)
	assert.True(t, cfg.Render)
	assert.False(t, cfg.Color)
	assert.Equal(t, config.OutputJSON, cfg.Format)

	modes, err := cfg.Modes()
	require.NoError(t, err)
	assert.Equal(t, []runpath.Mode{runpath.Standard, runpath.Ultra}, modes)

	rules, err := cfg.Rules(runpath.Ultra)
	require.NoError(t, err)
	assert.Equal(t, runpath.Rules{MinRun: 4, MaxRun: 5}, rules)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "run.yml", "mode: ultra\nmin_run: 2\ncolor: true\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "ultra", cfg.Mode)
	assert.True(t, cfg.Color)
	assert.Equal(t, config.OutputText, cfg.Format, "unset keys keep defaults")

	rules, err := cfg.Rules(runpath.Ultra)
	require.NoError(t, err)
	assert.Equal(t, runpath.Rules{MinRun: 2, MaxRun: 10}, rules)
}

func TestLoad_EmptyFilesUseDefaults(t *testing.T) {
	for _, name := range []string{"empty.toml", "empty.yaml"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := config.Load(writeFile(t, name, ""))
			require.NoError(t, err)
			assert.Equal(t, config.Default(), cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		file string
		body string
		err  error
	}{
		{"UnknownKeyTOML", "a.toml", "speed = 3\n", config.ErrDecode},
		{"UnknownKeyYAML", "a.yaml", "speed: 3\n", config.ErrDecode},
		{"SyntaxTOML", "a.toml", "mode = \n", config.ErrDecode},
		{"BadMode", "a.toml", "mode = \"hyper\"\n", config.ErrBadMode},
		{"BadStart", "a.yaml", "start: [1]\n", config.ErrBadPoint},
		{"NegativeGoal", "a.toml", "goal = [-1, 0]\n", config.ErrBadPoint},
		{"BadFormat", "a.yaml", "format: xml\n", config.ErrBadOutput},
		{"Extension", "a.ini", "mode = ultra\n", config.ErrUnknownFormat},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.file, tc.body))
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDecode_UnknownFormat(t *testing.T) {
	_, err := config.Decode("ini", strings.NewReader(""))
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestRules_Invalid(t *testing.T) {
	cfg := config.Default()
	bad := 0
	cfg.MaxRun = &bad
	_, err := cfg.Rules(runpath.Standard)
	assert.ErrorIs(t, err, runpath.ErrBadRules)

	_, err = cfg.Options(runpath.Standard)
	assert.ErrorIs(t, err, runpath.ErrBadRules)
}

// TestOptions_DriveSolver feeds the translated options straight into Solve.
func TestOptions_DriveSolver(t *testing.T) {
	g, err := grid.Parse("11111\n")
	require.NoError(t, err)

	cfg, err := config.Decode(config.TOML, strings.NewReader("max_run = 4\nformat = \"json\"\n"))
	require.NoError(t, err)
	opts, err := cfg.Options(runpath.Standard)
	require.NoError(t, err)

	res, err := runpath.Solve(g, opts...)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.Len(t, res.Path, 5, "json output requests the path")

	cfg, err = config.Decode(config.YAML, strings.NewReader("start: [0, 4]\ngoal: [0, 0]\n"))
	require.NoError(t, err)
	opts, err = cfg.Options(runpath.Standard)
	require.NoError(t, err)
	_, err = runpath.Solve(g, opts...)
	assert.ErrorIs(t, err, runpath.ErrUnreachable)
}
