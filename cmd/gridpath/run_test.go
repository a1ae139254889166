package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run("gridpath", args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Days(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"Maze", []string{"-day", "16", "testdata/maze.txt"},
			"testdata/maze.txt part1=7036 part2=45\n"},
		{"Memspace", []string{"-day", "18", "-bytes", "12", "testdata/memspace.txt"},
			"testdata/memspace.txt part1=22 part2=6,1\n"},
		{"Racetrack", []string{"-day", "20", "-threshold", "50", "testdata/racetrack.txt"},
			"testdata/racetrack.txt part1=1 part2=285\n"},
		{"MazeDebug", []string{"-day", "16", "-debug", "testdata/maze.txt"},
			"testdata/maze.txt part1=7036 part2=45\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := runCLI(t, tc.args...)
			require.Equal(t, 0, code, errOut)
			assert.Equal(t, tc.want, out)
			assert.Contains(t, errOut, "run_id=")
		})
	}
}

func TestRun_ArgumentOrder(t *testing.T) {
	code, out, _ := runCLI(t, "-day", "20", "-threshold", "64", "-cheat", "2",
		"testdata/racetrack.txt", "testdata/racetrack.txt")
	require.Equal(t, 0, code)
	assert.Equal(t,
		"testdata/racetrack.txt part1=1 part2=1\n"+
			"testdata/racetrack.txt part1=1 part2=1\n", out)
}

func TestRun_Errors(t *testing.T) {
	code, _, errOut := runCLI(t, "-day", "17", "x.txt")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unsupported day 17")

	code, _, errOut = runCLI(t, "-day", "16")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, errNoInput.Error())

	// One bad file does not hide the good one.
	code, out, errOut := runCLI(t, "-day", "16", "testdata/missing.txt", "testdata/maze.txt")
	assert.Equal(t, 1, code)
	assert.Equal(t, "testdata/maze.txt part1=7036 part2=45\n", out)
	assert.Contains(t, errOut, "ERROR: testdata/missing.txt")

	// The racetrack sample is not a valid memspace input.
	code, _, errOut = runCLI(t, "-day", "18", "testdata/racetrack.txt")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "malformed line")
}

func TestRun_MetricsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.prom")
	code, _, errOut := runCLI(t, "-day", "18", "-bytes", "12", "-metrics-file", path, "testdata/memspace.txt")
	require.Equal(t, 0, code, errOut)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, `gridpath_solves_total{result="ok",solver="memspace"} 1`)
	assert.Contains(t, text, `gridpath_searches_total{solver="memspace"}`)
	assert.Contains(t, text, "gridpath_search_duration_seconds_bucket")
}
