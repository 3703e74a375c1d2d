package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hengadev/serde/profiles/sensortag"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_NoCommand(t *testing.T) {
	code, _, stderr := runCLI(t)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Usage: serdectl")
}

func TestRun_UnknownCommand(t *testing.T) {
	code, _, stderr := runCLI(t, "explode")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Unknown command: explode")
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := runCLI(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "serde v")
}

func TestRun_Decode(t *testing.T) {
	code, stdout, stderr := runCLI(t, "decode", "-uuid", "2a19", "-hex", "57")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "level: 87\n", stdout)

	code, stdout, stderr = runCLI(t, "decode", "-uuid", sensortag.AccelerometerDataUUID, "-hex", "01 02 ff", "-format", "json")
	require.Equal(t, 0, code, stderr)
	var values map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &values))
	assert.Equal(t, map[string]string{"x": "1", "y": "2", "z": "-1"}, values)

	code, stdout, stderr = runCLI(t, "decode", "-uuid", "f000aa21-0451-4000-b000-000000000000", "-hex", "0x00800080", "-format", "yaml")
	require.Equal(t, 0, code, stderr)
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &values))
	assert.Equal(t, "32768", values["humidity"])
}

func TestRun_DecodeFailures(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing uuid", []string{"decode", "-hex", "00"}, "-uuid is required"},
		{"unknown uuid", []string{"decode", "-uuid", "abcd", "-hex", "00"}, "unknown characteristic"},
		{"bad hex", []string{"decode", "-uuid", "2a19", "-hex", "zz"}, "invalid format"},
		{"invalid value", []string{"decode", "-uuid", "2a19", "-hex", "ff"}, "invalid raw value"},
		{"short payload", []string{"decode", "-uuid", "2a19", "-hex", ""}, "length mismatch"},
		{"bad format", []string{"decode", "-uuid", "2a19", "-hex", "01", "-format", "xml"}, "unknown format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr, tt.want)
		})
	}
}

func TestRun_Encode(t *testing.T) {
	code, stdout, stderr := runCLI(t, "encode", "-uuid", "2a06", "level=high")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "02\n", stdout)

	code, stdout, stderr = runCLI(t, "encode", "-uuid", sensortag.BarometerDataUUID, "temperature=1", "pressure=2")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "01000200\n", stdout)

	code, _, stderr = runCLI(t, "encode", "-uuid", "2a19", "level")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "expected key=value")

	code, _, stderr = runCLI(t, "encode", "-uuid", "2a19")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "missing string value")
}

func TestRun_List(t *testing.T) {
	code, stdout, stderr := runCLI(t, "list")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Battery (180f) [bluetooth-sig]")
	assert.Contains(t, stdout, "Barometer Calibration")

	code, stdout, stderr = runCLI(t, "list", "-tag", sensortag.Tag, "-format", "json")
	require.Equal(t, 0, code, stderr)
	var services []serviceInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &services))
	assert.Len(t, services, 5)
	for _, s := range services {
		assert.Equal(t, sensortag.Tag, s.Tag)
	}
}

func TestRun_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "serde.yaml")
	content := "text_encoding: latin1\nlogging:\n  enabled: true\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	code, stdout, stderr := runCLI(t, "-config", path, "encode", "-uuid", "2a00", "value=é")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "e9\n", stdout)
	assert.True(t, strings.Contains(stderr, "serde operation completed"), stderr)

	code, _, stderr = runCLI(t, "-config", filepath.Join(dir, "missing.yaml"), "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Failed to load config")
}

func TestRun_EnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("SERDE_ARRAY_PAIR_POLICY=bogus\n"), 0o600))

	code, _, stderr := runCLI(t, "-env", envFile, "list")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "invalid configuration")
}

func TestOrderedKeys(t *testing.T) {
	values := map[string]string{"b": "1", "a": "2", "z": "3", "y": "4"}
	assert.Equal(t, []string{"z", "a", "b", "y"}, orderedKeys([]string{"z", "a", "missing"}, values))
}
