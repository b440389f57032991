package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBetweenCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no bounds", nil, "a0"},
		{"after only", []string{"--after", "a0"}, "a1"},
		{"before only", []string{"--before", "a0"}, "Zz"},
		{"both bounds", []string{"--after", "a0", "--before", "a1"}, "a0V"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, code := runCLI(t, append([]string{"between"}, tt.args...)...)
			require.Equal(t, ExitSuccess, code)
			assert.Equal(t, tt.want+"\n", stdout)
		})
	}
}

func TestBetweenCommand_JSON(t *testing.T) {
	stdout, _, code := runCLI(t, "--format", "json", "between", "--after", "a0", "--before", "a1")
	require.Equal(t, ExitSuccess, code)

	var result KeysResult
	decodeData(t, stdout, &result)
	assert.Equal(t, "a0", result.After)
	assert.Equal(t, "a1", result.Before)
	assert.Equal(t, []string{"a0V"}, result.Keys)
}

func TestBetweenCommand_Rejected(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code string
	}{
		{"reversed bounds", []string{"--after", "a1", "--before", "a0"}, "ORDER_VIOLATION"},
		{"equal bounds", []string{"--after", "a1", "--before", "a1"}, "ORDER_VIOLATION"},
		{"malformed key", []string{"--after", "a00"}, "INVALID_KEY"},
		{"bad head", []string{"--before", "!"}, "INVALID_KEY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, code := runCLI(t, append([]string{"--format", "json", "between"}, tt.args...)...)
			assert.Equal(t, ExitFailure, code)

			var resp CLIResponse
			require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
			assert.Equal(t, "error", resp.Status)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.code, resp.Error.Code)
		})
	}
}

func TestBetweenCommand_TextError(t *testing.T) {
	stdout, stderr, code := runCLI(t, "between", "--after", "a1", "--before", "a0")
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error [ORDER_VIOLATION]")
}

func TestNKeysCommand(t *testing.T) {
	stdout, _, code := runCLI(t, "nkeys", "-n", "5")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "a0\na1\na2\na3\na4\n", stdout)
}

func TestNKeysCommand_Between(t *testing.T) {
	stdout, _, code := runCLI(t, "--format", "json", "nkeys", "-n", "3", "--after", "a0", "--before", "a1")
	require.Equal(t, ExitSuccess, code)

	var result KeysResult
	decodeData(t, stdout, &result)
	require.Len(t, result.Keys, 3)
	prev := "a0"
	for _, k := range result.Keys {
		assert.Less(t, prev, k)
		prev = k
	}
	assert.Less(t, prev, "a1")
}

func TestNKeysCommand_Zero(t *testing.T) {
	stdout, _, code := runCLI(t, "--format", "json", "nkeys", "-n", "0")
	require.Equal(t, ExitSuccess, code)

	var result KeysResult
	decodeData(t, stdout, &result)
	assert.Empty(t, result.Keys)
}

func TestNKeysCommand_Negative(t *testing.T) {
	_, stderr, code := runCLI(t, "nkeys", "-n", "-1")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "must not be negative")
}

func TestValidateCommand(t *testing.T) {
	stdout, _, code := runCLI(t, "validate", "a0", "a0V", "Zz")
	require.Equal(t, ExitSuccess, code)
	assert.Equal(t, "ok   a0\nok   a0V\nok   Zz\n", stdout)
}

func TestValidateCommand_Invalid(t *testing.T) {
	stdout, stderr, code := runCLI(t, "--format", "json", "validate", "a0", "a00", "b0")
	assert.Equal(t, ExitFailure, code)
	assert.Empty(t, stderr)

	var result ValidateResult
	decodeData(t, stdout, &result)
	assert.Equal(t, 2, result.Invalid)
	require.Len(t, result.Results, 3)
	assert.True(t, result.Results[0].Valid)
	assert.False(t, result.Results[1].Valid)
	assert.Contains(t, result.Results[1].Error, "INVALID_KEY")
	assert.False(t, result.Results[2].Valid)
}

func TestValidateCommand_MissingArgs(t *testing.T) {
	_, stderr, code := runCLI(t, "validate")
	assert.Equal(t, ExitCommandError, code)
	assert.Contains(t, stderr, "requires at least 1 arg")
}
