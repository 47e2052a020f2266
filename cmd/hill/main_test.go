package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hillcipher/matrix"
)

// run executes the CLI with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestEncryptDecrypt(t *testing.T) {
	out, err := run(t, "", "encrypt", "--key", "3,3;2,5", "HELLO")
	require.NoError(t, err)
	assert.Equal(t, "HIOZHN\n", out)

	out, err = run(t, "", "decrypt", "-k", "3,3;2,5", "HIOZHN")
	require.NoError(t, err)
	assert.Equal(t, "HELLOX\n", out)
}

func TestEncrypt_Stdin(t *testing.T) {
	out, err := run(t, "attack at dawn\n", "encrypt", "--key", "6,24,1;13,16,10;20,17,15")
	require.NoError(t, err)
	assert.Equal(t, "HAKGCCRWEVOX\n", out)
}

func TestEncrypt_PadFlag(t *testing.T) {
	out, err := run(t, "", "encrypt", "--key", "3,3;2,5", "--pad", "q", "HEL")
	require.NoError(t, err)
	assert.Equal(t, "HIDY\n", out)

	_, err = run(t, "", "encrypt", "--key", "3,3;2,5", "--pad", "QQ", "HEL")
	require.Error(t, err)
}

func TestDecrypt_NotInvertible(t *testing.T) {
	out, err := run(t, "", "decrypt", "--key", "2,4;9,15", "ABCD")
	require.ErrorIs(t, err, matrix.ErrKeyNotInvertible)
	assert.Empty(t, out)
}

func TestHugeKeyEntries(t *testing.T) {
	out, err := run(t, "", "encrypt", "--key", "9223372036854775807", "Z")
	require.NoError(t, err)
	assert.Equal(t, "T\n", out)

	out, err = run(t, "", "inverse", "--key", "9223372036854775807,2;2,9223372036854775807")
	require.NoError(t, err)
	assert.Equal(t, "25,4;4,25\n", out)
}

func TestCheck(t *testing.T) {
	out, err := run(t, "", "check", "--key", "3,3;2,5")
	require.NoError(t, err)
	assert.Contains(t, out, "key is invertible mod 26")
	assert.Contains(t, out, "[3, 3]\n[2, 5]")

	out, err = run(t, "", "check", "--key", "2,4;9,15")
	require.ErrorIs(t, err, matrix.ErrKeyNotInvertible)
	assert.Contains(t, out, "NOT invertible")
}

func TestInverse(t *testing.T) {
	out, err := run(t, "", "inverse", "--key", "6,24,1;13,16,10;20,17,15")
	require.NoError(t, err)
	assert.Equal(t, "8,5,10;21,8,21;21,12,8\n", out)
}

func TestKeyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.yaml")
	require.NoError(t, os.WriteFile(path, []byte("key:\n  - [3, 3]\n  - [2, 5]\npad: Q\n"), 0o600))

	out, err := run(t, "", "encrypt", "--key-file", path, "HEL")
	require.NoError(t, err)
	assert.Equal(t, "HIDY\n", out)

	// --pad wins over the file
	out, err = run(t, "", "encrypt", "--key-file", path, "--pad", "X", "HEL")
	require.NoError(t, err)
	assert.Equal(t, "HIYH\n", out)
	assert.Equal(t, mustEncrypt(t, "HELX"), out)
}

func TestKeyErrors(t *testing.T) {
	_, err := run(t, "", "encrypt", "HELLO")
	require.ErrorContains(t, err, "no key given")

	_, err = run(t, "", "encrypt", "--key", "3,3;2", "HELLO")
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = run(t, "", "check", "--key", "1", "--key-file", "k.yaml")
	require.Error(t, err)
}

func mustEncrypt(t *testing.T, text string) string {
	t.Helper()
	out, err := run(t, "", "encrypt", "--key", "3,3;2,5", text)
	require.NoError(t, err)

	return out
}
