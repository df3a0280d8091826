package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"AgenciaContable/internal/auth"
)

func init() {
	auth.Cost = bcrypt.MinCost
}

func TestReadPasswordFromPipe(t *testing.T) {
	pw, err := readPassword(strings.NewReader("s3cret\r\nignored\n"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "s3cret", pw)

	pw, err = readPassword(strings.NewReader("no-newline"), &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "no-newline", pw)
}

func TestHashPasswordCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetIn(strings.NewReader("ChangeMe123!\n"))
	root.SetArgs([]string{"hash-password"})
	require.NoError(t, root.ExecuteContext(context.Background()))

	hash := strings.TrimSpace(out.String())
	assert.True(t, auth.VerifyPassword("ChangeMe123!", hash))
}

func TestAdminCommands(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "cli.db")
	t.Setenv("DATABASE_URL", "sqlite:///"+dbPath)
	t.Setenv("LOG_LEVEL", "error")

	run := func(args ...string) string {
		t.Helper()
		root := newRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(args)
		require.NoError(t, root.ExecuteContext(context.Background()), args)
		return out.String()
	}

	run("seed")
	run("admin", "create", "editor", "--password", "pw-1")
	run("admin", "passwd", "editor", "--password", "pw-2")

	out := run("admin", "list")
	assert.Contains(t, out, "superadmin")
	assert.Contains(t, out, "editor")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"admin", "create", "editor", "--password", "x"})
	assert.ErrorContains(t, root.ExecuteContext(context.Background()), "already exists")
}
