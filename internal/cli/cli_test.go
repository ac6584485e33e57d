package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidar/dsc-roster/internal/app"
	"github.com/aidar/dsc-roster/internal/repository/memory"
)

func newAPI(t *testing.T) string {
	t.Helper()
	router := app.NewRouter(memory.NewMemberRepository(), nil, []string{"*"}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv.URL
}

// run выполняет rosterctl и возвращает stdout и stderr
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand(strings.NewReader(stdin), &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func firstID(t *testing.T, listing string) string {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(listing), "\n")
	require.GreaterOrEqual(t, len(lines), 2, listing)
	fields := strings.Fields(lines[1])
	require.NotEmpty(t, fields)
	return fields[0]
}

func TestCLI_Version(t *testing.T) {
	t.Setenv("ROSTER_BASE_URL", "")

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "rosterctl dev\n", out)
}

func TestCLI_RequiresBaseURL(t *testing.T) {
	t.Setenv("ROSTER_BASE_URL", "")

	_, _, err := run(t, "", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ROSTER_BASE_URL")
}

func TestCLI_CrudFlow(t *testing.T) {
	base := newAPI(t)

	out, _, err := run(t, "", "list", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "No team members yet.")

	out, _, err = run(t, "", "add", "--base-url", base, "--name", "Ada", "--role", "Lead")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada")
	assert.Contains(t, out, photoPlaceholder)
	id := firstID(t, out)

	out, _, err = run(t, "", "edit", id, "--base-url", base, "--description", "x", "--name", "Ada L.")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada L.")
	assert.Contains(t, out, "Lead")
	assert.Equal(t, id, firstID(t, out))

	out, _, err = run(t, "n\n", "remove", id, "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "Are you sure you want to delete this member? [y/N]: ")
	assert.Contains(t, out, "Nothing was deleted.")

	out, _, err = run(t, "y\n", "remove", id, "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "No team members yet.")
}

func TestCLI_AddRequiresNameAndRole(t *testing.T) {
	base := newAPI(t)

	_, _, err := run(t, "", "add", "--base-url", base, "--name", "Ada")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name and role are required")
}

func TestCLI_EditUnknownIDIsNotSaved(t *testing.T) {
	base := newAPI(t)

	_, errOut, err := run(t, "", "edit", "missing", "--base-url", base, "--name", "X", "--role", "Y")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not saved")
	assert.Contains(t, errOut, "Error saving team member")
}

func TestCLI_RemoveWithYesFlag(t *testing.T) {
	base := newAPI(t)

	out, _, err := run(t, "", "add", "--base-url", base, "--name", "Ada", "--role", "Lead")
	require.NoError(t, err)
	id := firstID(t, out)

	out, _, err = run(t, "", "rm", id, "-y", "--base-url", base)
	require.NoError(t, err)
	assert.NotContains(t, out, "Are you sure")
	assert.Contains(t, out, "No team members yet.")
}

func TestCLI_About(t *testing.T) {
	base := newAPI(t)

	out, _, err := run(t, "", "about", "--base-url", base)
	require.NoError(t, err)
	assert.Contains(t, out, "Developer Students Club")
	assert.Contains(t, out, "Hackathons and coding competitions")
}

func TestCLI_ListWhenServiceDown(t *testing.T) {
	srv := httptest.NewServer(nil)
	base := srv.URL
	srv.Close()

	out, errOut, err := run(t, "", "list", "--base-url", base)
	require.NoError(t, err, "list failures are logged, not returned")
	assert.Contains(t, out, "No team members yet.")
	assert.Contains(t, errOut, "Error fetching team members")
}

func TestCLI_Splash(t *testing.T) {
	base := newAPI(t)
	t.Setenv("ROSTER_SPLASH_DURATION", "1ms")

	out, _, err := run(t, "", "home", "--splash", "--base-url", base)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "</>\nDeveloper Students Club\nSRM IST RMP\n"))
	assert.Contains(t, out, "Welcome to the Developer Students Club.")
}
