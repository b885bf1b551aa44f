package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moneywise/moneywise/internal/adapters/inbound/cli"
	"github.com/moneywise/moneywise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command with a private config dir and returns stdout.
func run(t *testing.T, dir string, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config-dir", dir, "--log-level", "error"}, args...))
	err := cmd.Execute()
	return buf.String(), err
}

func TestCommandsHaveHelp(t *testing.T) {
	for _, args := range [][]string{
		{"--help"},
		{"version", "--help"},
		{"render", "--help"},
		{"nav", "--help"},
		{"notifications", "--help"},
		{"notifications", "list", "--help"},
		{"notifications", "read", "--help"},
		{"shell", "--help"},
		{"serve", "--help"},
		{"mcp", "--help"},
		{"mcp", "serve", "--help"},
	} {
		cmd := cli.NewRootCmdForTest()
		cmd.SetOut(new(bytes.Buffer))
		cmd.SetArgs(args)
		assert.NoError(t, cmd.Execute(), strings.Join(args, " "))
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "moneywise dev")
}

func TestRenderCommand_DefaultTUI(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "render", "--content", "Hello there")
	require.NoError(t, err)
	assert.Contains(t, out, "MoneyWise")
	assert.Contains(t, out, "Overview")
	assert.Contains(t, out, "2 new")
	assert.Contains(t, out, "Hello there")
}

func TestRenderCommand_JSON(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "render", domain.PathInsights, "--json", "--sidebar-open")
	require.NoError(t, err)

	var view domain.ShellView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, domain.PathInsights, view.CurrentPath)
	assert.True(t, view.Sidebar.Open)
	assert.Equal(t, domain.IconClose, view.Header.ToggleIcon)
	assert.True(t, view.Sidebar.Entries[1].Active)
}

func TestRenderCommand_UsesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".moneywise.yaml"), []byte(`
brand: PennyPilot
user:
  name: Ada Lovelace
notifications: []
`), 0644))

	out, err := run(t, dir, "", "render", "--json")
	require.NoError(t, err)

	var view domain.ShellView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "PennyPilot", view.Brand.Name)
	assert.Equal(t, "AL", view.Header.Profile.Initials)
	assert.True(t, view.Header.Notifications.Empty)
	assert.Empty(t, view.Header.Notifications.Badge)
}

func TestRenderCommand_BadConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".moneywise.yaml"), []byte("preview_limit: -2\n"), 0644))

	_, err := run(t, dir, "", "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config")
}

func TestNavCommand_JSON(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "nav", domain.PathSettings, "--json")
	require.NoError(t, err)

	var nav struct {
		Path    string            `json:"path"`
		Entries []domain.NavEntry `json:"entries"`
		Active  *domain.NavItem   `json:"active"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &nav))
	require.NotNil(t, nav.Active)
	assert.Equal(t, "Settings", nav.Active.Label)
	assert.Len(t, nav.Entries, 6)
}

func TestNavCommand_NoPrefixMatch(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "nav", "/dashboard/settings/security")
	require.NoError(t, err)
	assert.Contains(t, out, "No item matches this path.")
}

func TestNotificationsList(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "notifications", "list", "--unread", "--json")
	require.NoError(t, err)

	var res struct {
		Notifications []domain.Notification `json:"notifications"`
		UnreadCount   int                   `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Notifications, 2)
	assert.Equal(t, 2, res.UnreadCount)
}

func TestNotificationsList_TUI(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "notifications", "list", "--limit", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Portfolio update")
	assert.NotContains(t, out, "Account security")
}

func TestNotificationsList_NegativeLimit(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "notifications", "list", "--limit", "-1")
	assert.Error(t, err)
}

func TestNotificationsRead(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "notifications", "read", "1", "3", "42")
	require.NoError(t, err)
	assert.Equal(t, "marked 1 of 3; 1 unread\n", out)
}

func TestNotificationsRead_InvalidID(t *testing.T) {
	_, err := run(t, t.TempDir(), "", "notifications", "read", "first")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid notification id "first"`)
}

func TestLogLevelFlagRejectsUnknownLevels(t *testing.T) {
	for _, lvl := range []string{"fatal", "panic", "dpanic", "loud"} {
		_, err := run(t, t.TempDir(), "", "--log-level", lvl, "nav")
		require.Error(t, err, lvl)
		assert.Contains(t, err.Error(), "invalid --log-level", lvl)
		assert.Contains(t, err.Error(), `unknown log.level "`+lvl+`"`, lvl)
	}
}

func TestShellSession(t *testing.T) {
	script := strings.Join([]string{
		"toggle",
		"read 1",
		"read 1",
		"go /dashboard/insights",
		"go /dashboard/insights/q3",
		"unread",
		"history",
		"bogus",
		"quit",
		"render",
	}, "\n")

	out, err := run(t, t.TempDir(), script, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "sidebar open")
	assert.Contains(t, out, "marked #1 read; 1 unread")
	assert.Contains(t, out, "nothing changed; 1 unread")
	assert.Contains(t, out, "at /dashboard/insights (Insights)")
	assert.Contains(t, out, "at /dashboard/insights/q3 (no matching nav item)")
	assert.Contains(t, out, "1 unread (1 new)")
	assert.Contains(t, out, "  1  /dashboard\n")
	assert.Contains(t, out, "  3  /dashboard/insights/q3\n")
	assert.Contains(t, out, `unknown command "bogus"`)
	assert.NotContains(t, out, "Overview", "commands after quit are not run")
	assert.NotContains(t, out, "moneywise>", "no prompt without a terminal")
}

func TestShellSession_Back(t *testing.T) {
	script := strings.Join([]string{
		"go /dashboard/insights",
		"go /dashboard/settings",
		"back",
		"back",
		"back",
		"history",
	}, "\n")

	out, err := run(t, t.TempDir(), script, "shell")
	require.NoError(t, err)

	assert.Contains(t, out, "at /dashboard/settings (Settings)")
	assert.Contains(t, out, "at /dashboard/insights (Insights)")
	assert.Equal(t, 2, strings.Count(out, "at /dashboard (Overview)"), "the starting path is never popped")
	assert.Contains(t, out, "  1  /dashboard\n")
	assert.NotContains(t, out, "  2  ")
}

func TestShellSession_ReadAllAndList(t *testing.T) {
	out, err := run(t, t.TempDir(), "read all\nlist 2\nunread\n", "shell", "--route", domain.PathNotifications)
	require.NoError(t, err)

	assert.Contains(t, out, "marked 2 read; 0 unread")
	assert.Contains(t, out, "Portfolio update")
	assert.Contains(t, out, "New feature")
	assert.NotContains(t, out, "Account security")
	assert.Contains(t, out, "0 unread\n")
}

func TestShellSession_Render(t *testing.T) {
	out, err := run(t, t.TempDir(), "render\n", "shell", "--route", domain.PathAutomation)
	require.NoError(t, err)
	assert.Contains(t, out, "Automation")
	assert.Contains(t, out, "MoneyWise")
}
