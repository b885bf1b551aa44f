package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/moneywise/moneywise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "moneywise-e2e")
	if err != nil {
		panic(err)
	}

	binaryPath = filepath.Join(dir, "moneywise")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/moneywise")
	if out, err := cmd.CombinedOutput(); err != nil {
		os.RemoveAll(dir)
		panic("build failed: " + string(out))
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata", name))
	return abs
}

func run(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return stdout.String(), stderr.String(), exitCode
}

// --- Render Tests ---

func TestE2E_RenderDefaults(t *testing.T) {
	out, _, code := run(t, "", "render", "--config-dir", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "MoneyWise")
	assert.Contains(t, out, "2 new")
}

func TestE2E_RenderFixtureJSON(t *testing.T) {
	out, _, code := run(t, "", "render", "/dashboard/automation", "--json", "--config-dir", fixturePath("dashboard"))
	require.Equal(t, 0, code)

	var view domain.ShellView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "PennyPilot", view.Brand.Name)
	assert.Equal(t, "P", view.Brand.Mark)
	assert.Equal(t, "Search transactions...", view.Header.SearchPlaceholder)
	assert.Equal(t, "GH", view.Header.Profile.Initials)
	assert.Equal(t, "2 new", view.Header.Notifications.Badge)
	assert.Len(t, view.Header.Notifications.Items, 2, "preview limit from config")
	assert.Equal(t, 1, view.Header.Notifications.Items[0].ID, "ids assigned in order")
	assert.True(t, view.Sidebar.Entries[3].Active)
}

func TestE2E_RenderBadConfigExitsNonZero(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".moneywise.yaml"), []byte("{{{"), 0644))

	_, stderr, code := run(t, "", "render", "--config-dir", dir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "parsing .moneywise.yaml")
}

// --- Notification Tests ---

func TestE2E_NotificationsListJSON(t *testing.T) {
	out, _, code := run(t, "", "notifications", "list", "--json", "--config-dir", fixturePath("dashboard"))
	require.Equal(t, 0, code)

	var res struct {
		Notifications []domain.Notification `json:"notifications"`
		UnreadCount   int                   `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res.Notifications, 3)
	assert.Equal(t, 2, res.UnreadCount)
}

func TestE2E_NotificationsRead(t *testing.T) {
	out, _, code := run(t, "", "notifications", "read", "1", "2", "--config-dir", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Equal(t, "marked 2 of 2; 0 unread\n", out)
}

// --- Shell Tests ---

func TestE2E_ShellScript(t *testing.T) {
	out, _, code := run(t, "go /dashboard/settings\nread all\nunread\nquit\n", "shell", "--config-dir", t.TempDir())
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "at /dashboard/settings (Settings)")
	assert.Contains(t, out, "marked 2 read; 0 unread")
	assert.NotContains(t, out, "moneywise>")
}

// --- Version ---

func TestE2E_Version(t *testing.T) {
	out, _, code := run(t, "", "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "moneywise")
}
