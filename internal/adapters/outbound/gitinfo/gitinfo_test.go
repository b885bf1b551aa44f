package gitinfo_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-git/go-git/v5"
	"github.com/moneywise/moneywise/internal/adapters/outbound/gitinfo"
	"github.com/moneywise/moneywise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ domain.RepoLocator = (*gitinfo.GitInfoAdapter)(nil)

func initRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := git.PlainInit(dir, false)
	require.NoError(t, err)
	return dir
}

func TestGitInfo_RepoRoot_FromRoot(t *testing.T) {
	dir := initRepo(t)
	gi := gitinfo.New()

	root, err := gi.RepoRoot(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestGitInfo_RepoRoot_FromSubdirectory(t *testing.T) {
	dir := initRepo(t)
	sub := filepath.Join(dir, "web", "dashboard")
	require.NoError(t, os.MkdirAll(sub, 0755))

	gi := gitinfo.New()
	root, err := gi.RepoRoot(sub)
	require.NoError(t, err)
	assert.Equal(t, dir, root)
}

func TestGitInfo_RepoRoot_NotGitRepo(t *testing.T) {
	dir := t.TempDir()
	gi := gitinfo.New()
	_, err := gi.RepoRoot(dir)
	assert.Error(t, err)
}
