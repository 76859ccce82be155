package git

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func TestParseGraph(t *testing.T) {
	t.Parallel()

	out := "* COMMIT:abc1234| (HEAD -> main, origin/main)|feat(api): add endpoint\n" +
		"|\\  \n" +
		"| * COMMIT:def5678||fix: a | b\n" +
		"* COMMIT:0123abc||plain message"

	lines := ParseGraph(out)
	require.Len(t, lines, 4)

	require.Equal(t, GraphLine{
		GraphChars: "* ",
		Hash:       "abc1234",
		Refs:       "(HEAD -> main, origin/main)",
		Message:    "feat(api): add endpoint",
		IsCommit:   true,
	}, lines[0])
	require.False(t, lines[1].IsCommit)
	require.Equal(t, "|\\  ", lines[1].GraphChars)
	require.Equal(t, "| * ", lines[2].GraphChars)
	require.Equal(t, "fix: a | b", lines[2].Message)
	require.Empty(t, lines[2].Refs)

	require.Nil(t, ParseGraph(""))
}

func TestParseCommits(t *testing.T) {
	t.Parallel()

	commits := parseCommits("abc|Ada|2 days ago|feat: x | y\n\nbad line\n")
	require.Equal(t, []CommitInfo{{Hash: "abc", Author: "Ada", RelativeDate: "2 days ago", Subject: "feat: x | y"}}, commits)
}

func TestRefFilter(t *testing.T) {
	t.Parallel()

	gitDir := filepath.Join("repo", ".git")
	f := refFilter(gitDir)

	require.True(t, f(fsnotify.Event{Name: filepath.Join(gitDir, "HEAD")}))
	require.True(t, f(fsnotify.Event{Name: filepath.Join(gitDir, "packed-refs")}))
	require.True(t, f(fsnotify.Event{Name: filepath.Join(gitDir, "refs", "heads", "main")}))
	require.False(t, f(fsnotify.Event{Name: filepath.Join(gitDir, "refs", "heads", "main.lock")}))
	require.False(t, f(fsnotify.Event{Name: filepath.Join(gitDir, "index")}))
	require.False(t, f(fsnotify.Event{Name: filepath.Join(gitDir, "HEAD.lock")}))
}

func initRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		_, err := RunGit(dir, args...)
		require.NoError(t, err)
	}
	run("init", "-q", "-b", "main")
	run("config", "user.email", "dev@example.com")
	run("config", "user.name", "Dev")
	run("config", "commit.gpgsign", "false")
	return dir
}

func commit(t *testing.T, dir, msg string) {
	t.Helper()
	f := filepath.Join(dir, "file.txt")
	data, _ := os.ReadFile(f)
	require.NoError(t, os.WriteFile(f, append(data, []byte(msg+"\n")...), 0o644))
	_, err := RunGit(dir, "add", ".")
	require.NoError(t, err)
	_, err = RunGit(dir, "commit", "-q", "-m", msg)
	require.NoError(t, err)
}

func TestGetGraphPages(t *testing.T) {
	dir := initRepo(t)
	commit(t, dir, "feat: one")
	commit(t, dir, "fix(core): two")
	commit(t, dir, "docs: three")

	first, err := GetGraph(dir, 2, 0)
	require.NoError(t, err)
	require.Len(t, first, 2)
	require.Equal(t, "docs: three", first[0].Message)

	rest, err := GetGraph(dir, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	require.Equal(t, "feat: one", rest[0].Message)

	commits, err := GetCommits(dir, 10)
	require.NoError(t, err)
	require.Len(t, commits, 3)
	require.Equal(t, "Dev", commits[0].Author)

	branch, err := CurrentBranch(dir)
	require.NoError(t, err)
	require.Equal(t, "main", branch)
}

func TestWatchRepoSignalsOnCommit(t *testing.T) {
	dir := initRepo(t)
	commit(t, dir, "feat: one")

	w, err := WatchRepo(dir)
	require.NoError(t, err)
	defer w.Stop()

	commit(t, dir, "fix: two")

	select {
	case <-w.Events():
	case <-time.After(3 * time.Second):
		t.Fatal("commit did not signal")
	}
}
