package repo

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"
)

func TestNameFromURL(t *testing.T) {
	cases := map[string]string{
		"http://space.git":              "space",
		"https://host/org/space.git":    "space",
		"https://host/org/space":        "space",
		"https://host/org/space/":       "space",
		"git@host:org/space.git":        "space",
		"ssh://git@host:7999/space.git": "space",
		"space":                         "space",
	}
	for url, want := range cases {
		if got := NameFromURL(url); got != want {
			t.Fatalf("%s: got %q, want %q", url, got, want)
		}
	}
}

func TestNewDerivesName(t *testing.T) {
	r := New("http://space.git", "milky_way")
	if r.URL != "http://space.git" || r.Name != "space" || r.Branch != "milky_way" {
		t.Fatalf("unexpected repository: %+v", r)
	}
}

func TestFromWorkingCopy(t *testing.T) {
	dir := t.TempDir()
	gr, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := gr.CreateRemote(&gitconfig.RemoteConfig{
		Name: git.DefaultRemoteName,
		URLs: []string{"http://host/org/space.git"},
	}); err != nil {
		t.Fatalf("remote: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "README"), []byte("hi\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	wt, err := gr.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	if _, err := wt.Add("README"); err != nil {
		t.Fatalf("add: %v", err)
	}
	sig := &object.Signature{Name: "test", Email: "test@host", When: time.Now()}
	if _, err := wt.Commit("initial", &git.CommitOptions{Author: sig}); err != nil {
		t.Fatalf("commit: %v", err)
	}

	r, err := FromWorkingCopy(dir)
	if err != nil {
		t.Fatalf("from working copy: %v", err)
	}
	if r.URL != "http://host/org/space.git" || r.Name != "space" {
		t.Fatalf("unexpected repository: %+v", r)
	}
	if r.Branch == "" {
		t.Fatalf("expected a branch name")
	}
}

func TestFromWorkingCopyNotARepository(t *testing.T) {
	if _, err := FromWorkingCopy(t.TempDir()); err == nil {
		t.Fatalf("expected error")
	}
}
