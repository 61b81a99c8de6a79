// Package repo carries the immutable description of the source repository
// jobs are generated for, and derives it from a local git working copy.
package repo

import (
	"fmt"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Repository identifies the source repository. Values are never mutated once
// created; the job pipeline only reads them.
type Repository struct {
	URL    string
	Name   string
	Branch string
}

// New builds a Repository with its name derived from the clone URL.
func New(url, branch string) *Repository {
	return &Repository{URL: url, Name: NameFromURL(url), Branch: branch}
}

// NameFromURL extracts the repository name from a clone URL: the last path
// segment with any trailing .git stripped. Handles scp-like URLs such as
// git@host:org/name.git.
func NameFromURL(url string) string {
	s := strings.TrimRight(url, "/")
	s = strings.TrimSuffix(s, ".git")
	if i := strings.LastIndexAny(s, "/:"); i >= 0 {
		s = s[i+1:]
	}
	return s
}

// FromWorkingCopy derives repository information from a local git checkout:
// the origin remote URL and the branch HEAD points at.
func FromWorkingCopy(path string) (*Repository, error) {
	r, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository %s: %w", path, err)
	}
	head, err := r.Head()
	if err != nil {
		return nil, fmt.Errorf("read HEAD: %w", err)
	}
	if !head.Name().IsBranch() {
		return nil, fmt.Errorf("repository %s: HEAD is not on a branch", path)
	}
	remote, err := r.Remote(git.DefaultRemoteName)
	if err != nil {
		return nil, fmt.Errorf("read origin remote: %w", err)
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return nil, fmt.Errorf("origin remote of %s has no URL", path)
	}
	return New(urls[0], head.Name().Short()), nil
}
