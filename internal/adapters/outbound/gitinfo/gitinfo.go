package gitinfo

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
)

// GitInfoAdapter implements domain.GitInfo using go-git.
type GitInfoAdapter struct{}

func New() *GitInfoAdapter {
	return &GitInfoAdapter{}
}

func open(projectPath string) (*git.Repository, error) {
	return git.PlainOpenWithOptions(projectPath, &git.PlainOpenOptions{DetectDotGit: true})
}

func (g *GitInfoAdapter) IsGitRepo(projectPath string) bool {
	_, err := open(projectPath)
	return err == nil
}

// LastCommitFiles returns the paths touched by HEAD relative to its first
// parent, the same set `git diff --name-only HEAD~1...` prints.
func (g *GitInfoAdapter) LastCommitFiles(projectPath string) ([]string, error) {
	repo, err := open(projectPath)
	if err != nil {
		return nil, fmt.Errorf("opening git repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("getting HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("reading HEAD commit: %w", err)
	}

	stats, err := commit.Stats()
	if err != nil {
		return nil, fmt.Errorf("diffing HEAD: %w", err)
	}

	files := make([]string, 0, len(stats))
	for _, s := range stats {
		name := s.Name
		// renames are reported as "old => new"
		if _, to, ok := strings.Cut(name, " => "); ok {
			name = to
		}
		files = append(files, name)
	}
	sort.Strings(files)
	return files, nil
}
