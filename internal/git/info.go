// Package git reads the repository metadata shown on the debug page:
// commit hash, branch name, tags at HEAD, and dirty status.
package git

import (
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// shortHashLen matches the abbreviation used by `git log --oneline`
const shortHashLen = 7

// Info holds information about a git repository
type Info struct {
	// CommitHash is the current HEAD commit hash
	CommitHash string `yaml:"commit" json:"commit"`
	// Branch is the current branch name, empty on a detached HEAD
	Branch string `yaml:"branch,omitempty" json:"branch,omitempty"`
	// Tags is a list of tags pointing to the current commit
	Tags []string `yaml:"tags,omitempty" json:"tags,omitempty"`
	// IsDirty indicates if the working tree has uncommitted changes
	IsDirty bool `yaml:"dirty" json:"dirty"`
}

// ShortHash returns the abbreviated commit hash
func (i *Info) ShortHash() string {
	if len(i.CommitHash) <= shortHashLen {
		return i.CommitHash
	}
	return i.CommitHash[:shortHashLen]
}

// Describe returns a one-line summary such as "main@1a2b3c4 (dirty)"
func (i *Info) Describe() string {
	s := i.ShortHash()
	if i.Branch != "" {
		s = i.Branch + "@" + s
	}
	if i.IsDirty {
		s += " (dirty)"
	}
	return s
}

// GetInfo opens the repository that repoPath belongs to, seeking upwards for
// the .git directory, and reads its HEAD state.
func GetInfo(repoPath string) (*Info, error) {
	repo, err := git.PlainOpenWithOptions(repoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to find a Git repository that path %q belongs to: %w", repoPath, err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree for repository %q: %w", repoPath, err)
	}

	headRef, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("failed to get HEAD reference for repository %q: %w", repoPath, err)
	}

	var branch string
	if headRef.Name().IsBranch() {
		branch = headRef.Name().Short()
	}

	// Find all tags pointing to the current commit
	var tags []string
	tagRefs, err := repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	err = tagRefs.ForEach(func(ref *plumbing.Reference) error {
		revHash, err := repo.ResolveRevision(plumbing.Revision(ref.Name()))
		if err != nil {
			return fmt.Errorf("failed to get tag commit object for tag %q: %w", ref.Name().Short(), err)
		}
		if *revHash == headRef.Hash() {
			tags = append(tags, ref.Name().Short())
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over tags: %w", err)
	}

	status, err := worktree.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree status for repository %q: %w", repoPath, err)
	}

	return &Info{
		CommitHash: headRef.Hash().String(),
		Branch:     branch,
		Tags:       tags,
		IsDirty:    !status.IsClean(),
	}, nil
}
