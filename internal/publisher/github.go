package publisher

import (
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/jiundev/gongmo/internal/logger"
)

// GitPublisher commits and pushes the static-site artifacts.
type GitPublisher struct {
	repoPath string
	remote   string
	branch   string
}

// NewGitPublisher creates a publisher for the repository at repoPath.
func NewGitPublisher(repoPath, remote, branch string) *GitPublisher {
	return &GitPublisher{repoPath: repoPath, remote: remote, branch: branch}
}

// Publish stages, commits and pushes any pending changes. A clean tree is
// reported as published=false with no error.
func (p *GitPublisher) Publish(message string) (bool, error) {
	changed, err := p.hasChanges()
	if err != nil {
		return false, err
	}
	if !changed {
		logger.Info("no changes to publish", nil)
		return false, nil
	}

	if message == "" {
		message = fmt.Sprintf("Update IPO data - %s", time.Now().Format("2006-01-02 15:04"))
	}

	if _, err := p.git("add", "."); err != nil {
		return false, fmt.Errorf("git add: %w", err)
	}
	if _, err := p.git("commit", "-m", message); err != nil {
		return false, fmt.Errorf("git commit: %w", err)
	}
	if _, err := p.git("push", p.remote, p.branch); err != nil {
		return false, fmt.Errorf("git push: %w", err)
	}

	logger.Info("published", logger.Fields{"message": message})
	return true, nil
}

func (p *GitPublisher) hasChanges() (bool, error) {
	out, err := p.git("status", "--porcelain")
	if err != nil {
		return false, fmt.Errorf("git status: %w", err)
	}
	return strings.TrimSpace(out) != "", nil
}

func (p *GitPublisher) git(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = p.repoPath

	out, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s: %s: %w", strings.Join(args, " "), strings.TrimSpace(string(out)), err)
	}
	return string(out), nil
}
