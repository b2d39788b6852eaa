// Package deploy publishes a generated gallery tree to a git hosting
// branch (GitHub Pages style) using git plumbing commands.
package deploy

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
)

const binaryName = "git"

// IsAvailable returns true if git is found in $PATH.
func IsAvailable() bool {
	_, err := exec.LookPath(binaryName)
	return err == nil
}

// Deployer pushes an output tree to a branch of the repository in the
// current working directory.
type Deployer struct {
	Output  string // gallery tree to publish
	Branch  string // target branch, e.g. gh-pages
	Message string // commit message
	Remote  string // push target, defaults to origin
	DryRun  bool   // list files, change nothing
	Logger  *log.Logger
}

// Run validates the output tree and publishes it. The tree must contain
// index.html and a sprites/ directory; anything less means the pipeline
// has not been run yet and deploying would serve a broken page.
//
// In dry-run mode the file list is printed and no state changes at all,
// not even .nojekyll.
func (d *Deployer) Run(ctx context.Context) error {
	logger := d.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	branch := d.Branch
	if branch == "" {
		branch = "gh-pages"
	}
	message := d.Message
	if message == "" {
		message = "Update gallery"
	}
	remote := d.Remote
	if remote == "" {
		remote = "origin"
	}

	if err := d.validate(); err != nil {
		return err
	}

	files, err := collectFiles(d.Output)
	if err != nil {
		return fmt.Errorf("failed to enumerate output tree: %w", err)
	}

	if d.DryRun {
		logger.Info("Dry run, nothing will be pushed", "branch", branch, "files", len(files))
		for _, f := range files {
			fmt.Println("  " + f)
		}
		return nil
	}

	// GitHub Pages skips Jekyll processing when this marker exists
	nojekyll := filepath.Join(d.Output, ".nojekyll")
	if err := os.WriteFile(nojekyll, nil, 0o644); err != nil {
		return fmt.Errorf("failed to write .nojekyll: %w", err)
	}

	commit, err := d.commitTree(ctx, branch, message)
	if err != nil {
		return err
	}
	if _, err := git(ctx, nil, "update-ref", "refs/heads/"+branch, commit); err != nil {
		return err
	}
	if _, err := git(ctx, nil, "push", "-f", remote, branch); err != nil {
		return err
	}

	logger.Info("Gallery deployed", "branch", branch, "commit", commit[:12], "files", len(files))
	return nil
}

func (d *Deployer) validate() error {
	if _, err := os.Stat(d.Output); err != nil {
		return fmt.Errorf("output directory not found: %s", d.Output)
	}
	if _, err := os.Stat(filepath.Join(d.Output, "index.html")); err != nil {
		return fmt.Errorf("no index.html in %s (generate the gallery first)", d.Output)
	}
	if info, err := os.Stat(filepath.Join(d.Output, "sprites")); err != nil || !info.IsDir() {
		return fmt.Errorf("no sprites directory in %s (run extraction first)", d.Output)
	}
	return nil
}

// commitTree stages the output directory into a throwaway index, writes
// it as a tree object, and commits it on top of the branch tip when one
// exists. The working tree and the real index are never touched.
func (d *Deployer) commitTree(ctx context.Context, branch, message string) (string, error) {
	idx, err := os.CreateTemp("", "pinacotheca-index-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp index: %w", err)
	}
	idx.Close()
	os.Remove(idx.Name())
	defer os.Remove(idx.Name())

	env := append(os.Environ(), "GIT_INDEX_FILE="+idx.Name())

	if _, err := git(ctx, env, "--work-tree", d.Output, "add", "-A"); err != nil {
		return "", err
	}
	tree, err := git(ctx, env, "write-tree")
	if err != nil {
		return "", err
	}

	args := []string{"commit-tree", tree, "-m", message}
	if parent, err := git(ctx, nil, "rev-parse", "--verify", "--quiet", "refs/heads/"+branch); err == nil && parent != "" {
		args = append(args, "-p", parent)
	}
	return git(ctx, env, args...)
}

func git(ctx context.Context, env []string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, binaryName, args...)
	cmd.Env = env
	var stderr strings.Builder
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w\noutput: %s",
			args[0], err, strings.TrimSpace(stderr.String()))
	}
	return strings.TrimSpace(string(out)), nil
}

// collectFiles returns every regular file under root as a sorted
// slash-separated relative path.
func collectFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
