package testhelpers

import (
	"testing"
)

// Scene is a test fixture: a temporary Git repository with an initial commit.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for extra scene setup.
type SceneSetup func(*Scene) error

// NewScene creates a scene in t.TempDir(). The repository starts on main
// with a single commit, so task branches can be created immediately.
// Cleanup is automatic. Scenes never chdir, so tests can run in parallel.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	dir := t.TempDir()
	repo, err := NewGitRepo(dir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	if err := repo.CreateInitialCommit(); err != nil {
		t.Fatalf("Failed to create initial commit: %v", err)
	}

	scene := &Scene{Dir: dir, Repo: repo}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}
