package testing

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/flipclock/pkg/clockface"
)

// UpdateSnapshotsEnv names the variable that rewrites golden files.
const UpdateSnapshotsEnv = "FLIPCLOCK_UPDATE_SNAPSHOTS"

// TestingT is the subset of *testing.T used by MatchesFile, allowing
// test doubles to intercept failures.
type TestingT interface {
	Helper()
	Fatalf(format string, args ...any)
	Errorf(format string, args ...any)
	Name() string
}

// Snapshot wraps a face snapshot for golden-file comparison.
type Snapshot struct {
	clockface.Snapshot
}

// CaptureSnapshot captures the current face state.
func (ft *FaceTester) CaptureSnapshot() *Snapshot {
	return &Snapshot{Snapshot: ft.face.Snapshot()}
}

// MatchesFile compares this snapshot against a golden file. On mismatch it
// reports a diff and instructions for updating. When
// FLIPCLOCK_UPDATE_SNAPSHOTS=1 is set, the file is silently updated instead.
func (s *Snapshot) MatchesFile(t TestingT, path string) {
	t.Helper()

	if os.Getenv(UpdateSnapshotsEnv) == "1" {
		if err := s.UpdateFile(path); err != nil {
			t.Fatalf("failed to update snapshot: %v", err)
		}
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			t.Fatalf("snapshot file missing: %s\n\nTo create: %s=1 go test -run %s", path, UpdateSnapshotsEnv, t.Name())
			return
		}
		t.Fatalf("failed to load snapshot: %v", err)
		return
	}

	actual, err := s.marshal()
	if err != nil {
		t.Fatalf("failed to encode snapshot: %v", err)
		return
	}
	if diff := cmp.Diff(string(expected), string(actual)); diff != "" {
		t.Errorf("snapshot mismatch: %s (-want +got):\n%s\n\nTo update: %s=1 go test -run %s", path, diff, UpdateSnapshotsEnv, t.Name())
	}
}

// UpdateFile writes this snapshot to the given path, creating directories
// as needed.
func (s *Snapshot) UpdateFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := s.marshal()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func (s *Snapshot) marshal() ([]byte, error) {
	data, err := json.MarshalIndent(s.Snapshot, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
