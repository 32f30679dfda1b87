package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		path string
		kind ChangeKind
		ok   bool
	}{
		{"prefabs/weapons.yaml", ChangeSpec, true},
		{"levels.YML", ChangeSpec, true},
		{"prefabs/scripts/adversary.tengo", ChangeScript, true},
		{"prefabs/scripts/old.lua", 0, false},
		{"prefabs/.weapons.yaml.swp", 0, false},
	}
	for _, c := range cases {
		t.Run(c.path, func(t *testing.T) {
			kind, ok := classify(c.path)
			assert.Equal(t, c.ok, ok)
			if ok {
				assert.Equal(t, c.kind, kind)
			}
		})
	}
}

func TestWatcherReportsEdits(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "weapons.yaml"), []byte("weapons: []"), 0o644))

	var got []Change
	require.Eventually(t, func() bool {
		got = append(got, w.Poll()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	for _, c := range got {
		assert.Equal(t, "weapons.yaml", c.Name)
		assert.Equal(t, ChangeSpec, c.Kind)
	}
}

func TestPollNilWatcher(t *testing.T) {
	var w *Watcher
	assert.Nil(t, w.Poll())
}
