package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"annoscape/source"
)

func TestWatcherSeesNewLabel(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "siren"), 0755); err != nil {
		t.Fatal(err)
	}

	changes := make(chan []string, 4)
	w, err := New(dir, func(labels []string) {
		changes <- labels
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()

	assert := assert.New(t)
	assert.Equal(w.Labels(), []string{"siren"})

	w.Start()
	if err := os.Mkdir(filepath.Join(dir, "dog_bark"), 0755); err != nil {
		t.Fatal(err)
	}

	select {
	case labels := <-changes:
		assert.Equal(labels, []string{"dog_bark", "siren"})
	case <-time.After(5 * time.Second):
		t.Fatal("no refresh arrived")
	}
	assert.Equal(w.Labels(), []string{"dog_bark", "siren"})
}

func TestWatcherIgnoresUnchangedInventory(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "siren"), 0755); err != nil {
		t.Fatal(err)
	}

	changes := make(chan []string, 4)
	w, err := New(dir, func(labels []string) {
		changes <- labels
	})
	if err != nil {
		t.Fatal(err)
	}
	defer w.Stop()
	w.Start()

	// plain files are not labels, so the inventory stays the same
	if err := os.WriteFile(filepath.Join(dir, "stray.wav"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case labels := <-changes:
		t.Fatalf("unexpected refresh: %v", labels)
	case <-time.After(1500 * time.Millisecond):
	}
}

func TestWatcherRejectsMissingFolder(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), nil)

	assert := assert.New(t)
	assert.Nil(w)
	assert.ErrorIs(err, source.ErrInvalidFolder)
}
