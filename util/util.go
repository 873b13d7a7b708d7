package util

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// GatherMidiPaths walks a folder tree and collects midi file paths, up to
// maxNum of them (0 means no limit).
func GatherMidiPaths(path string, maxNum int) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			if strings.HasSuffix(s, ".mid") || strings.HasSuffix(s, ".midi") {
				if maxNum == 0 || len(res) < maxNum {
					res = append(res, s)
				}
			}
		}
		return nil
	}
	if err := filepath.WalkDir(path, walk); err != nil {
		return nil, err
	}
	return res, nil
}

func GetKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

func Sum[A constraints.Integer](nums []A) uint64 {
	var total uint64
	for _, v := range nums {
		total += uint64(v)
	}
	return total
}

// TempFiles tracks scratch files so a whole batch can be closed and removed
// together no matter how the work that created them exits. Typical use:
//
//	var tmp util.TempFiles
//	defer tmp.Close()
type TempFiles struct {
	files []*os.File
}

// New creates and tracks a scratch file with the given extension.
func (t *TempFiles) New(ext string) (*os.File, error) {
	path := filepath.Join(os.TempDir(), "annoscape-"+uuid.New().String()+ext)
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	t.files = append(t.files, f)
	return f, nil
}

// Add tracks an already-open file.
func (t *TempFiles) Add(f *os.File) {
	t.files = append(t.files, f)
}

// Close closes and removes every tracked file. Cleanup continues past
// failures; the first error wins.
func (t *TempFiles) Close() error {
	var first error
	for _, f := range t.files {
		if err := f.Close(); err != nil && first == nil {
			first = err
		}
		if err := os.Remove(f.Name()); err != nil && first == nil {
			first = err
		}
	}
	t.files = nil
	return first
}

// TempLogLevel changes the global log level and returns the function that
// puts it back. Callers defer the restore so noisy sections stay scoped:
//
//	restore := util.TempLogLevel(logrus.ErrorLevel)
//	defer restore()
func TempLogLevel(level logrus.Level) func() {
	prev := logrus.GetLevel()
	logrus.SetLevel(level)
	return func() { logrus.SetLevel(prev) }
}
