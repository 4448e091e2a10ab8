package scanner

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/go-git/go-billy/v5"
)

// Entry is one path produced by a Walker together with the metadata the
// walker already read for it. Info comes from Lstat and never describes a
// link target.
type Entry struct {
	Path string
	Info os.FileInfo
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Info != nil && e.Info.IsDir()
}

// WalkError is a failure local to one path. It never ends a walk.
//
// Dir reports whether the path was a directory when last seen: the root
// is assumed to be one, and other paths take the kind their parent's
// listing gave them. A file that vanished after its directory was listed
// fails with Op "lstat" and Dir false.
type WalkError struct {
	Op   string
	Path string
	Dir  bool
	Err  error
}

func (e *WalkError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *WalkError) Unwrap() error {
	return e.Err
}

// Walker lazily produces every file and directory under a root, depth
// first, with each directory ahead of its descendants. Symbolic links are
// neither yielded nor followed. Sibling order is whatever the filesystem
// listing returns.
//
// The walker holds a stack of pending batches, one per directory being
// expanded, so each call to Next does a bounded amount of work.
type Walker struct {
	fs    billy.Filesystem
	stack [][]pending
}

type pending struct {
	path string
	dir  bool
}

// NewWalker returns a walker positioned before root.
func NewWalker(fsys billy.Filesystem, root string) *Walker {
	return &Walker{
		fs:    fsys,
		stack: [][]pending{{{path: root, dir: true}}},
	}
}

// Next returns the next entry. It returns io.EOF once the tree is
// exhausted, and on every call after that. Any other error is a
// *WalkError for a single path; the walk can be resumed by calling Next
// again.
func (w *Walker) Next() (Entry, error) {
	for len(w.stack) > 0 {
		top := len(w.stack) - 1
		batch := w.stack[top]
		if len(batch) == 0 {
			w.stack = w.stack[:top]
			continue
		}
		next := batch[0]
		w.stack[top] = batch[1:]
		path := next.path

		info, err := w.fs.Lstat(path)
		if err != nil {
			return Entry{Path: path}, &WalkError{Op: "lstat", Path: path, Dir: next.dir, Err: err}
		}
		if info.Mode()&os.ModeSymlink != 0 {
			continue
		}

		entry := Entry{Path: path, Info: info}
		if info.IsDir() {
			children, err := w.fs.ReadDir(path)
			if err != nil {
				return entry, &WalkError{Op: "readdir", Path: path, Dir: true, Err: err}
			}
			listed := make([]pending, 0, len(children))
			for _, child := range children {
				listed = append(listed, pending{
					path: w.fs.Join(path, child.Name()),
					dir:  child.IsDir(),
				})
			}
			w.stack = append(w.stack, listed)
		}
		return entry, nil
	}
	return Entry{}, io.EOF
}

// All adapts Next to a range-over-func sequence. Per-path errors are
// yielded alongside a zero or partial Entry; io.EOF ends the sequence.
func (w *Walker) All() iter.Seq2[Entry, error] {
	return func(yield func(Entry, error) bool) {
		for {
			entry, err := w.Next()
			if err == io.EOF {
				return
			}
			if !yield(entry, err) {
				return
			}
		}
	}
}
