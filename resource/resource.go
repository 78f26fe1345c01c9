// Package resource locates and loads documents by name.
//
// A Loader maps resource names such as "config/creatures.json" to raw
// bytes. DirLoader serves names from a file system, which makes the
// package usable over a real directory, an embed.FS, or a test map.
package resource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jdoc-format/go-jdoc/node"
	"github.com/jdoc-format/go-jdoc/parse"
)

// ErrNotFound indicates the named resource does not exist. Loaders
// return it (possibly wrapped) so callers can distinguish a missing
// resource from an unreadable one.
var ErrNotFound = errors.New("resource not found")

// Loader resolves resource names to their raw contents.
type Loader interface {
	// Load returns the contents of the named resource, or an error
	// wrapping ErrNotFound when no such resource exists.
	Load(name string) ([]byte, error)

	// Exists reports whether the named resource can be loaded.
	Exists(name string) bool
}

// DirLoader serves resources from an fs.FS rooted at a directory.
type DirLoader struct {
	fsys fs.FS
}

// NewDirLoader returns a Loader over the directory rooted at path.
func NewDirLoader(path string) *DirLoader {
	return &DirLoader{fsys: os.DirFS(path)}
}

// NewFSLoader returns a Loader over an arbitrary fs.FS.
func NewFSLoader(fsys fs.FS) *DirLoader {
	return &DirLoader{fsys: fsys}
}

func (dl *DirLoader) Load(name string) ([]byte, error) {
	d, err := fs.ReadFile(dl.fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("could not read %q: %w", name, err)
	}
	return d, nil
}

func (dl *DirLoader) Exists(name string) bool {
	_, err := fs.Stat(dl.fsys, name)
	return err == nil
}

// LoadNode loads and parses the named resource. The resulting tree
// carries name as its Meta on every node, and parse errors are
// reported against name. Like parse.Parse, a non-nil tree accompanies
// the error so callers may keep the usable parts.
func LoadNode(l Loader, name string) (*node.Node, error) {
	d, err := l.Load(name)
	if err != nil {
		return node.Null(), err
	}
	return parse.Parse(d, parse.Source(name))
}
