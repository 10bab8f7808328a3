package http

import (
	"fmt"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/revanthkumar92/quantara/pkg/logger"
)

// StaticMount serves the pre-built site from a directory on disk. The
// directory is populated by an external build/export step; it must exist
// before the server starts. Directory requests serve index.html when present
// and 404 otherwise — listings are never generated.
type StaticMount struct {
	root    string
	handler http.Handler
}

// NewStaticMount validates the static root and returns a mount serving it.
func NewStaticMount(root string, log *logger.Logger) (*StaticMount, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve static root %q: %w", root, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("static root %q is not accessible: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("static root %q is not a directory", root)
	}

	log.Debug("Static root resolved", "root", abs)

	return &StaticMount{
		root:    abs,
		handler: http.FileServer(indexOnlyFS{http.Dir(abs)}),
	}, nil
}

// Root returns the absolute path of the static root.
func (m *StaticMount) Root() string {
	return m.root
}

func (m *StaticMount) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}

// indexOnlyFS wraps an http.FileSystem so that directories without an index
// document answer 404 instead of a generated listing.
type indexOnlyFS struct {
	fs http.FileSystem
}

func (f indexOnlyFS) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}

	if info.IsDir() {
		index, err := f.fs.Open(path.Join(name, "index.html"))
		if err != nil {
			file.Close()
			return nil, err
		}
		index.Close()
	}

	return file, nil
}
