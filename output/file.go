package output

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"path"
	"time"

	"github.com/MKhiriev/go-finchers/httperr"
)

// ErrIsDirectory is returned when a directory is opened as a file.
var ErrIsDirectory = errors.New("is a directory")

// File is the subset of *os.File a NamedFile needs.
type File interface {
	io.ReadSeeker
	io.Closer
	Stat() (fs.FileInfo, error)
}

// NamedFile is a file served with http.ServeContent, which handles
// Content-Type detection, Last-Modified, conditional and range requests.
type NamedFile struct {
	name    string
	modTime time.Time
	size    int64
	file    File
}

// NewNamedFile wraps an opened file. The file is closed after it has been
// served or when NewNamedFile fails.
func NewNamedFile(f File) (*NamedFile, error) {
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("error reading file info: %w", err)
	}
	if info.IsDir() {
		f.Close()
		return nil, httperr.NotFound(fmt.Errorf("%s: %w", info.Name(), ErrIsDirectory))
	}
	return &NamedFile{
		name:    info.Name(),
		modTime: info.ModTime(),
		size:    info.Size(),
		file:    f,
	}, nil
}

// Name returns the base name of the file.
func (f *NamedFile) Name() string { return path.Base(f.name) }

// Size returns the file size in bytes.
func (f *NamedFile) Size() int64 { return f.size }

// ModTime returns the modification time of the file.
func (f *NamedFile) ModTime() time.Time { return f.modTime }

// Close releases the file without serving it.
func (f *NamedFile) Close() error { return f.file.Close() }

func (f *NamedFile) Respond(w http.ResponseWriter, r *http.Request) error {
	defer f.file.Close()
	http.ServeContent(w, r, f.name, f.modTime, f.file)
	return nil
}
