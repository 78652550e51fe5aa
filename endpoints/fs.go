package endpoints

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-finchers/action"
	"github.com/MKhiriev/go-finchers/endpoint"
	"github.com/MKhiriev/go-finchers/httperr"
	"github.com/MKhiriev/go-finchers/output"
)

// File serves the file at path. A missing file is a 404.
func File(path string) endpoint.Endpoint[*output.NamedFile] {
	return endpoint.Lazy(func(context.Context) (*output.NamedFile, error) {
		f, err := os.Open(path)
		return openFile(filepath.Base(path), f, err)
	})
}

// Dir serves the file named by the remaining request path from the
// directory root, consuming the path. Names leaving root, directories and
// missing files are a 404.
func Dir(root string) endpoint.Endpoint[*output.NamedFile] {
	return endpoint.Func[*output.NamedFile](func(cx *endpoint.Context) (action.Action[*output.NamedFile], error) {
		rest, err := cx.RemainingPath()
		if err != nil {
			return nil, httperr.BadRequest(fmt.Errorf("invalid path: %w", err))
		}
		cx.SkipAll()

		return func(context.Context) (*output.NamedFile, error) {
			name := filepath.FromSlash(rest)
			if !filepath.IsLocal(name) {
				return nil, notFound(rest)
			}
			f, err := os.OpenInRoot(root, name)
			return openFile(rest, f, err)
		}, nil
	})
}

// openFile reports every failure to open as a 404 naming only the requested
// path.
func openFile(name string, f *os.File, err error) (*output.NamedFile, error) {
	if err != nil {
		return nil, notFound(name)
	}
	nf, err := output.NewNamedFile(f)
	if errors.Is(err, output.ErrIsDirectory) {
		return nil, notFound(name)
	}
	return nf, err
}

func notFound(name string) error {
	return httperr.NotFound(fmt.Errorf("file %q: %w", name, fs.ErrNotExist))
}
