package xl

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// ErrPartName reports a part path that can not name an entry of the package.
var ErrPartName = errors.New("invalid package part name")

// Storage receives the parts of a package, keyed by their absolute part
// paths ("/xl/styles.xml").
type Storage interface {
	WriteBlob(path string, blob []byte) error
}

// partName turns an absolute part path into the relative entry name used
// inside the archive. Names that would leave the package root are refused.
func partName(p string) (string, error) {
	name := strings.TrimPrefix(p, "/")
	if name == "" || strings.ContainsRune(name, '\\') || path.Clean(name) != name ||
		name == ".." || strings.HasPrefix(name, "../") {
		return "", fmt.Errorf("%w: %q", ErrPartName, p)
	}
	return name, nil
}

// ZipStorage packs parts into an .xlsx archive.
type ZipStorage struct {
	z     *zip.Writer
	names map[string]bool
}

func NewZipStorage(out io.Writer) *ZipStorage {
	return &ZipStorage{z: zip.NewWriter(out), names: map[string]bool{}}
}

// WriteBlob adds one deflated entry. Entries carry no timestamp, so the
// same parts always pack into the same bytes.
func (zs *ZipStorage) WriteBlob(p string, blob []byte) error {
	name, err := partName(p)
	if err != nil {
		return err
	}
	if zs.names[name] {
		return fmt.Errorf("%w: %q written twice", ErrPartName, p)
	}
	zs.names[name] = true

	f, err := zs.z.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
	if err != nil {
		return err
	}
	_, err = f.Write(blob)
	return err
}

// Close finishes the archive; it is not a valid package before that.
func (zs *ZipStorage) Close() error {
	return zs.z.Close()
}

// DirStorage lays the parts out unpacked below Dir, one file per part.
type DirStorage struct {
	Dir string
}

func NewDirStorage(dir string) *DirStorage {
	return &DirStorage{Dir: dir}
}

func (ds *DirStorage) WriteBlob(p string, blob []byte) error {
	name, err := partName(p)
	if err != nil {
		return err
	}
	fn := filepath.Join(ds.Dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(fn), 0o777); err != nil {
		return err
	}
	return os.WriteFile(fn, blob, 0o666)
}
