package xl

import (
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
)

// Sink delivers a finished artifact to its consumer.
type Sink interface {
	Deliver(name string, blob []byte) error
}

// Deliver zips p and hands it to s under p.Name().
func Deliver(p *Package, s Sink) error {
	blob, err := p.Bytes()
	if err != nil {
		return err
	}
	return s.Deliver(p.Name(), blob)
}

// FileSink saves artifacts into a directory.
type FileSink struct {
	Dir string
}

func (fs *FileSink) Deliver(name string, blob []byte) error {
	if err := os.MkdirAll(fs.Dir, 0777); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(fs.Dir, name), blob, 0666)
}

// ResponseSink sends artifacts as an HTTP attachment download.
type ResponseSink struct {
	W http.ResponseWriter
}

func (rs ResponseSink) Deliver(name string, blob []byte) error {
	h := rs.W.Header()
	h.Set("Content-Type", MimeType)
	h.Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": name}))
	h.Set("Content-Length", strconv.Itoa(len(blob)))
	h.Set("ETag", `"`+BlobHash(blob).String()+`"`)
	rs.W.WriteHeader(http.StatusOK)
	_, err := rs.W.Write(blob)
	return err
}
