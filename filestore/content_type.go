package filestore

import (
	"path"
	"strings"
)

// MIME types the service sets explicitly.
const (
	ContentTypePDF         = "application/pdf"
	ContentTypeOctetStream = "application/octet-stream"
)

// ResolveContentType picks the response content type for a stored file.
// PDFs are always served as application/pdf so browsers render them inline;
// otherwise the recorded type is used, falling back to application/octet-stream.
func ResolveContentType(recorded, filename string) string {
	if strings.EqualFold(path.Ext(filename), ".pdf") {
		return ContentTypePDF
	}
	if recorded == "" {
		return ContentTypeOctetStream
	}
	return recorded
}
