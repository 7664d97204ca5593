package storage

import (
	"net/url"
	"strings"
)

const uploadsPrefix = "/uploads/"

// ObjectPathFromURL maps a public URL back to the object path it was uploaded
// under. Records only ever hold URLs minted by Upload, so anything outside the
// uploads prefix is malformed and the caller must abort its delete.
func ObjectPathFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", ErrBadObjectURL
	}
	p := u.EscapedPath()
	idx := strings.Index(p, uploadsPrefix)
	if idx < 0 {
		return "", ErrBadObjectURL
	}
	escaped := p[idx+len(uploadsPrefix):]
	if escaped == "" {
		return "", ErrBadObjectURL
	}
	objectPath, err := url.PathUnescape(escaped)
	if err != nil {
		return "", ErrBadObjectURL
	}
	if strings.Contains(objectPath, "..") {
		return "", ErrBadObjectURL
	}
	return objectPath, nil
}
