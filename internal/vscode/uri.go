package vscode

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"
)

// FolderPath extracts the decoded path component of a folder URI.
// Unparseable input is returned unchanged.
func FolderPath(folderURI string) string {
	if folderURI == "" {
		return ""
	}
	if _, _, p, ok := splitURI(folderURI); ok {
		if decoded, err := url.PathUnescape(p); err == nil {
			return decoded
		}
		return p
	}
	u, err := url.Parse(folderURI)
	if err != nil {
		return folderURI
	}
	if u.Opaque != "" {
		return u.Opaque
	}
	return u.Path
}

// splitURI splits scheme://authority/path URIs. Remote authorities such as
// "ssh-remote%2Bhost" carry escapes net/url rejects in a host, so the
// split is done by hand.
func splitURI(uri string) (scheme, authority, p string, ok bool) {
	i := strings.Index(uri, "://")
	if i <= 0 {
		return "", "", "", false
	}
	scheme = uri[:i]
	rest := uri[i+3:]
	if j := strings.IndexAny(rest, "?#"); j >= 0 {
		rest = rest[:j]
	}
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		return scheme, rest[:j], rest[j:], true
	}
	return scheme, rest, "", true
}

// PathTitle returns the last segment of p, or p itself when it has none
// (empty path or root).
func PathTitle(p string) string {
	trimmed := strings.TrimRight(p, "/")
	if trimmed == "" {
		return p
	}
	base := path.Base(trimmed)
	if base == "." || base == "/" {
		return p
	}
	return base
}

// remoteScheme is the URI scheme of folders opened through a remote
// connection; its host part encodes the remote authority.
const remoteScheme = "vscode-remote"

// EntryForURI builds an entry for a folder URI given on the command line.
// The remote authority is recovered from vscode-remote URIs.
func EntryForURI(folderURI string) Entry {
	e := Entry{FolderURI: folderURI}
	scheme, authority, _, ok := splitURI(folderURI)
	if !ok || scheme != remoteScheme || authority == "" {
		return e
	}
	if decoded, err := url.PathUnescape(authority); err == nil {
		authority = decoded
	}
	e.RemoteAuthority = authority
	return e
}

// FileURI converts a local filesystem path to a file URI.
func FileURI(p string) string {
	p = filepath.ToSlash(p)
	if !strings.HasPrefix(p, "/") {
		// Windows drive paths such as C:/src.
		p = "/" + p
	}
	return (&url.URL{Scheme: "file", Path: p}).String()
}
