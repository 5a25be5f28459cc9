package vscode

import "strings"

// ConnectionKind describes where an entry's folder lives.
type ConnectionKind string

const (
	KindHost             ConnectionKind = "host"
	KindWSL              ConnectionKind = "wsl"
	KindDevContainer     ConnectionKind = "dev-container"
	KindSSH              ConnectionKind = "ssh"
	KindRemoteRepository ConnectionKind = "remote-repo"
	KindUnknown          ConnectionKind = "unknown"
)

// AllKinds returns every connection kind.
func AllKinds() []ConnectionKind {
	return []ConnectionKind{KindHost, KindWSL, KindDevContainer, KindSSH, KindRemoteRepository, KindUnknown}
}

// authorityPrefixes is checked in order; the first match wins.
var authorityPrefixes = []struct {
	prefix string
	kind   ConnectionKind
}{
	{"wsl", KindWSL},
	{"dev-container", KindDevContainer},
	{"ssh", KindSSH},
}

// remoteRepositoryScheme marks virtual file system URIs (GitHub/Azure Repos).
const remoteRepositoryScheme = "vscode-vfs"

// Classify determines the connection kind of an entry from its remote
// authority (empty when absent) and folder URI.
func Classify(remoteAuthority, folderURI string) ConnectionKind {
	if remoteAuthority != "" {
		for _, p := range authorityPrefixes {
			if strings.HasPrefix(remoteAuthority, p.prefix) {
				return p.kind
			}
		}
		return KindUnknown
	}
	if strings.HasPrefix(folderURI, remoteRepositoryScheme) {
		return KindRemoteRepository
	}
	return KindHost
}
