package gitrepo

import "strings"

const (
	sshProtocolPrefixConstant   = "ssh://"
	httpsProtocolPrefixConstant = "https://"
	httpProtocolPrefixConstant  = "http://"
	gitUserPrefixConstant       = "git@"
	gitProtocolPrefixConstant   = "git://"
	fileProtocolPrefixConstant  = "file://"
)

// RemoteProtocol classifies the transport of a remote URL.
type RemoteProtocol string

// Supported remote protocol classifications.
const (
	RemoteProtocolSSH   RemoteProtocol = RemoteProtocol("ssh")
	RemoteProtocolHTTPS RemoteProtocol = RemoteProtocol("https")
	RemoteProtocolGit   RemoteProtocol = RemoteProtocol("git")
	RemoteProtocolFile  RemoteProtocol = RemoteProtocol("file")
	RemoteProtocolOther RemoteProtocol = RemoteProtocol("other")
)

// DetectRemoteProtocol classifies a textual remote URL by its transport prefix.
// Local filesystem paths classify as file transports.
func DetectRemoteProtocol(remoteURL string) RemoteProtocol {
	trimmedURL := strings.TrimSpace(remoteURL)
	switch {
	case len(trimmedURL) == 0:
		return RemoteProtocolOther
	case strings.HasPrefix(trimmedURL, sshProtocolPrefixConstant):
		return RemoteProtocolSSH
	case strings.HasPrefix(trimmedURL, gitUserPrefixConstant):
		return RemoteProtocolSSH
	case strings.HasPrefix(trimmedURL, httpsProtocolPrefixConstant):
		return RemoteProtocolHTTPS
	case strings.HasPrefix(trimmedURL, httpProtocolPrefixConstant):
		return RemoteProtocolHTTPS
	case strings.HasPrefix(trimmedURL, gitProtocolPrefixConstant):
		return RemoteProtocolGit
	case strings.HasPrefix(trimmedURL, fileProtocolPrefixConstant):
		return RemoteProtocolFile
	case strings.HasPrefix(trimmedURL, "/") || strings.HasPrefix(trimmedURL, "./") || strings.HasPrefix(trimmedURL, "../"):
		return RemoteProtocolFile
	default:
		return RemoteProtocolOther
	}
}
