package gitrepo

// Remote captures the configured fetch URL of a named remote.
type Remote struct {
	URL string
}

// RemoteCollection stores remotes by name while preserving the order in which
// names were first declared.
type RemoteCollection struct {
	orderedNames  []string
	remotesByName map[string]Remote
}

// NewRemoteCollection constructs an empty remote collection.
func NewRemoteCollection() *RemoteCollection {
	return &RemoteCollection{remotesByName: map[string]Remote{}}
}

// Set stores the remote under the provided name. Re-setting an existing name
// replaces the record without duplicating its position in the declared order.
func (collection *RemoteCollection) Set(remoteName string, remote Remote) {
	if collection.remotesByName == nil {
		collection.remotesByName = map[string]Remote{}
	}
	if _, exists := collection.remotesByName[remoteName]; !exists {
		collection.orderedNames = append(collection.orderedNames, remoteName)
	}
	collection.remotesByName[remoteName] = remote
}

// Get returns the remote stored under the provided name.
func (collection *RemoteCollection) Get(remoteName string) (Remote, bool) {
	if collection == nil || collection.remotesByName == nil {
		return Remote{}, false
	}
	remote, exists := collection.remotesByName[remoteName]
	return remote, exists
}

// Names returns the remote names in declaration order.
func (collection *RemoteCollection) Names() []string {
	if collection == nil {
		return nil
	}
	duplicatedNames := make([]string, len(collection.orderedNames))
	copy(duplicatedNames, collection.orderedNames)
	return duplicatedNames
}

// Len reports the number of stored remotes.
func (collection *RemoteCollection) Len() int {
	if collection == nil {
		return 0
	}
	return len(collection.orderedNames)
}
