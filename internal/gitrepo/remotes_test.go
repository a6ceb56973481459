package gitrepo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/repostate/internal/gitrepo"
)

func TestRemoteCollectionPreservesDeclarationOrder(testInstance *testing.T) {
	collection := gitrepo.NewRemoteCollection()
	collection.Set("origin", gitrepo.Remote{URL: "https://example.com/origin.git"})
	collection.Set("upstream", gitrepo.Remote{URL: "git@example.com:upstream.git"})
	collection.Set("mirror", gitrepo.Remote{URL: "https://example.com/mirror.git"})

	require.Equal(testInstance, []string{"origin", "upstream", "mirror"}, collection.Names())
	require.Equal(testInstance, 3, collection.Len())

	upstreamRemote, upstreamExists := collection.Get("upstream")
	require.True(testInstance, upstreamExists)
	require.Equal(testInstance, "git@example.com:upstream.git", upstreamRemote.URL)
}

func TestRemoteCollectionReplaceKeepsPosition(testInstance *testing.T) {
	collection := gitrepo.NewRemoteCollection()
	collection.Set("origin", gitrepo.Remote{URL: "https://example.com/before.git"})
	collection.Set("upstream", gitrepo.Remote{URL: "git@example.com:upstream.git"})
	collection.Set("origin", gitrepo.Remote{URL: "https://example.com/after.git"})

	require.Equal(testInstance, []string{"origin", "upstream"}, collection.Names())

	originRemote, originExists := collection.Get("origin")
	require.True(testInstance, originExists)
	require.Equal(testInstance, "https://example.com/after.git", originRemote.URL)
}

func TestRemoteCollectionMissingName(testInstance *testing.T) {
	collection := gitrepo.NewRemoteCollection()

	_, exists := collection.Get("origin")
	require.False(testInstance, exists)
	require.Empty(testInstance, collection.Names())
	require.Zero(testInstance, collection.Len())
}

func TestRemoteCollectionNamesReturnsCopy(testInstance *testing.T) {
	collection := gitrepo.NewRemoteCollection()
	collection.Set("origin", gitrepo.Remote{URL: "https://example.com/origin.git"})

	mutatedNames := collection.Names()
	mutatedNames[0] = "renamed"

	require.Equal(testInstance, []string{"origin"}, collection.Names())
}

func TestRemoteCollectionNilReceiver(testInstance *testing.T) {
	var collection *gitrepo.RemoteCollection

	_, exists := collection.Get("origin")
	require.False(testInstance, exists)
	require.Nil(testInstance, collection.Names())
	require.Zero(testInstance, collection.Len())
}
