package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	k, err := ParseKind("req")
	require.NoError(t, err)
	assert.Equal(t, KindRequest, k)

	k, err = ParseKind("tes")
	require.NoError(t, err)
	assert.Equal(t, KindTestimony, k)

	_, err = ParseKind("nope")
	assert.Error(t, err)
	_, err = ParseKind("")
	assert.Error(t, err)
}

func TestKindMappingTable(t *testing.T) {
	assert.Equal(t, "requests", KindRequest.Collection())
	assert.Equal(t, "testimonies", KindTestimony.Collection())
	assert.Equal(t, "Prayed", KindRequest.Info().Verb)
	assert.Equal(t, "Praised", KindTestimony.Info().Verb)
	assert.Equal(t, "Request", KindRequest.Info().Label)
	assert.Equal(t, "Testimony", KindTestimony.Info().Label)
}
