package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownIdentity(t *testing.T) {
	for _, identity := range []string{
		IdentityModel, IdentityActor, IdentityInfluencer, IdentityWriter,
		IdentityStylist, IdentityPhotographer, IdentityAdvertisingPro,
		IdentitySinger, IdentityMusician, IdentityDancer, IdentityAnchor,
		IdentityVoiceOver, IdentityFilmmaker, IdentityStandupComedian,
	} {
		assert.True(t, KnownIdentity(identity), identity)
	}

	assert.False(t, KnownIdentity("astronaut"))
	assert.False(t, KnownIdentity(""))
	assert.False(t, KnownIdentity("Actor"), "the vocabulary is case sensitive")
}

func TestArtistDetails_Replace(t *testing.T) {
	var d ArtistDetails
	err := d.Replace(IdentityActor, []byte(`{"height":"180cm","boldScenes":true}`))
	require.NoError(t, err)
	require.NotNil(t, d.Actor)
	assert.Equal(t, "180cm", d.Actor.Height)
	assert.True(t, d.Actor.BoldScenes)
	assert.Nil(t, d.Model, "only the identity's own variant is populated")
}

func TestArtistDetails_ReplaceIsWholesale(t *testing.T) {
	var d ArtistDetails
	require.NoError(t, d.Replace(IdentitySinger, []byte(`{"genres":"pop","multipleLanguages":true}`)))
	require.NoError(t, d.Replace(IdentitySinger, []byte(`{"industryExperience":"3 years"}`)))

	require.NotNil(t, d.Singer)
	assert.Empty(t, d.Singer.Genres, "fields not resupplied are dropped")
	assert.False(t, d.Singer.MultipleLanguages)
	assert.Equal(t, "3 years", d.Singer.IndustryExperience)
}

func TestArtistDetails_RejectsUnknownFields(t *testing.T) {
	var d ArtistDetails
	err := d.Replace(IdentityActor, []byte(`{"genres":"pop"}`))
	assert.Error(t, err, "singer fields do not fit the actor schema")
}

func TestArtistDetails_AdvertisingProSharesModelSchema(t *testing.T) {
	var d ArtistDetails
	require.NoError(t, d.Replace(IdentityAdvertisingPro, []byte(`{"height":"170cm","tattoosOnBody":true}`)))
	require.NotNil(t, d.AdvertisingPro)
	assert.Equal(t, "170cm", d.AdvertisingPro.Height)
	assert.Nil(t, d.Model)
}

func TestArtistDetails_NoSchemaIdentities(t *testing.T) {
	for _, identity := range []string{IdentityWriter, IdentityAnchor, IdentityVoiceOver, IdentityStandupComedian} {
		var d ArtistDetails
		assert.Error(t, d.Replace(identity, []byte(`{}`)), identity)
		assert.False(t, HasDetailsSchema(identity), identity)
	}

	assert.True(t, HasDetailsSchema(IdentityModel))
	assert.True(t, HasDetailsSchema(IdentityStylist))
	assert.False(t, HasDetailsSchema("astronaut"))
}

func TestArtistDetails_JSONRoundTrip(t *testing.T) {
	var d ArtistDetails
	require.NoError(t, d.Replace(IdentityDancer, []byte(`{"itemSongs":true}`)))

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "actor", "empty variants are omitted")

	var decoded ArtistDetails
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.Dancer)
	assert.True(t, decoded.Dancer.ItemSongs)
}
