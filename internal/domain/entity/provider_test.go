package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProvider(t *testing.T) {
	for _, name := range []string{"instagram", "facebook", "linkedin", "google", "twitter"} {
		provider, ok := ParseProvider(name)
		assert.True(t, ok)
		assert.Equal(t, name, provider.String())
	}

	_, ok := ParseProvider("myspace")
	assert.False(t, ok)
}

func TestProvider_SynthesizedAccountID(t *testing.T) {
	assert.Equal(t, "instagramUserId::12345", ProviderInstagram.SynthesizedAccountID("12345"))
	assert.Equal(t, "twitterUserId::99", ProviderTwitter.SynthesizedAccountID("99"))
}
