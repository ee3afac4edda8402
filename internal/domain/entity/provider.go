// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Provider identifies a third-party identity service.
type Provider string

const (
	ProviderInstagram Provider = "instagram"
	ProviderFacebook  Provider = "facebook"
	ProviderLinkedIn  Provider = "linkedin"
	ProviderGoogle    Provider = "google"
	ProviderTwitter   Provider = "twitter"
)

// ParseProvider maps a request-supplied provider name to a known Provider.
func ParseProvider(name string) (Provider, bool) {
	switch Provider(name) {
	case ProviderInstagram, ProviderFacebook, ProviderLinkedIn, ProviderGoogle, ProviderTwitter:
		return Provider(name), true
	}

	return "", false
}

func (p Provider) String() string {
	return string(p)
}

// SynthesizedAccountID derives the deterministic account id used when no real
// account exists yet for a provider identity. The format is parsed by other
// systems and must stay stable: "<provider>UserId::<providerUserId>".
func (p Provider) SynthesizedAccountID(providerUserID string) string {
	return string(p) + "UserId::" + providerUserID
}
