package domain

import "time"

// UploadTarget is a provider-issued direct upload slot
type UploadTarget struct {
	ID      string
	URL     string
	Timeout time.Duration
}

// Provider-side asset statuses
const (
	ProviderAssetPreparing = "preparing"
	ProviderAssetReady     = "ready"
	ProviderAssetErrored   = "errored"
)

// ProviderAsset is the provider's view of a transcoded asset
type ProviderAsset struct {
	ID             string
	Status         string
	Duration       float64
	AspectRatio    string
	ResolutionTier string
	Passthrough    string
	PlaybackIDs    []ProviderPlaybackID
	ErrorText      string
}

// PlaybackID returns the first playback target with the given policy,
// or "" when none exists.
func (a *ProviderAsset) PlaybackID(policy string) string {
	for _, p := range a.PlaybackIDs {
		if p.Policy == policy {
			return p.ID
		}
	}
	return ""
}

// Playback policies
const (
	PlaybackPolicyPublic = "public"
	PlaybackPolicySigned = "signed"
)
