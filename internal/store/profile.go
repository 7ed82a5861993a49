package store

import (
	"encoding/json"
	"fmt"

	"cognos/internal/types"
)

const profileKey = "personalization"

// Profiles stores the user's personalization profile in a KV.
type Profiles struct {
	kv KV
}

// NewProfiles creates a profile service over the given store.
func NewProfiles(kv KV) *Profiles {
	return &Profiles{kv: kv}
}

// Load returns the saved profile, or an empty one when nothing was saved.
func (p *Profiles) Load() (*types.PersonalizationProfile, error) {
	data, ok, err := p.kv.Get(profileKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return &types.PersonalizationProfile{}, nil
	}
	var profile types.PersonalizationProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

// Save persists the profile.
func (p *Profiles) Save(profile *types.PersonalizationProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return p.kv.Set(profileKey, data)
}
