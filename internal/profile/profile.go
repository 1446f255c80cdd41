// Package profile assembles the candidate profile surface: it resolves
// the authoritative CV (backend copy when signed in, local snapshot
// otherwise), computes completeness, and manages draft edits.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/rohan/voicecv-cli/internal/api"
	"github.com/rohan/voicecv-cli/internal/storage"
	"github.com/rohan/voicecv-cli/internal/types"
)

// ErrNoProfile means neither the backend nor the local store holds a
// CV. The caller should direct the user to the CV builder first.
var ErrNoProfile = errors.New("no profile found; create a CV first")

// Source identifies where the resolved profile came from.
type Source string

// Profile sources.
const (
	SourceBackend Source = "backend"
	SourceLocal   Source = "local"
)

// SkillGroup is one named skill category in stable display order.
type SkillGroup struct {
	Category string
	Skills   []string
}

// Profile is the resolved candidate profile.
type Profile struct {
	CV     *types.CV
	Source Source
}

// SkillGroups flattens the CV's skills map into groups sorted by
// category name so rendering is deterministic. Empty categories are
// dropped.
func (p *Profile) SkillGroups() []SkillGroup {
	if p.CV == nil || len(p.CV.Skills) == 0 {
		return nil
	}
	groups := make([]SkillGroup, 0, len(p.CV.Skills))
	for category, skills := range p.CV.Skills {
		if len(skills) == 0 {
			continue
		}
		groups = append(groups, SkillGroup{Category: category, Skills: skills})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	return groups
}

// Completeness scores the profile's CV.
func (p *Profile) Completeness() int {
	return Completeness(p.CV)
}

// Aggregator resolves and persists the candidate profile.
type Aggregator struct {
	client *api.Client
	store  *storage.Store
	logger *slog.Logger
}

// NewAggregator creates a profile aggregator.
func NewAggregator(client *api.Client, store *storage.Store, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Aggregator{client: client, store: store, logger: logger}
}

// Load resolves the profile. A signed-in user gets the backend copy;
// when that fetch fails (or there is no token) the local snapshot is
// used. With neither available it returns ErrNoProfile.
func (a *Aggregator) Load(ctx context.Context) (*Profile, error) {
	if token, ok := a.store.Get(storage.KeyToken); ok && token != "" {
		var cv types.CV
		if err := a.client.Get(ctx, "/user/cv/", &cv); err == nil {
			return &Profile{CV: &cv, Source: SourceBackend}, nil
		} else {
			a.logger.Warn("backend CV fetch failed, falling back to local snapshot", "error", err)
		}
	}

	var cv types.CV
	found, err := a.store.GetJSON(storage.KeyCV, &cv)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNoProfile
	}
	return &Profile{CV: &cv, Source: SourceLocal}, nil
}
