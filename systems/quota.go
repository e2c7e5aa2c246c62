package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/echoes-of-ember/assets"
	"github.com/automoto/echoes-of-ember/components"
)

// CollectAll is met once every crystal has been picked up.
type CollectAll struct{}

func (CollectAll) Met(c components.ProgressCounts) bool {
	return c.Collected >= c.TotalCollectibles
}

// DefeatAll is met once every enemy has been defeated.
type DefeatAll struct{}

func (DefeatAll) Met(c components.ProgressCounts) bool {
	return c.Defeated >= c.TotalEnemies
}

// AllOf is met when every member is met at the same time.
type AllOf []components.Quota

func (q AllOf) Met(c components.ProgressCounts) bool {
	for _, member := range q {
		if !member.Met(c) {
			return false
		}
	}
	return true
}

// QuotaFromNames builds the quota a level's metadata names. No names means
// collecting everything.
func QuotaFromNames(names []string) (components.Quota, error) {
	var quota AllOf
	for _, name := range names {
		switch strings.TrimSpace(name) {
		case assets.QuotaCollectibles:
			quota = append(quota, CollectAll{})
		case assets.QuotaEnemies:
			quota = append(quota, DefeatAll{})
		default:
			return nil, fmt.Errorf("unknown quota %q", name)
		}
	}
	switch len(quota) {
	case 0:
		return CollectAll{}, nil
	case 1:
		return quota[0], nil
	}
	return quota, nil
}
