// Package featureflags evaluates the FEATURE_FLAGS config list that gates
// in-progress features, such as the reworked feed ranking or the realtime
// notification stream, without a redeploy.
package featureflags

import (
	"hash/fnv"
	"strconv"
	"strings"
)

// A rule is either a hard on/off switch or a percentage rollout bucketed
// deterministically per user.
type rule struct {
	enabled bool
	percent int
	rollout bool
}

// Manager holds the parsed flag rules for the process lifetime. Flags are
// configured as a comma-separated list, e.g.
// "realtime_notifications=on,new_feed_ranking=25%".
type Manager struct {
	rules map[string]rule
}

// NewManager parses the comma-separated flag list. Malformed entries are
// skipped rather than failing startup.
func NewManager(raw string) *Manager {
	rules := make(map[string]rule)
	for _, entry := range strings.Split(raw, ",") {
		name, value, ok := strings.Cut(entry, "=")
		if !ok {
			continue
		}
		name = normalize(name)
		if name == "" {
			continue
		}
		if r, parsed := parseRule(normalize(value)); parsed {
			rules[name] = r
		}
	}
	return &Manager{rules: rules}
}

func parseRule(value string) (rule, bool) {
	switch value {
	case "on", "true", "1":
		return rule{enabled: true}, true
	case "off", "false", "0":
		return rule{}, true
	}
	if pct, found := strings.CutSuffix(value, "%"); found {
		n, err := strconv.Atoi(pct)
		if err != nil || n < 0 || n > 100 {
			return rule{}, false
		}
		return rule{percent: n, rollout: true}, true
	}
	return rule{}, false
}

// Enabled reports whether the named flag is on for the user. Unknown flags
// are off. Percentage rollouts are stable per (flag, user) pair; user ID 0
// never falls inside a partial rollout.
func (m *Manager) Enabled(name string, userID uint) bool {
	if m == nil {
		return false
	}
	r, ok := m.rules[normalize(name)]
	if !ok {
		return false
	}
	if !r.rollout {
		return r.enabled
	}
	if r.percent >= 100 {
		return true
	}
	if r.percent <= 0 || userID == 0 {
		return false
	}
	return bucket(normalize(name), userID) < r.percent
}

// Snapshot evaluates every configured flag for one user. The API serves
// this to clients so they can toggle features in a single round trip.
func (m *Manager) Snapshot(userID uint) map[string]bool {
	out := make(map[string]bool, len(m.rules))
	for name := range m.rules {
		out[name] = m.Enabled(name, userID)
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// bucket maps a (flag, user) pair into [0,100) with FNV-1a so rollout
// membership survives restarts.
func bucket(name string, userID uint) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(name))
	_, _ = h.Write([]byte{':'})
	_, _ = h.Write([]byte(strconv.FormatUint(uint64(userID), 10)))
	return int(h.Sum32() % 100)
}
