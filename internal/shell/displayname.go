package shell

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

// displayNameKeys is the lookup priority for the cached greeting name.
var displayNameKeys = [...]string{"firstName", "name", "userName"}

// DefaultDisplayName is returned when no cached name resolves.
const DefaultDisplayName = "User"

// NameCache holds the locally cached profile strings the shell greets the
// user with. Values may be raw strings or JSON-encoded strings, depending on
// which client wrote them.
type NameCache struct {
	c *cache.Cache
}

func NewNameCache(ttl time.Duration) *NameCache {
	return &NameCache{c: cache.New(ttl, 2*ttl)}
}

func (n *NameCache) Set(key, value string) {
	n.c.Set(key, value, cache.DefaultExpiration)
}

func (n *NameCache) lookup(key string) (string, bool) {
	v, ok := n.c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// DisplayName resolves the greeting name: first cached value under the
// priority keys, JSON-decoded when possible, raw otherwise, "User" when
// nothing is cached.
func (n *NameCache) DisplayName() string {
	return ResolveDisplayName(n.lookup)
}

// ResolveDisplayName runs the fallback chain against any lookup function.
func ResolveDisplayName(lookup func(key string) (string, bool)) string {
	for _, key := range displayNameKeys {
		stored, ok := lookup(key)
		if !ok || stored == "" {
			continue
		}

		var decoded string
		if err := json.Unmarshal([]byte(stored), &decoded); err == nil {
			if strings.TrimSpace(decoded) != "" {
				return decoded
			}
			continue
		}
		return stored
	}
	return DefaultDisplayName
}
