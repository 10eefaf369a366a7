package version

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed clients/*.yaml
var clientFS embed.FS

// Current is the game version requests default to.
const Current = "2.2"

// ClientManifest describes the header values one official client build sends.
type ClientManifest struct {
	Game        GameVersion `yaml:"game"`
	Binary      GameVersion `yaml:"binary"`
	Secret      string      `yaml:"secret"`
	Description string      `yaml:"description"`
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[string]*ClientManifest)
)

// LoadClient loads a client manifest by game version string (e.g. "2.1").
func LoadClient(ver string) (*ClientManifest, error) {
	cacheMu.RLock()
	if c, ok := cache[ver]; ok {
		cacheMu.RUnlock()
		return c, nil
	}
	cacheMu.RUnlock()

	data, err := clientFS.ReadFile("clients/" + ver + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("client version %q not found: %w", ver, err)
	}

	var m ClientManifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing client %q: %w", ver, err)
	}
	if m.Game.String() != ver {
		return nil, fmt.Errorf("client %q declares game version %s", ver, m.Game)
	}

	cacheMu.Lock()
	cache[ver] = &m
	cacheMu.Unlock()

	return &m, nil
}

// LoadCurrentClient loads the manifest for the current game version.
func LoadCurrentClient() (*ClientManifest, error) {
	return LoadClient(Current)
}

// AvailableClients returns the version strings of all embedded client manifests.
func AvailableClients() ([]string, error) {
	entries, err := clientFS.ReadDir("clients")
	if err != nil {
		return nil, fmt.Errorf("reading clients directory: %w", err)
	}

	var versions []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			versions = append(versions, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(versions)
	return versions, nil
}
