package rules

import "github.com/maxbolgarin/abstract"

// Cache avoids redundant config reads for the same root within one process.
// It is owned by the engine, there is no package-level state.
type Cache struct {
	configs *abstract.SafeMap[string, *Config]
}

func NewCache() *Cache {
	return &Cache{
		configs: abstract.NewSafeMap[string, *Config](),
	}
}

// Load returns the cached configuration of root, loading it on first use.
// Load failures are not cached, a later call retries the read.
func (c *Cache) Load(root string) (*Config, error) {
	if cfg, ok := c.configs.Lookup(root); ok {
		return cfg, nil
	}

	cfg, err := Load(root)
	if err != nil {
		return nil, err
	}
	c.configs.Set(root, cfg)

	return cfg, nil
}
