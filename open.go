package blockbucket

import (
	"github.com/manhavn/blockbucket/internal/bucketerr"
	"github.com/manhavn/blockbucket/internal/rafile"
)

// OpenOption configures Open.
type OpenOption func(*openConfig)

type openConfig struct {
	createMode rafile.CreateMode
}

// WithExclusiveCreate requires that path not already exist; Open fails
// if it does, instead of opening the existing file.
func WithExclusiveCreate() OpenOption {
	return func(c *openConfig) {
		c.createMode = rafile.CreateExclusive
	}
}

// Open opens the bucket file at path, creating it if it does not
// already exist, unless WithExclusiveCreate is given.
func Open(path string, opts ...OpenOption) (*Bucket, error) {
	cfg := openConfig{createMode: rafile.CreateIfMissing}
	for _, opt := range opts {
		opt(&cfg)
	}

	f, err := rafile.Open(path, cfg.createMode)
	if err != nil {
		return nil, bucketerr.Wrap("open", path, err)
	}
	return &Bucket{path: path, file: f}, nil
}
