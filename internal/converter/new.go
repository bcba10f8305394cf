package converter

import (
	"github.com/nguyentantai21042004/vtt2text/internal/config"
	"github.com/nguyentantai21042004/vtt2text/internal/logger"
)

type implConverter struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Converter instance
func New(cfg *config.Config, log logger.Logger) Converter {
	return &implConverter{
		cfg:    cfg,
		logger: log,
	}
}
