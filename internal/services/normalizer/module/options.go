package module

import "tubecleanr/internal/platform/config"

// Options holds configuration settings for the normalizer module
type Options struct {
	Workers  int
	DryRun   bool
	DictPath string
}

// FromConfig extracts Options from the given config.Conf
func FromConfig(cfg config.Conf) Options {
	df := cfg.Prefix("CORE_CLEAN_")
	return Options{
		Workers:  df.MayInt("WORKERS", 4),
		DryRun:   df.MayBool("DRY_RUN", false),
		DictPath: df.MayString("DICT_PATH", ""),
	}
}
