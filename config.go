package immediate

import (
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// envConfig carries env-driven overrides. The tier override is a
// diagnostics facility: it can force a lower tier than the probe would pick
// (to reproduce fallback behaviour deterministically) but can never select
// a tier whose capability is absent, and never displaces an injected native
// pair.
type envConfig struct {
	Tier string `env:"IMMEDIATE_TIER"` // "pipe", "broadcast" or "timer"
}

var defaultEnvLoaded sync.Once

func loadEnvConfig() envConfig {
	defaultEnvLoaded.Do(func() {
		// Ignore errors - the .env file might not exist and that's ok
		_ = godotenv.Load()
	})

	var cfg envConfig
	// Parse failures leave the zero value, meaning no override. The
	// override is best-effort diagnostics, not configuration the scheduler
	// depends on.
	_ = env.Parse(&cfg)
	return cfg
}
