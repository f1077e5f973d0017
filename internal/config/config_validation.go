package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Only the server-side groups are checked here: the agent validates its own
// view in [AgentConfig.validate], since a server process legitimately runs
// with an empty Agent section and vice versa.
func (cfg *StructuredConfig) validate() error {
	// A process with no listen address is an agent; server groups stay
	// unchecked so agent startup does not demand server settings.
	if cfg.Server.HTTPAddress == "" {
		return nil
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Auth.TokenSignKey == "" || cfg.Auth.TokenDuration == 0 {
		return ErrInvalidAuthConfigs
	}

	return nil
}

func (cfg *AgentConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.ServerURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAgentConfigs
	}

	if cfg.Workers.SyncInterval == 0 {
		return ErrInvalidAgentConfigs
	}

	return nil
}
