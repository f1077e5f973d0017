package config

import (
	"fmt"
	"time"
)

// AgentAdapter holds network settings used by the agent transport layer.
type AgentAdapter struct {
	// ServerURL is the base URL of the remote sync server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound agent requests.
	RequestTimeout time.Duration
}

// AgentDB contains local replica connection settings for the agent.
type AgentDB struct {
	// DSN is the SQLite file path used by the agent's local replica.
	DSN string
}

// AgentStorage groups agent storage backend settings.
type AgentStorage struct {
	// DB holds local database settings.
	DB AgentDB
}

// AgentWorkers contains agent background worker settings.
type AgentWorkers struct {
	// SyncInterval defines how often the background sync job runs.
	SyncInterval time.Duration
}

// AgentSync groups protocol-level settings the agent reports on pull.
type AgentSync struct {
	// SchemaVersion is the local replica schema version.
	SchemaVersion int
	// MigratedFrom, when non-zero, is the schema version the replica
	// migrated from; it triggers a full resync of mutable fields.
	MigratedFrom int
}

// AgentAuth holds the credentials the agent authenticates with.
type AgentAuth struct {
	Login    string
	Password string
}

// AgentConfig is the top-level agent configuration assembled from
// [StructuredConfig].
type AgentConfig struct {
	// Auth contains agent credentials.
	Auth AgentAuth
	// Adapter contains agent transport addresses and timeouts.
	Adapter AgentAdapter
	// Storage contains agent storage settings.
	Storage AgentStorage
	// Workers contains background job settings.
	Workers AgentWorkers
	// Sync contains protocol-level pull settings.
	Sync AgentSync
	// Interactive opens the terminal task browser instead of running
	// headless.
	Interactive bool
}

// GetAgentConfig builds and validates an agent-specific config view from the
// merged structured configuration.
func GetAgentConfig() (*AgentConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	agentCfg := &AgentConfig{
		Auth: AgentAuth{
			Login:    cfg.Agent.Login,
			Password: cfg.Agent.Password,
		},
		Adapter: AgentAdapter{
			ServerURL:      cfg.Agent.ServerURL,
			RequestTimeout: cfg.Agent.RequestTimeout,
		},
		Storage: AgentStorage{
			DB: AgentDB{
				DSN: cfg.Agent.DatabasePath,
			},
		},
		Workers: AgentWorkers{SyncInterval: cfg.Agent.SyncInterval},
		Sync: AgentSync{
			SchemaVersion: cfg.Agent.SchemaVersion,
			MigratedFrom:  cfg.Agent.MigratedFrom,
		},
		Interactive: cfg.Agent.Interactive,
	}

	return agentCfg, agentCfg.validate()
}
