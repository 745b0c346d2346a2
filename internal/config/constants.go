package config

// Storage backends
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Environment names
const (
	EnvDev        = "dev"
	EnvStaging    = "staging"
	EnvProduction = "prod"
)
