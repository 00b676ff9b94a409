package config

// ==================== Data Files ====================

const (
	FilePrefabs = "prefabs.json"
	FileRecipes = "recipes.json"
	FileWorld   = "world.yaml"
)

// ==================== Row Stores ====================

const (
	RowStorePostgres = "postgres"
	RowStoreBolt     = "bolt"
	RowStoreMemory   = "memory"
)

// ==================== Environments ====================

const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "prod"
)

// ==================== Env Schema ====================

// ExpectedEnvSchemaVersion is the schema version that the application expects
const ExpectedEnvSchemaVersion = "1.0"

// Insecure example values shipped in .env.example
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// ==================== Error Messages ====================

const (
	ErrMsgParseEnv   = "parse env"
	ErrMsgInvalidEnv = "invalid configuration"
)
