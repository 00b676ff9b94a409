package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists the environment variables that must always be set
var RequiredEnvVars = []string{
	"ENV_SCHEMA_VERSION",
	"API_KEY",
}

// requiredWhen lists variables that become required once a feature is selected
var requiredWhen = []struct {
	enabled func() bool
	vars    []string
}{
	{
		enabled: func() bool { return os.Getenv("ROW_STORE") == RowStorePostgres },
		vars:    []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	},
	{
		enabled: func() bool { return os.Getenv("ROW_STORE") == RowStoreBolt },
		vars:    []string{"BOLT_PATH"},
	},
	{
		enabled: func() bool { return os.Getenv("DISCORD_TOKEN") != "" },
		vars:    []string{"DISCORD_GUILD_ID", "DISCORD_LOG_CHANNEL_ID"},
	},
}

// ValidateEnv checks that all required environment variables are set
// and that the schema version matches expectations
func ValidateEnv() error {
	schemaVersion := os.Getenv("ENV_SCHEMA_VERSION")
	if schemaVersion == "" {
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set - please update your .env file to include this field (expected: %s)", ExpectedEnvSchemaVersion)
	}

	if schemaVersion != ExpectedEnvSchemaVersion {
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s - your .env file may be outdated", ExpectedEnvSchemaVersion, schemaVersion)
	}

	required := append([]string(nil), RequiredEnvVars...)
	for _, rule := range requiredWhen {
		if rule.enabled() {
			required = append(required, rule.vars...)
		}
	}

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) == "" {
			missing = append(missing, envVar)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == ExampleDBPassword {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == ExampleAPIKey {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if os.Getenv("ROW_STORE") == "" || os.Getenv("ROW_STORE") == RowStoreMemory {
		warnings = append(warnings, "ROW_STORE is memory - item rows will not survive a restart")
	}

	return warnings, nil
}
