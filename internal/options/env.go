package options

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/joho/godotenv"
)

const envPrefix = "SOLGEN_"

// envNamingConvention maps flag names to ENV variables, eg. "solidity-version" -> "SOLGEN_SOLIDITY_VERSION"
type envNamingConvention struct{}

func (*envNamingConvention) Replace(flagName string) string {
	if len(flagName) == 0 {
		panic(fmt.Errorf("flag name cannot be empty"))
	}
	return envPrefix + strcase.ToScreamingSnake(flagName)
}

// loadDotEnv loads the ".env" file from dir, if present. Existing variables are not overwritten.
func loadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("cannot load env file \"%s\": %w", path, err)
	}
	return nil
}
