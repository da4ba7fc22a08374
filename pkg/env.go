package pkg

import "os"

// Getenv returns value of the environment variable named by the key.
// If the variable is not present defaultValue is returned, an empty but set variable is returned as is
func Getenv(key, defaultValue string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}

	return value
}
