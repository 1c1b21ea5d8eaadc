package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Load reads the optional engine settings file. An empty path yields zero
// Settings, meaning every default stands.
func Load(settingsPath string) (Settings, error) {
	if settingsPath == "" {
		return Settings{}, nil
	}

	file, err := os.Open(settingsPath)
	if err != nil {
		return Settings{}, fmt.Errorf("opening settings file: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Settings{}, fmt.Errorf("reading settings file: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(bytes, &s); err != nil {
		return Settings{}, fmt.Errorf("parsing settings file: %w", err)
	}

	return s, nil
}
