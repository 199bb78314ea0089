package main

import (
	"bufio"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	LogFile       string
	LogLevel      string
	PreviewWidth  int
	Background    string
	Confirmations bool
}

func defaultConfig() *Config {
	return &Config{
		LogLevel:      "info",
		PreviewWidth:  defaultPreviewWidth,
		Background:    "#ffffff",
		Confirmations: true,
	}
}

// defaultConfigPath is ~/.shapecadrc, or "" when there is no home directory.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".shapecadrc")
}

// loadConfig reads key = value lines from path. A missing or unreadable file
// yields the defaults; unknown keys and malformed lines are skipped.
func loadConfig(path string) *Config {
	config := defaultConfig()
	if path == "" {
		return config
	}

	file, err := os.Open(path)
	if err != nil {
		return config
	}
	defer file.Close()

	homeDir, _ := os.UserHomeDir()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "logfile", "log_file":
			if strings.HasPrefix(value, "~") && homeDir != "" {
				value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
			}
			if value != "" && !filepath.IsAbs(value) {
				if absPath, err := filepath.Abs(value); err == nil {
					value = absPath
				}
			}
			config.LogFile = value
		case "loglevel", "log_level":
			config.LogLevel = strings.ToLower(value)
		case "previewwidth", "preview_width":
			if n, err := strconv.Atoi(value); err == nil && n >= 8 {
				config.PreviewWidth = n
			}
		case "background", "bg":
			if _, ok := parseHexColor(value); ok {
				config.Background = value
			}
		case "confirmations", "confirm":
			config.Confirmations = strings.ToLower(value) == "true"
		}
	}

	return config
}
