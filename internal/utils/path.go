package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates the dictionary word list and config.toml file when a
// relative path given on the command line doesn't resolve against the
// current working directory, e.g. boggle launched from a different
// directory than the one its data files live in.
type PathResolver struct {
	executableDir string
	configDir     string
}

// NewPathResolver determines the running executable's directory and the
// platform's config directory, for use as fallback search locations.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	pr := &PathResolver{
		executableDir: execDir,
		configDir:     configDirFor(homeDir),
	}
	log.Debugf("path resolver: execDir=%s configDir=%s", execDir, pr.configDir)
	return pr, nil
}

// configDirFor returns the platform's config directory for boggle.
func configDirFor(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "boggle")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "boggle")
		}
		return filepath.Join(homeDir, ".config", "boggle")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "boggle")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "boggle")
	default:
		return filepath.Join(homeDir, ".boggle")
	}
}

// ResolvePath finds userPath by trying, in order: the path as given (absolute,
// or relative to the current directory), relative to the executable's own
// directory, and relative to the config directory. It returns the first
// candidate that exists, or userPath unchanged if none do, so the caller's
// own "file not found" handling still reports the path the user actually
// typed.
func (pr *PathResolver) ResolvePath(userPath string) string {
	if filepath.IsAbs(userPath) {
		return userPath
	}
	candidates := []string{
		userPath,
		filepath.Join(pr.executableDir, userPath),
		filepath.Join(pr.configDir, userPath),
	}
	for _, candidate := range candidates {
		if FileExists(candidate) {
			return candidate
		}
	}
	return userPath
}

// ConfigDir returns the platform config directory boggle falls back to when
// the working directory has no config.toml of its own.
func (pr *PathResolver) ConfigDir() string {
	return pr.configDir
}
