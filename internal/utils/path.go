package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates config and dictionary files relative to the user's
// config dir, the working dir, and the executable.
type PathResolver struct {
	executableDir string
	workingDir    string
	homeDir       string
	configDir     string
}

// NewPathResolver creates a new path resolver that determines the executable location
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	cwd, err := os.Getwd()
	if err != nil {
		log.Warnf("Could not determine working directory: %v", err)
		cwd = "."
	}

	pr := &PathResolver{
		executableDir: filepath.Dir(execPath),
		workingDir:    cwd,
		homeDir:       homeDir,
		configDir:     getConfigDir(homeDir),
	}
	log.Debugf("PathResolver initialized: execDir=%s, cwd=%s, configDir=%s", pr.executableDir, cwd, pr.configDir)
	return pr, nil
}

// getConfigDir returns the appropriate config directory for the platform
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "t9")
		}
		return filepath.Join(homeDir, ".config", "t9")
	case "darwin":
		return filepath.Join(homeDir, ".config", "t9")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "t9")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "t9")
	default:
		return filepath.Join(homeDir, ".t9")
	}
}

// GetConfigPath returns the full path for a config file.
// Falls back to ~/.t9, the temp dir, and finally the executable dir when
// the platform config dir cannot be written.
func (pr *PathResolver) GetConfigPath(filename string) string {
	candidates := []string{
		pr.configDir,
		filepath.Join(pr.homeDir, ".t9"),
		filepath.Join(os.TempDir(), "t9"),
		pr.executableDir,
	}
	for i, dir := range candidates {
		if IsWritableDir(dir) {
			path := filepath.Join(dir, filename)
			if i > 0 {
				log.Warnf("Using fallback config location: %s", path)
			}
			return path
		}
	}
	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath
}

// FindDictionary resolves a word-list path. Absolute paths are returned as
// is; relative ones are tried against the working dir, the executable dir,
// and the config dir, in that order. When nothing exists the working-dir
// path is returned so the caller reports a sensible name.
func (pr *PathResolver) FindDictionary(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	candidates := []string{
		filepath.Join(pr.workingDir, name),
		filepath.Join(pr.executableDir, name),
		filepath.Join(pr.configDir, name),
	}
	for _, path := range candidates {
		if FileExists(path) {
			log.Debugf("Found dictionary: %s", path)
			return path
		}
		log.Debugf("Dictionary candidate not found: %s", path)
	}
	return candidates[0]
}
