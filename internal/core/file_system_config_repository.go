package core

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"isolet/internal/core/domain"
	"isolet/internal/ports"

	"gopkg.in/yaml.v3"
)

const (
	ConfigPathEnv   = "ISOLET_CONFIG"
	ClassEnv        = "CHALL_TYPE"
	PublicDomainEnv = "PUBLIC_URL"
)

var configFilePath = filepath.Join("~", ".isolet-config.yaml")

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	lookupEnv   func(string) (string, bool)
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(fileService ports.FileSystem) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileService: fileService,
		lookupEnv:   os.LookupEnv,
	}
}

// ProvideConfig loads the run configuration once for the injectors.
func ProvideConfig(configRepository ConfigRepository) (*domain.Config, error) {
	return configRepository.LoadConfig()
}

func (c *FileSystemConfigRepository) path() string {
	if path, ok := c.lookupEnv(ConfigPathEnv); ok && strings.TrimSpace(path) != "" {
		return path
	}
	return configFilePath
}

// LoadConfig reads the config file, falling back to the defaults when it does
// not exist, then applies the environment overrides and validates the result.
func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	var config domain.Config
	exists, err := c.fileService.FileExists(c.path())
	if err != nil {
		return nil, fmt.Errorf("failed to check config file: %v", err)
	}
	if exists {
		data, err := c.fileService.ReadFile(c.path())
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %v", err)
		}
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %v", err)
		}
	}
	config.ApplyDefaults()

	if value, ok := c.lookupEnv(ClassEnv); ok && value != "" {
		class, err := domain.ParseChallengeClass(value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", ClassEnv, err)
		}
		config.Class = class
	}
	if value, ok := c.lookupEnv(PublicDomainEnv); ok && value != "" {
		config.PublicDomain = publicDomainFromURL(value)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config
	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	return c.fileService.WriteFile(c.path(), data, ports.ReadWrite)
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(c.path())
}

// publicDomainFromURL accepts a bare host or a URL and returns the host name.
func publicDomainFromURL(value string) string {
	value = strings.TrimSpace(value)
	if !strings.Contains(value, "://") {
		value = "//" + value
	}
	parsed, err := url.Parse(value)
	if err != nil || parsed.Hostname() == "" {
		return strings.Trim(value, "/")
	}
	return parsed.Hostname()
}
