package handler

import (
	"fmt"

	"isolet/internal/cli/output"
	"isolet/internal/core"
	"isolet/internal/core/domain"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
	}
}

// Handle writes a configuration file holding the defaults and the given
// public domain. An existing file is never overwritten.
func (h *InitializeCommandHandler) Handle(publicDomain string) error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if configExists {
		return fmt.Errorf("configuration already exists")
	}

	config := domain.CreateDefaultConfig()
	config.PublicDomain = publicDomain
	if err := h.configRepository.SaveConfig(&config); err != nil {
		return err
	}

	output.PrintSuccess("Configuration written")
	return nil
}
