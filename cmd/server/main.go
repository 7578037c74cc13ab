package main

import (
	"flag"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vskvj3/dllist/internal/core"
	"github.com/vskvj3/dllist/internal/network"
	"github.com/vskvj3/dllist/internal/utils"
)

func main() {
	// Parse command-line arguments
	configPtr := flag.String("config", defaultConfigPath(), "Path to the YAML config file")
	portPtr := flag.String("port", "", "Port of server (overrides config)")
	debugPtr := flag.Bool("debug", false, "Log debug records to stdout")
	flag.Parse()

	// Load configurations
	config, err := utils.LoadConfig(*configPtr)
	if err != nil {
		utils.NewLogger("", true).Error("Error loading configuration", "path", *configPtr, "err", err)
		os.Exit(1)
	}

	logger := utils.NewLogger(config.LogFile, config.Debug || *debugPtr)
	logger.Info("Loaded configurations", "path", *configPtr)

	// Determine Port
	port := strconv.Itoa(config.Port)
	if *portPtr != "" {
		if _, err := strconv.Atoi(*portPtr); err != nil {
			logger.Error("Port must be an integer", "port", *portPtr)
			os.Exit(1)
		}
		port = *portPtr
	}

	handler := core.NewCommandHandler(core.NewDatabase(config.MaxLists))
	server, err := network.NewServer(port, handler)
	if err != nil {
		logger.Error("Server creation failed", "err", err)
		os.Exit(1)
	}

	if err := server.Start(); err != nil {
		logger.Error("Server stopped", "err", err)
		os.Exit(1)
	}
}

// defaultConfigPath returns ~/.dllist/dllist.yaml, or a local file when the
// home directory is unknown.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "dllist.yaml"
	}
	return filepath.Join(homeDir, ".dllist", "dllist.yaml")
}
