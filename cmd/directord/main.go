package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	clientcmd "github.com/mwhahaha/directord/internal/cmd/client"
	serverrun "github.com/mwhahaha/directord/internal/cmd/server"
	cfgpkg "github.com/mwhahaha/directord/internal/config"
	logpkg "github.com/mwhahaha/directord/pkg/log"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "directord",
		Short: "directord broker CLI",
		Long:  "directord is a message and job broker addressed by target. This CLI manages the server and client operations.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	var (
		grpcAddr   string
		httpAddr   string
		configPath string
		logLevel   string
	)
	serverStartCmd := &cobra.Command{
		Use:   "start",
		Short: "Start the broker with gRPC and HTTP servers",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			cfgpkg.FromEnv(&cfg)
			if logLevel != "" {
				if _, err := logpkg.ParseLevel(logLevel); err != nil {
					return err
				}
				cfg.LogLevel = logLevel
			}
			return serverrun.Run(context.Background(), serverrun.Options{
				GRPCAddr: grpcAddr,
				HTTPAddr: httpAddr,
				Config:   cfg,
			})
		},
	}
	serverStartCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC listen address (overrides config)")
	serverStartCmd.Flags().StringVar(&httpAddr, "http-addr", "", "HTTP listen address (overrides config)")
	serverStartCmd.Flags().StringVar(&configPath, "config", "", "path to JSON config file")
	serverStartCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// client command groups
	rootCmd.AddCommand(clientcmd.NewRoot())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
