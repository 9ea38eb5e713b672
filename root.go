package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vuvietnguyenit/cudevprop/cuda"
	"github.com/vuvietnguyenit/cudevprop/nvlm"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// Swapped out in tests.
var (
	queryProperties   = cuda.QueryDeviceProperties
	cudaDriverVersion = cuda.DriverVersion
	nvmlDriverVersion = func() (string, error) {
		v, err := nvlm.GetDriverVersion()
		if err == nil {
			nvlm.ShutdownNVLM()
		}
		return v, err
	}
)

func RootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cudevprop",
		Short:         "Report legacy CUDA device properties",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := validateFlags(); err != nil {
				return err
			}
			level, _ := parseLogLevel(FlagVerbose)
			initLogger(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	addGlobalFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(showCmd(), versionCmd())

	return rootCmd
}

func Execute() {
	if err := RootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func showCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Query cuDeviceGetProperties for one device and print the result",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			slog.Debug("querying device properties", "device", FlagDevice, "output", FlagOutput)
			prop, err := queryProperties(FlagDevice)
			if err != nil {
				if !cuda.Available && errors.Is(err, cuda.ErrorNotSupported) {
					return fmt.Errorf("%w (rebuild with -tags cuda)", err)
				}
				return fmt.Errorf("device %d: %w", FlagDevice, err)
			}
			return render(cmd.OutOrStdout(), prop, FlagOutput)
		},
	}
	addShowFlags(cmd.Flags())
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print tool and driver versions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cudevprop %s\n", Version)

			if v, err := nvmlDriverVersion(); err != nil {
				slog.Warn("nvidia driver version unavailable", "error", err)
			} else {
				fmt.Fprintf(out, "NVIDIA Driver Version: %s\n", v)
			}

			if v, err := cudaDriverVersion(); err != nil {
				slog.Warn("cuda driver version unavailable", "error", err)
			} else {
				fmt.Fprintf(out, "CUDA Driver API: %d.%d\n", v/1000, (v%1000)/10)
			}
		},
	}
}
