// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command smctl drives the settings API from a terminal.
//
//	smctl [flags] <command> [args]
//
// Commands:
//
//	version                  print the server version
//	token <user-id> [caps]   issue an admin token with the local sign key
//	get                      print resolved settings and notices
//	save name=value...       save settings
//	reset [network]          wipe stored settings
//	root-dir [template]      expand a root directory template
//	wildcards                print the wildcard table
//	notices                  print admin notices
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/MKhiriev/stateless-settings/internal/adapter"
	"github.com/MKhiriev/stateless-settings/internal/config"
	"github.com/MKhiriev/stateless-settings/internal/logger"
	"github.com/MKhiriev/stateless-settings/internal/service"
	"github.com/MKhiriev/stateless-settings/models"
)

var errUsage = errors.New("usage: smctl [flags] <version|token|get|save|reset|root-dir|wildcards|notices> [args]")

func main() {
	log := logger.NewLogger("smctl")

	var overrides config.ClientConfig
	flag.StringVar(&overrides.Address, "a", "", "Settings API base URL")
	flag.StringVar(&overrides.Token, "t", "", "Bearer token")
	flag.BoolVar(&overrides.Network, "network", false, "Use the network admin routes")
	flag.DurationVar(&overrides.RequestTimeout, "timeout", 0, "Request timeout")
	flag.StringVar(&overrides.App.TokenSignKey, "token-sign-key", "", "Token signing key (token command)")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	if err := log.WithLevel(*logLevel); err != nil {
		log.Fatal().Err(err).Send()
	}

	cfg, err := config.GetClientConfig(&overrides)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = run(context.Background(), cfg, flag.Args(), log); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.ClientConfig, args []string, log *logger.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	if args[0] == "token" {
		return issueToken(ctx, cfg, args[1:], log)
	}

	api, err := adapter.NewHTTPSettingsAdapter(*cfg, log)
	if err != nil {
		return err
	}

	switch args[0] {
	case "version":
		version, err := api.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Println(version)
		return nil
	case "get":
		return printResult(api.Settings(ctx))
	case "save":
		values, err := parseAssignments(args[1:])
		if err != nil {
			return err
		}
		res, err := api.Save(ctx, values)
		if errors.Is(err, adapter.ErrForbidden) {
			_ = printJSON(res)
		}
		if err != nil {
			return err
		}
		return printJSON(res)
	case "reset":
		network := len(args) > 1 && args[1] == "network"
		return printResult(api.Reset(ctx, network))
	case "root-dir":
		template := ""
		if len(args) > 1 {
			template = args[1]
		}
		rootDir, err := api.RootDir(ctx, template)
		if err != nil {
			return err
		}
		fmt.Println(rootDir)
		return nil
	case "wildcards":
		return printResult(api.Wildcards(ctx))
	case "notices":
		return printResult(api.Notices(ctx))
	default:
		return errUsage
	}
}

// issueToken signs an admin token locally. Capabilities are comma
// separated and default to manage_options.
func issueToken(ctx context.Context, cfg *config.ClientConfig, args []string, log *logger.Logger) error {
	if len(args) == 0 {
		return errUsage
	}

	userID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid user id %q: %w", args[0], err)
	}

	caps := []string{models.CapabilityManageOptions}
	if len(args) > 1 {
		caps = strings.Split(args[1], ",")
	}

	token, err := service.NewAuthService(cfg.App, log).CreateToken(ctx, models.User{UserID: userID, Capabilities: caps})
	if err != nil {
		return err
	}

	fmt.Println(token.String())
	return nil
}

// parseAssignments turns name=value arguments into settings values.
func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		name, value, ok := strings.Cut(arg, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid assignment %q, want name=value", arg)
		}
		values[name] = value
	}
	return values, nil
}

func printResult[T any](v T, err error) error {
	if err != nil {
		return err
	}
	return printJSON(v)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
