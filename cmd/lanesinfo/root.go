// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-lanes/internal/caps"
	"github.com/ajroetker/go-lanes/internal/config"
	"github.com/ajroetker/go-lanes/internal/logging"
)

// app is the state shared by all subcommands once flags are parsed.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *logrus.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lanesinfo",
		Short: "Inspect and verify the vector dispatch of this build",
		Long: `lanesinfo reports the instruction-set tier the lanes package was built
for, shows which native instruction sequence backs each operation, and checks
the dispatched kernels against Go's scalar operators.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			if err := logging.Init(cfg.Logging.Level, cfg.Logging.Console); err != nil {
				return fmt.Errorf("initializing logging: %w", err)
			}
			a.log = logging.Get()
			if err := caps.Verify(); err != nil {
				a.log.WithError(err).Warn("build tier not supported by this cpu")
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default is ./lanes.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newTierCmd(a),
		newTableCmd(a),
		newSelfCheckCmd(a),
		newHostCmd(a),
	)
	return root
}
