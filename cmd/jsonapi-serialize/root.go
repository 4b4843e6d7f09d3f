package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/jsonapi-serializer/config"
	"github.com/neuronlabs/jsonapi-serializer/log"
)

// rootOptions are the flags shared by all the commands.
type rootOptions struct {
	config  string
	verbose bool
}

// newRootCmd creates the base command when called without any sub commands.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "jsonapi-serialize",
		Short: "Renders the JSON:API documents for the yaml fixtures.",
		Long: `It renders the JSON:API documents with the included resources for the object graphs
and the serializer definitions defined in the yaml fixture files.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "serializer config name or the path to the config file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "writes the debug logs to the stderr")

	cmd.AddCommand(newRenderCmd(opts))
	return cmd
}

// Execute executes the root command. It is called by the main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// serializerConfig reads the serializer config for the 'config' flag and applies its log level.
// If no config is provided the default one is used.
func (o *rootOptions) serializerConfig() (*config.Serializer, error) {
	var (
		cfg *config.Serializer
		err error
	)
	switch {
	case o.config == "":
		cfg = config.Default()
	case filepath.Ext(o.config) != "":
		cfg, err = config.ReadConfig(o.config)
	default:
		cfg, err = config.ReadNamedConfig(o.config)
	}
	if err != nil {
		return nil, err
	}
	if o.verbose {
		log.Default()
		cfg.LogLevel = "debug3"
	}
	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		if err = log.SetLevel(level); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}
