package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/neuronlabs/xgraph/config"
	"github.com/neuronlabs/xgraph/contract"
	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/log"
	"github.com/neuronlabs/xgraph/template"
)

// app is the state shared by the commands.
type app struct {
	fs     afero.Fs
	cfg    *config.Config
	engine *contract.Engine
}

// NewRootCmd creates the root command working on the file system 'fs'.
func NewRootCmd(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs}
	rootCmd := &cobra.Command{
		Use:   "xgraph",
		Short: "A tool for the xgraph object graph documents.",
		Long: `It is a tool for the documents written by the github.com/neuronlabs/xgraph serializer.
It formats the documents in the canonical form, checks their references and lists
the identities and external documents they are linked with.`,
		PersistentPreRunE: a.initialize,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}
	rootCmd.PersistentFlags().StringP("config", "c", "", "path to the configuration file")
	rootCmd.PersistentFlags().String("log-level", "info", "the logging level. Possible values: debug3, debug2, debug, info, warning, error, critical")
	rootCmd.PersistentFlags().Int("indent", 2, "the number of spaces used to indent the written documents")

	rootCmd.AddCommand(a.fmtCmd(), a.checkCmd(), a.refsCmd())
	return rootCmd
}

// Execute creates the root command and executes it on the operating system file system.
// This is called by main.main().
func Execute() {
	if err := NewRootCmd(afero.NewOsFs()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	v := viper.New()
	v.SetFs(a.fs)
	if err := v.BindPFlag("log_level", cmd.Flags().Lookup("log-level")); err != nil {
		return err
	}
	if err := v.BindPFlag("indent", cmd.Flags().Lookup("indent")); err != nil {
		return err
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err = v.ReadInConfig(); err != nil {
			return errors.Wrapf(class.ConfigReadFile, err, "reading config: '%s' failed", path)
		}
	}
	if a.cfg, err = config.FromViper(v); err != nil {
		return err
	}
	if log.Logger() == nil {
		log.Default()
	}
	if err = log.SetLevel(log.ParseLevel(a.cfg.LogLevel)); err != nil {
		return err
	}
	if a.engine, err = contract.NewEngine(a.cfg); err != nil {
		return err
	}
	a.engine.Fs = a.fs
	return nil
}

func (a *app) readDocument(path string) (*document.Element, error) {
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return nil, errors.Wrapf(class.CommonFileOpen, err, "reading file: '%s' failed", path)
	}
	return document.Unmarshal(data, path)
}

// isTemplate checks if the element holds the template snapshot with its own identities.
func isTemplate(e *document.Element) bool {
	return e.HasAttr(template.AttrTemplated)
}
