package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
	"github.com/neuronlabs/xgraph/log"
)

func (a *app) fmtCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmt [files]",
		Short: "Formats the documents in the canonical form.",
		Long: `Formats provided documents in the canonical form: the attributes are ordered,
the elements are indented with the configured number of spaces.
By default the formatted documents are written to the standard output, i.e.:

xgraph fmt -w ./scene.xml`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.format,
	}
	cmd.Flags().BoolP("write", "w", false, "write the result to the source file instead of the standard output")
	return cmd
}

func (a *app) format(cmd *cobra.Command, args []string) error {
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}
	for _, path := range args {
		root, err := a.readDocument(path)
		if err != nil {
			return err
		}
		data, err := document.Marshal(root, a.cfg.Indent)
		if err != nil {
			return err
		}
		if !write {
			if _, err = cmd.OutOrStdout().Write(data); err != nil {
				return err
			}
			continue
		}
		if err = afero.WriteFile(a.fs, path, data, 0644); err != nil {
			return errors.Wrapf(class.CommonFileWrite, err, "writing file: '%s' failed", path)
		}
		log.Debugf("Formatted: '%s'", path)
	}
	return nil
}
