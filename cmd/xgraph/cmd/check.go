package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/neuronlabs/xgraph/document"
	"github.com/neuronlabs/xgraph/errors"
	"github.com/neuronlabs/xgraph/errors/class"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files]",
		Short: "Checks the references of the documents.",
		Long: `Checks if provided documents are well formed, each id is defined once and each
reference points to the id defined before it. The external documents are checked as well,
their paths are resolved relative to the referencing document.`,
		Args: cobra.MinimumNArgs(1),
		RunE: a.check,
	}
}

func (a *app) check(cmd *cobra.Command, args []string) error {
	var (
		errs    errors.MultiError
		checked = map[string]struct{}{}
	)
	for _, path := range args {
		errs = append(errs, a.checkFile(path, checked)...)
	}
	if len(errs) > 0 {
		return errs
	}
	fmt.Fprintf(cmd.OutOrStdout(), "OK. Checked %d documents.\n", len(checked))
	return nil
}

func (a *app) checkFile(path string, checked map[string]struct{}) errors.MultiError {
	s := a.engine.NewSession(path)
	if _, ok := checked[s.File]; ok {
		return nil
	}
	checked[s.File] = struct{}{}

	root, err := a.readDocument(path)
	if err != nil {
		return errors.MultiError{asError(err)}
	}
	links := document.ScanLinks(root, path, isTemplate)
	errs := links.Errors()
	for _, e := range links.Externals {
		full := s.ExternalPath(e.Attrs[document.AttrPath])
		if exists, _ := afero.Exists(a.fs, full); !exists {
			errs = append(errs, errors.Newf(class.DocumentLinksMissingExternal, "external document: '%s' not found", e.Attrs[document.AttrPath]).
				SetLocation(errors.Location{File: path, Line: e.Line, Column: e.Column}))
			continue
		}
		errs = append(errs, a.checkFile(full, checked)...)
	}
	return errs
}

func asError(err error) *errors.Error {
	if e, ok := err.(*errors.Error); ok {
		return e
	}
	return errors.Wrap(class.DocumentSyntaxInvalid, err, "reading document failed")
}
