package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/neuronlabs/xgraph/document"
)

func (a *app) refsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refs [file]",
		Short: "Lists the identities and the external documents of the document.",
		Long: `Lists the ids defined in provided document together with their types and
the number of references to each of them, followed by the external document paths.`,
		Args: cobra.ExactArgs(1),
		RunE: a.refs,
	}
}

func (a *app) refs(cmd *cobra.Command, args []string) error {
	root, err := a.readDocument(args[0])
	if err != nil {
		return err
	}
	links := document.ScanLinks(root, args[0], isTemplate)
	out := cmd.OutOrStdout()
	for _, id := range links.SortedIDs() {
		e := links.IDs[id]
		fmt.Fprintf(out, "%s\t%s\t%s\trefs=%d\n", id, e.Name, e.Attrs[document.AttrType], links.RefCount(id))
	}
	for _, path := range links.Paths() {
		fmt.Fprintf(out, "external\t%s\n", path)
	}
	return links.Errors().OrNil()
}
