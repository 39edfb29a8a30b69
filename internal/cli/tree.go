package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/synteny/pkg/errors"
	"github.com/matzehuels/synteny/pkg/layout"
	"github.com/matzehuels/synteny/pkg/pipeline"
	"github.com/matzehuels/synteny/pkg/tree"
)

// treeCommand creates the tree command for drawing the phylogenetic tree.
func (c *CLI) treeCommand() *cobra.Command {
	var (
		output string
		dot    bool
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "tree [data.json]",
		Short: "Draw the phylogenetic tree of alignment data",
		Long: `Draw the phylogenetic tree of alignment data with Graphviz.

The panel is sized the way the linear layout places it: treeWidth wide and
tall enough that every leaf lines up with its genome row. Use --dot to write
the Graphviz source instead of SVG.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.DataPath = args[0]
			return c.runTree(opts, output, dot)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.tree.svg)")
	cmd.Flags().BoolVar(&dot, "dot", false, "write Graphviz DOT instead of SVG")
	loadFlags(cmd, &opts)

	return cmd
}

func (c *CLI) runTree(opts pipeline.Options, output string, dot bool) error {
	prog := newProgress(c.Logger)

	s, err := pipeline.Load(opts)
	if err != nil {
		return fmt.Errorf("load %s: %w", opts.DataPath, err)
	}
	if !tree.HasTree(s.Data) {
		return errors.New(errors.ErrCodeNotFound, "%s has no tree", opts.DataPath)
	}

	rows := len(s.Filters.Karyo.GenomeOrder)
	gd := layout.GenomeDistance(s.Config, rows)

	var (
		data []byte
		ext  = ".tree.svg"
	)
	if dot {
		p, err := tree.ParamsFor(s.Config, gd)
		if err != nil {
			return err
		}
		data = []byte(tree.ToDOT(s.Data.Tree, p))
		ext = ".tree.dot"
	} else {
		svg, p, err := pipeline.RenderTree(s, gd)
		if err != nil {
			return fmt.Errorf("render tree: %w", err)
		}
		data = tree.Fit(svg, p)
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath("", opts.DataPath) + ext
	}
	if err := writeFile(outputPath, data); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done("Rendered tree")

	printSuccess("Tree complete")
	printFile(outputPath)
	printKeyValue("leaves", strings.Join(tree.Leaves(s.Data.Tree), ", "))
	printKeyValue("rows", fmt.Sprint(rows))
	return nil
}
