package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aretw0/studiograph/internal/adapters/file"
	"github.com/aretw0/studiograph/internal/docs"
	"github.com/aretw0/studiograph/internal/presentation/mermaid"
	"github.com/aretw0/studiograph/internal/presentation/tui"
	"github.com/aretw0/studiograph/internal/traverse"
	"github.com/aretw0/studiograph/pkg/domain"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// graphCmd implements the update_graph command.
var graphCmd = &cobra.Command{
	Use:   "update_graph <trigger_type> <flow_sid>",
	Short: "Render the flow as a Mermaid graph and splice it into a document",
	Long: `Fetches the flow definition, renders a Mermaid flowchart for the given
trigger type, prints it to stdout, and replaces the managed section of the
output document (delimited by <!-- <section-id>-start --> and
<!-- <section-id>-end --> markers) with the rendered block.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runUpdateGraph(cmd, args); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("output-file", "", "Document whose managed section receives the graph")
	graphCmd.Flags().String("section-id", "", "Tag name of the section markers")
	graphCmd.Flags().String("states-file", "", "Optional friendly-name file (JSON or YAML)")
	graphCmd.Flags().Bool("preview", false, "Render the updated document to the terminal")
	_ = graphCmd.MarkFlagRequired("output-file")
	_ = graphCmd.MarkFlagRequired("section-id")
}

func runUpdateGraph(cmd *cobra.Command, args []string) error {
	logger := loggerFromFlags(cmd)

	trigger, err := domain.ParseTriggerType(args[0])
	if err != nil {
		return err
	}
	flowSID := args[1]
	outputFile, _ := cmd.Flags().GetString("output-file")
	sectionID, _ := cmd.Flags().GetString("section-id")
	namesFile, _ := cmd.Flags().GetString("states-file")
	preview, _ := cmd.Flags().GetBool("preview")

	flow, err := clientFromFlags(cmd, logger).Fetch(cmd.Context(), flowSID)
	if err != nil {
		return err
	}

	g, err := domain.BuildGraph(flow.Definition)
	switch {
	case errors.Is(err, domain.ErrInvalidDefinition):
		// Degrade to an empty diagram rather than aborting.
		logger.Error("invalid flow definition", "error", err, "sid", flowSID)
		g = domain.NewGraph()
	case err != nil:
		return err
	}

	friendly, err := file.LoadFriendlyNames(namesFile)
	if err != nil {
		logger.Warn("friendly names unavailable, using raw state names", "error", err)
	}

	entry, ok := traverse.FirstState(g, trigger)
	if !ok {
		logger.Warn("no states found for trigger", "trigger", trigger.Event(), "sid", flowSID)
	}

	graphText := strings.Join(mermaid.Render(entry, g, friendly), "\n")
	fmt.Println(graphText)

	if err := docs.UpdateFile(outputFile, graphText, sectionID); err != nil {
		return err
	}
	logger.Info("graph updated", "path", outputFile, "section", sectionID)

	if preview && term.IsTerminal(int(os.Stdout.Fd())) {
		doc, err := os.ReadFile(outputFile)
		if err != nil {
			return err
		}
		rendered, err := tui.RenderMarkdown(string(doc))
		if err != nil {
			logger.Warn("preview rendering failed", "error", err)
			return nil
		}
		fmt.Print(rendered)
	}
	return nil
}
