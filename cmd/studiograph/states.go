package main

import (
	"errors"

	"github.com/aretw0/studiograph/internal/adapters/file"
	"github.com/aretw0/studiograph/internal/traverse"
	"github.com/aretw0/studiograph/pkg/domain"
	"github.com/spf13/cobra"
)

// statesCmd implements the generate_states_file command.
var statesCmd = &cobra.Command{
	Use:   "generate_states_file <trigger_type> <flow_sid>",
	Short: "Write the states reachable from a trigger to a JSON file",
	Long: `Fetches the flow definition, resolves the entry state for the given trigger
type, and writes every reachable state to the states file as a JSON object
(state name mapped to itself, in first-visit order).`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runGenerateStates(cmd, args); err != nil {
			fail(err)
		}
	},
}

func init() {
	rootCmd.AddCommand(statesCmd)

	statesCmd.Flags().String("states-file", "", "Path of the states file to write")
	_ = statesCmd.MarkFlagRequired("states-file")
}

func runGenerateStates(cmd *cobra.Command, args []string) error {
	logger := loggerFromFlags(cmd)

	trigger, err := domain.ParseTriggerType(args[0])
	if err != nil {
		return err
	}
	flowSID := args[1]
	statesFile, _ := cmd.Flags().GetString("states-file")

	flow, err := clientFromFlags(cmd, logger).Fetch(cmd.Context(), flowSID)
	if err != nil {
		return err
	}

	// An unusable definition or an unmatched trigger degrades to an empty
	// listing; the file is still written.
	var states []string
	g, err := domain.BuildGraph(flow.Definition)
	switch {
	case errors.Is(err, domain.ErrInvalidDefinition):
		logger.Error("invalid flow definition", "error", err, "sid", flowSID)
	case err != nil:
		return err
	default:
		entry, ok := traverse.FirstState(g, trigger)
		if !ok {
			logger.Warn("no states found for trigger", "trigger", trigger.Event(), "sid", flowSID)
		}
		states = traverse.Reachable(g, entry)
	}

	if err := file.WriteStates(statesFile, states); err != nil {
		return err
	}
	logger.Info("states file written", "path", statesFile, "states", len(states))
	return nil
}
