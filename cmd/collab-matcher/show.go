// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/collab-matcher/internal/dataset"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display suggested teams from a generated file",
	Long: `Show reads a team suggestions file written by generate and prints it as a
table, JSON, or YAML. Use --query to keep only records whose opportunity,
team name, members, or rationale mention a phrase, and --top to limit the
output to the first N opportunities. With --others, --top instead hides the
first N opportunities and shows the rest.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().String("teams", "", "team suggestions file (default: the generate output path)")
	showCmd.Flags().String("query", "", "case-insensitive filter over titles, names, and rationale")
	showCmd.Flags().Int("top", 0, "show only the first N opportunities (0 for all)")
	showCmd.Flags().Bool("others", false, "show every opportunity except the first --top ones")
	showCmd.Flags().String("format", dataset.FormatTableName, "output format: table, json, or yaml")

	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("teams")
	if path == "" {
		path = viper.GetString("data.output")
	}
	query, _ := cmd.Flags().GetString("query")
	top, _ := cmd.Flags().GetInt("top")
	others, _ := cmd.Flags().GetBool("others")
	format, _ := cmd.Flags().GetString("format")

	records, err := dataset.LoadTeams(path)
	if err != nil {
		return err
	}

	if others {
		records = dataset.OtherOpportunities(records, top)
	} else {
		records = dataset.TopOpportunities(records, top)
	}
	records = dataset.Filter(records, query)
	return dataset.Format(records, format, cmd.OutOrStdout())
}
