// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/collab-matcher/internal/dataset"
	"github.com/pdiddy/collab-matcher/internal/logger"
	"github.com/pdiddy/collab-matcher/internal/match"
	"github.com/pdiddy/collab-matcher/internal/validate"
	"github.com/pdiddy/collab-matcher/pkg/types"
)

const (
	generateUsage   = "usage: collab-matcher generate DEPT_LABEL MAX_OPPS TOP_N"
	generateExpects = "expects: " + types.DefaultFacultyPath + " " + types.DefaultOpportunitiesPath +
		" writes " + types.DefaultOutputPath
)

var generateCmd = &cobra.Command{
	Use:   "generate DEPT_LABEL MAX_OPPS TOP_N",
	Short: "Match faculty to recent opportunities and write team suggestions",
	Long: `Generate selects the MAX_OPPS most recent opportunities (by close date,
then posted date), ranks every faculty member against each one by shared
vocabulary, keeps the TOP_N best candidates, and writes pair and team
suggestions labeled with DEPT_LABEL.

When too few faculty share any vocabulary with an opportunity, the top of the
full roster is used instead so every opportunity still gets suggestions.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 3 {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, generateUsage)
			fmt.Fprintln(out, generateExpects)
			return &usageError{msg: fmt.Sprintf("generate takes 3 arguments, got %d", len(args))}
		}
		return nil
	},
	RunE: runGenerate,
}

func init() {
	defaults := types.DefaultMatchConfig()

	generateCmd.Flags().String("faculty", defaults.FacultyPath, "faculty index JSON file")
	generateCmd.Flags().String("opportunities", defaults.OpportunitiesPath, "opportunities JSON file")
	generateCmd.Flags().String("output", defaults.OutputPath, "output file for team suggestions")
	generateCmd.Flags().Int("pairs", defaults.PairCount, "pairs to suggest per opportunity")
	generateCmd.Flags().Int("teams", defaults.TeamCount, "teams to suggest per opportunity")
	generateCmd.Flags().Int("fallback-threshold", defaults.FallbackThreshold,
		"use the top of the full roster when fewer candidates share any terms")

	viper.BindPFlag("data.faculty", generateCmd.Flags().Lookup("faculty"))
	viper.BindPFlag("data.opportunities", generateCmd.Flags().Lookup("opportunities"))
	viper.BindPFlag("data.output", generateCmd.Flags().Lookup("output"))
	viper.BindPFlag("match.pairs", generateCmd.Flags().Lookup("pairs"))
	viper.BindPFlag("match.teams", generateCmd.Flags().Lookup("teams"))
	viper.BindPFlag("match.fallback_threshold", generateCmd.Flags().Lookup("fallback-threshold"))
	viper.SetDefault("match.overlap_term_cap", defaults.OverlapTermCap)

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	maxOpps, err := parseCount("MAX_OPPS", args[1])
	if err != nil {
		return err
	}
	topN, err := parseCount("TOP_N", args[2])
	if err != nil {
		return err
	}

	cfg := matchConfig(args[0], maxOpps, topN)
	if err := validate.Struct(cfg); err != nil {
		return err
	}

	log := logger.New(logger.Options{
		Level:  viper.GetString("log.level"),
		Format: viper.GetString("log.format"),
		Writer: cmd.ErrOrStderr(),
		RunID:  uuid.NewString(),
	})
	log.Info().
		Str("department", cfg.Department).
		Int("max_opportunities", cfg.MaxOpportunities).
		Int("top_n", cfg.TopN).
		Msg("starting run")

	faculty, err := dataset.LoadFaculty(cfg.FacultyPath)
	if err != nil {
		return err
	}
	opps, err := dataset.LoadOpportunities(cfg.OpportunitiesPath)
	if err != nil {
		return err
	}
	log.Debug().
		Int("faculty", len(faculty)).
		Int("opportunities", len(opps)).
		Msg("loaded inputs")

	res := match.Run(cfg, faculty, opps, log)

	if err := dataset.WriteTeams(cfg.OutputPath, res.Records); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "faculty %d\n", res.FacultyCount)
	fmt.Fprintf(out, "opps_used %d\n", res.OpportunitiesUsed)
	fmt.Fprintf(out, "teams_written %d\n", len(res.Records))

	log.Info().
		Str("output", cfg.OutputPath).
		Int("records", len(res.Records)).
		Msg("wrote teams")
	return nil
}

// matchConfig builds the run configuration from the positional arguments and
// the viper-resolved flag, config file, and environment settings.
func matchConfig(dept string, maxOpps, topN int) types.MatchConfig {
	cfg := types.DefaultMatchConfig()
	cfg.Department = dept
	cfg.MaxOpportunities = maxOpps
	cfg.TopN = topN
	cfg.PairCount = viper.GetInt("match.pairs")
	cfg.TeamCount = viper.GetInt("match.teams")
	cfg.FallbackThreshold = viper.GetInt("match.fallback_threshold")
	cfg.OverlapTermCap = viper.GetInt("match.overlap_term_cap")
	cfg.FacultyPath = viper.GetString("data.faculty")
	cfg.OpportunitiesPath = viper.GetString("data.opportunities")
	cfg.OutputPath = viper.GetString("data.output")
	return cfg
}

func parseCount(name, s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", name, err)
	}
	return n, nil
}
