package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
)

type requirementFlags struct {
	skills []string
	start  string
}

func (f *requirementFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.skills, "skills", "s", nil, "required skill ids, comma separated")
	cmd.Flags().StringVar(&f.start, "start", assign.DefaultStartTime, "task start time (HH:MM)")
}

func (f *requirementFlags) requirement() matching.TaskRequirement {
	return matching.TaskRequirement{RequiredSkills: f.skills, StartTime: f.start}
}

func (o *outputOptions) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&o.top, "top", "n", 0, "show only the first N candidates")
	cmd.Flags().BoolVarP(&o.reasons, "reasons", "r", false, "print the reasons under each candidate")
	cmd.Flags().BoolVarP(&o.asJSON, "json", "j", false, "print results as JSON")
}

var (
	scoreFile string
	scoreReq  requirementFlags
	scoreOut  outputOptions
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Rank employees from a roster snapshot file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if scoreFile == "" {
			return errors.New("--file is required")
		}
		snap, err := loadSnapshot(scoreFile)
		if err != nil {
			return err
		}
		results := matching.ComputeMatches(scoreReq.requirement(), snap.Employees, snap.Catalog)
		return printMatches(cmd.OutOrStdout(), results, scoreOut)
	},
}

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "roster snapshot (.yaml or .json)")
	scoreReq.register(scoreCmd)
	scoreOut.register(scoreCmd)
}
