package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Optiwork/internal/assign"
	"github.com/MikeSquared-Agency/Optiwork/internal/matching"
	"github.com/MikeSquared-Agency/Optiwork/internal/store"
)

const promptCancel = "cancel"

var (
	assignDraft assign.Draft
	assignUser  string
	assignStart string
	assignTo    string
)

var assignCmd = &cobra.Command{
	Use:   "assign",
	Short: "Rank the live roster for a task, pick an employee and create the task",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if strings.TrimSpace(assignDraft.Title) == "" {
			return errors.New("--title is required")
		}
		cfg, logger, err := loadConfig()
		if err != nil {
			return err
		}
		svc, err := newLiveService(cmd, cfg, logger)
		if err != nil {
			return err
		}

		draft := assignDraft
		draft.StartTime = assignStart
		draft.Priority = store.Priority(strings.ToLower(string(draft.Priority)))

		employeeID := assignTo
		if employeeID == "" {
			set, err := svc.Matches(cmd.Context(), draft.Requirement())
			if err != nil {
				return err
			}
			employeeID, err = pickEmployee(set.Results)
			if err != nil {
				return err
			}
		}

		a, err := svc.Assign(cmd.Context(), draft, employeeID, assignUser)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created task %s for %s (score %d, %s)\n",
			a.TaskID, a.AssignedTo, a.MatchScore, matching.Tier(float64(a.MatchScore)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(assignCmd)
	f := assignCmd.Flags()
	f.StringVarP(&assignDraft.Title, "title", "t", "", "task title")
	f.StringVar(&assignDraft.Description, "description", "", "task description")
	f.StringVar((*string)(&assignDraft.Priority), "priority", string(store.PriorityMedium), "low, medium or high")
	f.StringVar(&assignStart, "start", assign.DefaultStartTime, "task start time (HH:MM)")
	f.StringVar(&assignDraft.EndTime, "end", assign.DefaultEndTime, "task end time (HH:MM)")
	f.StringVar(&assignDraft.DueDate, "due", "", "due date (YYYY-MM-DD), defaults to today")
	f.StringVar(&assignDraft.Notes, "notes", "", "notes for the assignee")
	f.StringSliceVarP(&assignDraft.RequiredSkills, "skills", "s", nil, "required skill ids, comma separated")
	f.StringVarP(&assignUser, "user", "u", "", "id of the assigning user")
	f.StringVar(&assignTo, "employee", "", "assign to this employee id without prompting")
}

func candidateLabel(r matching.MatchResult) string {
	return fmt.Sprintf("%s  %d%% %s  (%s)", displayName(r.Employee), r.MatchScore,
		matching.Tier(float64(r.MatchScore)), strings.Join(matching.RenderAll(matching.TextRenderer{}, r.Reasons), "; "))
}

func pickEmployee(results []matching.MatchResult) (string, error) {
	if len(results) == 0 {
		return "", errors.New("no employees in roster")
	}
	items := make([]string, 0, len(results)+1)
	for _, r := range results {
		items = append(items, candidateLabel(r))
	}
	items = append(items, promptCancel)

	sel := promptui.Select{
		Label: "Choose an employee and press ENTER",
		Items: items,
		Size:  10,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return "", err
	}
	if idx == len(results) {
		return "", errors.New("cancelled")
	}
	return results[idx].Employee.ID, nil
}
