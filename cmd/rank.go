package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/matching"
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/utils"
)

const (
	PromptBack = "back"
	titleWidth = 40
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank job postings for a resume",
	Run: func(cmd *cobra.Command, _ []string) {
		rank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringP("resume", "r", "", "resume JSON file")
	rankCmd.Flags().String("jobs", "", "JSON file with a list of job postings")
	rankCmd.Flags().IntP("limit", "l", 10, "maximum number of postings to show")
	rankCmd.Flags().Float64P("min-score", "m", 0, "drop postings scoring below this value")
	rankCmd.Flags().BoolP("interactive", "i", false, "choose a posting to inspect its score breakdown")
	rankCmd.MarkFlagRequired("resume")
	rankCmd.MarkFlagRequired("jobs")

	viper.BindPFlag("matching.limit", rankCmd.Flags().Lookup("limit"))
	viper.BindPFlag("matching.min-score", rankCmd.Flags().Lookup("min-score"))
}

func rank(cmd *cobra.Command) {
	env := newSession()

	resume, postings := loadBatch(env, cmd)

	results := env.engine.TopMatches(resume, postings.Items, env.config.Matching.Limit, env.config.Matching.MinScore)
	env.logger.Info("ranking finished",
		zap.Int("postings", postings.Len()),
		zap.Int("shown", len(results)),
	)

	if len(results) == 0 {
		env.logger.Info("exiting", zap.String("reason", "no postings left after ranking"))
		return
	}

	if err := renderRanking(results, postings); err != nil {
		env.logger.Fatal("rendering ranking", zap.Error(err))
	}

	if cmd.Flag("interactive").Value.String() == "true" {
		if err := inspect(results, postings); err != nil {
			env.logger.Fatal("exiting", zap.Error(err))
		}
	}
}

// loadBatch reads the resume and the posting list named by the command flags.
// Postings that fail to decode are logged and skipped.
func loadBatch(env *session, cmd *cobra.Command) (profile.ResumeProfile, *profile.JobPostings) {
	resumePath := cmd.Flag("resume").Value.String()
	jobsPath := cmd.Flag("jobs").Value.String()

	resume, err := profile.LoadResumeFile(resumePath)
	if err != nil {
		env.logger.Fatal("loading resume", zap.String("file", resumePath), zap.Error(err))
	}

	postings, err := profile.LoadJobsFile(jobsPath)
	if postings == nil {
		env.logger.Fatal("loading job postings", zap.String("file", jobsPath), zap.Error(err))
	}
	if err != nil {
		env.logger.Warn("skipping malformed job postings", zap.String("file", jobsPath), zap.Error(err))
	}

	env.logger.Info("loaded job postings", zap.Int("count", postings.Len()))
	env.logger.Debug("job postings", zap.Strings("ids", postings.IDs()))
	return resume, postings
}

func renderRanking(results []matching.MatchResult, postings *profile.JobPostings) error {
	data := pterm.TableData{
		{"#", "Job", "Title", "Company", "Overall", "Skill", "Experience", "Location", "Education", "Salary"},
	}

	for i, r := range results {
		job, _ := postings.FindByID(r.JobID)
		data = append(data, []string{
			strconv.Itoa(i + 1),
			r.JobID,
			utils.TruncateForLog(job.Title, titleWidth),
			utils.TruncateForLog(job.Company, titleWidth),
			colorizeScore(r.OverallScore),
			formatScore(r.Scores.Skill),
			formatScore(r.Scores.Experience),
			formatScore(r.Scores.Location),
			formatScore(r.Scores.Education),
			formatScore(r.Scores.Salary),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func colorizeScore(v float64) string {
	s := formatScore(v)
	switch {
	case v >= 0.75:
		return pterm.Green(s)
	case v >= 0.5:
		return pterm.Yellow(s)
	default:
		return pterm.Red(s)
	}
}

// inspect lets the user pick ranked postings one at a time and prints their
// full breakdown until they go back.
func inspect(results []matching.MatchResult, postings *profile.JobPostings) error {
	for {
		items := make([]string, 0, len(results)+1)
		for _, r := range results {
			job, _ := postings.FindByID(r.JobID)
			items = append(items, fmt.Sprintf("%s %s / %s / %s", r.JobID, job.Title, job.Company, formatScore(r.OverallScore)))
		}

		resultPrompt := promptui.Select{
			Label: "Choose a posting and press ENTER",
			Items: append(items, PromptBack),
		}

		_, selected, err := resultPrompt.Run()
		if err != nil {
			return err
		}

		if selected == PromptBack {
			return nil
		}

		jobID := strings.Split(selected, " ")[0]
		for _, r := range results {
			if r.JobID == jobID {
				if err := printJSON(r); err != nil {
					return err
				}
				break
			}
		}
	}
}
