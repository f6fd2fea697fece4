package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/logger"
	"github.com/spigell/remote-matcher/internal/profile"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score a resume against a single job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		match(cmd)
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().StringP("resume", "r", "", "resume JSON file")
	matchCmd.Flags().StringP("job", "J", "", "job posting JSON file")
	matchCmd.MarkFlagRequired("resume")
	matchCmd.MarkFlagRequired("job")
}

func match(cmd *cobra.Command) {
	env := newSession()

	rawResume, rawJob := loadPair(env, cmd)

	result := env.engine.MatchRaw(rawResume, rawJob)
	env.logger.Info("match finished",
		append(logger.MatchFields(result.JobID, string(result.Kind)), zap.Float64("overall_score", result.OverallScore))...,
	)

	if err := printJSON(result); err != nil {
		env.logger.Fatal("printing result", zap.Error(err))
	}
}

// loadPair reads the resume and job documents named by the command flags.
func loadPair(env *session, cmd *cobra.Command) (map[string]any, map[string]any) {
	resumePath := cmd.Flag("resume").Value.String()
	jobPath := cmd.Flag("job").Value.String()

	rawResume, err := profile.LoadDocument(resumePath)
	if err != nil {
		env.logger.Fatal("loading resume", zap.String("file", resumePath), zap.Error(err))
	}

	rawJob, err := profile.LoadDocument(jobPath)
	if err != nil {
		env.logger.Fatal("loading job posting", zap.String("file", jobPath), zap.Error(err))
	}

	return rawResume, rawJob
}
