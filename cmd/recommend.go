package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend postings and missing skills for a resume",
	Run: func(cmd *cobra.Command, _ []string) {
		recommend(cmd)
	},
}

func init() {
	rootCmd.AddCommand(recommendCmd)

	recommendCmd.Flags().StringP("resume", "r", "", "resume JSON file")
	recommendCmd.Flags().String("jobs", "", "JSON file with a list of job postings")
	recommendCmd.Flags().IntP("limit", "l", 10, "maximum number of top matches")
	recommendCmd.MarkFlagRequired("resume")
	recommendCmd.MarkFlagRequired("jobs")
}

func recommend(cmd *cobra.Command) {
	env := newSession()

	limit := env.config.Matching.Limit
	if cmd.Flags().Changed("limit") {
		limit, _ = cmd.Flags().GetInt("limit")
	}

	resume, postings := loadBatch(env, cmd)

	rec := env.engine.Recommend(resume, postings.Items, limit)
	env.logger.Info("recommendation ready",
		zap.Int("top_matches", len(rec.TopMatches)),
		zap.Int("skill_gaps", len(rec.SkillGaps)),
		zap.Float64("remote_percentage", rec.Insights.RemotePercentage),
	)

	if err := printJSON(rec); err != nil {
		env.logger.Fatal("printing recommendation", zap.Error(err))
	}
}
