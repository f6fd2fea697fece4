package cmd

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/spigell/remote-matcher/internal/logger"
	"github.com/spigell/remote-matcher/internal/profile"
	"github.com/spigell/remote-matcher/internal/salary"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Estimate the salary range for a resume and a job posting",
	Run: func(cmd *cobra.Command, _ []string) {
		predict(cmd)
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)

	predictCmd.Flags().StringP("resume", "r", "", "resume JSON file")
	predictCmd.Flags().StringP("job", "J", "", "job posting JSON file")
	predictCmd.Flags().StringP("samples", "s", "", "JSON file with a list of observed market salaries")
	predictCmd.Flags().Bool("steps", false, "list the salary adjustment steps and exit")
}

func predict(cmd *cobra.Command) {
	env := newSession()

	if cmd.Flag("steps").Value.String() == "true" {
		if err := renderSteps(env.predictor.Steps()); err != nil {
			env.logger.Fatal("rendering steps", zap.Error(err))
		}
		return
	}

	for _, name := range []string{"resume", "job"} {
		if cmd.Flag(name).Value.String() == "" {
			env.logger.Fatal("flag is required", zap.String("flag", name))
		}
	}

	rawResume, rawJob := loadPair(env, cmd)

	var samples []float64
	if path := cmd.Flag("samples").Value.String(); path != "" {
		var err error
		samples, err = profile.LoadSamplesFile(path)
		if err != nil {
			env.logger.Fatal("loading market samples", zap.String("file", path), zap.Error(err))
		}
	}

	prediction := env.predictor.PredictRaw(rawResume, rawJob, samples)

	jobID, _ := rawJob["id"].(string)
	fields := logger.MatchFields(jobID, string(prediction.Kind))
	if prediction.Computed() {
		s := prediction.PredictedSalary
		fields = append(fields,
			zap.String("range", fmt.Sprintf("%s - %s", formatMoney(s.Min), formatMoney(s.Max))),
			zap.String("level", s.Level),
			zap.Float64("confidence", prediction.ConfidenceScore),
		)
	}
	env.logger.Info("salary prediction finished", fields...)

	if err := printJSON(prediction); err != nil {
		env.logger.Fatal("printing prediction", zap.Error(err))
	}
}

func formatMoney(v float64) string {
	return "$" + humanize.Comma(int64(v))
}

func renderSteps(steps []salary.Status) error {
	data := pterm.TableData{{"#", "Step", "Enabled", "Reason"}}
	for i, s := range steps {
		data = append(data, []string{strconv.Itoa(i + 1), s.Name, strconv.FormatBool(s.Enabled), s.Reason})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
