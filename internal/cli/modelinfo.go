package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yildizm/NewsLens/internal/classify"
)

func newModelInfoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "model-info",
		Short: "Show information about the served model",
		Long: `Fetch and display the model architecture, the categories it predicts and
the preprocessing steps applied to headlines.`,
		Args: cobra.NoArgs,
		RunE: runModelInfo,
	}
}

func runModelInfo(cmd *cobra.Command, args []string) error {
	cfg, _, client, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(cmd, cfg)
	defer cancel()

	info, err := client.ModelInfo(ctx)
	if err != nil {
		return fmt.Errorf("%s", classify.UserMessage(err, classify.MsgModelInfoFailed))
	}

	data, err := getFormatter(cfg).FormatModelInfo(info)
	if err != nil {
		return err
	}
	return writeOutput(cmd.OutOrStdout(), data)
}

func newHealthCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check the prediction backend",
		Long: `Query the backend health endpoint. Exits with an error when the backend is
unreachable or has no model loaded, so it can be used in scripts.`,
		Args: cobra.NoArgs,
		RunE: runHealth,
	}
}

func runHealth(cmd *cobra.Command, args []string) error {
	cfg, _, client, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := requestContext(cmd, cfg)
	defer cancel()

	health, err := client.Health(ctx)
	if err != nil {
		return fmt.Errorf("%s", classify.UserMessage(err, "backend unreachable"))
	}

	data, err := getFormatter(cfg).FormatHealth(health)
	if err != nil {
		return err
	}
	if err := writeOutput(cmd.OutOrStdout(), data); err != nil {
		return err
	}

	if !health.Healthy() {
		return fmt.Errorf("backend is not healthy")
	}
	return nil
}
