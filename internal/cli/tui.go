package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yildizm/NewsLens/internal/clipboard"
	"github.com/yildizm/NewsLens/internal/ui"
)

func newTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive classifier",
		Long: `Open the interactive headline classifier.

Type or paste a headline and press enter to classify it. The result shows the
predicted category, a confidence meter and the full probability distribution.

Keys:
  enter, ctrl+s  classify
  alt+enter      insert a newline
  ctrl+l         clear input and result
  ctrl+y         copy the result to the clipboard
  ctrl+o         show model information
  ctrl+e         insert an example headline
  esc            close dialog
  ctrl+c         quit`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, log, client, err := setup(cmd)
	if err != nil {
		return err
	}

	// the TUI owns the terminal, so log lines go to a file or nowhere
	if cfg.Log.File != "" {
		file, err := openLogFile(cfg.Log.File)
		if err != nil {
			return err
		}
		defer func() {
			if err := file.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to close log file: %v\n", err)
			}
		}()
		log.SetOutput(file)
	} else {
		log.SetOutput(nil)
	}

	if !ui.SetThemeByName(cfg.UI.Theme) {
		log.Warn("unknown theme %q, using default", cfg.UI.Theme)
	}
	if cfg.Output.ColorMode == "never" {
		ui.SetThemeByName("minimal")
	}

	log.Info("starting interactive classifier against %s", client.BaseURL())
	return ui.Run(ui.Options{
		Backend:      client,
		Clipboard:    clipboard.NewOSC52(os.Stderr),
		Logger:       log.WithComponent("ui"),
		BaseURL:      client.BaseURL(),
		Examples:     cfg.UI.Examples,
		NarrowWidth:  cfg.UI.NarrowWidth,
		ErrorTimeout: cfg.UI.ErrorTimeout,
		CopyTimeout:  cfg.UI.CopyTimeout,
	})
}
