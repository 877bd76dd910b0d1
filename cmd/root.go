package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/abhisek/traineeval/internal/report"
	"github.com/charmbracelet/colorprofile"
	"github.com/spf13/cobra"
)

// now is the clock used for ages in command output.
var now = time.Now

var rootCmd = &cobra.Command{
	Use:          "traineeval",
	Short:        "Track trainee assessments and mark quizzes",
	Long:         "traineeval records trainee assessments, weights their scores by kind and marks quizzes into assessments.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output (overrides TRAINEEVAL_NO_COLOR and NO_COLOR env vars)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(markCmd)
	rootCmd.AddCommand(kindsCmd)
	rootCmd.AddCommand(versionCmd)
}

// setupLogger installs the default slog logger. Without --verbose only
// warnings and errors are written.
func setupLogger(cmd *cobra.Command) {
	level := slog.LevelWarn
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: level,
	})))
}

// resolveColor reports whether output should be colored. --no-color and
// TRAINEEVAL_NO_COLOR turn color off; otherwise the profile detected for
// stdout decides, which covers NO_COLOR, TERM=dumb and non-terminals.
func resolveColor(cmd *cobra.Command) bool {
	if off, _ := cmd.Flags().GetBool("no-color"); off {
		return false
	}
	if os.Getenv("TRAINEEVAL_NO_COLOR") != "" {
		return false
	}
	switch colorprofile.Detect(cmd.OutOrStdout(), os.Environ()) {
	case colorprofile.NoTTY, colorprofile.Ascii:
		return false
	default:
		return true
	}
}

func newRenderer(cmd *cobra.Command) *report.Renderer {
	return report.New(resolveColor(cmd))
}
