// Package cli implements the richmark command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roboco-io/richmark/internal/config"
)

var version = "dev"

var (
	verbose bool
	quiet   bool

	// logger is set up before every command runs.
	logger = slog.New(slog.DiscardHandler)
)

var rootCmd = &cobra.Command{
	Use:   "richmark",
	Short: "HTML과 리치 텍스트 문서 트리 간 변환 도구",
	Long: `richmark는 제한된 HTML과 리치 텍스트 에디터 문서 트리(Slate, TipTap JSON)를
서로 변환합니다.

지원 형식:
  html     strong, em, u, code, blockquote, h1, h2, ul, ol, li, pre
  slate    Slate 에디터 JSON 값
  tiptap   TipTap(ProseMirror) JSON 문서

예시:
  richmark parse page.html
  richmark export value.json -o page.html
  richmark convert page.html --to tiptap`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 표시",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "richmark %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "상세 출력")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "조용한 모드")

	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setupLogging(cmd *cobra.Command, args []string) error {
	level := config.GetEnvOrDefault(config.EnvLogLevel, "warn")
	if cfg, err := loadConfig(); err == nil {
		level = cfg.LogLevel
	}
	logger = newLogger(cmd.ErrOrStderr(), logLevel(level))
	return nil
}

// logLevel resolves the level from the configured name and the -v/-q flags.
// Unknown names fall back to warn.
func logLevel(name string) slog.Level {
	switch {
	case quiet:
		return slog.LevelError
	case verbose:
		return slog.LevelDebug
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelWarn
	}
	return l
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadConfig reads the configuration file and applies RICHMARK_* overrides.
func loadConfig() (*config.Config, error) {
	loader, err := config.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}
