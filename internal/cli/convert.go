package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/roboco-io/richmark/internal/codec"
	"github.com/roboco-io/richmark/internal/config"
	"github.com/roboco-io/richmark/internal/doc"
)

// convertOptions holds the flags of one conversion command.
type convertOptions struct {
	from               string
	to                 string
	output             string
	fallback           string
	sanitize           bool
	collapseWhitespace bool
	alignStyle         bool
	pretty             bool
}

var (
	convertOpts   convertOptions
	parseOpts     = convertOptions{from: codec.FormatHTML, to: codec.FormatSlate}
	exportOpts    = convertOptions{from: codec.FormatSlate, to: codec.FormatHTML}
	normalizeOpts = convertOptions{from: codec.FormatHTML, to: codec.FormatHTML}
)

var convertCmd = &cobra.Command{
	Use:   "convert <file|->",
	Short: "문서를 다른 형식으로 변환",
	Long: `문서를 html, slate, tiptap 형식 사이에서 변환합니다.

입력 형식은 --from이 없으면 파일 확장자, 그다음 내용으로 판별합니다.
입력에서 블록이 하나도 나오지 않으면 대체 문서(--fallback 또는 기본 환영 문서)를 사용합니다.
파일 이름 대신 -를 주면 표준 입력을 읽습니다.

환경 변수:
  RICHMARK_SANITIZE=true     허용되지 않은 태그 제거
  RICHMARK_ALIGN_STYLE=true  text-align 스타일로 정렬 입출력
  RICHMARK_LOG_LEVEL=debug   로그 레벨

예시:
  richmark convert page.html
  richmark convert page.html --to tiptap -o page.tiptap
  cat value.json | richmark convert - --from slate --to html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], convertOpts)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <file|->",
	Short: "HTML을 Slate 문서 트리로 불러오기",
	Long: `HTML을 읽어 Slate JSON 값으로 출력합니다.

예시:
  richmark parse page.html
  richmark parse page.html --sanitize -o value.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], parseOpts)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export <file|->",
	Short: "Slate 문서 트리를 HTML로 내보내기",
	Long: `Slate JSON 값을 읽어 HTML로 출력합니다.

예시:
  richmark export value.json
  richmark export value.json --align-style -o page.html`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], exportOpts)
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize <file|->",
	Short: "HTML을 문서 트리를 거쳐 정규화",
	Long: `HTML을 문서 트리로 읽은 뒤 다시 HTML로 출력합니다.
지원하지 않는 태그는 문단이 되고, 서식 태그는 정해진 순서로 다시 중첩됩니다.

예시:
  richmark normalize page.html --sanitize --collapse-whitespace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(cmd, args[0], normalizeOpts)
	},
}

func init() {
	bindConvertFlags(convertCmd, &convertOpts, true)
	bindConvertFlags(parseCmd, &parseOpts, false)
	bindConvertFlags(exportCmd, &exportOpts, false)
	bindConvertFlags(normalizeCmd, &normalizeOpts, false)

	rootCmd.AddCommand(convertCmd, parseCmd, exportCmd, normalizeCmd)
}

func bindConvertFlags(cmd *cobra.Command, opts *convertOptions, withFormats bool) {
	if withFormats {
		cmd.Flags().StringVar(&opts.from, "from", opts.from, "입력 형식 (html, slate, tiptap; 기본: 자동 감지)")
		cmd.Flags().StringVar(&opts.to, "to", opts.to, "출력 형식 (html, slate, tiptap; 기본: 설정의 default_to)")
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	cmd.Flags().StringVar(&opts.fallback, "fallback", "", "입력이 비었을 때 사용할 Slate JSON 파일")
	cmd.Flags().BoolVar(&opts.sanitize, "sanitize", false, "허용된 태그 외의 마크업 제거")
	cmd.Flags().BoolVar(&opts.collapseWhitespace, "collapse-whitespace", false, "의미 없는 공백 정리")
	cmd.Flags().BoolVar(&opts.alignStyle, "align-style", false, "정렬을 text-align 스타일로 읽고 쓰기")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", true, "JSON 들여쓰기 적용")
}

func runConvert(cmd *cobra.Command, inputPath string, opts convertOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := readInput(cmd, inputPath)
	if err != nil {
		return err
	}

	from := codec.Resolve(firstNonEmpty(opts.from, cfg.DefaultFrom), inputPath, data)
	to := firstNonEmpty(opts.to, cfg.DefaultTo)

	decoder, err := codec.Standard(decodeOptions(opts, cfg)).Get(from)
	if err != nil {
		return fmt.Errorf("입력 형식 오류: %w", err)
	}
	encoder, err := codec.Standard(encodeOptions(cmd, opts, cfg)).Get(to)
	if err != nil {
		return fmt.Errorf("출력 형식 오류: %w", err)
	}

	fallback, err := loadFallback(firstNonEmpty(opts.fallback, cfg.Fallback))
	if err != nil {
		return err
	}

	logger.Debug("Converting", "input", inputPath, "from", from, "to", to, "bytes", len(data))

	d, err := decoder.Decode(data, fallback)
	if err != nil {
		return fmt.Errorf("문서 파싱 실패: %w", err)
	}
	logger.Debug("Decoded", "blocks", len(d))

	out, err := encoder.Encode(d)
	if err != nil {
		return fmt.Errorf("문서 출력 실패: %w", err)
	}

	if opts.output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}
	if err := os.WriteFile(opts.output, out, 0644); err != nil {
		return fmt.Errorf("파일 저장 실패: %w", err)
	}
	if !quiet {
		fmt.Fprintf(cmd.ErrOrStderr(), "변환 완료: %s\n", opts.output)
	}
	return nil
}

func decodeOptions(opts convertOptions, cfg *config.Config) codec.Options {
	return codec.Options{
		Sanitize:           opts.sanitize || cfg.Parse.Sanitize,
		CollapseWhitespace: opts.collapseWhitespace || cfg.Parse.CollapseWhitespace,
		AlignStyle:         opts.alignStyle || cfg.Parse.AlignStyle,
		Logger:             logger,
	}
}

// encodeOptions takes --pretty from the command line only when it was given.
func encodeOptions(cmd *cobra.Command, opts convertOptions, cfg *config.Config) codec.Options {
	pretty := cfg.Export.Pretty
	if cmd.Flags().Changed("pretty") {
		pretty = opts.pretty
	}
	return codec.Options{
		AlignStyle: opts.alignStyle || cfg.Export.AlignStyle,
		Pretty:     pretty,
		Logger:     logger,
	}
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("표준 입력 읽기 실패: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("파일을 찾을 수 없습니다: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("파일 읽기 실패: %w", err)
	}
	return data, nil
}

// loadFallback reads the Slate document used when the input yields no blocks.
// Without a path the welcome document is used.
func loadFallback(path string) (doc.Document, error) {
	if path == "" {
		return doc.Welcome(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("대체 문서 읽기 실패: %w", err)
	}
	d, err := doc.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("대체 문서 파싱 실패: %w", err)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
