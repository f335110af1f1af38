package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roboco-io/richmark/internal/codec"
)

var formatDescriptions = map[string]string{
	codec.FormatHTML:   "제한된 HTML (문단, 제목, 인용, 목록, 코드 블록)",
	codec.FormatSlate:  "Slate 에디터 JSON 값",
	codec.FormatTipTap: "TipTap(ProseMirror) JSON 문서",
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "지원하는 문서 형식 목록",
	Long: `convert 명령의 --from, --to에 사용할 수 있는 형식을 표시합니다.

사용 예시:
  richmark convert page.html --to tiptap
  richmark convert value.json --from slate --to html`,
	Run: runFormats,
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}

func runFormats(cmd *cobra.Command, args []string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintln(w, "형식\t확장자\t설명")
	fmt.Fprintln(w, "----\t------\t----")

	for _, name := range codec.List() {
		c, err := codec.Get(name)
		if err != nil {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, strings.Join(c.Extensions(), " "), formatDescriptions[name])
	}
}
