package report

import (
	"bufio"
	"io"

	"github.com/ogurasousui/codex-org-analyzer/internal/core/orgreport"
)

// WriteText はレポートをコンソール向けのテキストとして書き出します。
func WriteText(w io.Writer, r *orgreport.Report) error {
	bw := bufio.NewWriter(w)

	writeSection(bw, "Salary Analysis:", r.SalaryLines())
	bw.WriteString("\n")
	writeSection(bw, "Reporting Line Analysis:", r.ReportingLineLines())

	return bw.Flush()
}

func writeSection(w *bufio.Writer, title string, lines []string) {
	w.WriteString(title)
	w.WriteString("\n")
	for _, line := range lines {
		w.WriteString(line)
		w.WriteString("\n")
	}
}
