package cli

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"kernel-lifecycle/internal/app"
	"kernel-lifecycle/internal/core"
	"kernel-lifecycle/internal/types"
)

var (
	goodLabel = color.New(color.FgGreen)
	warnLabel = color.New(color.FgYellow)
	badLabel  = color.New(color.FgRed)
	dimLabel  = color.New(color.Faint)
)

// cell is one table value; paint, when set, is applied after padding so
// escape codes never count towards the column width.
type cell struct {
	text  string
	paint *color.Color
}

func plain(text string) cell {
	return cell{text: text}
}

func painted(text string, paint *color.Color) cell {
	return cell{text: text, paint: paint}
}

func toWidth(value string, width int) string {
	current := runewidth.StringWidth(value)
	if width <= 0 || current >= width {
		return value
	}
	return value + strings.Repeat(" ", width-current)
}

func renderTable(out io.Writer, headers []string, rows [][]cell) {
	widths := make([]int, len(headers))
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, c := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], runewidth.StringWidth(c.text))
			}
		}
	}
	headerCells := make([]string, len(headers))
	for i, header := range headers {
		headerCells[i] = toWidth(header, widths[i])
	}
	fmt.Fprintln(out, strings.TrimRight(strings.Join(headerCells, "  "), " "))
	for _, row := range rows {
		parts := make([]string, len(row))
		for i, c := range row {
			text := c.text
			if i < len(row)-1 {
				text = toWidth(text, widths[i])
			}
			if c.paint != nil {
				text = c.paint.Sprint(text)
			}
			parts[i] = text
		}
		fmt.Fprintln(out, strings.Join(parts, "  "))
	}
}

func renderPlan(out io.Writer, result app.PlanResult) {
	fmt.Fprintf(out, "running kernel: %s (flavor %s)\n", displayOrNone(result.RunningKernel), result.Flavor)
	if len(result.Groups) == 0 {
		fmt.Fprintln(out, "no installed kernels of this flavor")
		return
	}
	var rows [][]cell
	for _, series := range core.SortedSeries(result.Plan.Series) {
		for _, group := range result.Plan.Series[series] {
			decision := result.Plan.Decisions[group.Version.Original]
			keep := painted("auto", warnLabel)
			if decision.Keep {
				keep = painted("keep", goodLabel)
			}
			names := make([]string, 0, len(group.Packages))
			for _, pkg := range group.Packages {
				names = append(names, pkg.Name)
			}
			rows = append(rows, []cell{
				plain(series.String()),
				plain(group.Version.Original),
				keep,
				plain(string(decision.Reason)),
				plain(strings.Join(names, ", ")),
			})
		}
	}
	renderTable(out, []string{"SERIES", "VERSION", "DECISION", "REASON", "PACKAGES"}, rows)

	if len(result.Plan.Directives) == 0 {
		fmt.Fprintln(out, "marks are up to date")
		return
	}
	fmt.Fprintln(out, "mark changes:")
	for _, directive := range result.Plan.Directives {
		fmt.Fprintf(out, "  %s -> %s  %s\n", directive.From, directive.To, directive.Package)
	}
}

func renderSupport(out io.Writer, result app.SupportResult) {
	title := result.Codename
	if result.Release.Version != "" {
		title = fmt.Sprintf("%s (%s)", result.Codename, result.Release.Version)
	}
	fmt.Fprintf(out, "release: %s\n", title)
	if len(result.Windows) == 0 {
		fmt.Fprintln(out, "no point releases recorded")
		return
	}
	rows := make([][]cell, 0, len(result.Windows))
	for _, window := range result.Windows {
		marker := ""
		if window.IsRunning {
			marker = "*"
		}
		end := "-"
		if window.Resolved() {
			end = window.SupportEnd.String()
		}
		rows = append(rows, []cell{
			plain(marker),
			plain(window.Label),
			plain(window.Kernel),
			plain(end),
			painted(window.Status.String(), statusPaint(window.Status.Kind)),
		})
	}
	renderTable(out, []string{"", "LABEL", "KERNEL", "SUPPORT END", "STATUS"}, rows)
}

func statusPaint(kind types.SupportStatusKind) *color.Color {
	switch kind {
	case types.SupportStatusSupportedUntil:
		return goodLabel
	case types.SupportStatusSuperseded:
		return dimLabel
	case types.SupportStatusEndOfLife:
		return badLabel
	default:
		return warnLabel
	}
}

func renderEOL(out io.Writer, result app.EOLResult) {
	status := result.Status
	if !result.Known || status.EOLDate == nil {
		fmt.Fprintf(out, "%s: no end of life date known\n", result.Codename)
		return
	}
	date := status.EOLDate.Format(time.DateOnly)
	switch {
	case status.IsEndOfLife:
		fmt.Fprintf(out, "%s: %s\n", result.Codename, badLabel.Sprintf("end of life since %s", date))
	case status.ShowEarlyWarning:
		days := int(math.Floor(status.EOLDate.Sub(result.EvaluatedAt).Hours() / 24))
		fmt.Fprintf(out, "%s: %s\n", result.Codename, warnLabel.Sprintf("end of life on %s (%d days left)", date, days))
	default:
		fmt.Fprintf(out, "%s: %s\n", result.Codename, goodLabel.Sprintf("supported until %s", date))
	}
}

func displayOrNone(value string) string {
	if strings.TrimSpace(value) == "" {
		return "unknown"
	}
	return value
}
