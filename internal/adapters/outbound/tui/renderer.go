package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lintgate/lintgate/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	toolStyle     = lipgloss.NewStyle().Bold(true).Foreground(fg).Width(22)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderEvaluation renders the per-tool counts, the totals against the
// policy and the verdict.
func RenderEvaluation(report *domain.EvaluationReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("lintgate")
	verdict := passStyle.Bold(true).Render("PASSED")
	if report.Outcome.Failed() {
		verdict = failStyle.Bold(true).Render("FAILED")
	}
	totals := fmt.Sprintf("%d errors  %d warnings", report.Outcome.TotalErrors, report.Outcome.TotalWarnings)

	b.WriteString(boxStyle.Render(title + "\n" + dimStyle.Render("Static Analysis Gate") + "\n\n" + verdict + "  " + totals))
	b.WriteString("\n\n")

	// ── Tools ──
	if len(report.Tools) == 0 {
		b.WriteString("  " + dimStyle.Render("No violations reported.") + "\n")
	}
	for _, v := range report.Tools {
		renderTool(&b, v)
	}

	if len(report.Ignored) > 0 {
		b.WriteString("\n  " + dimStyle.Render("ignored: "+strings.Join(report.Ignored, ", ")) + "\n")
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Limits ──
	b.WriteString("  " + titleStyle.Render("Limits") + "  ")
	b.WriteString(renderLimit("errors", report.Outcome.TotalErrors, report.Policy.MaxErrors, report.Outcome.ExcessErrors))
	b.WriteString("  ")
	b.WriteString(renderLimit("warnings", report.Outcome.TotalWarnings, report.Policy.MaxWarnings, report.Outcome.ExcessWarnings))
	b.WriteString("\n")

	if report.Outcome.Failure != "" {
		b.WriteString("\n  " + failStyle.Render(report.Outcome.Failure) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

func renderTool(b *strings.Builder, v domain.Violations) {
	icon := passStyle.Render("✓")
	if !v.IsEmpty() {
		icon = failStyle.Render("●")
	}

	line := fmt.Sprintf("  %s %s", icon, toolStyle.Render(domain.DisplayName(v.Tool)))
	if v.Errors > 0 {
		line += errorTagStyle.Render(fmt.Sprintf("%d errors", v.Errors)) + "  "
	}
	if v.Warnings > 0 {
		line += warnTagStyle.Render(fmt.Sprintf("%d warnings", v.Warnings))
	}
	if v.IsEmpty() {
		line += dimStyle.Render("clean")
	}
	b.WriteString(strings.TrimRight(line, " ") + "\n")
}

func renderLimit(name string, total, limit, excess int) string {
	limitText := "∞"
	if limit != domain.Unlimited {
		limitText = fmt.Sprintf("%d", limit)
	}
	text := fmt.Sprintf("%s %d/%s", name, total, limitText)
	if excess > 0 {
		return failStyle.Render(text)
	}
	return passStyle.Render(text)
}

// RenderHistory renders past evaluation runs, oldest first.
func RenderHistory(entries []domain.RunEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No evaluation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Evaluation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := e.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		status := passStyle.Render("pass")
		if !e.Passed {
			status = failStyle.Render("fail")
		}

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			status,
			fmt.Sprintf("%d errors, %d warnings", e.Errors, e.Warnings),
		)

		if i > 0 {
			diff := (e.Errors + e.Warnings) - (entries[i-1].Errors + entries[i-1].Warnings)
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
