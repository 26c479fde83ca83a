// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/suggestions"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// truncate shortens s to limit runes, ending in "..." when cut.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

// moreLine returns the "... and N more" trailer for lists cut at shown items.
func moreLine(total, shown int, noun string) string {
	if total <= shown {
		return ""
	}
	return fmt.Sprintf("  ... and %d more %s\n", total-shown, noun)
}

// PrintAnalysis outputs the score summary followed by skills, experience and suggestions.
func (p *Printer) PrintAnalysis(source string, resp *types.AnalysisResponse) {
	if resp == nil {
		return
	}

	var sb strings.Builder
	if source != "" {
		sb.WriteString(fmt.Sprintf("Source:      %s\n", source))
	}
	sb.WriteString(fmt.Sprintf("Overall:     %.2f (%s)\n", resp.OverallScore, resp.ScoreLabel))
	sb.WriteString(fmt.Sprintf("ATS:         %.2f\n", resp.ATSScore))
	sb.WriteString(fmt.Sprintf("Experience:  %.1f years\n", resp.Analysis.TotalExperienceYears))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills diversity:  %6.2f\n", resp.Breakdown.SkillsDiversity))
	sb.WriteString(fmt.Sprintf("Experience depth:  %6.2f\n", resp.Breakdown.ExperienceDepth))
	sb.WriteString(fmt.Sprintf("Content quality:   %6.2f\n", resp.Breakdown.ContentQuality))
	sb.WriteString(fmt.Sprintf("ATS optimization:  %6.2f\n", resp.Breakdown.ATSOptimization))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Action verbs: %.0f%%   Quantified: %.0f%%   Words: %d",
		resp.Analysis.ActionVerbUsage*100, resp.Analysis.QuantificationRate*100, resp.Analysis.TotalWords))

	p.printBox("RESUME ANALYSIS", sb.String())

	p.PrintSkills(&resp.Skills)
	p.PrintExperience(resp.Experience)
	p.PrintRecommendations(resp.ATSRecommendations)
	p.PrintSuggestions(resp.AISuggestions)
}

// PrintSkills outputs skills grouped by category.
func (p *Printer) PrintSkills(skills *types.SkillsResponse) {
	if skills == nil || len(skills.Technical)+len(skills.Soft) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Technical: %d   Soft: %d\n\n", len(skills.Technical), len(skills.Soft)))

	all := append(append([]types.Skill{}, skills.Technical...), skills.Soft...)
	count := min(len(all), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		s := all[i]
		sb.WriteString(fmt.Sprintf("  • %s [%s, %s]\n", s.Name, s.Category, s.Proficiency))
	}
	sb.WriteString(moreLine(len(all), count, "skills"))

	p.printBox("SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExperience outputs one block per job entry.
func (p *Printer) PrintExperience(entries []types.WorkExperience) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		exp := entries[i]
		sb.WriteString(fmt.Sprintf("%s\n", exp.String()))

		dates := "dates unknown"
		if exp.StartDate != nil {
			end := types.PresentDate
			if exp.EndDate != nil {
				end = *exp.EndDate
			}
			dates = *exp.StartDate + " - " + end
		}
		if exp.DurationMonths != nil {
			dates += fmt.Sprintf(" (%d months)", *exp.DurationMonths)
		}
		sb.WriteString(fmt.Sprintf("    %s, %d bullets\n", dates, exp.BulletCount()))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}
	sb.WriteString(moreLine(len(entries), count, "positions"))

	p.printBox("EXPERIENCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRecommendations outputs ATS recommendations.
func (p *Printer) PrintRecommendations(recs []string) {
	if len(recs) == 0 {
		return
	}

	var sb strings.Builder
	for _, rec := range recs {
		sb.WriteString(fmt.Sprintf("• %s\n", rec))
	}
	p.printBox("ATS RECOMMENDATIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSuggestions outputs improvement suggestions with their priority.
func (p *Printer) PrintSuggestions(suggestions []types.Suggestion) {
	if len(suggestions) == 0 {
		return
	}

	var sb strings.Builder
	count := min(len(suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := suggestions[i]
		sb.WriteString(fmt.Sprintf("[%s/%s] %s\n", s.Priority, s.Category, s.Suggestion))
		if len(s.Examples) > 0 {
			sb.WriteString(fmt.Sprintf("  e.g. %s\n", s.Examples[0]))
		}
	}
	sb.WriteString(moreLine(len(suggestions), count, "suggestions"))

	p.printBox("SUGGESTIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatch outputs a resume/job comparison.
func (p *Printer) PrintMatch(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Job:         %s\n", result.Job.Title))
	if result.Job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:     %s\n", result.Job.Company))
	}
	sb.WriteString(fmt.Sprintf("Overall:     %.2f\n", result.OverallMatch))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Skills:      %6.2f\n", result.SkillsMatch))
	sb.WriteString(fmt.Sprintf("Experience:  %6.2f (%.1f of %d years)\n", result.ExperienceMatch, result.ResumeYears, result.RequiredYears))
	sb.WriteString(fmt.Sprintf("Keywords:    %6.2f\n", result.KeywordsMatch))
	sb.WriteString(fmt.Sprintf("Education:   %6.2f (%s)\n", result.EducationMatch, result.DegreeLevel))

	if len(result.MatchingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("\nMatching: %s\n", strings.Join(result.MatchingSkills, ", ")))
	}
	if len(result.MissingSkills) > 0 {
		count := min(len(result.MissingSkills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Missing:  %s\n", strings.Join(result.MissingSkills[:count], ", ")))
		sb.WriteString(moreLine(len(result.MissingSkills), count, "skills"))
	}

	p.printBox("JOB MATCH", strings.TrimSuffix(sb.String(), "\n"))

	if len(result.Recommendations) == 0 {
		return
	}
	var recs strings.Builder
	for i, rec := range result.Recommendations {
		recs.WriteString(fmt.Sprintf("[%s] %s\n", rec.Priority, rec.Title))
		recs.WriteString(fmt.Sprintf("  %s\n", rec.Action))
		if i < len(result.Recommendations)-1 {
			recs.WriteString("\n")
		}
	}
	p.printBox("MATCH RECOMMENDATIONS", strings.TrimSuffix(recs.String(), "\n"))
}

// PrintQuality outputs the model's assessment of the resume writing.
func (p *Printer) PrintQuality(q suggestions.Quality) {
	var sb strings.Builder
	for _, row := range []struct{ label, value string }{
		{"Writing", q.WritingQuality},
		{"Quantification", q.Quantification},
		{"Action verbs", q.ActionVerbs},
		{"Specificity", q.Specificity},
	} {
		if row.value != "" {
			sb.WriteString(fmt.Sprintf("%-15s %s\n", row.label+":", row.value))
		}
	}
	sb.WriteString(q.OverallImpression)

	p.printBox("CONTENT QUALITY", sb.String())
}
