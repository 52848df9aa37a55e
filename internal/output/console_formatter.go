package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rpgo/fso-calculator/internal/domain"
)

const cardWidth = 34

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4")).
			MarginBottom(1)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5A4FCF")).
			Padding(0, 1)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A0A0A0"))

	cardValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#04B575"))

	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5A4FCF")).
			Padding(0, 1).
			Width(cardWidth)
)

// ConsoleFormatter renders a styled summary: one card per retirement
// pathway, then severance and health coverage cards.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(result *domain.BenefitsResult) ([]byte, error) {
	v := Present(result, nil)
	var b strings.Builder

	b.WriteString(titleStyle.Render("FOREIGN SERVICE BENEFITS ESTIMATE"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "As of %s (%s policy)\n", v.AsOf, v.Policy)
	fmt.Fprintf(&b, "Age %d, %d years of service, high-3 average %s\n\n",
		v.Profile.Age, v.Profile.YearsOfService, v.Profile.HighThreeAverage)

	b.WriteString(sectionStyle.Render("Retirement Options"))
	b.WriteString("\n")
	if len(v.Scenarios) == 0 {
		b.WriteString(subtleStyle.Render("Not eligible for any retirement annuity with the information provided."))
		b.WriteString("\n")
	} else {
		cards := make([]string, 0, len(v.Scenarios))
		for _, s := range v.Scenarios {
			desc := s.Annual + " per year"
			if s.CommencementAge > 0 {
				desc += fmt.Sprintf(", payable at age %d", s.CommencementAge)
			}
			cards = append(cards, renderCard(s.Type, s.Monthly+" / month", desc))
		}
		b.WriteString(cardGrid(cards, 3))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Severance"))
	b.WriteString("\n")
	sevDesc := fmt.Sprintf("%d installments", len(v.Severance.Installments))
	if v.Severance.Capped {
		sevDesc += ", capped at one year's salary"
	}
	b.WriteString(renderCard("Total Severance", v.Severance.Total, sevDesc))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Health Insurance"))
	b.WriteString("\n")
	h := v.Health
	b.WriteString(cardGrid([]string{
		renderCard("FEHB "+h.CurrentPlan.Name, h.CurrentPlan.EmployeeMonthly+" / month", h.CurrentPlan.CoverageType),
		renderCard("COBRA", h.COBRA.Monthly+" / month", fmt.Sprintf("%s over %d months", h.COBRA.TotalCost, h.COBRA.Duration)),
		renderCard("ACA Marketplace", h.ACA.Monthly+" / month", h.ACA.PlanName+" in "+h.State),
	}, 3))
	b.WriteString("\n")
	return []byte(b.String()), nil
}

func renderCard(label, value, desc string) string {
	content := cardLabelStyle.Render(label) + "\n" + cardValueStyle.Render(value)
	if desc != "" {
		content += "\n" + subtleStyle.Render(desc)
	}
	return cardStyle.Render(content)
}

// cardGrid lays cards out in rows of perRow
func cardGrid(cards []string, perRow int) string {
	var rows []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
