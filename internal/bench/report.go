package bench

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

// FormatMetrics renders the fixed report line for one session. Memory
// arrives in KB and is shown in MB; the CPU mean is shown as a percentage
// while its deviation stays in fractional units. The asymmetry matches
// the historical output format and must not be "fixed".
func FormatMetrics(trials int, st Stats) string {
	return fmt.Sprintf("%.2f ± %.2f seconds, %.0f ± %.0f MB, %.2f ± %.0f%% CPU (%d runs)",
		st.Means[MetricSeconds], st.Stds[MetricSeconds],
		st.Means[MetricMemoryKB]/1024, st.Stds[MetricMemoryKB]/1024,
		st.Means[MetricCPU]*100, st.Stds[MetricCPU],
		trials)
}

// FormatLabel styles a session label for terminal display. The metrics
// line itself stays plain so downstream tooling can parse it.
func FormatLabel(label string) string {
	return labelStyle.Render(label)
}
