// Package summary projects a finished playthrough into a read-only report.
package summary

import (
	"fmt"
	"io"
	"strings"

	"clank/internal/narrative"
)

// Bond is one relationship line of the report.
type Bond struct {
	Name  string `json:"name"`
	Score int    `json:"score"`
	Mood  string `json:"mood"`
}

// Report is the final state of a playthrough as shown to the player.
type Report struct {
	Choices       []narrative.ChoiceRecord `json:"choices"`
	Knowledge     []string                 `json:"knowledge"`
	Relationships []Bond                   `json:"relationships"`
	PlotTwist     bool                     `json:"plot_twist_revealed"`
	Ending        string                   `json:"ending"`
	EndingLabel   string                   `json:"ending_label"`
}

// Build reads st without modifying it.
func Build(st *narrative.State) Report {
	r := Report{
		Choices:   st.Choices(),
		Knowledge: st.Knowledge(),
		PlotTwist: st.PlotTwistRevealed(),
	}
	for _, c := range narrative.Cast {
		score := st.Relationship(c)
		r.Relationships = append(r.Relationships, Bond{Name: string(c), Score: score, Mood: Mood(score)})
	}
	if e, ok := st.Ending(); ok {
		r.Ending = e.String()
		r.EndingLabel = e.Label()
	}
	return r
}

// Mood decorates a relationship score: a heart per positive point, a broken
// heart per negative point, "neutral" at zero. Every symbol keeps its
// trailing space, so "(❤️ ❤️ )" is the rendered form of 2.
func Mood(score int) string {
	switch {
	case score > 0:
		return strings.Repeat("❤️ ", score)
	case score < 0:
		return strings.Repeat("💔 ", -score)
	}
	return "neutral"
}

// Render writes the plain structured dump.
func (r Report) Render(w io.Writer) error {
	var b strings.Builder

	b.WriteString("\nPilihan yang Anda buat:\n\n")
	for _, c := range r.Choices {
		fmt.Fprintf(&b, "  • %s: Pilihan %s\n", c.Scene, c.Option)
	}

	b.WriteString("\nPengetahuan yang dikumpulkan:\n\n")
	for _, k := range r.Knowledge {
		fmt.Fprintf(&b, "  • %s\n", k)
	}

	b.WriteString("\nHubungan akhir:\n\n")
	for _, rel := range r.Relationships {
		fmt.Fprintf(&b, "  • %s: %d (%s)\n", rel.Name, rel.Score, rel.Mood)
	}

	b.WriteString("\nEnding yang dicapai:\n\n")
	if r.EndingLabel != "" {
		fmt.Fprintf(&b, "%s\n", r.EndingLabel)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
