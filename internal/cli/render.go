package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/aidar/dsc-roster/internal/domain"
)

const photoPlaceholder = "(no photo)"

func renderSplash(w io.Writer) {
	fmt.Fprintln(w, "</>")
	fmt.Fprintln(w, "Developer Students Club")
	fmt.Fprintln(w, "SRM IST RMP")
}

func renderHome(w io.Writer) {
	fmt.Fprintln(w, "DSC | SRM IST RMP")
	fmt.Fprintln(w, "Welcome to the Developer Students Club.")
	fmt.Fprintln(w, "Run `rosterctl about` to learn about the club or `rosterctl list` to meet the team.")
}

func renderAbout(w io.Writer, info *domain.ClubInfo) {
	fmt.Fprintf(w, "%s\n%s, %s\n\n", info.Name, info.Institute, info.Campus)
	fmt.Fprintf(w, "%s\n\nMission: %s\n\n", info.Description, info.Mission)
	fmt.Fprintln(w, "Activities:")
	for _, activity := range info.Activities {
		fmt.Fprintf(w, "  - %s\n", activity)
	}
}

func renderMembers(w io.Writer, members []domain.TeamMember) {
	if len(members) == 0 {
		fmt.Fprintln(w, "No team members yet.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tROLE\tPHOTO\tDESCRIPTION")
	for _, m := range members {
		photo := m.Photo
		if photo == "" {
			photo = photoPlaceholder
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.ID, m.Name, m.Role, photo, m.Description)
	}
	tw.Flush()
}
