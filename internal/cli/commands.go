package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aidar/dsc-roster/internal/domain"
	"github.com/aidar/dsc-roster/internal/roster"
	"github.com/aidar/dsc-roster/internal/view"
)

func newHomeCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the home section",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.state.Navigate(view.SectionHome)
			renderHome(cmd.OutOrStdout())
			return nil
		},
	}
}

func newAboutCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "about",
		Short: "Show the about section with club information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.state.Navigate(view.SectionAbout)

			info, err := s.client.ClubInfo(cmd.Context())
			if err != nil {
				s.logger.Error("Error fetching club info", "error", err)
				return errors.New("club information is unavailable")
			}

			renderAbout(cmd.OutOrStdout(), info)
			return nil
		},
	}
}

func newListCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"team"},
		Short:   "List team members",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.state.Navigate(view.SectionTeam)
			renderMembers(cmd.OutOrStdout(), s.manager.LoadAll(cmd.Context()))
			return nil
		},
	}
}

// draftFlags поля формы участника, заданные флагами
type draftFlags struct {
	name        string
	role        string
	photo       string
	description string
}

func (f *draftFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "member name")
	cmd.Flags().StringVar(&f.role, "role", "", "member role")
	cmd.Flags().StringVar(&f.photo, "photo", "", "photo URL (empty shows a placeholder)")
	cmd.Flags().StringVar(&f.description, "description", "", "free-text description")
}

// apply переносит в форму только флаги, явно указанные пользователем
func (f *draftFlags) apply(cmd *cobra.Command, state *view.State) error {
	fields := map[string]string{
		"name":        f.name,
		"role":        f.role,
		"photo":       f.photo,
		"description": f.description,
	}
	for name, value := range fields {
		if !cmd.Flags().Changed(name) {
			continue
		}
		if err := state.SetField(name, value); err != nil {
			return err
		}
	}
	return nil
}

func newAddCommand(s *session) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a team member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s.state.Navigate(view.SectionTeam)
			s.state.OpenAdd()
			if err := flags.apply(cmd, s.state); err != nil {
				return err
			}

			if err := s.state.Submit(cmd.Context(), s.manager); err != nil {
				return err
			}

			renderMembers(cmd.OutOrStdout(), s.manager.Snapshot())
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newEditCommand(s *session) *cobra.Command {
	var flags draftFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a team member; omitted flags keep their current values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			s.state.Navigate(view.SectionTeam)

			member := domain.TeamMember{ID: id}
			for _, m := range s.manager.LoadAll(cmd.Context()) {
				if m.ID == id {
					member = m
					break
				}
			}

			s.state.OpenEdit(member)
			if err := flags.apply(cmd, s.state); err != nil {
				return err
			}

			if err := s.state.Submit(cmd.Context(), s.manager); err != nil {
				return err
			}

			renderMembers(cmd.OutOrStdout(), s.manager.Snapshot())
			return nil
		},
	}
	flags.register(cmd)

	return cmd
}

func newRemoveCommand(s *session, in io.Reader) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"delete", "rm"},
		Short:   "Remove a team member after confirmation",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s.state.Navigate(view.SectionTeam)

			var confirmer roster.Confirmer = promptConfirmer(in, cmd.OutOrStdout())
			if assumeYes {
				confirmer = roster.ConfirmFunc(func(string) bool { return true })
			}

			if !s.state.Delete(cmd.Context(), s.manager, args[0], confirmer) {
				fmt.Fprintln(cmd.OutOrStdout(), "Nothing was deleted.")
				return nil
			}

			renderMembers(cmd.OutOrStdout(), s.manager.Snapshot())
			return nil
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "skip the interactive confirmation")

	return cmd
}

// promptConfirmer спрашивает y/N в терминале; пустой ответ или ошибка чтения означают отказ
func promptConfirmer(in io.Reader, out io.Writer) roster.Confirmer {
	return roster.ConfirmFunc(func(prompt string) bool {
		fmt.Fprintf(out, "%s [y/N]: ", prompt)

		answer, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && answer == "" {
			return false
		}

		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true
		default:
			return false
		}
	})
}
