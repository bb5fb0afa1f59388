package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pet-explorer/internal/domain/adoptions"
	"pet-explorer/internal/domain/explorer"
	"pet-explorer/internal/platform/i18n"
)

func adoptCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "adopt <petID>",
		Short: "Adopt a pet (idempotent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := e.registry.Adopt(cmd.Context(), args[0])
			if errors.Is(err, adoptions.ErrUnknownRecord) {
				return fmt.Errorf("pet %q is not in the catalog", args[0])
			}
			if err != nil {
				return err
			}
			p, _ := e.catalog.Get(args[0])
			fmt.Fprintln(cmd.OutOrStdout(), e.printer.Sprintf(i18n.KeyYourPet, p.Name))
			return nil
		},
	}
}

func adoptedCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "adopted",
		Short: "List adopted pets in adoption order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := e.registry.Adoptions(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, a := range entries {
				p, err := e.catalog.Get(a.PetID)
				if err != nil {
					continue
				}
				fmt.Fprintf(out, "%s\t%s\n", p.ID, e.printer.Sprintf(i18n.KeyYourPet, p.Name))
			}
			return nil
		},
	}
}

// explorerCmd imprime la misma vista de dos secciones que GET /explorer.
func explorerCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "explorer",
		Short: "Print the two-section pet list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := explorer.Build(cmd.Context(), e.catalog, e.registry, e.printer, nil)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n\n%s\n", v.Title, v.AvailableTitle)
			for _, g := range v.Available {
				fmt.Fprintf(out, "  %s\n", g.Label)
				for _, it := range g.Items {
					mark := " "
					if it.Adopted {
						mark = "*"
					}
					fmt.Fprintf(out, "   %s %s (%s)\n", mark, it.Title, it.Subtitle)
				}
			}
			fmt.Fprintf(out, "\n%s\n", v.AdoptedTitle)
			for _, it := range v.Adopted {
				fmt.Fprintf(out, "  %s (%s)\n", it.Title, it.Subtitle)
			}
			return nil
		},
	}
}
