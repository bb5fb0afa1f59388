package commands

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"pet-explorer/internal/domain/catalog"
	"pet-explorer/internal/platform/i18n"
)

func categoriesCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, c := range e.catalog.Categories() {
				label, err := e.catalog.DisplayLabel(c)
				if err != nil {
					return err
				}
				pets, err := e.catalog.RecordsIn(c)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\n", c, e.printer.Sprintf(label), len(pets))
			}
			return tw.Flush()
		},
	}
}

func petsCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "pets <category>",
		Short: "List the pets of a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.ParseCategory(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q", err, args[0])
			}
			pets, err := e.catalog.RecordsIn(c)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, p := range pets {
				adopted, err := e.registry.IsAdopted(cmd.Context(), p.ID)
				if err != nil {
					return err
				}
				mark := ""
				if adopted {
					mark = "*"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, p.Name, e.printer.Sprintf(i18n.KeyYearsOld, e.catalog.Age(p)), mark)
			}
			return tw.Flush()
		},
	}
}

func showCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "show <petID>",
		Short: "Show one pet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := e.catalog.Get(args[0])
			if errors.Is(err, catalog.ErrPetNotFound) {
				return fmt.Errorf("pet %q not found", args[0])
			}
			if err != nil {
				return err
			}
			label, _ := e.catalog.DisplayLabel(p.Category)
			adopted, err := e.registry.IsAdopted(cmd.Context(), p.ID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "id:        %s\n", p.ID)
			fmt.Fprintf(out, "name:      %s\n", p.Name)
			fmt.Fprintf(out, "category:  %s\n", e.printer.Sprintf(label))
			fmt.Fprintf(out, "born:      %d\n", p.BirthYear)
			fmt.Fprintf(out, "age:       %s\n", e.printer.Sprintf(i18n.KeyYearsOld, e.catalog.Age(p)))
			fmt.Fprintf(out, "image:     %s\n", p.ImageRef)
			fmt.Fprintf(out, "adopted:   %t\n", adopted)
			return nil
		},
	}
}
