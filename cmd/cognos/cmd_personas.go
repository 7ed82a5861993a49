package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cognos/internal/persona"
)

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List available personas",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range persona.All() {
			fmt.Printf("%-16s %s\n", p.ID, p.Description)
		}
		return nil
	},
}

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List ghostwriter artist styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, g := range persona.Genres() {
			fmt.Println(g.Name + ":")
			for _, a := range g.Artists {
				fmt.Printf("  %-28s %s\n", a.ID, a.Name)
			}
		}
		return nil
	},
}
