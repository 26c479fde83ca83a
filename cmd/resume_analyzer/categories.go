package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-analyzer/internal/lexicon"
)

const defaultExampleSkills = 5

// skillCategory is one entry of the categories listing
type skillCategory struct {
	Name          string   `json:"name"`
	DisplayName   string   `json:"display_name"`
	ExampleSkills []string `json:"example_skills"`
}

type categoryListing struct {
	LexiconVersion string          `json:"lexicon_version"`
	Categories     []skillCategory `json:"categories"`
}

func newCategoriesCmd() *cobra.Command {
	var examples int
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the skill categories used for extraction",
		Long:  "Print every skill category in lexicon order with its display name and example skills, as JSON.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if examples < 0 {
				return fmt.Errorf("--examples must not be negative")
			}
			return writeJSON(cmd.OutOrStdout(), "", listCategories(lexicon.Default(), examples))
		},
	}
	cmd.Flags().IntVar(&examples, "examples", defaultExampleSkills, "number of example skills per category")
	return cmd
}

func listCategories(lex *lexicon.Lexicon, examples int) categoryListing {
	listing := categoryListing{LexiconVersion: lex.Version, Categories: []skillCategory{}}
	for _, c := range lex.SkillCategories {
		listing.Categories = append(listing.Categories, skillCategory{
			Name:          c.Key,
			DisplayName:   c.DisplayName,
			ExampleSkills: append([]string{}, c.Keywords[:min(examples, len(c.Keywords))]...),
		})
	}
	return listing
}
