// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package main

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/tomtom215/animerec/internal/recommend"
)

func newCatalogCmd() *cobra.Command {
	var (
		query  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Print the built-in title catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog := recommend.DefaultCatalog()
			titles := catalog.Search(query)

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.MarshalIndent(titles, "", "  ")
				if err != nil {
					return fmt.Errorf("encode catalog: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			for _, t := range titles {
				if _, err := fmt.Fprintln(out, t); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "only print titles containing this text (case-insensitive)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print a JSON array")
	return cmd
}
