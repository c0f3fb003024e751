// Animerec - Anime Recommendation API
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/animerec

package recommend

import "strings"

// defaultTitles is the built-in catalog. Order matters for Titles() and Search().
var defaultTitles = [...]string{
	"Demon Slayer: Kimetsu no Yaiba",
	"Jujutsu Kaisen",
	"My Hero Academia",
	"Attack on Titan",
	"One Piece",
	"Death Note",
	"Fullmetal Alchemist: Brotherhood",
	"Dragon Ball Z",
	"Naruto Shippuden",
	"Hunter x Hunter",
	"Mob Psycho 100",
	"One Punch Man",
	"Tokyo Ghoul",
	"Code Geass",
	"Steins;Gate",
	"Cowboy Bebop",
	"Studio Ghibli Collection",
	"Your Name",
	"Spirited Away",
	"Princess Mononoke",
}

// Catalog is an immutable, ordered set of candidate titles.
// The zero value is an empty catalog.
type Catalog struct {
	titles []string
	lower  []string
}

// DefaultCatalog returns the built-in twenty-title catalog.
func DefaultCatalog() Catalog {
	return NewCatalog(defaultTitles[:])
}

// NewCatalog builds a catalog from titles. The input slice is copied.
func NewCatalog(titles []string) Catalog {
	c := Catalog{
		titles: make([]string, len(titles)),
		lower:  make([]string, len(titles)),
	}
	copy(c.titles, titles)
	for i, t := range c.titles {
		c.lower[i] = strings.ToLower(t)
	}
	return c
}

// Len returns the number of titles in the catalog.
func (c Catalog) Len() int {
	return len(c.titles)
}

// Titles returns a copy of the catalog titles in catalog order.
func (c Catalog) Titles() []string {
	out := make([]string, len(c.titles))
	copy(out, c.titles)
	return out
}

// At returns the title at index i.
func (c Catalog) At(i int) string {
	return c.titles[i]
}

// Search returns the titles whose lowercase form contains the lowercase query,
// in catalog order. A blank query matches every title.
func (c Catalog) Search(query string) []string {
	needle := strings.ToLower(strings.TrimSpace(query))
	out := make([]string, 0, len(c.titles))
	for i, l := range c.lower {
		if strings.Contains(l, needle) {
			out = append(out, c.titles[i])
		}
	}
	return out
}
