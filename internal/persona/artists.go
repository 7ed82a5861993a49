package persona

import (
	"regexp"
	"strings"
)

// Artist is one selectable ghostwriter style.
type Artist struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// Genre groups artists for selection UIs.
type Genre struct {
	Name    string   `yaml:"name"`
	Artists []Artist `yaml:"artists"`
}

var idSanitizer = regexp.MustCompile(`[^a-z0-9]+`)

func artistID(name string) string {
	id := idSanitizer.ReplaceAllString(strings.ToLower(name), "_")
	return strings.Trim(id, "_")
}

func toArtists(names []string) []Artist {
	out := make([]Artist, len(names))
	for i, n := range names {
		out[i] = Artist{ID: artistID(n), Name: n}
	}
	return out
}

var ghostwriterGenres = []Genre{
	{
		Name: "Hip Hop",
		Artists: toArtists([]string{
			"Kendrick Lamar", "Eminem", "Drake", "J. Cole", "Nas",
			"Tupac Shakur", "The Notorious B.I.G.", "Jay-Z", "Kanye West",
			"Travis Scott", "Lil Wayne", "Snoop Dogg", "Dr. Dre", "Rakim",
			"OutKast", "Missy Elliott", "Lauryn Hill", "MF DOOM",
			"Tyler, The Creator", "Mac Miller", "Chance the Rapper",
			"Childish Gambino", "Nicki Minaj", "Megan Thee Stallion",
		}),
	},
	{
		Name: "Pop",
		Artists: toArtists([]string{
			"Michael Jackson", "Madonna", "Taylor Swift", "Beyoncé",
			"Ariana Grande", "Lady Gaga", "Rihanna", "Prince", "Elton John",
			"Stevie Wonder", "The Beatles", "Queen", "ABBA", "Bruno Mars",
			"Ed Sheeran", "Adele", "Dua Lipa", "Billie Eilish",
			"Harry Styles", "The Weeknd", "Lorde", "Lana Del Rey",
		}),
	},
}

// Genres returns the ghostwriter artist catalogue grouped by genre.
func Genres() []Genre {
	return ghostwriterGenres
}

// ResolveArtist finds an artist by id. The boolean reports whether the id
// was known; callers that need a total resolution use the fallback name.
func ResolveArtist(id string) (Artist, bool) {
	for _, g := range ghostwriterGenres {
		for _, a := range g.Artists {
			if a.ID == id {
				return a, true
			}
		}
	}
	return Artist{}, false
}

// FallbackArtistName is substituted when a style token does not resolve.
const FallbackArtistName = "a generic skilled artist"
