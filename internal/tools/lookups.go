package tools

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// NewDefaultRegistry returns a registry pre-loaded with the canned lookup
// tools. Results are deterministic link-outs to the relevant marketplaces,
// not live queries.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(findHotelsTool())
	r.MustRegister(findMovieTicketsTool())
	r.MustRegister(findConcertTicketsTool())
	r.MustRegister(findJobsTool())
	r.MustRegister(findCarsTool())
	return r
}

func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

func findHotelsTool() *Tool {
	return &Tool{
		Name:        "find_hotels",
		Description: "Finds hotels in a given location.",
		Schema: Schema{
			Type: "object",
			Properties: map[string]Property{
				"location":       {Type: "string", Description: "The city or area to search for hotels in."},
				"check_in_date":  {Type: "string", Description: `The check-in date (e.g., "2026-12-24").`},
				"check_out_date": {Type: "string", Description: `The check-out date (e.g., "2026-12-26").`},
			},
			Required: []string{"location"},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			location := stringArg(args, "location")
			if location == "" {
				return []any{}, nil
			}
			type hotel struct {
				Name       string  `json:"name"`
				Price      int     `json:"price"`
				Rating     float64 `json:"rating"`
				BookingURL string  `json:"bookingUrl"`
			}
			hotels := []hotel{
				{Name: "Grand Hyatt " + location, Price: 350, Rating: 4.8},
				{Name: location + " Marriott", Price: 280, Rating: 4.6},
				{Name: "Ibis Styles " + location, Price: 120, Rating: 4.2},
			}
			for i := range hotels {
				hotels[i].BookingURL = fmt.Sprintf(
					"https://www.booking.com/searchresults.html?ss=%s&q=%s",
					url.QueryEscape(location), url.QueryEscape(hotels[i].Name))
			}
			return hotels, nil
		},
	}
}

func findMovieTicketsTool() *Tool {
	return &Tool{
		Name:        "find_movie_tickets",
		Description: "Finds movie tickets for a given movie title and location.",
		Schema: Schema{
			Type: "object",
			Properties: map[string]Property{
				"movie_title": {Type: "string", Description: "The title of the movie."},
				"location":    {Type: "string", Description: "The city or area to search for cinemas in."},
			},
			Required: []string{"movie_title"},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			title := stringArg(args, "movie_title")
			if title == "" {
				return []any{}, nil
			}
			q := url.Values{"q": {title}}
			if loc := stringArg(args, "location"); loc != "" {
				q.Set("location", loc)
			}
			return []map[string]string{{
				"movie_title": title,
				"url":         "https://www.fandango.com/search?" + q.Encode(),
			}}, nil
		},
	}
}

func findConcertTicketsTool() *Tool {
	return &Tool{
		Name:        "find_concert_tickets",
		Description: "Finds concert or tour tickets for a given artist or event.",
		Schema: Schema{
			Type: "object",
			Properties: map[string]Property{
				"artist_name": {Type: "string", Description: "The name of the artist or band."},
				"location":    {Type: "string", Description: "The city or area to search for concerts in (optional)."},
			},
			Required: []string{"artist_name"},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			artist := stringArg(args, "artist_name")
			if artist == "" {
				return []any{}, nil
			}
			q := url.Values{"q": {artist + " tickets"}}
			if loc := stringArg(args, "location"); loc != "" {
				q.Set("location", loc)
			}
			return []map[string]string{{
				"artist_name": artist,
				"url":         "https://www.ticketmaster.com/search?" + q.Encode(),
			}}, nil
		},
	}
}

func findJobsTool() *Tool {
	return &Tool{
		Name:        "find_jobs",
		Description: "Finds job listings based on a query and location.",
		Schema: Schema{
			Type: "object",
			Properties: map[string]Property{
				"job_title": {Type: "string", Description: "The job title, keyword, or role to search for."},
				"location":  {Type: "string", Description: "The city or area to search for jobs in (optional)."},
			},
			Required: []string{"job_title"},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			title := stringArg(args, "job_title")
			if title == "" {
				return []any{}, nil
			}
			location := stringArg(args, "location")
			if location == "" {
				location = "Remote"
			}
			type job struct {
				Title    string `json:"title"`
				Company  string `json:"company"`
				Location string `json:"location"`
				URL      string `json:"url"`
			}
			jobs := []job{
				{Title: "Senior " + title, Company: "Tech Corp", Location: location},
				{Title: title, Company: "Innovate LLC", Location: location},
			}
			for i := range jobs {
				jobs[i].URL = fmt.Sprintf(
					"https://www.linkedin.com/jobs/search/?keywords=%s&location=%s",
					url.QueryEscape(jobs[i].Title), url.QueryEscape(jobs[i].Location))
			}
			return jobs, nil
		},
	}
}

func findCarsTool() *Tool {
	return &Tool{
		Name:        "find_cars",
		Description: "Finds cars for sale based on make, model, and location.",
		Schema: Schema{
			Type: "object",
			Properties: map[string]Property{
				"make":     {Type: "string", Description: "The make of the car (e.g., Toyota, Ford)."},
				"model":    {Type: "string", Description: "The model of the car (e.g., Camry, Mustang) (optional)."},
				"location": {Type: "string", Description: "The city or area to search for cars in (optional)."},
			},
			Required: []string{"make"},
		},
		Execute: func(ctx context.Context, args map[string]any) (any, error) {
			make := stringArg(args, "make")
			if make == "" {
				return []any{}, nil
			}
			model := stringArg(args, "model")
			display := model
			if display == "" {
				display = "All Models"
			}
			type car struct {
				Make  string `json:"make"`
				Model string `json:"model"`
				Price int    `json:"price"`
				Year  int    `json:"year"`
				URL   string `json:"url"`
			}
			listURL := fmt.Sprintf("https://www.autotrader.com/cars-for-sale/all-cars/%s/%s",
				strings.ToLower(make), strings.ToLower(model))
			return []car{
				{Make: make, Model: display, Price: 32000, Year: 2024, URL: listURL},
				{Make: make, Model: display, Price: 25000, Year: 2021, URL: listURL},
			}, nil
		},
	}
}
