// Copyright (c) 2026 AutoVault. All rights reserved.

package car

import (
	"fmt"
	"strings"
)

// # Presentation Assembly
//
// Pure view-model construction for the storefront pages. Everything in this
// file is deterministic and free of I/O so the rendering layer can treat the
// output as a plain data contract.

// metaDescriptionLimit is the character budget search engines display.
const metaDescriptionLimit = 160

// SEO is the head-metadata block shared by every page view-model.
type SEO struct {
	Title           string `json:"title"`
	MetaDescription string `json:"meta_description"`
	MetaKeywords    string `json:"meta_keywords"`
	CanonicalURL    string `json:"canonical_url"`
	OGImage         string `json:"og_image,omitempty"`
}

// DetailPage is the full view-model for a car detail page.
type DetailPage struct {
	SEO            SEO    `json:"seo"`
	Car            *Car   `json:"car"`
	FormattedPrice string `json:"formatted_price"`
	Related        []*Car `json:"related"`
}

// ListingPage is the view-model wrapper for the listing page.
type ListingPage struct {
	SEO     SEO            `json:"seo"`
	Listing *ListingResult `json:"listing"`
}

/*
DetailView assembles the view-model for a car detail page.

Description: Derives all SEO metadata from the listing itself: the title is
the display identity, the meta description is the leading slice of the
listing description, keywords combine make, model, year, and color, and the
OpenGraph image is the primary listing photo. The canonical URL joins the
configured site origin with the request path.

Parameters:
  - result: *DetailResult (Car plus related rail)
  - baseURL: string (Site origin, e.g. "https://autovault.app")
  - path: string (Request path, e.g. "/cars/bmw-m4-2024")

Returns:
  - DetailPage: Complete deterministic view-model
*/
func DetailView(result *DetailResult, baseURL, path string) DetailPage {
	car := result.Car

	page := DetailPage{
		SEO: SEO{
			Title:           car.Title,
			MetaDescription: truncate(car.Description, metaDescriptionLimit),
			MetaKeywords:    fmt.Sprintf("%s, %s, %d, %s", car.Make, car.Model, car.Year, car.Color),
			CanonicalURL:    canonical(baseURL, path),
		},
		Car:            car,
		FormattedPrice: FormatPrice(car.Price),
		Related:        result.Related,
	}

	if len(car.Images) > 0 {
		page.SEO.OGImage = car.Images[0]
	}

	return page
}

// ListingView assembles the view-model for the listing page.
func ListingView(listing *ListingResult, baseURL, path string) ListingPage {
	title := "Car Listings"
	if len(listing.Filter.Makes) == 1 {
		title = fmt.Sprintf("%s Cars for Sale", listing.Filter.Makes[0])
	}

	return ListingPage{
		SEO: SEO{
			Title:           title,
			MetaDescription: fmt.Sprintf("Browse %d cars for sale. Filter by make, model, price, and more.", listing.Pages.Total),
			CanonicalURL:    canonical(baseURL, path),
		},
		Listing: listing,
	}
}

/*
FormatPrice renders a price with thousands separators and a dollar sign.

Description: Fractional cents are dropped; listings trade in whole dollars.
65000 renders as "$65,000".

Parameters:
  - price: float64

Returns:
  - string: Display price
*/
func FormatPrice(price float64) string {
	whole := int64(price)

	sign := ""
	if whole < 0 {
		sign = "-"
		whole = -whole
	}

	digits := fmt.Sprintf("%d", whole)

	var grouped strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(digit)
	}

	return sign + "$" + grouped.String()
}

// displayTitle derives the listing's display identity.
func displayTitle(make, model string, year int) string {
	return fmt.Sprintf("%s %s %d", make, model, year)
}

// truncate cuts a string to at most limit runes.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

// canonical joins the site origin and request path with single slashes.
func canonical(baseURL, path string) string {
	base := strings.TrimRight(baseURL, "/")
	if path == "" {
		return base
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
