package domain

// InsurerReview is a customer review or rating snippet for an insurer,
// fetched from an external reviews service.
type InsurerReview struct {
	// Insurer is the carrier the review is about.
	Insurer string

	// Source is the publication or site the review came from.
	Source string

	// Title is the review headline.
	Title string

	// Snippet is a short excerpt of the review body.
	Snippet string

	// Rating is the star rating out of five, or 0 if the source
	// did not provide one.
	Rating float64

	// URL links to the full review.
	URL string
}
