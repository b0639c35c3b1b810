package responses

// RatingSummary is the per-doctor aggregate. AverageRating is nil
// until the doctor has at least one rating.
type RatingSummary struct {
	AverageRating *float64 `json:"average_rating"`
	NumRatings    int      `json:"num_ratings"`
}
