package spotify

// Playlist is a catalog playlist ready to show to a user.
type Playlist struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}
