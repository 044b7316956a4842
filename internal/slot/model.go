package slot

// Slot binds a named placement on the landing page to a served image URL.
type Slot struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
