package domain

// Embed is the structured part of a chat message that carries inventory text
type Embed struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Message is a chat message as returned by a message source.
// Timestamp is ISO-8601 and may be empty.
type Message struct {
	ID        string  `json:"id"`
	Timestamp string  `json:"timestamp"`
	Embeds    []Embed `json:"embeds"`
}
