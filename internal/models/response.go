package models

type Card struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DualResponse is the sole output contract of the answer pipeline: a spoken
// SSML-safe text plus an independently composed visual card. The two are
// formatted from the same data but may diverge in detail.
type DualResponse struct {
	Text string `json:"text"`
	Card Card   `json:"card"`
}
