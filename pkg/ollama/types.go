package ollama

// EmbedRequest is the request body for the embeddings API.
type EmbedRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
}

// EmbedResponse is the response body from the embeddings API.
type EmbedResponse struct {
	Embedding []float32 `json:"embedding"`
}

// ErrorResponse is returned by the server on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}
