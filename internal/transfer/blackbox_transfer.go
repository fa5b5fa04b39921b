package transfer

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []ChatChoice   `json:"choices"`
	Error   *BlackboxError `json:"error"`
}

type ChatChoice struct {
	Message ChatMessage `json:"message"`
}

type BlackboxError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type SpeechRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
	Voice string `json:"voice"`
}
