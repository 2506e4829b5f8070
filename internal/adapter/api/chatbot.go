package api

import "context"

type chatbotQuery struct {
	Message string `json:"message"`
}

type chatbotResponse struct {
	Response string `json:"response"`
}

func (c *Client) ChatbotQuery(ctx context.Context, message string) (string, error) {
	var resp chatbotResponse
	if err := c.post(ctx, "/chatbot/query", chatbotQuery{Message: message}, &resp); err != nil {
		return "", err
	}
	return resp.Response, nil
}
