package openai

import (
	"fmt"
	"strings"
)

// Message represents a chat message sent to the completion endpoint.
type Message struct {
	Role    string
	Content string
}

const systemPrompt = "You are a delivery-email parser. Respond with JSON only. No markdown. " +
	"Never omit keys. Output must match the schema exactly."

const extractionTemplate = `Extract the delivery information from the email below and return a JSON object with exactly these keys:
- "delivery": "yes" if the email confirms a delivery or shipment, otherwise "no"
- "price_num": the order total as a number; use 0.00 if no price is mentioned
- "description": a short description of the items, or "" if unknown
- "order_id": the order number, or "" if unknown
- "delivery_date": the delivery or arrival date as YYYY-MM-DD, or "" if unknown
- "store": the sender or store name, or "" if unknown
- "tracking_number": the tracking number, or "" if unknown
- "carrier": the shipping carrier, or "" if unknown

Return only the JSON object, nothing else.`

// BuildPrompt creates the chat messages for a delivery extraction request.
func BuildPrompt(emailText string) []Message {
	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: buildUserPrompt(emailText)},
	}
}

func buildUserPrompt(emailText string) string {
	return fmt.Sprintf("%s\n\nEmail:\n%s", extractionTemplate, strings.TrimSpace(emailText))
}
