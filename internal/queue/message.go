package queue

import "encoding/json"

// Message is the batch-match request payload sent to the worker.
type Message struct {
	JobPostingID string  `json:"jobPostingId"`
	MinScore     float64 `json:"minScore"`
	RequestID    string  `json:"requestId"`
	EnqueuedAt   string  `json:"enqueuedAt"`
	Version      int     `json:"version"`
}

// EncodeMessage returns the JSON representation of a message.
func EncodeMessage(msg Message) ([]byte, error) {
	return json.Marshal(msg)
}

// DecodeMessage parses a JSON payload into a Message.
func DecodeMessage(payload []byte) (Message, error) {
	var msg Message
	if err := json.Unmarshal(payload, &msg); err != nil {
		return Message{}, err
	}
	return msg, nil
}
