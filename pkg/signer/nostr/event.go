package nostr

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.Config{EscapeHTML: false, SortMapKeys: true}.Froze()

// Event is a NIP-01 event.
type Event struct {
	ID        string     `json:"id"`
	PubKey    string     `json:"pubkey"`
	CreatedAt int64      `json:"created_at"`
	Kind      int        `json:"kind"`
	Tags      [][]string `json:"tags"`
	Content   string     `json:"content"`
	Sig       string     `json:"sig"`
}

// Hash is the sha256 of the serialized event commitment.
func (e *Event) Hash() ([]byte, error) {
	tags := e.Tags
	if tags == nil {
		tags = [][]string{}
	}
	payload, err := json.Marshal([]any{0, e.PubKey, e.CreatedAt, e.Kind, tags, e.Content})
	if err != nil {
		return nil, fmt.Errorf("serialize event: %w", err)
	}
	sum := sha256.Sum256(payload)
	return sum[:], nil
}

func (e *Event) computeID() (string, error) {
	h, err := e.Hash()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(h), nil
}

func (e *Event) marshal() ([]byte, error) {
	if e.Tags == nil {
		e.Tags = [][]string{}
	}
	return json.Marshal(e)
}
