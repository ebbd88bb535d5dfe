// Package lsp implements the language-server message boundary: the
// predicates a host needs to route a decoded message.  Transport and
// encoding are the host's concern.
package lsp

import "encoding/json"

// Message is a decoded language-server message.
type Message map[string]interface{}

// Decode parses raw JSON into a message.
func Decode(data []byte) (Message, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// IsRequest reports whether the message is a request, i.e. carries an id.
func (m Message) IsRequest() bool {
	var _, ok = m["id"]
	return ok
}

// HasMethod reports whether the message's method equals method.
func (m Message) HasMethod(method string) bool {
	var v, ok = m["method"]
	if !ok {
		return false
	}
	var s, isString = v.(string)
	return isString && s == method
}
