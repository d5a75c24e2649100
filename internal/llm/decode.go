// Copyright 2026 The gptresearch Authors
// SPDX-License-Identifier: MIT

package llm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// ErrMalformedResponse is returned when the service body is not a JSON object.
var ErrMalformedResponse = errors.New("llm: malformed response body")

// DecodeResponse normalizes a raw Responses API body into a Response.
//
// Only the top-level shape is strict: the body must be a JSON object and must
// not carry an error object. Everything below "output" is presence-checked,
// and anything unexpected becomes an OtherItem, an empty block list, or a nil
// annotation list rather than an error.
func DecodeResponse(body []byte) (*Response, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrMalformedResponse
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, ErrMalformedResponse
	}

	if e := root.Get("error"); e.IsObject() {
		msg := stringField(e, "message")
		if msg == "" {
			msg = e.Raw
		}
		return nil, fmt.Errorf("llm: service returned error: %s", msg)
	}

	resp := &Response{
		ID:    stringField(root, "id"),
		Model: stringField(root, "model"),
		Usage: Usage{
			InputTokens:  int(root.Get("usage.input_tokens").Int()),
			OutputTokens: int(root.Get("usage.output_tokens").Int()),
		},
	}

	for _, item := range arrayField(root, "output") {
		resp.Output = append(resp.Output, decodeItem(item))
	}

	if ot := root.Get("output_text"); ot.Type == gjson.String {
		resp.OutputText = ot.Str
	} else {
		resp.OutputText = joinOutputText(resp.Output)
	}

	return resp, nil
}

func decodeItem(item gjson.Result) OutputItem {
	typ := stringField(item, "type")
	if typ != "message" {
		return OtherItem{Type: typ}
	}

	var msg MessageItem
	for _, block := range arrayField(item, "content") {
		if !block.IsObject() {
			continue
		}
		msg.Content = append(msg.Content, decodeBlock(block))
	}
	return msg
}

func decodeBlock(block gjson.Result) ContentBlock {
	cb := ContentBlock{
		Type: stringField(block, "type"),
		Text: stringField(block, "text"),
	}

	raw := block.Get("annotations")
	if !raw.IsArray() {
		return cb
	}

	cb.Annotations = make([]Annotation, 0, len(raw.Array()))
	for _, a := range raw.Array() {
		if !a.IsObject() {
			continue
		}
		cb.Annotations = append(cb.Annotations, Annotation{
			Type:       stringField(a, "type"),
			Title:      stringField(a, "title"),
			URL:        stringField(a, "url"),
			StartIndex: int(a.Get("start_index").Int()),
			EndIndex:   int(a.Get("end_index").Int()),
		})
	}
	return cb
}

// joinOutputText mirrors the SDK convenience property: the text of every
// output_text block of every message item, concatenated in order.
func joinOutputText(items []OutputItem) string {
	var b strings.Builder
	for _, item := range items {
		msg, ok := item.(MessageItem)
		if !ok {
			continue
		}
		for _, block := range msg.Content {
			if block.Type == "output_text" {
				b.WriteString(block.Text)
			}
		}
	}
	return b.String()
}

// stringField returns r[key] if it exists and is a JSON string, else "".
func stringField(r gjson.Result, key string) string {
	v := r.Get(key)
	if v.Type != gjson.String {
		return ""
	}
	return v.Str
}

// arrayField returns r[key] as a slice only when it is a JSON array.
// gjson.Result.Array wraps scalars in a one-element slice, which is not
// what a presence check wants.
func arrayField(r gjson.Result, key string) []gjson.Result {
	v := r.Get(key)
	if !v.IsArray() {
		return nil
	}
	return v.Array()
}
