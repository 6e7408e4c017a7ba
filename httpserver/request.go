package httpserver

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mflix/errs"

	"github.com/labstack/echo/v4"
)

var errInvalidBody = errs.Errorf(errs.EINVALID, "invalid JSON body")

// MovieParams are the path parameters of the movie routes.
type MovieParams struct {
	MovieID string `param:"idMovie" validate:"required,objectid"`
}

// CommentParams are the path parameters of a single comment route.
type CommentParams struct {
	MovieID   string `param:"idMovie" validate:"required,objectid"`
	CommentID string `param:"idComment" validate:"required,objectid"`
}

// bindParams binds path parameters into p and validates them. Any failure
// is reported as invalid.
func bindParams(c echo.Context, p interface{}, invalid error) error {
	if err := (&echo.DefaultBinder{}).BindPathParams(c, p); err != nil {
		return invalid
	}
	if err := c.Validate(p); err != nil {
		return invalid
	}
	return nil
}

// bindDocument decodes the request body as a JSON object. An empty body
// yields an empty document.
func bindDocument(c echo.Context) (map[string]any, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(c.Request().Body).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return map[string]any{}, nil
		}
		return nil, errInvalidBody
	}

	doc, ok := decodeObject(raw)
	if !ok {
		return nil, errInvalidBody
	}
	if doc == nil {
		doc = map[string]any{}
	}
	return doc, nil
}

// bindUpdates decodes a {"updates": {...}} body. It returns a nil map when
// updates is missing or not an object so the domain rejects it.
func bindUpdates(c echo.Context) (map[string]any, error) {
	var req struct {
		Updates json.RawMessage `json:"updates"`
	}
	if err := json.NewDecoder(c.Request().Body).Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, errInvalidBody
	}

	updates, _ := decodeObject(req.Updates)
	return updates, nil
}

// decodeObject decodes raw as a JSON object, keeping integral numbers as
// integers. A JSON null decodes to a nil map.
func decodeObject(raw json.RawMessage) (map[string]any, bool) {
	if len(raw) == 0 {
		return nil, false
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, false
	}
	for k, v := range doc {
		doc[k] = normalizeNumbers(v)
	}
	return doc, true
}

func normalizeNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		for k, e := range t {
			t[k] = normalizeNumbers(e)
		}
		return t
	case []any:
		for i, e := range t {
			t[i] = normalizeNumbers(e)
		}
		return t
	default:
		return v
	}
}
