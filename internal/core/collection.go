package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"helmdeploy/internal/core/domain"
)

var errNotAnObject = errors.New("expected a JSON object")

// ParseCollection decodes a JSON object of string values into entries in the
// order the keys appear in payload. An empty payload is an empty collection.
// name identifies the collection in errors.
func ParseCollection(name, payload string) (domain.RawCollection, error) {
	if strings.TrimSpace(payload) == "" {
		payload = domain.DefaultCollectionPayload
	}

	collection, err := decodeObject(json.NewDecoder(strings.NewReader(payload)))
	if err != nil {
		return nil, domain.NewDecodeError(domain.SourceCollection, name, err)
	}
	return collection, nil
}

// decodeObject walks the token stream so keys keep their source order.
func decodeObject(decoder *json.Decoder) (domain.RawCollection, error) {
	decoder.UseNumber()

	open, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if open != json.Delim('{') {
		return nil, errNotAnObject
	}

	collection := domain.RawCollection{}
	for decoder.More() {
		keyToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyToken.(string)
		if !ok {
			return nil, errNotAnObject
		}

		valueToken, err := decoder.Token()
		if err != nil {
			return nil, err
		}
		value, err := scalarText(valueToken)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", key, err)
		}
		collection = append(collection, domain.RawEntry{Key: key, Value: value})
	}

	closing, err := decoder.Token()
	if err != nil {
		return nil, err
	}
	if closing != json.Delim('}') {
		return nil, errNotAnObject
	}
	if _, err := decoder.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after the JSON object")
	}

	return collection, nil
}

func scalarText(token json.Token) (string, error) {
	switch v := token.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "", nil
	default:
		return "", errors.New("value is not a string")
	}
}
