package entities

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
)

var attrTagsType = reflect.TypeOf(AttrTags(nil))

// DecodeCharacter reads one stored or imported record. A field holding the
// wrong JSON type never rejects the record: numeric text is read as a number,
// numbers are read as text, and anything else that does not fit is left at
// its zero value. complete is false when any field had to be dropped.
// Returns errors.InvalidArgument when data is not a JSON object
func DecodeCharacter(data []byte) (record *Character, complete bool, err error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, errors.WrapWithCode(err, errors.CodeInvalidArgument, "record is not valid JSON")
	}
	fields, ok := doc.(map[string]any)
	if !ok {
		return nil, false, errors.InvalidArgument("record is not a JSON object")
	}

	record = &Character{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		DecodeHook:       lenientFields,
		Result:           record,
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to build record decoder")
	}

	// field errors are collected after every other field has been decoded
	return record, decoder.Decode(fields) == nil, nil
}

// lenientFields reads numeric text the way form fields are read: the leading
// integer counts and text without one is 0. A lone attribute tag may be a
// string.
func lenientFields(_ reflect.Type, to reflect.Type, data any) (any, error) {
	text, ok := data.(string)
	if !ok {
		return data, nil
	}

	switch {
	case to == attrTagsType:
		if text == "" {
			return AttrTags(nil), nil
		}
		return AttrTags{text}, nil
	case to.Kind() == reflect.Int:
		return leadingInt(text), nil
	}
	return data, nil
}

func leadingInt(raw string) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
