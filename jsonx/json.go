package jsonx

import jsoniter "github.com/json-iterator/go"

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

func Marshal(v interface{}) ([]byte, error) {
	return jsonx.Marshal(v)
}

func MarshalIndent(v interface{}, prefix, indent string) ([]byte, error) {
	return jsonx.MarshalIndent(v, prefix, indent)
}

func Unmarshal(data []byte, v interface{}) error {
	return jsonx.Unmarshal(data, v)
}

func Valid(data []byte) bool {
	return jsonx.Valid(data)
}

// Pretty re-indents a JSON document. ok is false when data is not valid JSON.
func Pretty(data []byte) (string, bool) {
	var v interface{}
	if err := jsonx.Unmarshal(data, &v); err != nil {
		return "", false
	}
	out, err := jsonx.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", false
	}
	return string(out), true
}
