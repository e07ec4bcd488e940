package utils

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa qualquer valor com indentação, útil para logs de depuração.
func PrettyJson(in any) string {
	buffer, err := json.Marshal(in)
	if err != nil {
		return ""
	}

	var out bytes.Buffer
	if err := jsonIndent(&out, buffer); err != nil {
		return string(buffer)
	}

	return out.String()
}

func jsonIndent(out *bytes.Buffer, in []byte) error {
	var v any
	if err := json.Unmarshal(in, &v); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(v, "", "\t")
	if err != nil {
		return err
	}

	out.Write(encoded)
	return nil
}
