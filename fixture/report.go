package fixture

import (
	"encoding/json"
	"io"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
	yaml "github.com/goccy/go-yaml"
	msgpack "github.com/vmihailenco/msgpack/v5"

	"github.com/corpix/rle/errors"
)

const (
	FormatText    = "text"
	FormatYaml    = "yaml"
	FormatJson    = "json"
	FormatMsgpack = "msgpack"
)

func ValidateFormat(format string) error {
	switch format {
	case FormatText, FormatYaml, FormatJson, FormatMsgpack:
		return nil
	default:
		return errors.Newf(
			"unsupported report format %q, expected one of %q, %q, %q, %q",
			format, FormatText, FormatYaml, FormatJson, FormatMsgpack,
		)
	}
}

var reportTemplate = template.Must(
	template.New("report").
		Funcs(sprig.TxtFuncMap()).
		Parse(`{{- range .Results }}
{{ $.Mode | toString | title }} test case {{ .Index }}{{ with .Name }} ({{ . }}){{ end }}: {{ if .Passed }}PASSED{{ else }}FAILED{{ end }}
{{- if not .Passed }}
{{- with .Error }}
Error: {{ . }}
{{- end }}
Expected output:
{{ .Expected | trimSuffix "\n" | indent 2 }}
Actual output:
{{ .Actual | trimSuffix "\n" | indent 2 }}
{{- end }}
{{- end }}

Test Results: {{ .Passed }}/{{ .Total }} passed
`),
)

// Render writes the report into w using format.
func (r *Report) Render(w io.Writer, format string) error {
	var err error
	switch format {
	case FormatText:
		err = reportTemplate.Execute(w, r)
	case FormatYaml:
		var buf []byte
		buf, err = yaml.Marshal(r)
		if err == nil {
			_, err = w.Write(buf)
		}
	case FormatJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(r)
	case FormatMsgpack:
		err = msgpack.NewEncoder(w).Encode(r)
	default:
		return ValidateFormat(format)
	}
	if err != nil {
		return errors.Wrapf(err, "failed to render %s report", format)
	}
	return nil
}
