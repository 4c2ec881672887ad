package config

import (
	"os"

	"github.com/corpix/revip"
)

type (
	Config              = revip.Config
	Defaultable         = revip.Defaultable
	ErrFileNotFound     = revip.ErrFileNotFound
	ErrMarshal          = revip.ErrMarshal
	ErrPathNotFound     = revip.ErrPathNotFound
	ErrPostprocess      = revip.ErrPostprocess
	ErrUnexpectedKind   = revip.ErrUnexpectedKind
	ErrUnexpectedScheme = revip.ErrUnexpectedScheme
	ErrUnmarshal        = revip.ErrUnmarshal
	Expandable          = revip.Expandable
	Marshaler           = revip.Marshaler
	Option              = revip.SourceOption
	Container           = revip.Container
	Unmarshaler         = revip.Unmarshaler
	Validatable         = revip.Validatable
)

//

const (
	EnvironPrefix = "RLE"
)

var (
	FromEnviron    = revip.FromEnviron
	FromFile       = revip.FromFile
	FromReader     = revip.FromReader
	FromURL        = revip.FromURL
	Load           = revip.Load
	New            = revip.New
	Postprocess    = revip.Postprocess
	ToFile         = revip.ToFile
	ToURL          = revip.ToURL
	ToWriter       = revip.ToWriter
	WithDefaults   = revip.WithDefaults
	WithExpansion  = revip.WithExpansion
	WithValidation = revip.WithValidation

	JsonMarshaler   = revip.JsonMarshaler
	JsonUnmarshaler = revip.JsonUnmarshaler
	YamlMarshaler   = revip.YamlMarshaler
	YamlUnmarshaler = revip.YamlUnmarshaler
	TomlMarshaler   = revip.TomlMarshaler
	TomlUnmarshaler = revip.TomlUnmarshaler
)

// Sources builds load options for the configuration files at paths
// followed by environment overrides.
// Files which do not exist are skipped unless required is set.
func Sources(paths []string, required bool, unmarshaler Unmarshaler) []Option {
	sources := make([]Option, 0, len(paths)+1)
	for _, path := range paths {
		if !required {
			if _, err := os.Stat(path); os.IsNotExist(err) {
				continue
			}
		}
		sources = append(sources, FromFile(path, unmarshaler))
	}
	return append(sources, FromEnviron(EnvironPrefix))
}
