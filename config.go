package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"

	"github.com/goBrailleChord/internal/configpaths"
)

// ConfigCommand groups config-related subcommands.
type ConfigCommand struct {
	Init ConfigInit `cmd:"" help:"Generate a configuration template"`
}

// ConfigInit scaffolds a configuration file for a command.
type ConfigInit struct {
	Command string `arg:"" name:"command" help:"Command to generate config for" enum:"type,edit"`
	Format  string `help:"Output format" enum:"json,yaml,toml" default:"toml"`
	Output  string `help:"Destination file path (defaults to current directory)"`
	Force   bool   `help:"Overwrite if the file already exists"`
}

// Run writes a template built from the command's flags and their defaults.
func (c *ConfigInit) Run() error {
	format := normalizeFormat(c.Format)
	if format == "" {
		return fmt.Errorf("unsupported format: %s", c.Format)
	}

	root, err := templateFor(c.Command)
	if err != nil {
		return err
	}

	dest := c.Output
	if dest == "" {
		dest = c.Command + "." + format
	}
	if !c.Force {
		if _, err := os.Stat(dest); err == nil {
			return errors.New("destination exists; use --force to overwrite")
		}
	}
	if err := configpaths.EnsureDir(dest); err != nil {
		return err
	}

	data, err := encodeTemplate(root, format)
	if err != nil {
		return err
	}
	return os.WriteFile(dest, data, 0o644)
}

func templateFor(command string) (map[string]any, error) {
	var root map[string]any
	switch command {
	case "type":
		root = buildMapFromStruct(reflect.TypeOf(TypeCommand{}))
	case "edit":
		root = buildMapFromStruct(reflect.TypeOf(EditCommand{}))
	default:
		return nil, errors.New("unknown command; expected 'type' or 'edit'")
	}
	root["log"] = buildMapFromStruct(reflect.TypeOf(LogConfig{}))
	return root, nil
}

func encodeTemplate(root map[string]any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(root, "", "  ")
	case "yaml":
		return yaml.Marshal(root)
	case "toml":
		return toml.Marshal(root)
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

func normalizeFormat(f string) string {
	switch strings.ToLower(f) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	case "toml":
		return "toml"
	default:
		return ""
	}
}

// configKey turns a field name into the key kong's config resolvers look up:
// "SixKey" becomes "six_key".
func configKey(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}

func buildMapFromStruct(t reflect.Type) map[string]any {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() || f.Tag.Get("kong") == "-" {
			continue
		}
		if _, ok := f.Tag.Lookup("cmd"); ok {
			continue
		}

		if _, ok := f.Tag.Lookup("embed"); ok || f.Anonymous {
			prefix := strings.TrimSuffix(f.Tag.Get("prefix"), ".")
			sub := buildMapFromStruct(f.Type)
			if prefix != "" {
				out[prefix] = sub
			} else {
				for k, v := range sub {
					out[k] = v
				}
			}
			continue
		}

		key := strings.ReplaceAll(f.Tag.Get("name"), "-", "_")
		if key == "" {
			key = configKey(f.Name)
		}
		if val := defaultValueForField(f.Type, f.Tag.Get("default")); val != nil {
			out[key] = val
		}
	}
	return out
}

func defaultValueForField(t reflect.Type, def string) any {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return def
	case reflect.Bool:
		b, err := strconv.ParseBool(def)
		if err != nil {
			return false
		}
		return b
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(def, 10, 64)
		if err != nil {
			return 0
		}
		return n
	case reflect.Slice:
		if t.Elem().Kind() == reflect.String {
			return []string{}
		}
		return nil
	case reflect.Struct:
		return buildMapFromStruct(t)
	default:
		return nil
	}
}
