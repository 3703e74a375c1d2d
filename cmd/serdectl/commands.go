package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hengadev/serde"
	"github.com/hengadev/serde/profile"
)

const (
	formatText = "text"
	formatYAML = "yaml"
	formatJSON = "json"
)

type characteristicInfo struct {
	Name         string   `yaml:"name" json:"name"`
	UUID         string   `yaml:"uuid" json:"uuid"`
	Permissions  string   `yaml:"permissions" json:"permissions"`
	Properties   string   `yaml:"properties" json:"properties"`
	Values       []string `yaml:"values" json:"values"`
	InitialValue string   `yaml:"initial_value,omitempty" json:"initial_value,omitempty"`
}

type serviceInfo struct {
	Name            string               `yaml:"name" json:"name"`
	UUID            string               `yaml:"uuid" json:"uuid"`
	Tag             string               `yaml:"tag" json:"tag"`
	Characteristics []characteristicInfo `yaml:"characteristics" json:"characteristics"`
}

func displayUUID(uuid string) string {
	short, _ := profile.ShortUUID(uuid)
	return short
}

func listCommand(env *environment, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	format := fs.String("format", formatText, "Output format: text, yaml or json")
	tag := fs.String("tag", "", "Only list services with this tag")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var services []serviceInfo
	for _, s := range env.registry.Services() {
		if *tag != "" && s.Tag != *tag {
			continue
		}
		info := serviceInfo{Name: s.Name, UUID: displayUUID(s.UUID), Tag: s.Tag}
		for _, c := range s.Characteristics {
			info.Characteristics = append(info.Characteristics, characteristicInfo{
				Name:         c.Name(),
				UUID:         displayUUID(c.UUID()),
				Permissions:  c.Permissions().String(),
				Properties:   c.Properties().String(),
				Values:       c.StringValues(),
				InitialValue: serde.ToHex(c.InitialValue()),
			})
		}
		services = append(services, info)
	}

	switch *format {
	case formatYAML, formatJSON:
		return writeStructured(w, *format, services)
	case formatText:
		for _, s := range services {
			fmt.Fprintf(w, "%s (%s) [%s]\n", s.Name, s.UUID, s.Tag)
			for _, c := range s.Characteristics {
				fmt.Fprintf(w, "  %-30s %-38s %s: %s\n", c.Name, c.UUID, c.Properties, strings.Join(c.Values, ", "))
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func decodeCommand(env *environment, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	uuid := fs.String("uuid", "", "Characteristic UUID (16 bit, 32 bit or 128 bit form)")
	payload := fs.String("hex", "", "Payload as hex, e.g. 0x5a or \"01 02\"")
	format := fs.String("format", formatText, "Output format: text, yaml or json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *uuid == "" {
		return fmt.Errorf("-uuid is required")
	}

	c, err := env.registry.Characteristic(*uuid)
	if err != nil {
		return err
	}
	b, err := serde.FromHex(*payload)
	if err != nil {
		return err
	}
	values, err := c.Decode(b)
	if err != nil {
		return err
	}

	switch *format {
	case formatYAML, formatJSON:
		return writeStructured(w, *format, values)
	case formatText:
		for _, key := range orderedKeys(c.StringValues(), values) {
			fmt.Fprintf(w, "%s: %s\n", key, values[key])
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", *format)
	}
}

func encodeCommand(env *environment, args []string, w io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	uuid := fs.String("uuid", "", "Characteristic UUID (16 bit, 32 bit or 128 bit form)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *uuid == "" {
		return fmt.Errorf("-uuid is required")
	}

	values, err := parseAssignments(fs.Args())
	if err != nil {
		return err
	}
	b, err := env.registry.Encode(*uuid, values)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, serde.ToHex(b))
	return nil
}

func versionCommand(w io.Writer) {
	fmt.Fprintf(w, "serdectl %s\n", serde.VersionInfo())
	fmt.Fprintln(w, "Typed binary SerDe for Bluetooth LE characteristic payloads")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Adapters: primitive, string, single, array, pair, array-pair")
	fmt.Fprintf(w, "Text encodings: %d supported\n", len(serde.AllTextEncodings()))
}

func parseAssignments(args []string) (map[string]string, error) {
	values := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		values[key] = value
	}
	return values, nil
}

// orderedKeys returns the declared keys first, then any others sorted.
func orderedKeys(declared []string, values map[string]string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, key := range declared {
		if _, ok := values[key]; ok {
			out = append(out, key)
			seen[key] = true
		}
	}
	var extra []string
	for key := range values {
		if !seen[key] {
			extra = append(extra, key)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func writeStructured(w io.Writer, format string, v any) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
