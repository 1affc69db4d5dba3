package l10n

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Entry is one bundle value: a replacement string, optionally carrying the
// translator comment lines the extraction tooling recorded alongside it. On
// input an entry is either a plain string or a {message, comment} object;
// both decode into this struct.
type Entry struct {
	Message string   `json:"message" yaml:"message" toml:"message"`
	Comment []string `json:"comment,omitempty" yaml:"comment,omitempty" toml:"comment,omitempty"`
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		e.Message, e.Comment = s, nil
		return nil
	}
	type plain Entry
	return json.Unmarshal(data, (*plain)(e))
}

func (e *Entry) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		return node.Decode(&e.Message)
	}
	type plain Entry
	return node.Decode((*plain)(e))
}

func (e *Entry) UnmarshalTOML(v any) error {
	switch t := v.(type) {
	case string:
		e.Message, e.Comment = t, nil
		return nil
	case map[string]any:
		msg, ok := t["message"].(string)
		if !ok {
			return fmt.Errorf("entry table missing string 'message'")
		}
		e.Message = msg
		if raw, ok := t["comment"]; ok {
			lines, ok := raw.([]any)
			if !ok {
				return fmt.Errorf("entry 'comment' must be an array of strings")
			}
			for _, l := range lines {
				s, ok := l.(string)
				if !ok {
					return fmt.Errorf("entry 'comment' must be an array of strings")
				}
				e.Comment = append(e.Comment, s)
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported entry value of type %T", v)
	}
}

// Bundle is the flat translation mapping from lookup key to entry. This is
// the only shape a store ever holds: wrapped input schemas are flattened
// during loading.
type Bundle map[string]Entry

// Format identifiers for bundle sources.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatTOML = "toml"
)

// FormatForPath picks the decode format from a file path extension,
// defaulting to JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

// bundleFile is the wrapped on-disk schema emitted by extraction tooling: a
// version marker plus a single named bundle under "contents".
type bundleFile struct {
	Version  string            `json:"version" yaml:"version" toml:"version"`
	Contents map[string]Bundle `json:"contents" yaml:"contents" toml:"contents"`
}

// DecodeBundle parses raw bundle bytes in the given format. Both accepted
// schemas normalize to a flat Bundle: the wrapped form descends into its
// single "contents" bundle, the flat form is used directly.
func DecodeBundle(data []byte, format string) (Bundle, error) {
	var wrapped bundleFile
	if err := unmarshal(data, format, &wrapped); err == nil && len(wrapped.Contents) > 0 {
		return innerBundle(wrapped.Contents), nil
	}
	var b Bundle
	if err := unmarshal(data, format, &b); err != nil {
		return nil, fmt.Errorf("decode %s bundle: %w", format, err)
	}
	return b, nil
}

func unmarshal(data []byte, format string, v any) error {
	switch format {
	case FormatYAML:
		return yaml.Unmarshal(data, v)
	case FormatTOML:
		return toml.Unmarshal(data, v)
	default:
		return json.Unmarshal(data, v)
	}
}

// innerBundle selects the wrapped schema's bundle. More than one entry is not
// expected; sorting keeps the choice deterministic when it happens anyway.
func innerBundle(contents map[string]Bundle) Bundle {
	names := make([]string, 0, len(contents))
	for name := range contents {
		names = append(names, name)
	}
	sort.Strings(names)
	return contents[names[0]]
}

// ReadBundleFile loads and decodes a bundle from a local file, picking the
// format from the file extension.
func ReadBundleFile(path string) (Bundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b, err := DecodeBundle(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("read bundle %s: %w", path, err)
	}
	return b, nil
}

// bundleFromValue normalizes an in-memory contents value. Typed bundles are
// used as-is; raw bytes and loosely typed maps (including the wrapped shape)
// round-trip through JSON so the same normalization applies as for files.
func bundleFromValue(v any) (Bundle, error) {
	switch b := v.(type) {
	case Bundle:
		return b, nil
	case map[string]Entry:
		return Bundle(b), nil
	case map[string]string:
		out := make(Bundle, len(b))
		for k, msg := range b {
			out[k] = Entry{Message: msg}
		}
		return out, nil
	case json.RawMessage:
		return DecodeBundle(b, FormatJSON)
	case []byte:
		return DecodeBundle(b, FormatJSON)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("unsupported contents value %T: %w", v, err)
	}
	return DecodeBundle(data, FormatJSON)
}
