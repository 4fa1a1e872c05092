package catalog

import (
	"encoding/json"
	"fmt"
	"unicode"

	"gopkg.in/yaml.v3"
)

type IconKind string

const (
	IconEmoji  IconKind = "emoji"
	IconSymbol IconKind = "symbol"
)

// Icon is the tagged form of the service icon field, which arrives from the
// backend either as a literal emoji ("🍽️") or as a symbolic name ("spa").
// Rendering code switches over Kind and never guesses.
type Icon struct {
	Kind  IconKind `json:"kind" yaml:"kind"`
	Value string   `json:"value" yaml:"value"`
}

func (i Icon) String() string {
	return i.Value
}

// classifyIcon maps a bare string to its kind: symbolic names are plain
// ASCII identifiers, anything else is treated as an emoji literal.
func classifyIcon(s string) Icon {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return Icon{Kind: IconEmoji, Value: s}
		}
	}

	return Icon{Kind: IconSymbol, Value: s}
}

func (i *Icon) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*i = classifyIcon(s)

		return nil
	}

	var tagged struct {
		Kind  IconKind `json:"kind"`
		Value string   `json:"value"`
	}

	if err := json.Unmarshal(data, &tagged); err != nil {
		return fmt.Errorf("decode icon: %w", err)
	}

	if tagged.Kind != IconEmoji && tagged.Kind != IconSymbol {
		return fmt.Errorf("icon kind %q: %w", tagged.Kind, ErrUnknownIconKind)
	}

	*i = Icon{Kind: tagged.Kind, Value: tagged.Value}

	return nil
}

func (i Icon) MarshalJSON() ([]byte, error) {
	type alias Icon

	return json.Marshal(alias(i))
}

func (i *Icon) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var s string
		if err := node.Decode(&s); err != nil {
			return fmt.Errorf("decode icon scalar: %w", err)
		}

		*i = classifyIcon(s)

		return nil
	}

	var tagged struct {
		Kind  IconKind `yaml:"kind"`
		Value string   `yaml:"value"`
	}

	if err := node.Decode(&tagged); err != nil {
		return fmt.Errorf("decode icon mapping: %w", err)
	}

	if tagged.Kind != IconEmoji && tagged.Kind != IconSymbol {
		return fmt.Errorf("icon kind %q: %w", tagged.Kind, ErrUnknownIconKind)
	}

	*i = Icon{Kind: tagged.Kind, Value: tagged.Value}

	return nil
}
