package catalog

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

// LoadContent reads the site content snapshot. An empty path loads the
// embedded default document.
func LoadContent(path string) (*Content, error) {
	data := defaultContent

	if path != "" {
		fileData, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read content file %v: %w", path, err)
		}

		data = fileData
	}

	var content Content

	if err := yaml.Unmarshal(data, &content); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	if err := content.Validate(); err != nil {
		return nil, fmt.Errorf("validate content: %w", err)
	}

	return &content, nil
}

// Validate enforces the catalog invariants: every room charges a positive
// nightly rate and sleeps at least one guest.
func (c *Content) Validate() error {
	contentErr := newContentError()

	if c.Hotel.Name == "" {
		contentErr.addError("hotel.name", "provide hotel name")
	}

	seen := make(map[string]struct{}, len(c.Rooms))

	for _, room := range c.Rooms {
		field := fmt.Sprintf("rooms.%s", room.ID)

		if room.ID == "" {
			contentErr.addError("rooms", "provide room id")

			continue
		}

		if _, dup := seen[room.ID]; dup {
			contentErr.addError(field, "duplicate room id")
		}

		seen[room.ID] = struct{}{}

		if room.Price <= 0 {
			contentErr.addError(field, "price must be positive")
		}

		if room.MaxGuests < 1 {
			contentErr.addError(field, "maxGuests must be at least 1")
		}
	}

	for _, service := range c.Services {
		if service.ID == "" {
			contentErr.addError("services", "provide service id")
		}
	}

	if contentErr.fieldsCount() > 0 {
		return contentErr
	}

	return nil
}
