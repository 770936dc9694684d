package scene

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema renders a JSON schema of the scene file format so external level
// editors can validate documents before handing them to the tools.
func Schema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
	}
	s := reflector.Reflect(&File{})
	if s == nil {
		return nil, fmt.Errorf("schema: failed to reflect scene file type")
	}
	s.Version = ""
	s.Title = "Scene Navigation File"
	s.Description = "Walkable regions, scale zones, walk-behinds, and hotspots for one scene."

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("schema: marshal: %w", err)
	}
	return append(data, '\n'), nil
}
