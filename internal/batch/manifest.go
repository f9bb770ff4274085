package batch

import (
	"encoding/json"
	"os"
)

// Manifest describes one rendered sequence.
type Manifest struct {
	Shader string   `json:"shader"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Frames []Result `json:"frames"`
}

// WriteManifest writes manifest.json to the output directory, listing
// only the frames that rendered successfully.
func WriteManifest(path, shaderName string, cfg Config, results []Result) error {
	m := Manifest{
		Shader: shaderName,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
	for _, r := range results {
		if r.Success {
			m.Frames = append(m.Frames, r)
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
