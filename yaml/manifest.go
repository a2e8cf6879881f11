// Package yaml loads docpull manifests from YAML documents.
//
// The expected shape is:
//
//	baseUrl: https://docs.example.com
//	areas:
//	  guide:
//	    outputDir: content/docs/guide
//	    pages:
//	      - url: /guide/intro
//	        outputFile: intro.md
//	        title: Introduction   # optional
//
// Areas are returned in the order they appear in the document.
package yaml

import (
	"os"

	"github.com/fwojciec/docpull"
	"gopkg.in/yaml.v3"
)

type manifestFile struct {
	BaseURL string    `yaml:"baseUrl"`
	Areas   yaml.Node `yaml:"areas"`
}

type areaFile struct {
	OutputDir string     `yaml:"outputDir"`
	Pages     []pageFile `yaml:"pages"`
}

type pageFile struct {
	URL        string `yaml:"url"`
	OutputFile string `yaml:"outputFile"`
	Title      string `yaml:"title"`
}

// LoadManifest reads and parses the manifest file at path.
func LoadManifest(path string) (*docpull.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// ParseManifest parses and validates a YAML manifest.
func ParseManifest(data []byte) (*docpull.Manifest, error) {
	var f manifestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, docpull.Errorf(docpull.EINVALID, "parse manifest: %v", err)
	}

	m := &docpull.Manifest{BaseURL: f.BaseURL}

	// Decoding the mapping node pair by pair keeps declaration order,
	// which a Go map would lose.
	if f.Areas.Kind != 0 {
		if f.Areas.Kind != yaml.MappingNode {
			return nil, docpull.Errorf(docpull.EINVALID, "manifest areas must be a mapping (line %d)", f.Areas.Line)
		}
		for i := 0; i+1 < len(f.Areas.Content); i += 2 {
			key, value := f.Areas.Content[i], f.Areas.Content[i+1]

			var a areaFile
			if err := value.Decode(&a); err != nil {
				return nil, docpull.Errorf(docpull.EINVALID, "area %q: %v", key.Value, err)
			}

			area := docpull.Area{Name: key.Value, OutputDir: a.OutputDir}
			for _, p := range a.Pages {
				area.Pages = append(area.Pages, docpull.PageEntry{
					URL:        p.URL,
					OutputFile: p.OutputFile,
					Title:      p.Title,
				})
			}
			m.Areas = append(m.Areas, area)
		}
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}
