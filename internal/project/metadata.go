package project

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/spf13/afero"

	"github.com/sevigo/accelerator-pr/internal/core"
)

var (
	ErrInvalidMetadata    = errors.New("invalid metadata")
	ErrMetadataIncomplete = errors.New("metadata is incomplete and no prompt is available")
)

// Prompter collects the metadata fields not supplied on the command line.
//
//go:generate mockgen -destination=../../mocks/mock_prompter.go -package=mocks . Prompter
type Prompter interface {
	// Text asks for a non-empty value of at most maxLen characters.
	Text(label string, maxLen int) (string, error)
	// Choice asks for one of choices. An empty answer selects defaultIdx and
	// a free-text answer is returned as is.
	Choice(label string, choices []string, defaultIdx int) (string, error)
}

// MetadataOptions are the metadata flags of a submission.
type MetadataOptions struct {
	Override    bool
	Title       string
	Description string
	Algorithm   string
	Sensor      string
}

// Validate checks the flag values that were supplied. Empty values are left
// for the prompt.
func (o MetadataOptions) Validate() error {
	if err := checkLength("title", o.Title, core.TitleMaxLength); err != nil {
		return err
	}
	if err := checkLength("description", o.Description, core.DescriptionMaxLength); err != nil {
		return err
	}
	if o.Algorithm != "" && !slices.Contains(core.Algorithms, o.Algorithm) {
		return fmt.Errorf("%w: algorithm %q is not one of %s", ErrInvalidMetadata,
			o.Algorithm, strings.Join(core.Algorithms, ", "))
	}
	if o.Sensor != "" && !slices.Contains(core.Sensors, o.Sensor) {
		return fmt.Errorf("%w: sensor %q is not one of %s", ErrInvalidMetadata,
			o.Sensor, strings.Join(core.Sensors, ", "))
	}
	return nil
}

// CheckText validates a free-text metadata value.
func CheckText(field, value string, maxLen int) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is empty", ErrInvalidMetadata, field)
	}
	return checkLength(field, value, maxLen)
}

func checkLength(field, value string, maxLen int) error {
	if n := utf8.RuneCountInString(value); n > maxLen {
		return fmt.Errorf("%w: %s is %d characters, the limit is %d", ErrInvalidMetadata, field, n, maxLen)
	}
	return nil
}

// MetadataStore reads and writes metadata.json at a project root.
type MetadataStore struct {
	fs afero.Fs
}

func NewMetadataStore(fsys afero.Fs) *MetadataStore {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &MetadataStore{fs: fsys}
}

func metadataPath(p core.Project) string {
	return filepath.Join(p.RootPath, core.MetadataFileName)
}

// Exists reports whether the project already carries metadata.json.
func (s *MetadataStore) Exists(p core.Project) (bool, error) {
	return afero.Exists(s.fs, metadataPath(p))
}

// Load reads metadata.json. A missing file returns fs.ErrNotExist.
func (s *MetadataStore) Load(p core.Project) (*core.Metadata, error) {
	data, err := afero.ReadFile(s.fs, metadataPath(p))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", metadataPath(p), err)
	}
	var m core.Metadata
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidMetadata, metadataPath(p), err)
	}
	return &m, nil
}

// Save writes metadata.json, replacing any existing file.
func (s *MetadataStore) Save(p core.Project, m *core.Metadata) error {
	data, err := json.MarshalIndent(m, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode metadata: %w", err)
	}
	if err := afero.WriteFile(s.fs, metadataPath(p), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", metadataPath(p), err)
	}
	return nil
}

// Resolve decides the metadata of a submission. An existing metadata.json is
// kept unless opts.Override is set. Otherwise flag values are used and the
// remaining fields are collected through prompter. The returned metadata has
// not been written yet.
func (s *MetadataStore) Resolve(p core.Project, opts MetadataOptions, prompter Prompter) (*core.Metadata, core.MetadataSource, error) {
	if !opts.Override {
		m, err := s.Load(p)
		if err == nil {
			return m, core.MetadataFromFile, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, 0, err
		}
	}
	if err := opts.Validate(); err != nil {
		return nil, 0, err
	}

	source := core.MetadataFromFlags
	ask := func() error {
		if prompter == nil {
			return ErrMetadataIncomplete
		}
		source = core.MetadataInteractive
		return nil
	}

	m := &core.Metadata{
		Title:       opts.Title,
		Description: opts.Description,
		Algorithm:   opts.Algorithm,
	}
	if m.Title == "" {
		if err := ask(); err != nil {
			return nil, 0, fmt.Errorf("%w: --title", err)
		}
		v, err := prompter.Text("Project title", core.TitleMaxLength)
		if err != nil {
			return nil, 0, err
		}
		m.Title = v
	}
	if m.Description == "" {
		if err := ask(); err != nil {
			return nil, 0, fmt.Errorf("%w: --description", err)
		}
		v, err := prompter.Text("Project description", core.DescriptionMaxLength)
		if err != nil {
			return nil, 0, err
		}
		m.Description = v
	}
	if m.Algorithm == "" {
		if err := ask(); err != nil {
			return nil, 0, fmt.Errorf("%w: --algorithm", err)
		}
		v, err := prompter.Choice("Algorithm", core.Algorithms, 0)
		if err != nil {
			return nil, 0, err
		}
		m.Algorithm = v
	}
	sensor := opts.Sensor
	if sensor == "" {
		if err := ask(); err != nil {
			return nil, 0, fmt.Errorf("%w: --sensor", err)
		}
		v, err := prompter.Choice("Sensor", core.Sensors, len(core.Sensors)-1)
		if err != nil {
			return nil, 0, err
		}
		sensor = v
	}
	m.Sensors = []string{sensor}

	if err := CheckText("title", m.Title, core.TitleMaxLength); err != nil {
		return nil, 0, err
	}
	if err := CheckText("description", m.Description, core.DescriptionMaxLength); err != nil {
		return nil, 0, err
	}
	return m, source, nil
}
