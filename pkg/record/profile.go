package record

import (
	_ "embed"
	"errors"
	"strconv"
	"strings"
	"sync"

	invErrors "github.com/stackwise/invctl/pkg/errors"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed data/profiles.yaml
	profileData []byte

	profileOnce   sync.Once
	cachedProfile *profileFile
	cachedErr     error
)

// ErrNoFields reports a field spec whose tokens parsed down to nothing. It is
// distinct from an empty spec, which means "use the kind's defaults".
var ErrNoFields = errors.New("field spec selects no fields")

// Profile holds the default projection for one record kind: the field order
// and the display width per field.
type Profile struct {
	Fields  []string       `yaml:"fields"`
	Lengths map[string]int `yaml:"lengths"`
}

type profileFile struct {
	Profiles map[Kind]*Profile `yaml:"profiles"`
}

// Profiles is the set of per-kind display profiles. Width overrides from
// field specs are recorded on the instance and visible to later calls, so a
// single Profiles value is threaded through one CLI run.
type Profiles struct {
	byKind map[Kind]*Profile
}

// loadProfileFile parses and validates the embedded profile data. The data is
// embedded at build time, so it is parsed once and reused for the lifetime of
// the process.
func loadProfileFile() (*profileFile, error) {
	profileOnce.Do(func() {
		var pf profileFile
		if err := yaml.Unmarshal(profileData, &pf); err != nil {
			cachedErr = err
			return
		}

		for kind, p := range pf.Profiles {
			if !kind.IsValid() {
				cachedErr = invErrors.Newf(invErrors.ErrCodeInternal,
					"profile data declares unknown kind %q", kind)
				return
			}
			if len(p.Fields) == 0 {
				cachedErr = invErrors.Newf(invErrors.ErrCodeInternal,
					"profile for kind %q has no fields", kind)
				return
			}
			for field, width := range p.Lengths {
				if width <= 0 {
					cachedErr = invErrors.Newf(invErrors.ErrCodeInternal,
						"profile for kind %q has non-positive width for %q", kind, field)
					return
				}
			}
		}
		cachedProfile = &pf
	})

	if cachedErr != nil {
		return nil, cachedErr
	}
	return cachedProfile, nil
}

// DefaultProfiles returns a fresh Profiles populated from the embedded data.
// Each call returns an independent copy so width overrides in one run (or
// test) never leak into another.
func DefaultProfiles() (*Profiles, error) {
	pf, err := loadProfileFile()
	if err != nil {
		return nil, err
	}

	byKind := make(map[Kind]*Profile, len(pf.Profiles))
	for kind, p := range pf.Profiles {
		cp := &Profile{
			Fields:  append([]string(nil), p.Fields...),
			Lengths: make(map[string]int, len(p.Lengths)),
		}
		for field, width := range p.Lengths {
			cp.Lengths[field] = width
		}
		byKind[kind] = cp
	}
	return &Profiles{byKind: byKind}, nil
}

// Fields returns a copy of the default field order for the kind.
func (p *Profiles) Fields(kind Kind) []string {
	prof, ok := p.byKind[kind]
	if !ok {
		return nil
	}
	return append([]string(nil), prof.Fields...)
}

// Width returns the display width for a field of the given kind. Fields with
// no configured width fall back to the length of the field name, so every
// column has a usable width.
func (p *Profiles) Width(kind Kind, field string) int {
	if prof, ok := p.byKind[kind]; ok {
		if w := prof.Lengths[field]; w > 0 {
			return w
		}
	}
	return len(field)
}

// Resolve turns a user field spec into the ordered field list for rendering.
//
// An empty spec selects the kind's default fields. Otherwise each token is
// either a bare field name or name=width, which selects the field and records
// the width override on this Profiles instance for the rest of the run. A
// spec whose tokens all parse away returns ErrNoFields so the caller can fall
// back explicitly.
func (p *Profiles) Resolve(kind Kind, spec []string) ([]string, error) {
	if !kind.IsValid() {
		return nil, invErrors.Newf(invErrors.ErrCodeUsage, "unknown record kind %q", kind)
	}

	if len(spec) == 0 {
		return p.Fields(kind), nil
	}

	prof, ok := p.byKind[kind]
	if !ok {
		return nil, invErrors.Newf(invErrors.ErrCodeInternal, "no profile for kind %q", kind)
	}

	fields := make([]string, 0, len(spec))
	for _, token := range spec {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name, widthStr, hasWidth := strings.Cut(token, "=")
		if name == "" {
			return nil, invErrors.Newf(invErrors.ErrCodeUsage,
				"invalid field token %q: missing field name", token)
		}
		if !hasWidth {
			fields = append(fields, name)
			continue
		}

		width, err := strconv.Atoi(widthStr)
		if err != nil || width <= 0 {
			return nil, invErrors.Newf(invErrors.ErrCodeUsage,
				"invalid width %q for field %q: want a positive integer", widthStr, name)
		}
		if prof.Lengths == nil {
			prof.Lengths = make(map[string]int)
		}
		prof.Lengths[name] = width
		fields = append(fields, name)
	}

	if len(fields) == 0 {
		return nil, ErrNoFields
	}
	return fields, nil
}

// SplitFieldSpec splits a comma-separated field spec flag into tokens.
// An empty flag yields nil, meaning "use defaults".
func SplitFieldSpec(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
