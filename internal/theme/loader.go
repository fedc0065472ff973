package theme

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	toml "github.com/pelletier/go-toml/v2"
	yaml "gopkg.in/yaml.v3"

	"github.com/unkn0wn-root/tinct/internal/colorspec"
	"github.com/unkn0wn-root/tinct/internal/errdef"
)

type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

type Format string

const (
	FormatBuiltin Format = "builtin"
	FormatTOML    Format = "toml"
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
)

type Metadata struct {
	Name        string
	Description string
	Author      string
	Version     string
	Tags        []string
}

type Definition struct {
	Key         string
	DisplayName string
	Metadata    Metadata
	Theme       Theme
	Source      Source
	Format      Format
	Path        string
}

type Catalog struct {
	order []Definition
	index map[string]int
}

func (c Catalog) All() []Definition {
	out := make([]Definition, len(c.order))
	copy(out, c.order)
	return out
}

func (c Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, def := range c.order {
		keys[i] = def.Key
	}
	return keys
}

func (c Catalog) Get(key string) (Definition, bool) {
	if c.index == nil {
		return Definition{}, false
	}
	idx, ok := c.index[key]
	if !ok {
		return Definition{}, false
	}
	return c.order[idx], true
}

func (c *Catalog) add(def Definition) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[def.Key] = len(c.order)
	c.order = append(c.order, def)
}

// LoadCatalog scans the given directories for theme files and assembles a
// catalog with the builtin default first and user themes sorted by display
// name. A broken file fails that file only; the error for it is joined onto
// the returned error while the rest of the catalog still loads.
func LoadCatalog(dirs []string, caps colorspec.Capabilities) (Catalog, error) {
	defs := make([]Definition, 0, 1)
	usedKeys := map[string]int{"default": 1}

	defs = append(defs, Definition{
		Key:         "default",
		DisplayName: "Default",
		Metadata: Metadata{
			Name: "Default",
		},
		Theme:  Default(),
		Source: SourceBuiltin,
		Format: FormatBuiltin,
	})

	var combinedErr error

	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			combinedErr = errors.Join(
				combinedErr,
				errdef.Wrap(errdef.CodeIO, err, "themes: read directory %q", dir),
			)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			format, ok := formatForPath(entry.Name())
			if !ok {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			def, err := LoadFile(path, format, caps)
			if err != nil {
				combinedErr = errors.Join(combinedErr, fmt.Errorf("themes: load %q: %w", path, err))
				continue
			}
			def.Key = ensureUniqueKey(def.Key, usedKeys)
			if strings.TrimSpace(def.DisplayName) == "" {
				def.DisplayName = humaniseSlug(def.Key)
			}
			defs = append(defs, def)
		}
	}

	catalog := assembleCatalog(defs)
	if combinedErr != nil {
		return catalog, combinedErr
	}
	return catalog, nil
}

func formatForPath(name string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

// LoadFile reads and resolves a single theme file.
func LoadFile(path string, format Format, caps colorspec.Capabilities) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, errdef.Wrap(errdef.CodeIO, err, "read theme %q", path)
	}
	raw, err := decodeDocument(data, format)
	if err != nil {
		return Definition{}, err
	}
	resolved, err := Load(raw, caps)
	if err != nil {
		return Definition{}, err
	}

	meta := metadataFromRaw(raw)
	displayName := strings.TrimSpace(meta.Name)
	slug := slugify(meta.Name)
	if slug == "" {
		baseName := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		slug = slugify(baseName)
	}
	return Definition{
		Key:         slug,
		DisplayName: displayName,
		Metadata:    meta,
		Theme:       resolved,
		Source:      SourceUser,
		Format:      format,
		Path:        path,
	}, nil
}

// decodeDocument keeps the raw shape as a generic map so unknown keys pass
// through untouched instead of failing strict struct decoding.
func decodeDocument(data []byte, format Format) (map[string]interface{}, error) {
	raw := map[string]interface{}{}
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, errdef.Wrap(errdef.CodeDecode, err, "decode toml theme")
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, errdef.Wrap(errdef.CodeDecode, err, "decode json theme")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, errdef.Wrap(errdef.CodeDecode, err, "decode yaml theme")
		}
	default:
		return nil, errdef.New(errdef.CodeDecode, "decode: unsupported format %q", format)
	}
	return raw, nil
}

func metadataFromRaw(raw map[string]interface{}) Metadata {
	section, _ := raw["metadata"].(map[string]interface{})
	meta := Metadata{}
	if section == nil {
		return meta
	}
	if s, ok := section["name"].(string); ok {
		meta.Name = s
	}
	if s, ok := section["description"].(string); ok {
		meta.Description = s
	}
	if s, ok := section["author"].(string); ok {
		meta.Author = s
	}
	if s, ok := section["version"].(string); ok {
		meta.Version = s
	}
	if tags, ok := section["tags"].([]interface{}); ok {
		for _, tag := range tags {
			if s, ok := tag.(string); ok {
				meta.Tags = append(meta.Tags, s)
			}
		}
	}
	return meta
}

func assembleCatalog(defs []Definition) Catalog {
	var catalog Catalog
	if len(defs) == 0 {
		return catalog
	}
	catalog.add(defs[0])
	if len(defs) == 1 {
		return catalog
	}
	custom := make([]Definition, len(defs)-1)
	copy(custom, defs[1:])
	sort.SliceStable(custom, func(i, j int) bool {
		left := strings.ToLower(custom[i].DisplayName)
		right := strings.ToLower(custom[j].DisplayName)
		if left == right {
			return custom[i].Key < custom[j].Key
		}
		return left < right
	})
	for _, def := range custom {
		catalog.add(def)
	}
	return catalog
}

func ensureUniqueKey(candidate string, used map[string]int) string {
	key := candidate
	if strings.TrimSpace(key) == "" {
		key = "theme"
	}
	base := key
	counter := used[base]
	if counter == 0 {
		used[base] = 1
		used[key] = 1
		return key
	}
	for {
		suffix := fmt.Sprintf("%s-%d", base, counter)
		if _, exists := used[suffix]; !exists {
			used[base] = counter + 1
			used[suffix] = 1
			return suffix
		}
		counter++
	}
}

func slugify(name string) string {
	var builder strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			builder.WriteRune(r)
			lastDash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !lastDash {
				builder.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.Trim(builder.String(), "-")
}

func humaniseSlug(slug string) string {
	if slug == "" {
		return "Theme"
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		parts[i] = strings.ToUpper(part[:1]) + part[1:]
	}
	return strings.Join(parts, " ")
}
