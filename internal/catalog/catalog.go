// Package catalog loads the role, offer and event card definitions that new
// games are built from.
package catalog

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "cashflow/internal/errors"
	"cashflow/internal/game"
	appvalidator "cashflow/internal/validator"
)

//go:embed data/*.json
var defaultFS embed.FS

var extensions = []string{".json", ".yaml", ".yml"}

var validate = appvalidator.New()

// Catalog is a complete set of card definitions.
type Catalog struct {
	Roles  []game.Role      `json:"roles"`
	Offers []game.OfferCard `json:"offers"`
	Events []game.EventCard `json:"events"`
}

// Role returns the role with the given id.
func (c *Catalog) Role(id string) (game.Role, bool) {
	for _, r := range c.Roles {
		if r.ID == id {
			return r, true
		}
	}
	return game.Role{}, false
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	return LoadFS(defaultFS, "data")
}

// Load reads roles, offers and events from dir. Each may be stored as
// JSON or YAML.
func Load(dir string) (*Catalog, error) {
	return LoadFS(os.DirFS(dir), ".")
}

// LoadFS reads a catalog from dir inside fsys.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	roles, err := loadList[game.Role](fsys, dir, "roles", game.RoleKeys)
	if err != nil {
		return nil, err
	}
	offers, err := loadList[game.OfferCard](fsys, dir, "offers", game.OfferKeys)
	if err != nil {
		return nil, err
	}
	events, err := loadList[game.EventCard](fsys, dir, "events", game.EventKeys)
	if err != nil {
		return nil, err
	}
	return &Catalog{Roles: roles, Offers: offers, Events: events}, nil
}

func loadList[T any](fsys fs.FS, dir, name string, required []string) ([]T, error) {
	file, data, err := readSource(fsys, dir, name)
	if err != nil {
		return nil, err
	}
	unmarshal := json.Unmarshal
	if !strings.HasSuffix(file, ".json") {
		unmarshal = yaml.Unmarshal
	}

	var raw []map[string]any
	if err := unmarshal(data, &raw); err != nil {
		return nil, invalid("%s: must be a list of records: %v", file, err)
	}
	for i, rec := range raw {
		if missing := game.MissingKeys(rec, required); len(missing) > 0 {
			return nil, invalid("%s: record %d is missing %s", file, i, strings.Join(missing, ", "))
		}
	}

	var items []T
	if err := unmarshal(data, &items); err != nil {
		return nil, invalid("%s: %v", file, err)
	}
	seen := make(map[string]bool, len(items))
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return nil, invalid("%s: record %d: %v", file, i, err)
		}
		id := fmt.Sprint(raw[i]["id"])
		if seen[id] {
			return nil, invalid("%s: duplicate id %q", file, id)
		}
		seen[id] = true
	}
	return items, nil
}

func readSource(fsys fs.FS, dir, name string) (string, []byte, error) {
	for _, ext := range extensions {
		file := path.Join(dir, name+ext)
		data, err := fs.ReadFile(fsys, file)
		if err == nil {
			return file, data, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", nil, invalid("%s: %v", file, err)
		}
	}
	return "", nil, invalid("%s: no %s file found", path.Join(dir, name), strings.Join(extensions, "/"))
}

func invalid(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrInvalidCatalog, fmt.Sprintf(format, args...))
}
