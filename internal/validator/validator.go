package validator

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/vicquana/majian-game-1/internal/deck"
)

// maxNameWidth is the widest name that still fits on a rendered tile
const maxNameWidth = 12

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

// Validator checks a tile name pack
type Validator struct {
	NamesPath string
	Results   ValidationResults

	names deck.Names
	meta  toml.MetaData
}

func NewValidator(namesPath string) *Validator {
	return &Validator{
		NamesPath: namesPath,
		Results:   ValidationResults{},
	}
}

// Validate returns the problems found in the pack. An error means the file
// could not be read at all.
func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateKeys()
	v.validateCircles()
	v.validateHonors()
	v.validateDistinct()

	return v.Results, nil
}

func (v *Validator) decode() error {
	if _, err := os.Stat(v.NamesPath); os.IsNotExist(err) {
		return errors.Errorf("name pack not found: %s", v.NamesPath)
	}

	meta, err := toml.DecodeFile(v.NamesPath, &v.names)
	if err != nil {
		return errors.Wrap(err, "error parsing name pack")
	}
	v.meta = meta
	return nil
}

// validateKeys warns about keys the game does not read
func (v *Validator) validateKeys() {
	for _, key := range v.meta.Undecoded() {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("unknown key: %s", key.String()))
	}
}

// validateCircles checks the [circles] table
func (v *Validator) validateCircles() {
	if len(v.names.Circles) == 0 {
		v.Results.Warnings = append(v.Results.Warnings, "no [circles] names, defaults will be used")
		return
	}

	missing := []string{}
	for rank := 1; rank <= 9; rank++ {
		if _, ok := v.names.Circles[strconv.Itoa(rank)]; !ok {
			missing = append(missing, strconv.Itoa(rank))
		}
	}
	if len(missing) > 0 {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("missing circle names (defaults will be used): %s", strings.Join(missing, ", ")))
	}

	keys := make([]string, 0, len(v.names.Circles))
	for key := range v.names.Circles {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rank, err := strconv.Atoi(key)
		if err != nil || rank < 1 || rank > 9 {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("circles.%s is not a rank between 1 and 9", key))
			continue
		}
		v.checkName("circles."+key, v.names.Circles[key])
	}
}

// validateHonors checks the dragon and universal names
func (v *Validator) validateHonors() {
	honors := []struct{ key, name string }{
		{"dragon", v.names.Dragon},
		{"universal", v.names.Universal},
	}
	for _, h := range honors {
		if !v.meta.IsDefined(h.key) {
			v.Results.Warnings = append(v.Results.Warnings,
				fmt.Sprintf("%s is not named, the default will be used", h.key))
			continue
		}
		v.checkName(h.key, h.name)
	}
}

// validateDistinct makes sure no two faces share a name
func (v *Validator) validateDistinct() {
	seen := make(map[string]string)
	add := func(key, name string) {
		if name == "" {
			return
		}
		if other, ok := seen[name]; ok {
			v.Results.Errors = append(v.Results.Errors,
				fmt.Sprintf("%s and %s share the name %q", other, key, name))
			return
		}
		seen[name] = key
	}

	for rank := 1; rank <= 9; rank++ {
		key := strconv.Itoa(rank)
		add("circles."+key, v.names.Circles[key])
	}
	add("dragon", v.names.Dragon)
	add("universal", v.names.Universal)
}

func (v *Validator) checkName(key, name string) {
	if strings.TrimSpace(name) == "" {
		v.Results.Errors = append(v.Results.Errors, fmt.Sprintf("%s is empty", key))
		return
	}
	if utf8.RuneCountInString(name) > maxNameWidth {
		v.Results.Warnings = append(v.Results.Warnings,
			fmt.Sprintf("%s is longer than %d characters and will be cut on tiles", key, maxNameWidth))
	}
}
