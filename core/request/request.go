// Package request reads non-interactive search requests from YAML or JSON
// files and command line flags.
package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/kilianp07/tripwindow/core/duration"
	"github.com/kilianp07/tripwindow/core/model"
	"github.com/kilianp07/tripwindow/core/search"
)

// Format names a request encoding.
type Format string

const (
	YAML Format = "yaml"
	JSON Format = "json"
)

// Request is the file form of one search. Empty fields take the
// configured defaults.
//
//	data: vacations.csv
//	persons: [Anna, Ben, Clara]
//	necessary: [Anna]
//	length: 2 weeks
//	start: 2023-08-04
//	top: 3
type Request struct {
	Data      string   `json:"data" yaml:"data" validate:"omitempty,endswith=.csv"`
	Persons   []string `json:"persons" yaml:"persons" validate:"omitempty,unique,dive,required"`
	Necessary []string `json:"necessary" yaml:"necessary" validate:"omitempty,unique,dive,required"`
	Length    string   `json:"length" yaml:"length" validate:"omitempty,window"`
	Start     string   `json:"start" yaml:"start" validate:"omitempty,datetime=2006-01-02"`
	Top       int      `json:"top" yaml:"top" validate:"gte=0,lte=100"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("window", func(fl validator.FieldLevel) bool {
		_, err := duration.Parse(fl.Field().String())
		return err == nil
	})
}

// Validate checks the field formats. Whether persons exist is only known
// once the table is loaded; see ToConstraints.
func (r Request) Validate() error {
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: failed %q", strings.ToLower(fe.Field()), fe.Tag()))
			}
			return fmt.Errorf("invalid request: %s", strings.Join(msgs, ", "))
		}
		return err
	}
	return nil
}

// Load reads and validates the request file at path. The format follows
// the extension: .json is JSON, anything else YAML.
func Load(path string) (Request, error) {
	f, err := os.Open(path)
	if err != nil {
		return Request{}, err
	}
	defer func() { _ = f.Close() }()
	format := YAML
	if strings.EqualFold(filepath.Ext(path), ".json") {
		format = JSON
	}
	req, err := Decode(f, format)
	if err != nil {
		return Request{}, fmt.Errorf("%s: %w", path, err)
	}
	return req, nil
}

// Decode reads a request in the given format and validates it.
func Decode(r io.Reader, format Format) (Request, error) {
	var req Request
	switch format {
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			return Request{}, fmt.Errorf("decode json: %w", err)
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			return Request{}, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return Request{}, fmt.Errorf("unknown request format %q", format)
	}
	if err := req.Validate(); err != nil {
		return Request{}, err
	}
	return req, nil
}

// ToConstraints resolves r against t. Fields left empty come from the
// defaults of cfg; when persons are given but necessary is not, nobody is
// necessary. The result is validated against t.
func (r Request) ToConstraints(t *model.Table, cfg search.Config) (model.Constraints, error) {
	cons, _ := cfg.Defaults(t)
	if len(r.Persons) > 0 {
		cons.Persons = append([]string(nil), r.Persons...)
		cons.Necessary = nil
	}
	if len(r.Necessary) > 0 {
		cons.Necessary = append([]string(nil), r.Necessary...)
	}
	if r.Length != "" {
		l, err := duration.Parse(r.Length)
		if err != nil {
			return model.Constraints{}, err
		}
		cons.Length = l
	}
	if r.Start != "" {
		d, err := time.Parse(model.DateLayout, r.Start)
		if err != nil {
			return model.Constraints{}, fmt.Errorf("start: %w", err)
		}
		cons.Start = d
	}
	if err := cons.Validate(t); err != nil {
		return model.Constraints{}, err
	}
	return cons, nil
}
