// Package config assembles search options from environment defaults and CLI
// flags and validates the merged result.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/corey/kmpgrep/internal/domain/kmp"
	"github.com/go-playground/validator/v10"
)

// ErrInvalidOptions wraps every validation failure.
var ErrInvalidOptions = errors.New("invalid options")

// Options is the effective configuration of one invocation.
type Options struct {
	Text       string   `json:"text" validate:"excluded_with=File"`
	File       string   `json:"file"`
	Patterns   []string `json:"patterns"`
	Set        string   `json:"set"`
	IgnoreCase bool     `json:"ignore_case"`
	Method     string   `json:"method" validate:"oneof=first last forward backward"`
	Count      int      `json:"count"`
	Bytes      bool     `json:"bytes"`
	Color      string   `json:"color" validate:"oneof=auto always never"`
	MaxLines   int      `json:"max_lines" validate:"gte=0"`
	Highlight  bool     `json:"highlight"`
	JSON       bool     `json:"json"`
	Workers    int      `json:"workers" validate:"gte=0"`
	DBPath     string   `json:"db_path" validate:"required"`
	LogLevel   string   `json:"log_level" validate:"oneof=trace debug info warn error disabled off"`
}

// Defaults returns the built-in defaults overridden by KMPGREP_* variables.
func Defaults() Options {
	env := NewEnv()
	return Options{
		Method:    strings.ToLower(env.Get("METHOD", "first")),
		Count:     env.GetInt("COUNT", 1),
		Color:     strings.ToLower(env.Get("COLOR", "auto")),
		MaxLines:  env.GetInt("MAX_LINES", 10),
		Highlight: env.GetBool("HIGHLIGHT", true),
		Workers:   env.GetInt("WORKERS", 0),
		DBPath:    env.Get("DB", defaultDBPath()),
		LogLevel:  strings.ToLower(env.Get("LOG_LEVEL", "warn")),
	}
}

// defaultDBPath is $HOME/.kmpgrep/sets.db, or a relative path without HOME.
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".kmpgrep", "sets.db")
	}
	return filepath.Join(home, ".kmpgrep", "sets.db")
}

// Direction parses Method.
func (o Options) Direction() (kmp.Direction, error) {
	return kmp.ParseDirection(o.Method)
}

var (
	vOnce sync.Once
	vInst *validator.Validate
)

func validate() *validator.Validate {
	vOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// prefer json tag names in messages
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			if tag == "" || tag == "-" {
				return fld.Name
			}
			return tag
		})
		vInst = v
	})
	return vInst
}

// Validate checks field constraints. All failures are reported together.
func (o Options) Validate() error {
	err := validate().Struct(o)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidOptions, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidOptions, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", fe.Field(), fe.Param(), fe.Value())
	case "excluded_with":
		return fmt.Sprintf("%s cannot be combined with file", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", fe.Field(), fe.Param())
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
