package config

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/example/cropview/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var current *theme.Theme

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSuffix(strings.TrimPrefix(line, "["), "]")
			current = nil
			if name, ok := strings.CutPrefix(section, "theme."); ok {
				current = theme.Default()
				current.Name = name
				cfg.Themes[name] = current
			}
			continue
		}

		// Key = Value, or Key: Value inside theme sections. The "=" form is
		// tried first so colour values may contain ':'.
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			key, value, ok = strings.Cut(line, ":")
		}
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)
		if len(value) >= 2 && strings.HasPrefix(value, "\"") && strings.HasSuffix(value, "\"") {
			value = value[1 : len(value)-1]
		}

		switch {
		case current != nil:
			if err := setThemeField(current, key, value); err != nil {
				return nil, fmt.Errorf("error in section [%s]: %w", section, err)
			}
		case section == "notify":
			if err := setNotifyField(&cfg.Notify, key, value); err != nil {
				return nil, fmt.Errorf("error in section [notify]: %w", err)
			}
		case section == "":
			if err := setRootField(cfg, key, value); err != nil {
				return nil, fmt.Errorf("error in root section: %w", err)
			}
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "theme":
		cfg.Theme = value
	case "export_dir":
		cfg.ExportDir = value
	case "tool":
		cfg.Tool = value
	case "fill_color":
		c, err := theme.ParseColor(value)
		if err != nil {
			return fmt.Errorf("fill_color: %w", err)
		}
		cfg.FillColor = c
	case "image_fill":
		c, err := theme.ParseColor(value)
		if err != nil {
			return fmt.Errorf("image_fill: %w", err)
		}
		cfg.ImageFill = &c
	case "selection_color":
		c, err := theme.ParseColor(value)
		if err != nil {
			return fmt.Errorf("selection_color: %w", err)
		}
		cfg.SelectionColor = &c
	case "min_scale":
		return parseScale(&cfg.MinScale, key, value)
	case "max_scale":
		return parseScale(&cfg.MaxScale, key, value)
	}
	return nil
}

func parseScale(dst *float64, key, value string) error {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fmt.Errorf("invalid number for key %s: %w", key, err)
	}
	if v < 0 {
		return fmt.Errorf("%s must not be negative", key)
	}
	*dst = v
	return nil
}

func setNotifyField(n *Notify, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean for key %s: %w", key, err)
	}
	switch strings.ToLower(key) {
	case "export":
		n.Export = b
	case "copy":
		n.Copy = b
	case "load":
		n.Load = b
	}
	return nil
}

// setThemeField matches key against the Theme fields case-insensitively.
func setThemeField(t *theme.Theme, key, value string) error {
	if strings.EqualFold(key, "Name") {
		t.Name = value
		return nil
	}
	val := reflect.ValueOf(t).Elem()
	typ := val.Type()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !strings.EqualFold(f.Name, key) || f.Type != reflect.TypeOf(color.RGBA{}) {
			continue
		}
		col, err := theme.ParseColor(value)
		if err != nil {
			return fmt.Errorf("invalid color for key %s: %w", key, err)
		}
		val.Field(i).Set(reflect.ValueOf(col))
		return nil
	}
	return nil
}
