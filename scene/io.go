// Copyright (c) 2026, The GLSteps Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/glsteps/glsteps/base/iox/tomlx"
	"github.com/glsteps/glsteps/base/iox/yamlx"
	"github.com/mitchellh/go-homedir"
)

// Format is a scene file encoding.
type Format int32

const (
	TOML Format = iota
	YAML
)

// Extensions lists the file extensions recognized by [FormatOf].
var Extensions = []string{".toml", ".yaml", ".yml"}

// FormatOf returns the encoding of the named file from its extension.
func FormatOf(filename string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	default:
		return 0, fmt.Errorf("scene: %s: unknown extension %q, want one of %s", filename, ext, strings.Join(Extensions, " "))
	}
}

// Open reads a scene from a TOML or YAML file. A leading ~ in the
// name is the home directory. Settings missing from the file keep
// their defaults, and the result is validated.
func Open(filename string) (*Scene, error) {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return decode(filename, data)
}

func decode(filename string, data []byte) (*Scene, error) {
	f, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	sc := New()
	sc.PointLights = nil
	sc.Objects = nil
	switch f {
	case TOML:
		err = tomlx.ReadBytes(sc, data)
	case YAML:
		err = yamlx.ReadBytes(sc, data)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: %s: %w", filename, err)
	}
	sc.fillDefaults()
	if err := sc.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return sc, nil
}

// Save writes the scene to a TOML or YAML file, chosen by extension.
func (sc *Scene) Save(filename string) error {
	filename, err := homedir.Expand(filename)
	if err != nil {
		return err
	}
	f, err := FormatOf(filename)
	if err != nil {
		return err
	}
	if sc.Version == "" {
		sc.Version = Version
	}
	if f == YAML {
		return yamlx.Save(sc, filename)
	}
	return tomlx.Save(sc, filename)
}
