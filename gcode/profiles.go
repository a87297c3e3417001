package gcode

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed profiles.json
var profilesJSON []byte

// Profile describes one target machine: the boilerplate wrapped around
// the generated commands, the pen lift height and the drawing feed rate.
type Profile struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Preamble    string  `json:"preamble"`
	Postamble   string  `json:"postamble"`
	Lift        float64 `json:"lift"`
	Feed        float64 `json:"feed"`
}

// Profiles decodes the embedded machine profiles.
func Profiles() ([]Profile, error) {
	var result []Profile
	if err := json.Unmarshal(profilesJSON, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetProfile returns the named embedded profile.
func GetProfile(name string) (*Profile, error) {
	profiles, err := Profiles()
	if err != nil {
		return nil, err
	}

	for i := range profiles {
		if profiles[i].Name == name {
			return &profiles[i], nil
		}
	}

	return nil, fmt.Errorf("no machine profile named %q", name)
}

// DefaultProfile returns a generic absolute-positioning millimeter
// profile. It is independent of the embedded profile data so a builder
// can always be constructed.
func DefaultProfile() *Profile {
	return &Profile{
		Name:        "default",
		Description: "generic pen plotter",
		Preamble:    "G21 ; millimeters\nG90 ; absolute positioning\nG28 X Y ; home\nG0 Z5 ; pen up\n",
		Postamble:   "G0 Z5 ; pen up\nG28 X Y ; home\nM84 ; disable motors\n",
		Lift:        5,
		Feed:        1500,
	}
}
