package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is the optional on-disk overlay for gameplay numbers. Absent keys
// leave the compiled defaults untouched.
type Tuning struct {
	MaxSpeed       *float64 `yaml:"max_speed"`
	Friction       *float64 `yaml:"friction"`
	Restitution    *float64 `yaml:"restitution"`
	ClashDamage    *float64 `yaml:"clash_damage"`
	AttackCost     *float64 `yaml:"attack_cost"`
	AttackCooldown *float64 `yaml:"attack_cooldown"`
	StaminaRegen   *float64 `yaml:"stamina_regen"`
	ComboTimeout   *float64 `yaml:"combo_timeout"`
	Interpolation  *float64 `yaml:"interpolation"`
	ReconnectSecs  *float64 `yaml:"reconnect_secs"`
}

// ParseTuning decodes a YAML tuning document
func ParseTuning(data []byte) (Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tuning{}, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func (t Tuning) validate() error {
	if t.Friction != nil && (*t.Friction <= 0 || *t.Friction > 1) {
		return fmt.Errorf("friction %v outside (0,1]", *t.Friction)
	}
	if t.Restitution != nil && (*t.Restitution < 0 || *t.Restitution > 1) {
		return fmt.Errorf("restitution %v outside [0,1]", *t.Restitution)
	}
	if t.Interpolation != nil && (*t.Interpolation <= 0 || *t.Interpolation > 1) {
		return fmt.Errorf("interpolation %v outside (0,1]", *t.Interpolation)
	}
	for _, f := range []struct {
		name string
		v    *float64
	}{
		{"clash_damage", t.ClashDamage},
		{"attack_cost", t.AttackCost},
		{"attack_cooldown", t.AttackCooldown},
		{"stamina_regen", t.StaminaRegen},
		{"combo_timeout", t.ComboTimeout},
	} {
		if f.v != nil && *f.v < 0 {
			return fmt.Errorf("%s %v is negative", f.name, *f.v)
		}
	}
	if t.MaxSpeed != nil && *t.MaxSpeed <= 0 {
		return fmt.Errorf("max_speed %v must be positive", *t.MaxSpeed)
	}
	if t.ReconnectSecs != nil && *t.ReconnectSecs <= 0 {
		return fmt.Errorf("reconnect_secs %v must be positive", *t.ReconnectSecs)
	}
	return nil
}

// Apply writes every set field into the global config
func (t Tuning) Apply() {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&Physics.MaxSpeed, t.MaxSpeed)
	set(&Physics.Friction, t.Friction)
	set(&Physics.Restitution, t.Restitution)
	set(&Combat.ClashDamage, t.ClashDamage)
	set(&Combat.AttackCost, t.AttackCost)
	set(&Combat.AttackCooldown, t.AttackCooldown)
	set(&Player.StaminaRegen, t.StaminaRegen)
	set(&Combo.Timeout, t.ComboTimeout)
	set(&Net.InterpolationFactor, t.Interpolation)
	set(&Net.ReconnectDelaySecs, t.ReconnectSecs)
}

// LoadTuning reads path and applies it. A missing file is not an error.
func LoadTuning(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	t.Apply()
	return nil
}
