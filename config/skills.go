package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed skills.yaml
var defaultSkillsYAML []byte

// SkillInfo is the static description of one skill. Immutable once loaded.
type SkillInfo struct {
	Type            SkillType   `yaml:"type"`
	Name            string      `yaml:"name"`
	Description     string      `yaml:"description"`
	Cooldown        float64     `yaml:"cooldown"`
	Projectile      PrototypeID `yaml:"projectile"`
	ProjectileSpeed float64     `yaml:"speed"`
	Damage          int         `yaml:"damage"`
}

// EffectInfo describes a pooled visual effect.
type EffectInfo struct {
	Name     string  `yaml:"name"`
	Duration float64 `yaml:"duration"`
}

// SkillDatabase maps skill tags and effect names to their static data.
type SkillDatabase struct {
	Skills  []SkillInfo  `yaml:"skills"`
	Effects []EffectInfo `yaml:"effects"`

	skillIndex  map[SkillType]*SkillInfo
	effectIndex map[string]*EffectInfo
}

// LoadSkillDatabase parses and validates a YAML skill table.
func LoadSkillDatabase(r io.Reader) (*SkillDatabase, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read skill database: %w", err)
	}

	var db SkillDatabase
	if err := yaml.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("failed to parse skill database: %w", err)
	}

	if err := db.Validate(); err != nil {
		return nil, fmt.Errorf("invalid skill database: %w", err)
	}

	db.index()
	return &db, nil
}

// DefaultSkillDatabase returns the embedded skill table.
func DefaultSkillDatabase() *SkillDatabase {
	db, err := LoadSkillDatabase(bytes.NewReader(defaultSkillsYAML))
	if err != nil {
		// The embedded table is part of the binary; a parse failure is a build defect.
		panic(err)
	}
	return db
}

// Validate checks durations and duplicate keys.
func (db *SkillDatabase) Validate() error {
	seen := make(map[SkillType]bool)
	for i, s := range db.Skills {
		if s.Type == SkillNone {
			return fmt.Errorf("skill %d (%q) has no type", i, s.Name)
		}
		if seen[s.Type] {
			return fmt.Errorf("duplicate skill type %s", s.Type)
		}
		seen[s.Type] = true
		if s.Cooldown < 0 {
			return fmt.Errorf("skill %s cooldown should be >= 0, got %.2f", s.Type, s.Cooldown)
		}
		if s.ProjectileSpeed < 0 {
			return fmt.Errorf("skill %s speed should be >= 0, got %.2f", s.Type, s.ProjectileSpeed)
		}
	}

	names := make(map[string]bool)
	for _, e := range db.Effects {
		if e.Name == "" {
			return fmt.Errorf("effect with empty name")
		}
		if names[e.Name] {
			return fmt.Errorf("duplicate effect %q", e.Name)
		}
		names[e.Name] = true
		if e.Duration < 0 {
			return fmt.Errorf("effect %q duration should be >= 0, got %.2f", e.Name, e.Duration)
		}
	}
	return nil
}

func (db *SkillDatabase) index() {
	db.skillIndex = make(map[SkillType]*SkillInfo, len(db.Skills))
	for i := range db.Skills {
		db.skillIndex[db.Skills[i].Type] = &db.Skills[i]
	}
	db.effectIndex = make(map[string]*EffectInfo, len(db.Effects))
	for i := range db.Effects {
		db.effectIndex[db.Effects[i].Name] = &db.Effects[i]
	}
}

// GetSkill looks up a skill by tag. A nil database has no skills.
func (db *SkillDatabase) GetSkill(t SkillType) (*SkillInfo, bool) {
	if db == nil {
		return nil, false
	}
	if db.skillIndex == nil {
		db.index()
	}
	s, ok := db.skillIndex[t]
	return s, ok
}

// GetEffect looks up a visual effect by name.
func (db *SkillDatabase) GetEffect(name string) (*EffectInfo, bool) {
	if db == nil {
		return nil, false
	}
	if db.effectIndex == nil {
		db.index()
	}
	e, ok := db.effectIndex[name]
	return e, ok
}
