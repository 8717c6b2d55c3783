// internal/defs/loader.go
package defs

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

// ArchetypeLibrary holds the stat block of every enemy archetype.
var ArchetypeLibrary map[Archetype]ArchetypeDefinition

// SpawnTable is the ordered weighted spawn pool.
var SpawnTable []SpawnEntry

// UpgradeLibrary maps upgrade option IDs to their display data.
var UpgradeLibrary map[string]UpgradeOption

// ShopCatalog lists the permanent upgrades sold between runs.
var ShopCatalog []ShopItem

func init() {
	if err := loadDefaults(); err != nil {
		panic(err)
	}
}

func loadDefaults() error {
	var archetypes []ArchetypeDefinition
	if err := decodeEmbedded("data/enemies.yaml", &archetypes); err != nil {
		return err
	}
	setArchetypes(archetypes)

	var spawn []SpawnEntry
	if err := decodeEmbedded("data/spawn.yaml", &spawn); err != nil {
		return err
	}
	SpawnTable = spawn

	var options []UpgradeOption
	if err := decodeEmbedded("data/upgrades.yaml", &options); err != nil {
		return err
	}
	UpgradeLibrary = make(map[string]UpgradeOption, len(options))
	for _, o := range options {
		UpgradeLibrary[o.ID] = o
	}

	var shop []ShopItem
	if err := decodeEmbedded("data/shop.yaml", &shop); err != nil {
		return err
	}
	ShopCatalog = shop
	return nil
}

func decodeEmbedded(name string, out any) error {
	data, err := embedded.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read embedded %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", name, err)
	}
	return nil
}

func setArchetypes(list []ArchetypeDefinition) {
	ArchetypeLibrary = make(map[Archetype]ArchetypeDefinition, len(list))
	for _, def := range list {
		ArchetypeLibrary[def.ID] = def
	}
}

// LoadEnemyDefinitions reads an archetype file and replaces the ArchetypeLibrary.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var list []ArchetypeDefinition
	if err := yaml.Unmarshal(file, &list); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}
	for _, def := range list {
		if def.Radius <= 0 {
			return fmt.Errorf("enemy definition %q: radius must be positive", def.ID)
		}
	}
	setArchetypes(list)
	return nil
}

// LoadSpawnTable reads a spawn pool file and replaces the SpawnTable.
func LoadSpawnTable(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read spawn table file: %w", err)
	}

	var list []SpawnEntry
	if err := yaml.Unmarshal(file, &list); err != nil {
		return fmt.Errorf("failed to unmarshal spawn table: %w", err)
	}
	SpawnTable = list
	return nil
}

// ArchetypeStats returns the stat block of an archetype. Unknown archetypes fall back to a
// small, weak default unit.
func ArchetypeStats(a Archetype) ArchetypeDefinition {
	if def, ok := ArchetypeLibrary[a]; ok {
		return def
	}
	return ArchetypeDefinition{ID: a, Radius: 10, Speed: 0.4, Health: 1, XP: 1, Clamped: true, Color: [3]uint8{200, 200, 200}}
}

// Upgrade returns display data for an upgrade ID.
func Upgrade(id string) UpgradeOption {
	if o, ok := UpgradeLibrary[id]; ok {
		return o
	}
	return UpgradeOption{ID: id, Text: id}
}

// ShopItemByID looks up a shop item.
func ShopItemByID(id string) (ShopItem, bool) {
	for _, it := range ShopCatalog {
		if it.ID == id {
			return it, true
		}
	}
	return ShopItem{}, false
}
