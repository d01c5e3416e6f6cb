package models

import (
	"encoding/json"
	"fmt"
)

// Upgrade names as stored in the inventory object
const (
	UpgradeTurbo   = "turbo"
	UpgradeShield  = "shield"
	UpgradeDouble  = "double"
	UpgradeTraffic = "traffic"
)

// Inventory holds the unlocked upgrade flags
type Inventory struct {
	Turbo   bool `json:"turbo"`
	Shield  bool `json:"shield"`
	Double  bool `json:"double"`
	Traffic bool `json:"traffic"`
}

// Encode serialises the inventory as a JSON object
func (inv Inventory) Encode() (string, error) {
	data, err := json.Marshal(inv)
	if err != nil {
		return "", fmt.Errorf("failed to encode inventory: %w", err)
	}
	return string(data), nil
}

// Owns reports whether the named upgrade is unlocked
func (inv Inventory) Owns(name string) bool {
	if flag := inv.flag(name); flag != nil {
		return *flag
	}
	return false
}

// Grant unlocks the named upgrade, returns false for unknown names
func (inv *Inventory) Grant(name string) bool {
	flag := inv.flag(name)
	if flag == nil {
		return false
	}
	*flag = true
	return true
}

func (inv *Inventory) flag(name string) *bool {
	switch name {
	case UpgradeTurbo:
		return &inv.Turbo
	case UpgradeShield:
		return &inv.Shield
	case UpgradeDouble:
		return &inv.Double
	case UpgradeTraffic:
		return &inv.Traffic
	}
	return nil
}

// Upgrade is a shop entry
type Upgrade struct {
	Name        string
	Title       string
	Description string
}

// Catalogue lists the upgrades offered in the shop, in display order
var Catalogue = []Upgrade{
	{Name: UpgradeTurbo, Title: "Turbo", Description: "Faster acceleration and a rolling start"},
	{Name: UpgradeShield, Title: "Shield", Description: "Absorbs one crash, then breaks"},
	{Name: UpgradeDouble, Title: "Double", Description: "Double points for the first 30s of a run"},
	{Name: UpgradeTraffic, Title: "Light Traffic", Description: "Fewer cars on the road"},
}

// FindUpgrade looks up a catalogue entry by name
func FindUpgrade(name string) (Upgrade, bool) {
	for _, u := range Catalogue {
		if u.Name == name {
			return u, true
		}
	}
	return Upgrade{}, false
}
