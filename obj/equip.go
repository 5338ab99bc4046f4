package obj

import (
	"log"

	"github.com/milk9111/healthhammer/component"
)

// EquipMode says where the hammer currently lives.
type EquipMode int

const (
	EquipInventory EquipMode = iota
	EquipWorld
)

func (m EquipMode) String() string {
	if m == EquipWorld {
		return "world"
	}
	return "inventory"
}

// Equip moves the hammer between the world and the inventory slot. Both
// representations are sized from the same ledger so switching never pops.
type Equip struct {
	mode   EquipMode
	hammer *Hammer
	ledger component.HealthComponent
	// Icon sizes the inventory representation. Optional.
	Icon *component.Scaler
}

func NewEquip(hammer *Hammer, ledger component.HealthComponent, mode EquipMode) *Equip {
	e := &Equip{hammer: hammer, ledger: ledger}
	e.Set(mode)
	return e
}

func (e *Equip) Mode() EquipMode {
	if e == nil {
		return EquipInventory
	}
	return e.mode
}

// Toggle flips between world and inventory.
func (e *Equip) Toggle() EquipMode {
	if e == nil {
		return EquipInventory
	}
	if e.mode == EquipWorld {
		e.Set(EquipInventory)
	} else {
		e.Set(EquipWorld)
	}
	return e.mode
}

func (e *Equip) Set(mode EquipMode) {
	if e == nil {
		return
	}
	e.mode = mode
	fraction := 0.0
	if e.ledger != nil {
		fraction = e.ledger.HealthFraction()
	}
	switch mode {
	case EquipWorld:
		if e.hammer != nil {
			s := e.hammer.Scaler()
			s.SyncState(s.TargetFor(fraction))
			e.hammer.SetActive(true)
		}
	default:
		if e.hammer != nil {
			e.hammer.SetActive(false)
		}
		if e.Icon != nil {
			e.Icon.SyncState(e.Icon.TargetFor(fraction))
		}
	}
	log.Printf("Equip: hammer moved to %s", mode)
}
