package system

import (
	"log"

	"github.com/milk9111/healthhammer/component"
	"github.com/milk9111/healthhammer/obj"
)

// Stats counts combat outcomes for the debug overlay.
type Stats struct {
	Hits       int
	Kills      int
	Knockbacks int
	PlayerHits int
}

// dispatchContacts routes begin-contacts recorded during the physics step.
func (w *World) dispatchContacts(contacts []obj.Contact) {
	p := w.Player
	for _, c := range contacts {
		switch c.Kind {
		case obj.ContactWeapon:
			if c.Source == p.Hammer.ID {
				p.Hammer.HandleContact(c.Target)
			}
		case obj.ContactAttacker:
			if c.Target != p.ID {
				continue
			}
			if e := w.Enemy(c.Source); e != nil {
				e.TouchPlayer(p, w.Knockback)
				w.Stats.PlayerHits++
			}
		}
	}
}

func (w *World) onCombatEvent(evt component.CombatEvent) {
	switch evt.Type {
	case component.EventHit:
		w.Stats.Hits++
	case component.EventKnockback:
		w.Stats.Knockbacks++
	case component.EventDeath:
		w.Stats.Kills++
		log.Printf("World: %d killed by %s from %d", evt.TargetID, evt.Source, evt.AttackerID)
	}
}
