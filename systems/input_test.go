package systems

import (
	"math"
	"testing"

	"github.com/automoto/shapefighter/components"
	cfg "github.com/automoto/shapefighter/config"
	"github.com/automoto/shapefighter/world"
)

func TestUpdateInputMapsBindings(t *testing.T) {
	tests := []struct {
		name   string
		keys   KeySet
		vx, vy float64
	}{
		{"idle", KeySet{}, 0, 0},
		{"right", KeySet{"D": true}, 1, 0},
		{"opposing keys cancel", KeySet{"A": true, "D": true}, 0, 0},
		{"diagonal normalized", KeySet{"D": true, "W": true}, math.Sqrt2 / 2, -math.Sqrt2 / 2},
		{"other player's keys ignored", KeySet{"ArrowLeft": true}, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := world.NewMatch(nil)
			p1 := w.Combatants()[0]

			UpdateInput(w, tt.keys)

			v := components.Velocity.Get(p1)
			if !approxEqual(v.X, tt.vx) || !approxEqual(v.Y, tt.vy) {
				t.Errorf("velocity = (%v, %v), want (%v, %v)", v.X, v.Y, tt.vx, tt.vy)
			}
		})
	}
}

func TestBlockPreemptsAttack(t *testing.T) {
	w := world.NewMatch(nil)
	p1 := w.Combatants()[0]

	UpdateInput(w, KeySet{"Space": true, "F": true})

	p := components.Player.Get(p1)
	if !p.Blocking {
		t.Error("not blocking")
	}
	if p.IsAttacking || p.Stamina != cfg.Player.MaxStamina {
		t.Errorf("attack started while blocking: %+v", *p)
	}
	sfx, _ := w.Audio().Drain()
	if len(sfx) != 1 || sfx[0].ID != cfg.SoundBlock {
		t.Errorf("sfx = %+v, want one block cue", sfx)
	}
}

func TestAttackSpendsStamina(t *testing.T) {
	w := world.NewMatch(nil)
	p2 := w.Combatants()[1]

	UpdateInput(w, KeySet{"Enter": true})

	p := components.Player.Get(p2)
	if !p.IsAttacking || p.Stamina != cfg.Player.MaxStamina-cfg.Combat.AttackCost {
		t.Errorf("player = %+v, want attack started", *p)
	}

	UpdateInput(w, KeySet{"Enter": true})
	if p.Stamina != cfg.Player.MaxStamina-cfg.Combat.AttackCost {
		t.Errorf("attack repeated during cooldown, stamina = %v", p.Stamina)
	}
}

func TestMoveCueOnlyOnStart(t *testing.T) {
	w := world.NewMatch(nil)

	UpdateInput(w, KeySet{"D": true})
	UpdateInput(w, KeySet{"D": true})

	sfx, _ := w.Audio().Drain()
	moves := 0
	for _, s := range sfx {
		if s.ID == cfg.SoundMove {
			moves++
		}
	}
	if moves != 1 {
		t.Errorf("move cues = %d, want 1", moves)
	}
}

func TestUpdateInputSkipsRemoteCombatants(t *testing.T) {
	w := world.NewMatch([]components.SeatData{
		{Name: "Player 1", PeerID: "peer-a", IsLocal: true},
		{Name: "Player 2", PeerID: "peer-b"},
	})
	remote := w.Combatants()[1]

	UpdateInput(w, KeySet{"ArrowLeft": true, "Enter": true})

	if v := components.Velocity.Get(remote); !v.IsZero() {
		t.Errorf("remote velocity = %+v, want zero", *v)
	}
	if components.Player.Get(remote).IsAttacking {
		t.Error("remote combatant attacked from local keys")
	}
}
