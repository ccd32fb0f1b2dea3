package components

import (
	"math"

	cfg "github.com/automoto/shapefighter/config"
	"github.com/yohamta/donburi"
)

// PlayerData is the combat state of one combatant. Health and Stamina stay
// within [0, cfg.Player.MaxHealth] and [0, cfg.Player.MaxStamina].
type PlayerData struct {
	Health   float64
	Stamina  float64
	Blocking bool
	Name     string
	NetID    string
	IsLocal  bool
	// Cooldown is the time left before another attack is allowed
	Cooldown float64
	// IsAttacking is set only on the frame an attack started
	IsAttacking bool
}

// NewPlayer returns a combatant at full health and stamina
func NewPlayer(name, netID string, isLocal bool) PlayerData {
	return PlayerData{
		Health:  cfg.Player.MaxHealth,
		Stamina: cfg.Player.MaxStamina,
		Name:    name,
		NetID:   netID,
		IsLocal: isLocal,
	}
}

// Attack spends stamina and starts the cooldown. It reports false and
// changes nothing when stamina or cooldown forbid the attack.
func (p *PlayerData) Attack() bool {
	if p.Stamina < cfg.Combat.AttackCost || p.Cooldown > 0 {
		return false
	}
	p.Stamina -= cfg.Combat.AttackCost
	p.Cooldown = cfg.Combat.AttackCooldown
	p.IsAttacking = true
	return true
}

// TakeDamage applies amount, halved while blocking at a stamina cost
func (p *PlayerData) TakeDamage(amount float64) {
	if !p.Blocking {
		p.Health = math.Max(0, p.Health-amount)
		return
	}
	p.Health = math.Max(0, p.Health-amount*cfg.Combat.BlockDamageScale)
	p.Stamina = math.Max(0, p.Stamina-amount*cfg.Combat.BlockStaminaCost)
}

func (p *PlayerData) Alive() bool {
	return p.Health > 0
}

func (p *PlayerData) Tick(dt float64) {
	p.Stamina = math.Min(cfg.Player.MaxStamina, p.Stamina+cfg.Player.StaminaRegen*dt)
	p.Cooldown = math.Max(0, p.Cooldown-dt)
	p.IsAttacking = false
}

var Player = donburi.NewComponentType[PlayerData]()
