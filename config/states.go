package config

import "fmt"

// SkillType identifies a skill strategy. Values match the skill table ids.
type SkillType int

const (
	SkillNone        SkillType = 0
	SkillNormal      SkillType = 1001
	SkillMultiShot   SkillType = 1002
	SkillDirectShot  SkillType = 1003
	SkillDash        SkillType = 1004
	SkillJumpShot    SkillType = 1005
	SkillClusterShot SkillType = 1006
)

var skillTypeNames = map[SkillType]string{
	SkillNormal:      "Normal",
	SkillMultiShot:   "MultiShot",
	SkillDirectShot:  "DirectShot",
	SkillDash:        "Dash",
	SkillJumpShot:    "JumpShot",
	SkillClusterShot: "ClusterShot",
}

func (s SkillType) String() string {
	if name, ok := skillTypeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("SkillType(%d)", int(s))
}

// UnmarshalText accepts either the skill name or its numeric id.
func (s *SkillType) UnmarshalText(text []byte) error {
	str := string(text)
	for t, name := range skillTypeNames {
		if name == str {
			*s = t
			return nil
		}
	}
	var id int
	if _, err := fmt.Sscanf(str, "%d", &id); err == nil {
		if _, ok := skillTypeNames[SkillType(id)]; ok {
			*s = SkillType(id)
			return nil
		}
	}
	return fmt.Errorf("unknown skill type %q", str)
}

// PrototypeID keys a pooled entity template ("arrow", "cluster", "Explosion").
type PrototypeID string

// ArrowState is the projectile lifecycle state.
type ArrowState int

const (
	ArrowIdle ArrowState = iota
	ArrowFlying
	ArrowStuck
)

func (s ArrowState) String() string {
	switch s {
	case ArrowIdle:
		return "Idle"
	case ArrowFlying:
		return "Flying"
	case ArrowStuck:
		return "Stuck"
	}
	return "Unknown"
}

// ArrowBehavior selects how a launched projectile resolves.
type ArrowBehavior int

const (
	BehaviorBallistic ArrowBehavior = iota
	BehaviorClusterCarrier
)

// Faction separates the two sides of a duel.
type Faction int

const (
	FactionPlayer Faction = iota
	FactionEnemy
)

func (f Faction) String() string {
	if f == FactionPlayer {
		return "Player"
	}
	return "Enemy"
}

// EnemyPhase is the enemy AI loop phase.
type EnemyPhase int

const (
	EnemySpawnDelay EnemyPhase = iota
	EnemyMove
	EnemyThink
	EnemyActing
	EnemyRest
	EnemyStopped
)

// RoundStateID is the round flow state.
type RoundStateID int

const (
	RoundReady RoundStateID = iota
	RoundCountdown
	RoundPlaying
	RoundGameOver
)

func (s RoundStateID) String() string {
	switch s {
	case RoundReady:
		return "Ready"
	case RoundCountdown:
		return "Countdown"
	case RoundPlaying:
		return "Playing"
	case RoundGameOver:
		return "GameOver"
	}
	return "Unknown"
}

// Outcome labels shown when a round ends.
const (
	OutcomeNone = ""
	OutcomeWin  = "YOU WIN"
	OutcomeLose = "YOU LOSE"
	OutcomeDraw = "DRAW"
)
