package status

import "verdant/internal/app/game"

type Request struct{}

type Response struct {
	Hud game.HudSnapshot `json:"hud"`
}
