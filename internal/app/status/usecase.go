package status

import (
	"context"
	"errors"

	"verdant/internal/app/game"
)

var ErrNotReady = errors.New("game not ready")

type HudProvider interface {
	Status() game.HudSnapshot
}

type UseCase struct {
	Game HudProvider
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	if u.Game == nil {
		return Response{}, ErrNotReady
	}
	return Response{Hud: u.Game.Status()}, nil
}
