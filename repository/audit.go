package repository

import (
	"context"
	"time"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/utils"
)

// beforeCreate and beforeUpdate are the pre-write hooks: every insert and update
// issued through Repository passes its row and the acting identity here.
func beforeCreate(ctx context.Context, now time.Time, row any) {
	if a, ok := row.(entity.Auditable); ok {
		a.StampCreate(now, utils.ActorID(ctx))
	}
}

func beforeUpdate(ctx context.Context, now time.Time, row any) {
	if a, ok := row.(entity.Auditable); ok {
		a.StampUpdate(now, utils.ActorID(ctx))
	}
}

// stampColumns adds update_time / update_user to a column map when the model is audited.
func stampColumns(ctx context.Context, now time.Time, model any, values map[string]any) {
	if _, ok := model.(entity.Auditable); !ok {
		return
	}
	values["update_time"] = now
	values["update_user"] = utils.ActorID(ctx)
}
