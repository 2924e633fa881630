package thing

import (
	"errors"
	"fmt"
	"iter"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/something-core/internal/data/repos/storage"
	types "github.com/yungbote/something-core/internal/domain/thing"
	"github.com/yungbote/something-core/internal/pkg/dbctx"
	"github.com/yungbote/something-core/internal/platform/logger"
)

type ThingRepo interface {
	InsertThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error)
	SelectAllThings(dbc dbctx.Context) iter.Seq2[*types.Thing, error]
	SelectThingByID(dbc dbctx.Context, thingID uuid.UUID) (*types.Thing, error)
	UpdateThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error)
	DeleteThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error)
}

type thingRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewThingRepo(db *gorm.DB, baseLog *logger.Logger) ThingRepo {
	repoLog := baseLog.With("repo", "ThingRepo")
	return &thingRepo{db: db, log: repoLog}
}

func (r *thingRepo) InsertThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error) {
	if err := dbc.DB(r.db).Create(thing).Error; err != nil {
		return nil, storage.Classify(storage.OpWrite, err)
	}
	return thing, nil
}

// SelectAllThings streams rows ordered by creation date. The query runs when the
// sequence is first ranged over; a failure is yielded once and ends the sequence.
func (r *thingRepo) SelectAllThings(dbc dbctx.Context) iter.Seq2[*types.Thing, error] {
	return func(yield func(*types.Thing, error) bool) {
		transaction := dbc.DB(r.db)
		rows, err := transaction.Model(&types.Thing{}).Order("created_date ASC").Rows()
		if err != nil {
			yield(nil, storage.Classify(storage.OpRead, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var t types.Thing
			if err := transaction.ScanRows(rows, &t); err != nil {
				yield(nil, storage.Classify(storage.OpRead, err))
				return
			}
			if !yield(&t, nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(nil, storage.Classify(storage.OpRead, err))
		}
	}
}

// SelectThingByID returns nil, nil when no row matches.
func (r *thingRepo) SelectThingByID(dbc dbctx.Context, thingID uuid.UUID) (*types.Thing, error) {
	var out types.Thing
	err := dbc.DB(r.db).
		Where("id = ?", thingID).
		First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, storage.Classify(storage.OpRead, err)
	}
	return &out, nil
}

// UpdateThing overwrites every column of the row. A row that vanished since it
// was read surfaces as storage.ErrConcurrencyConflict.
func (r *thingRepo) UpdateThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error) {
	res := dbc.DB(r.db).
		Model(&types.Thing{}).
		Where("id = ?", thing.ID).
		Select("*").
		Updates(thing)
	if res.Error != nil {
		return nil, storage.Classify(storage.OpWrite, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: thing %s was modified or removed concurrently", storage.ErrConcurrencyConflict, thing.ID)
	}
	return thing, nil
}

func (r *thingRepo) DeleteThing(dbc dbctx.Context, thing *types.Thing) (*types.Thing, error) {
	res := dbc.DB(r.db).
		Where("id = ?", thing.ID).
		Delete(&types.Thing{})
	if res.Error != nil {
		return nil, storage.Classify(storage.OpWrite, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, fmt.Errorf("%w: thing %s was removed concurrently", storage.ErrConcurrencyConflict, thing.ID)
	}
	return thing, nil
}
