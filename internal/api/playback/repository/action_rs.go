package playbackRepository

import (
	"context"
	"database/sql"
	"time"

	"VoicePlay/internal/entity"
	contextPkg "VoicePlay/pkg/context"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type VoiceActionDB struct {
	ID        sql.NullString `db:"id"`
	UserID    sql.NullString `db:"user_id"`
	Command   sql.NullString `db:"command"`
	Locator   sql.NullString `db:"locator"`
	Success   sql.NullBool   `db:"success"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r *actionRepository) CreateAction(ctx context.Context, action entity.VoiceAction) error {
	requestID := contextPkg.GetRequestID(ctx)

	argsKV := map[string]interface{}{
		"id":         action.ID,
		"user_id":    action.UserID,
		"command":    action.Command,
		"locator":    action.Locator,
		"success":    action.Success,
		"created_at": action.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateVoiceAction, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateAction")
		return err
	}
	query = r.q.Rebind(query)

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating voice action")
		return err
	}

	return nil
}

func (r *actionRepository) GetActionsByUserID(ctx context.Context, userID string, limit, offset int) ([]entity.VoiceAction, int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var actionsList []VoiceActionDB
	var total int

	countQuery, countArgs, err := sqlx.Named(queryCountVoiceActionsByUserID, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountActionsByUserID named query preparation err")
		return nil, 0, err
	}
	countQuery = r.q.Rebind(countQuery)

	if err := r.q.QueryRowxContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountActionsByUserID execution err")
		return nil, 0, err
	}

	query, args, err := sqlx.Named(queryGetVoiceActionsByUserID, map[string]interface{}{
		"user_id": userID,
		"limit":   limit,
		"offset":  offset,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActionsByUserID named query preparation err")
		return nil, 0, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &actionsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetActionsByUserID execution err")
		return nil, 0, err
	}

	var actions []entity.VoiceAction
	for _, actionDB := range actionsList {
		actions = append(actions, r.makeVoiceAction(actionDB))
	}

	return actions, total, nil
}

func (r *actionRepository) GetAllActionsByUserID(ctx context.Context, userID string) ([]entity.VoiceAction, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var actionsList []VoiceActionDB

	query, args, err := sqlx.Named(queryGetAllVoiceActionsByUserID, map[string]interface{}{
		"user_id": userID,
	})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllActionsByUserID named query preparation err")
		return nil, err
	}
	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &actionsList, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetAllActionsByUserID execution err")
		return nil, err
	}

	var actions []entity.VoiceAction
	for _, actionDB := range actionsList {
		actions = append(actions, r.makeVoiceAction(actionDB))
	}

	return actions, nil
}

func (r *actionRepository) makeVoiceAction(db VoiceActionDB) entity.VoiceAction {
	return entity.VoiceAction{
		ID:        db.ID.String,
		UserID:    db.UserID.String,
		Command:   db.Command.String,
		Locator:   db.Locator.String,
		Success:   db.Success.Bool,
		CreatedAt: db.CreatedAt,
	}
}
