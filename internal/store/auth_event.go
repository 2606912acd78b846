package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

var authEventColumns = []string{
	"id", "sequence", "timestamp", "kind", "email", "success", "error_message",
}

func (r *eventRepo) AppendAuthEvent(ctx context.Context, data AuthEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	q, args := builder().Insert(authEventsTable).
		Columns(authEventColumns[1:]...).
		Values(seqNum, time.Now().UnixMilli(), string(data.Kind), data.Email,
			boolInt(data.Success), data.ErrorMessage).
		Query()

	var res sql.Result
	if err := r.drv.Exec(ctx, q, args, &res); err != nil {
		return fmt.Errorf("save auth event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryAuthEvents(ctx context.Context, opts QueryOpts) ([]AuthEvent, error) {
	sel := builder().Select(authEventColumns...).From(entsql.Table(authEventsTable))
	applyQueryOpts(sel, opts)
	q, args := sel.Query()

	var rows entsql.Rows
	if err := r.drv.Query(ctx, q, args, &rows); err != nil {
		return nil, fmt.Errorf("query auth events: %w", err)
	}
	defer rows.Close()

	var out []AuthEvent
	for rows.Next() {
		var (
			e    AuthEvent
			ts   int64
			kind string
		)
		if err := rows.Scan(&e.ID, &e.Sequence, &ts, &kind, &e.Email, &e.Success, &e.ErrorMessage); err != nil {
			return nil, fmt.Errorf("scan auth event: %w", err)
		}
		e.Kind = AuthEventKind(kind)
		e.Timestamp = fromMillis(ts)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate auth events: %w", err)
	}
	return out, nil
}
