package client

import (
	"context"
	"fmt"
)

type Status string

const (
	StatusSaved     Status = "saved"
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusRejected  Status = "rejected"
)

// Statuses is the column order of the kanban board.
var Statuses = []Status{StatusSaved, StatusApplied, StatusInterview, StatusRejected}

// Board holds the kanban view of the caller's applications, one column per
// status. Moves are optimistic: the column state changes before the server
// confirms, and a failed update discards local state with a full refetch.
type Board struct {
	api     *Client
	columns map[Status][]Application
}

func NewBoard(api *Client) *Board {
	return &Board{
		api:     api,
		columns: emptyColumns(),
	}
}

// Load replaces the whole board with the server's view.
func (b *Board) Load(ctx context.Context) error {
	apps, err := b.api.ListApplications(ctx)
	if err != nil {
		return err
	}

	columns := emptyColumns()
	for _, app := range apps {
		columns[app.Status] = append(columns[app.Status], app)
	}
	b.columns = columns
	return nil
}

func (b *Board) Column(status Status) []Application {
	return b.columns[status]
}

func (b *Board) Len() int {
	n := 0
	for _, col := range b.columns {
		n += len(col)
	}
	return n
}

// MoveCard moves an application to another column. Any stage is reachable
// from any other. The local move happens first; if the server rejects the
// update, the board is reloaded so the optimistic change is discarded.
func (b *Board) MoveCard(ctx context.Context, id string, to Status) error {
	app, from, ok := b.find(id)
	if !ok {
		return fmt.Errorf("no card with id %s on the board", id)
	}
	if from == to {
		return nil
	}

	b.remove(id, from)
	app.Status = to
	b.columns[to] = append(b.columns[to], app)

	if _, err := b.api.UpdateStatus(ctx, id, to); err != nil {
		if loadErr := b.Load(ctx); loadErr != nil {
			return fmt.Errorf("update failed (%w) and refetch failed: %v", err, loadErr)
		}
		return err
	}
	return nil
}

func (b *Board) find(id string) (Application, Status, bool) {
	for status, col := range b.columns {
		for _, app := range col {
			if app.ID == id {
				return app, status, true
			}
		}
	}
	return Application{}, "", false
}

func (b *Board) remove(id string, from Status) {
	col := b.columns[from]
	for i, app := range col {
		if app.ID == id {
			b.columns[from] = append(col[:i:i], col[i+1:]...)
			return
		}
	}
}

func emptyColumns() map[Status][]Application {
	columns := make(map[Status][]Application, len(Statuses))
	for _, s := range Statuses {
		columns[s] = nil
	}
	return columns
}
