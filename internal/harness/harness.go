package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/ordkey/internal/position"
	"github.com/roach88/ordkey/internal/store"
	"github.com/roach88/ordkey/orderkey"
)

// Error codes reported in traces and matched by Step.ExpectError.
const (
	ErrCodeNotFound        = "not_found"
	ErrCodeIndexOutOfRange = "index_out_of_range"
	ErrCodeUnsorted        = "unsorted"
	ErrCodeEmptyName       = "empty_name"
	ErrCodeInvalidKey      = "invalid_key"
	ErrCodeOrderViolation  = "order_violation"
	ErrCodeOther           = "error"
)

// Harness executes scenario steps against a store.
type Harness struct {
	store  *store.Store
	logger *slog.Logger

	lists     map[string]string // name -> id, in creation order below
	listNames []string
	items     map[string]string // title -> id
}

// Run executes a scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database with sequential IDs.
// An error is returned only if the harness itself could not run; scenario
// failures are reported in the Result.
func Run(ctx context.Context, scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:", store.WithIDGenerator(store.NewSequenceGenerator(scenario.Name)))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	h := &Harness{
		store:  st,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		lists:  make(map[string]string),
		items:  make(map[string]string),
	}

	result := NewResult()
	for i, step := range scenario.Steps {
		ev, err := h.execute(ctx, step)
		if err != nil {
			ev.Error = errorCode(err)
			h.logger.Debug("step failed", "step", i, "op", step.Op, "error", err)
		}
		result.AddTrace(ev)

		switch {
		case step.ExpectError == "" && err != nil:
			result.AddError(fmt.Sprintf("step %d (%s): unexpected error: %v", i, step.Op, err))
		case step.ExpectError != "" && err == nil:
			result.AddError(fmt.Sprintf("step %d (%s): expected error %q, got success", i, step.Op, step.ExpectError))
		case step.ExpectError != "" && ev.Error != step.ExpectError:
			result.AddError(fmt.Sprintf("step %d (%s): expected error %q, got %q", i, step.Op, step.ExpectError, ev.Error))
		}
	}

	for _, name := range h.listNames {
		items, err := st.Items(ctx, h.lists[name])
		if err != nil {
			return nil, fmt.Errorf("failed to read final state of %q: %w", name, err)
		}
		titles := make([]string, len(items))
		for i, it := range items {
			titles[i] = it.Title
		}
		result.State[name] = titles
	}

	actx := &AssertionContext{Harness: h, Ctx: ctx}
	for _, msg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(msg)
	}
	return result, nil
}

// execute runs one step and describes it as a trace event.
func (h *Harness) execute(ctx context.Context, step Step) (TraceEvent, error) {
	ev := TraceEvent{Op: step.Op, List: step.List, Item: step.Item, Index: step.Index}

	switch step.Op {
	case OpCreateList:
		l, err := h.store.CreateList(ctx, h.listID(step.Parent), step.List)
		if err != nil {
			return ev, err
		}
		if _, seen := h.lists[step.List]; !seen {
			h.listNames = append(h.listNames, step.List)
		}
		h.lists[step.List] = l.ID
		ev.Keys = []string{l.OrderKey}

	case OpMoveList:
		l, err := h.store.MoveList(ctx, h.listID(step.List), *step.Index)
		if err != nil {
			return ev, err
		}
		ev.Keys = []string{l.OrderKey}

	case OpAdd:
		for _, title := range step.Titles {
			it, err := h.store.AddItem(ctx, h.listID(step.List), title)
			if err != nil {
				return ev, err
			}
			h.items[title] = it.ID
			ev.Keys = append(ev.Keys, it.OrderKey)
		}

	case OpInsert:
		items, err := h.store.InsertItems(ctx, h.listID(step.List), *step.Index, step.Titles...)
		if err != nil {
			return ev, err
		}
		for _, it := range items {
			h.items[it.Title] = it.ID
			ev.Keys = append(ev.Keys, it.OrderKey)
		}

	case OpMove:
		it, err := h.store.MoveItem(ctx, h.itemID(step.Item), h.listID(step.List), *step.Index)
		if err != nil {
			return ev, err
		}
		ev.Keys = []string{it.OrderKey}

	case OpDelete:
		if err := h.store.DeleteItem(ctx, h.itemID(step.Item)); err != nil {
			return ev, err
		}
		delete(h.items, step.Item)

	case OpRebalance:
		items, err := h.store.Rebalance(ctx, h.listID(step.List))
		if err != nil {
			return ev, err
		}
		for _, it := range items {
			ev.Keys = append(ev.Keys, it.OrderKey)
		}

	default:
		return ev, fmt.Errorf("unknown op %q", step.Op)
	}
	return ev, nil
}

// listID resolves a list name. Unknown names pass through unchanged so the
// store reports them as not found.
func (h *Harness) listID(name string) string {
	if id, ok := h.lists[name]; ok {
		return id
	}
	return name
}

func (h *Harness) itemID(title string) string {
	if id, ok := h.items[title]; ok {
		return id
	}
	return title
}

// errorCode classifies an error for traces.
func errorCode(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrCodeNotFound
	case errors.Is(err, position.ErrIndexOutOfRange):
		return ErrCodeIndexOutOfRange
	case errors.Is(err, position.ErrUnsorted):
		return ErrCodeUnsorted
	case errors.Is(err, store.ErrEmptyName):
		return ErrCodeEmptyName
	case orderkey.IsInvalidKey(err):
		return ErrCodeInvalidKey
	case orderkey.IsOrderViolation(err):
		return ErrCodeOrderViolation
	}
	return ErrCodeOther
}
