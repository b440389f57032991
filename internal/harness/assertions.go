package harness

import (
	"context"
	"fmt"
	"slices"
)

// AssertionContext gives assertions access to the scenario's store.
type AssertionContext struct {
	Harness *Harness
	Ctx     context.Context
}

// EvaluateAssertions checks every assertion and returns failure messages.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errs []string
	for i, a := range assertions {
		if err := evaluate(result, a, actx); err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d (%s): %v", i, a.Type, err))
		}
	}
	return errs
}

func evaluate(result *Result, a Assertion, actx *AssertionContext) error {
	switch a.Type {
	case AssertOrder:
		got, ok := result.State[a.List]
		if !ok {
			return fmt.Errorf("list %q was never created", a.List)
		}
		return compareOrder(a.Order, got)

	case AssertListOrder:
		lists, err := actx.Harness.store.Lists(actx.Ctx, actx.Harness.listID(a.List))
		if err != nil {
			return err
		}
		got := make([]string, len(lists))
		for i, l := range lists {
			got[i] = l.Name
		}
		return compareOrder(a.Order, got)

	case AssertMaxKeyLength:
		items, err := actx.Harness.store.Items(actx.Ctx, actx.Harness.listID(a.List))
		if err != nil {
			return err
		}
		for _, it := range items {
			if len(it.OrderKey) > a.Max {
				return fmt.Errorf("item %q has key %q longer than %d", it.Title, it.OrderKey, a.Max)
			}
		}
		return nil
	}
	return fmt.Errorf("unknown assertion type %q", a.Type)
}

func compareOrder(want, got []string) error {
	if want == nil {
		want = []string{}
	}
	if !slices.Equal(want, got) {
		return fmt.Errorf("expected order %v, got %v", want, got)
	}
	return nil
}
