package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

// Scenario defines an ordering scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name" json:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description" json:"description"`

	// Steps are executed in order.
	Steps []Step `yaml:"steps" json:"steps"`

	// Assertions validate the final state.
	Assertions []Assertion `yaml:"assertions" json:"assertions"`
}

// Step is one operation against the store.
type Step struct {
	// Op is one of the Op* constants.
	Op string `yaml:"op" json:"op"`

	// List names the list acted on (or the target list for move).
	List string `yaml:"list,omitempty" json:"list,omitempty"`

	// Parent names the parent list for create_list.
	Parent string `yaml:"parent,omitempty" json:"parent,omitempty"`

	// Item is the title of the item acted on.
	Item string `yaml:"item,omitempty" json:"item,omitempty"`

	// Index is the insertion slot or target index.
	Index *int `yaml:"index,omitempty" json:"index,omitempty"`

	// Titles are the items to add or insert. Later steps refer to items by
	// title, so a title may be added only once per scenario.
	Titles []string `yaml:"titles,omitempty" json:"titles,omitempty"`

	// ExpectError is the error code the step must fail with.
	// If empty, the step must succeed.
	ExpectError string `yaml:"expect_error,omitempty" json:"expect_error,omitempty"`
}

// Step operations.
const (
	OpCreateList = "create_list"
	OpMoveList   = "move_list"
	OpAdd        = "add"
	OpInsert     = "insert"
	OpMove       = "move"
	OpDelete     = "delete"
	OpRebalance  = "rebalance"
)

// Assertion validates final state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "order": items of List have exactly the titles in Order
	// - "list_order": child lists of List have exactly the names in Order
	// - "max_key_length": no item key in List is longer than Max
	Type string `yaml:"type" json:"type"`

	List  string   `yaml:"list,omitempty" json:"list,omitempty"`
	Order []string `yaml:"order,omitempty" json:"order,omitempty"`
	Max   int      `yaml:"max,omitempty" json:"max,omitempty"`
}

// Assertion type constants.
const (
	AssertOrder        = "order"
	AssertListOrder    = "list_order"
	AssertMaxKeyLength = "max_key_length"
)

// LoadScenario reads a scenario file. Files ending in .cue are evaluated
// with CUE; anything else is parsed as YAML, rejecting unknown fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	var scenario Scenario
	if strings.EqualFold(filepath.Ext(path), ".cue") {
		err = decodeCUE(path, data, &scenario)
	} else {
		err = decodeYAML(data, &scenario)
	}
	if err != nil {
		return nil, err
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

func decodeYAML(data []byte, s *Scenario) error {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(s); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

func decodeCUE(path string, data []byte, s *Scenario) error {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(path))
	if err := v.Err(); err != nil {
		return fmt.Errorf("failed to compile CUE: %w", err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("scenario is not concrete: %w", err)
	}
	if err := v.Decode(s); err != nil {
		return fmt.Errorf("failed to decode CUE: %w", err)
	}
	return nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	added := make(map[string]int) // title -> step that added it
	for i, step := range s.Steps {
		if err := validateStep(step); err != nil {
			return fmt.Errorf("step %d (%s): %w", i, step.Op, err)
		}
		if step.Op != OpAdd && step.Op != OpInsert {
			continue
		}
		for _, title := range step.Titles {
			if prev, ok := added[title]; ok {
				return fmt.Errorf("step %d (%s): title %q already added by step %d", i, step.Op, title, prev)
			}
			added[title] = i
		}
	}

	for i, a := range s.Assertions {
		switch a.Type {
		case AssertOrder, AssertListOrder, AssertMaxKeyLength:
		default:
			return fmt.Errorf("assertion %d: unknown type %q", i, a.Type)
		}
		if a.List == "" && a.Type != AssertListOrder {
			return fmt.Errorf("assertion %d: list is required", i)
		}
		if a.Type == AssertMaxKeyLength && a.Max <= 0 {
			return fmt.Errorf("assertion %d: max must be positive", i)
		}
	}
	return nil
}

func validateStep(step Step) error {
	need := func(ok bool, field string) error {
		if !ok {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}

	switch step.Op {
	case OpCreateList, OpRebalance:
		return need(step.List != "", "list")
	case OpMoveList:
		if err := need(step.List != "", "list"); err != nil {
			return err
		}
		return need(step.Index != nil, "index")
	case OpAdd:
		if err := need(step.List != "", "list"); err != nil {
			return err
		}
		return need(len(step.Titles) > 0, "titles")
	case OpInsert:
		if err := need(step.List != "", "list"); err != nil {
			return err
		}
		if err := need(step.Index != nil, "index"); err != nil {
			return err
		}
		return need(len(step.Titles) > 0, "titles")
	case OpMove:
		if err := need(step.Item != "", "item"); err != nil {
			return err
		}
		return need(step.Index != nil, "index")
	case OpDelete:
		return need(step.Item != "", "item")
	}
	return fmt.Errorf("unknown op %q", step.Op)
}
