package locale

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/ersinkoc/kairos/internal/rule"
)

// ruleSetSchema is the CUE schema a decoded rule-set document must satisfy
// before conversion. It mirrors the closed payload union of the rule
// package; keeping the constraints here means a bad file fails at load
// time with a field path instead of mid-query.
const ruleSetSchema = `
#Weekday: int & >=0 & <=6

#Rule: {
	id?:   string
	name?: string
	type:  "fixed" | "nth-weekday" | "easter" | "lunar" | "relative" | "custom"

	fixed?: {
		month: int & >=1 & <=12
		day:   int & >=1 & <=31
	}
	nth_weekday?: {
		month:   int & >=1 & <=12
		weekday: #Weekday
		nth:     int & >=-5 & <=5 & !=0
	}
	easter?: {
		offset:   int
		variant?: "gregorian" | "orthodox"
	}
	lunar?: {
		calendar: "islamic" | "chinese" | "hebrew" | "persian"
		month:    int & >=1 & <=13
		day:      int & >=1 & <=30
	}
	relative?: {
		relative_to: string
		offset:      int
	}
	custom?: {
		func: string
	}

	observed?: {
		type:       "substitute" | "nearest-weekday" | "bridge"
		weekends?:  [...#Weekday]
		direction?: "forward" | "backward"
	}
	duration?: int & >=2
	regions?:  [...string]
	inactive?: bool
}

name?: string
rules: [...#Rule]
`

// ruleSetFile is the YAML document shape.
type ruleSetFile struct {
	Name  string       `yaml:"name"`
	Rules []*rule.Rule `yaml:"rules"`
}

// LoadFile reads a YAML rule-set file.
func LoadFile(path string) ([]*rule.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rule set: %w", err)
	}
	rules, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Load decodes and vets a YAML rule-set document.
//
// The document is vetted twice: structurally against the CUE schema on the
// raw decoded value, then per-rule with rule.Validate so the loader rejects
// exactly what the engine would.
func Load(data []byte) ([]*rule.Rule, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decoding rule set: %w", err)
	}
	if err := vetDocument(doc); err != nil {
		return nil, err
	}

	var file ruleSetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding rule set: %w", err)
	}

	for _, r := range file.Rules {
		if err := rule.Validate(r); err != nil {
			return nil, err
		}
	}
	return file.Rules, nil
}

// vetDocument unifies the decoded document with the rule-set schema.
func vetDocument(doc map[string]any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(ruleSetSchema)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling rule set schema: %w", err)
	}

	unified := schema.Unify(ctx.Encode(doc))
	if err := unified.Validate(cue.Concrete(false)); err != nil {
		return fmt.Errorf("rule set does not match schema:\n%s", cueerrors.Details(err, nil))
	}
	return nil
}
