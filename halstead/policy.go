package halstead

import (
	"fmt"
	"sort"

	"github.com/SS-S3/repo-quality-tool/types"
)

// Role is the Halstead role a token kind plays.
type Role uint8

const (
	RoleIgnored Role = iota
	RoleOperator
	RoleOperand
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleOperator:
		return "operator"
	case RoleOperand:
		return "operand"
	default:
		return "ignored"
	}
}

// Policy maps token kinds to roles. Kinds without an entry are ignored.
// The zero Policy ignores everything.
type Policy struct {
	roles map[types.Kind]Role
}

// DefaultPolicy counts punctuators and keywords as operators and
// identifiers, strings and numbers as operands.
func DefaultPolicy() Policy {
	return NewPolicy(
		[]types.Kind{types.KindPunctuator, types.KindKeyword},
		[]types.Kind{types.KindIdentifier, types.KindString, types.KindNumeric},
	)
}

// NewPolicy builds a policy from explicit operator and operand kinds. When a
// kind appears in both lists the operand role wins.
func NewPolicy(operators, operands []types.Kind) Policy {
	roles := make(map[types.Kind]Role, len(operators)+len(operands))
	for _, k := range operators {
		roles[k] = RoleOperator
	}
	for _, k := range operands {
		roles[k] = RoleOperand
	}
	return Policy{roles: roles}
}

// PolicyFromKinds builds a policy from kind names such as "Keyword". Empty
// lists fall back to the corresponding DefaultPolicy kinds.
func PolicyFromKinds(operatorNames, operandNames []string) (Policy, error) {
	def := DefaultPolicy()

	operators := def.kindsFor(RoleOperator)
	if len(operatorNames) > 0 {
		ks, err := parseKinds(operatorNames)
		if err != nil {
			return Policy{}, err
		}
		operators = ks
	}

	operands := def.kindsFor(RoleOperand)
	if len(operandNames) > 0 {
		ks, err := parseKinds(operandNames)
		if err != nil {
			return Policy{}, err
		}
		operands = ks
	}

	for _, op := range operators {
		for _, od := range operands {
			if op == od {
				return Policy{}, fmt.Errorf("kind %s cannot be both operator and operand", op)
			}
		}
	}
	return NewPolicy(operators, operands), nil
}

// Role returns the role of kind k.
func (p Policy) Role(k types.Kind) Role {
	return p.roles[k]
}

// OperatorKinds returns the kinds counted as operators, sorted.
func (p Policy) OperatorKinds() []types.Kind { return p.kindsFor(RoleOperator) }

// OperandKinds returns the kinds counted as operands, sorted.
func (p Policy) OperandKinds() []types.Kind { return p.kindsFor(RoleOperand) }

func (p Policy) kindsFor(role Role) []types.Kind {
	var out []types.Kind
	for k, r := range p.roles {
		if r == role {
			out = append(out, k)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func parseKinds(names []string) ([]types.Kind, error) {
	out := make([]types.Kind, 0, len(names))
	for _, name := range names {
		k, ok := types.ParseKind(name)
		if !ok {
			return nil, fmt.Errorf("unknown token kind %q", name)
		}
		out = append(out, k)
	}
	return out, nil
}
