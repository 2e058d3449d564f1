package circuit

// RegisterKind selects one of the three classical register families a circuit
// can declare.
type RegisterKind uint8

const (
	BitRegister RegisterKind = iota + 1
	FloatRegister
	ComplexRegister
)

func (k RegisterKind) String() string {
	switch k {
	case BitRegister:
		return "bit"
	case FloatRegister:
		return "float"
	case ComplexRegister:
		return "complex"
	default:
		return "unknown"
	}
}

// Definition describes a declared classical register: its name, the number of
// slots it holds and whether its content is reported as output.
type Definition struct {
	Name     string
	Length   int
	IsOutput bool
}

// DefinitionBit declares a named classical bit register.
type DefinitionBit Definition

func (DefinitionBit) Tags() []string {
	return []string{"Operation", "Definition", "DefinitionBit"}
}

func (DefinitionBit) InvolvedQubits() []int { return nil }

// DefinitionFloat declares a named classical float register.
type DefinitionFloat Definition

func (DefinitionFloat) Tags() []string {
	return []string{"Operation", "Definition", "DefinitionFloat"}
}

func (DefinitionFloat) InvolvedQubits() []int { return nil }

// DefinitionComplex declares a named classical complex register.
type DefinitionComplex Definition

func (DefinitionComplex) Tags() []string {
	return []string{"Operation", "Definition", "DefinitionComplex"}
}

func (DefinitionComplex) InvolvedQubits() []int { return nil }

// Definitions returns the register definitions of the given kind, in circuit
// order.
func (c *Circuit) Definitions(kind RegisterKind) []Definition {
	var defs []Definition
	for _, op := range c.ops {
		switch d := op.(type) {
		case DefinitionBit:
			if kind == BitRegister {
				defs = append(defs, Definition(d))
			}
		case DefinitionFloat:
			if kind == FloatRegister {
				defs = append(defs, Definition(d))
			}
		case DefinitionComplex:
			if kind == ComplexRegister {
				defs = append(defs, Definition(d))
			}
		}
	}
	return defs
}
