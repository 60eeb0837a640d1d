package catalog

//go:generate go run ../cmd/opgen -dir . -out ops_gen.go gles2.wit egl.wit

// Op identifies a cataloged operation. The constants in ops_gen.go are the
// only values; an operation outside the catalog has no constant and cannot
// be named.
type Op uint16

// Valid reports whether op is one of the generated constants.
func (op Op) Valid() bool { return op < opCount }

func (op Op) String() string {
	if op < opCount {
		return opNames[op]
	}
	return "invalid"
}

// Namespace returns the namespace op is declared in.
func (op Op) Namespace() Namespace {
	switch {
	case op < firstEGL:
		return GLES2
	case op < opCount:
		return EGL
	default:
		return Invalid
	}
}

// Opcode returns the raw opcode of op under DefaultLayout.
func (op Op) Opcode() Opcode {
	if op < firstEGL {
		return Opcode(op) * Stride
	}
	return Bias + Opcode(op-firstEGL)*Stride
}

// Ops returns every generated constant in opcode order.
func Ops() []Op {
	ops := make([]Op, opCount)
	for i := range ops {
		ops[i] = Op(i)
	}
	return ops
}
