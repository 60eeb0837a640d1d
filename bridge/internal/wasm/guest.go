// Package wasm assembles the guest-side stub module for the bridge.
package wasm

import (
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/glforward/abi"
)

// Instruction opcodes used by stub bodies.
const (
	opDrop            = 0x1a
	opLocalGet        = 0x20
	opCall            = 0x10
	opEnd             = 0x0b
	opI32Const        = 0x41
	opI64Const        = 0x42
	opI32Ne           = 0x47
	opI32And          = 0x71
	opI32Extend8S     = 0xc0
	opI32Extend16S    = 0xc1
	opI32WrapI64      = 0xa7
	opI64ExtendI32S   = 0xac
	opI64ExtendI32U   = 0xad
	opI32ReinterpF32  = 0xbc
	opI64ReinterpF64  = 0xbd
	opF32ReinterpI32  = 0xbe
	opF64ReinterpI64  = 0xbf
	importShortIndex  = 0
	importLongIndex   = 1
	importedFuncCount = 2
)

// GuestBuilder builds a core module that imports the two trampoline
// tiers and exports one typed stub per operation.
type GuestBuilder struct {
	hostModuleName string
	shortName      string
	longName       string
	stubs          []stub
}

type stub struct {
	name   string
	params []abi.Kind
	result abi.Kind
	opcode uint64
}

// NewGuestBuilder creates a builder importing shortName and longName
// from hostModuleName.
func NewGuestBuilder(hostModuleName, shortName, longName string) *GuestBuilder {
	return &GuestBuilder{
		hostModuleName: hostModuleName,
		shortName:      shortName,
		longName:       longName,
	}
}

// AddStub adds an exported stub forwarding to opcode.
func (b *GuestBuilder) AddStub(name string, opcode uint64, params []abi.Kind, result abi.Kind) {
	b.stubs = append(b.stubs, stub{
		name:   name,
		params: params,
		result: result,
		opcode: opcode,
	})
}

// Len returns the number of stubs added.
func (b *GuestBuilder) Len() int { return len(b.stubs) }

// Build generates the WASM module bytes.
func (b *GuestBuilder) Build() []byte {
	var wasm []byte

	// Magic and version
	wasm = append(wasm, 0x00, 0x61, 0x73, 0x6d)
	wasm = append(wasm, 0x01, 0x00, 0x00, 0x00)

	types, typeOf := b.buildTypeSection()
	wasm = appendSection(wasm, 0x01, types)
	wasm = appendSection(wasm, 0x02, b.buildImportSection())
	wasm = appendSection(wasm, 0x03, b.buildFuncSection(typeOf))
	wasm = appendSection(wasm, 0x07, b.buildExportSection())
	wasm = appendSection(wasm, 0x0a, b.buildCodeSection())

	return wasm
}

func appendSection(wasm []byte, id byte, section []byte) []byte {
	wasm = append(wasm, id)
	wasm = append(wasm, EncodeULEB128(uint32(len(section)))...)
	return append(wasm, section...)
}

// buildTypeSection emits the two tier types followed by one type per
// distinct stub signature. typeOf maps each stub to its type index.
func (b *GuestBuilder) buildTypeSection() ([]byte, []uint32) {
	var entries [][]byte
	index := make(map[string]uint32)

	add := func(params, results []api.ValueType) uint32 {
		ft := funcType(params, results)
		if i, ok := index[string(ft)]; ok {
			return i
		}
		i := uint32(len(entries))
		index[string(ft)] = i
		entries = append(entries, ft)
		return i
	}

	add(i64s(abi.ShortArity+1), i64s(1))
	add(i64s(abi.VectorWords), i64s(1))

	typeOf := make([]uint32, len(b.stubs))
	for i, s := range b.stubs {
		params := make([]api.ValueType, len(s.params))
		for j, k := range s.params {
			params[j], _ = ValueType(k)
		}
		var results []api.ValueType
		if vt, ok := ValueType(s.result); ok {
			results = []api.ValueType{vt}
		}
		typeOf[i] = add(params, results)
	}

	var section []byte
	section = append(section, EncodeULEB128(uint32(len(entries)))...)
	for _, e := range entries {
		section = append(section, e...)
	}
	return section, typeOf
}

func funcType(params, results []api.ValueType) []byte {
	ft := []byte{0x60}
	ft = append(ft, EncodeULEB128(uint32(len(params)))...)
	for _, t := range params {
		ft = append(ft, ValTypeToWasm(t))
	}
	ft = append(ft, EncodeULEB128(uint32(len(results)))...)
	for _, t := range results {
		ft = append(ft, ValTypeToWasm(t))
	}
	return ft
}

func i64s(n int) []api.ValueType {
	out := make([]api.ValueType, n)
	for i := range out {
		out[i] = api.ValueTypeI64
	}
	return out
}

func (b *GuestBuilder) buildImportSection() []byte {
	var section []byte
	section = append(section, EncodeULEB128(importedFuncCount)...)

	for i, name := range []string{b.shortName, b.longName} {
		section = appendName(section, b.hostModuleName)
		section = appendName(section, name)
		section = append(section, 0x00)
		section = append(section, EncodeULEB128(uint32(i))...)
	}
	return section
}

func appendName(buf []byte, name string) []byte {
	buf = append(buf, EncodeULEB128(uint32(len(name)))...)
	return append(buf, name...)
}

func (b *GuestBuilder) buildFuncSection(typeOf []uint32) []byte {
	var section []byte
	section = append(section, EncodeULEB128(uint32(len(b.stubs)))...)
	for _, t := range typeOf {
		section = append(section, EncodeULEB128(t)...)
	}
	return section
}

func (b *GuestBuilder) buildExportSection() []byte {
	var section []byte
	section = append(section, EncodeULEB128(uint32(len(b.stubs)))...)
	for i, s := range b.stubs {
		section = appendName(section, s.name)
		section = append(section, 0x00)
		section = append(section, EncodeULEB128(uint32(importedFuncCount+i))...)
	}
	return section
}

func (b *GuestBuilder) buildCodeSection() []byte {
	var section []byte
	section = append(section, EncodeULEB128(uint32(len(b.stubs)))...)

	for _, s := range b.stubs {
		funcBody := buildStubBody(s)
		section = append(section, EncodeULEB128(uint32(len(funcBody)))...)
		section = append(section, funcBody...)
	}
	return section
}

// buildStubBody emits: opcode, each parameter widened to i64, zero words
// up to the tier width, the tier call, then the result narrowed back to
// the stub's declared type.
func buildStubBody(s stub) []byte {
	var body []byte
	body = append(body, 0x00) // no locals

	body = append(body, opI64Const)
	body = append(body, EncodeSLEB128(int64(s.opcode))...)

	for i, k := range s.params {
		body = append(body, opLocalGet)
		body = append(body, EncodeULEB128(uint32(i))...)
		body = append(body, widen(k)...)
	}

	width, callee := abi.ShortArity, uint32(importShortIndex)
	if abi.TierOf(len(s.params)) == abi.TierLong {
		width, callee = abi.MaxArgs, importLongIndex
	}
	for i := len(s.params); i < width; i++ {
		body = append(body, opI64Const, 0x00)
	}

	body = append(body, opCall)
	body = append(body, EncodeULEB128(callee)...)
	body = append(body, narrow(s.result)...)
	body = append(body, opEnd)
	return body
}

// widen canonicalizes an i32 parameter to its declared width before
// extending it to a word: narrow signed kinds are sign-extended from their
// own width, narrow unsigned kinds masked, bools reduced to 0 or 1.
func widen(k abi.Kind) []byte {
	switch k {
	case abi.S8:
		return []byte{opI32Extend8S, opI64ExtendI32S}
	case abi.S16:
		return []byte{opI32Extend16S, opI64ExtendI32S}
	case abi.S32:
		return []byte{opI64ExtendI32S}
	case abi.U8:
		return append(append([]byte{opI32Const}, EncodeSLEB128(int32(0xff))...), opI32And, opI64ExtendI32U)
	case abi.U16:
		return append(append([]byte{opI32Const}, EncodeSLEB128(int32(0xffff))...), opI32And, opI64ExtendI32U)
	case abi.Bool:
		return []byte{opI32Const, 0x00, opI32Ne, opI64ExtendI32U}
	case abi.U32, abi.Enum:
		return []byte{opI64ExtendI32U}
	case abi.F32:
		return []byte{opI32ReinterpF32, opI64ExtendI32U}
	case abi.F64:
		return []byte{opI64ReinterpF64}
	default:
		return nil
	}
}

func narrow(k abi.Kind) []byte {
	switch k {
	case abi.Void:
		return []byte{opDrop}
	case abi.Bool, abi.S8, abi.U8, abi.S16, abi.U16, abi.S32, abi.U32, abi.Enum:
		return []byte{opI32WrapI64}
	case abi.F32:
		return []byte{opI32WrapI64, opF32ReinterpI32}
	case abi.F64:
		return []byte{opF64ReinterpI64}
	default:
		return nil
	}
}
