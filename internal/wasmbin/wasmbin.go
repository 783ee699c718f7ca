// Package wasmbin writes minimal WebAssembly core modules for tests and
// examples that need a guest with exported linear memory. It covers only
// the sections those fixtures use.
package wasmbin

import "bytes"

// Section ids from the core binary format.
const (
	sectionType   = 1
	sectionFunc   = 3
	sectionMemory = 5
	sectionExport = 7
	sectionCode   = 10
)

// Export kinds.
const (
	exportFunc   = 0
	exportMemory = 2
)

// ValI32 is the i32 value type encoding.
const ValI32 = 0x7F

// FuncType describes a function signature as raw value type encodings.
type FuncType struct {
	Params  []byte
	Results []byte
}

type export struct {
	name string
	kind byte
	idx  uint32
}

// Module accumulates definitions and serializes them as a core module.
// The zero value is an empty module.
type Module struct {
	types    []FuncType
	funcs    []uint32
	bodies   [][]byte
	memories []uint32
	exports  []export
}

// AddType registers a function signature and returns its type index.
func (m *Module) AddType(ft FuncType) uint32 {
	m.types = append(m.types, ft)
	return uint32(len(m.types) - 1)
}

// AddFunc registers a function with the given type index and body. The body
// is raw instruction bytes and must end with the end opcode; the function
// declares no locals.
func (m *Module) AddFunc(typeIdx uint32, body []byte) uint32 {
	m.funcs = append(m.funcs, typeIdx)
	m.bodies = append(m.bodies, body)
	return uint32(len(m.funcs) - 1)
}

// AddMemory registers a linear memory with the given minimum page count and
// no maximum.
func (m *Module) AddMemory(minPages uint32) uint32 {
	m.memories = append(m.memories, minPages)
	return uint32(len(m.memories) - 1)
}

// ExportFunc exports the function at idx under the given name.
func (m *Module) ExportFunc(name string, idx uint32) {
	m.exports = append(m.exports, export{name: name, kind: exportFunc, idx: idx})
}

// ExportMemory exports the memory at idx under the given name.
func (m *Module) ExportMemory(name string, idx uint32) {
	m.exports = append(m.exports, export{name: name, kind: exportMemory, idx: idx})
}

// Encode serializes the module in the core binary format.
func (m *Module) Encode() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x61, 0x73, 0x6D}) // magic
	buf.Write([]byte{0x01, 0x00, 0x00, 0x00}) // version 1

	if len(m.types) > 0 {
		var contents bytes.Buffer
		writeLEB128(&contents, uint32(len(m.types)))
		for _, ft := range m.types {
			contents.WriteByte(0x60)
			writeLEB128(&contents, uint32(len(ft.Params)))
			contents.Write(ft.Params)
			writeLEB128(&contents, uint32(len(ft.Results)))
			contents.Write(ft.Results)
		}
		writeSection(&buf, sectionType, contents.Bytes())
	}

	if len(m.funcs) > 0 {
		var contents bytes.Buffer
		writeLEB128(&contents, uint32(len(m.funcs)))
		for _, typeIdx := range m.funcs {
			writeLEB128(&contents, typeIdx)
		}
		writeSection(&buf, sectionFunc, contents.Bytes())
	}

	if len(m.memories) > 0 {
		var contents bytes.Buffer
		writeLEB128(&contents, uint32(len(m.memories)))
		for _, minPages := range m.memories {
			contents.WriteByte(0) // limits without maximum
			writeLEB128(&contents, minPages)
		}
		writeSection(&buf, sectionMemory, contents.Bytes())
	}

	if len(m.exports) > 0 {
		var contents bytes.Buffer
		writeLEB128(&contents, uint32(len(m.exports)))
		for _, e := range m.exports {
			writeLEB128(&contents, uint32(len(e.name)))
			contents.WriteString(e.name)
			contents.WriteByte(e.kind)
			writeLEB128(&contents, e.idx)
		}
		writeSection(&buf, sectionExport, contents.Bytes())
	}

	if len(m.bodies) > 0 {
		var contents bytes.Buffer
		writeLEB128(&contents, uint32(len(m.bodies)))
		for _, body := range m.bodies {
			writeLEB128(&contents, uint32(len(body))+1)
			contents.WriteByte(0) // no local declarations
			contents.Write(body)
		}
		writeSection(&buf, sectionCode, contents.Bytes())
	}

	return buf.Bytes()
}

func writeSection(buf *bytes.Buffer, id byte, contents []byte) {
	buf.WriteByte(id)
	writeLEB128(buf, uint32(len(contents)))
	buf.Write(contents)
}

func writeLEB128(buf *bytes.Buffer, value uint32) {
	for {
		b := byte(value & 0x7F)
		value >>= 7
		if value != 0 {
			b |= 0x80
		}
		buf.WriteByte(b)
		if value == 0 {
			return
		}
	}
}
