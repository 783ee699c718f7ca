package wasmbin

// Instruction opcodes used by the fixture bodies.
const (
	opI32Load  = 0x28
	opI32Store = 0x36
	opI32Const = 0x41
	opI32Add   = 0x6A
	opEnd      = 0x0B
)

// CounterModule returns a module that exports one page of linear memory as
// "memory" and a "bump" function that increments the u32 at address 0 and
// returns the new value.
func CounterModule() []byte {
	var m Module
	typeIdx := m.AddType(FuncType{Results: []byte{ValI32}})
	fnIdx := m.AddFunc(typeIdx, []byte{
		opI32Const, 0, // store address
		opI32Const, 0, // load address
		opI32Load, 0x02, 0x00, // align=4, offset=0
		opI32Const, 1,
		opI32Add,
		opI32Store, 0x02, 0x00,
		opI32Const, 0,
		opI32Load, 0x02, 0x00,
		opEnd,
	})
	memIdx := m.AddMemory(1)
	m.ExportMemory("memory", memIdx)
	m.ExportFunc("bump", fnIdx)
	return m.Encode()
}
