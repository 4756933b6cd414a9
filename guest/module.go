package guest

// BytesModule is a core module that treats memory as plain bytes:
//
//	(module
//	  (memory (export "memory") 1)
//	  (func (export "copy") (param $dst i32) (param $src i32) (param $n i32)
//	    local.get $dst
//	    local.get $src
//	    local.get $n
//	    memory.copy))
var BytesModule = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version

	// type section: (i32, i32, i32) -> ()
	0x01, 0x07, 0x01, 0x60, 0x03, 0x7f, 0x7f, 0x7f, 0x00,

	// function section: func 0 has type 0
	0x03, 0x02, 0x01, 0x00,

	// memory section: min 1 page, no max
	0x05, 0x03, 0x01, 0x00, 0x01,

	// export section: "memory" -> memory 0, "copy" -> func 0
	0x07, 0x11, 0x02,
	0x06, 'm', 'e', 'm', 'o', 'r', 'y', 0x02, 0x00,
	0x04, 'c', 'o', 'p', 'y', 0x00, 0x00,

	// code section
	0x0a, 0x0e, 0x01,
	0x0c, 0x00, // body size, no locals
	0x20, 0x00, // local.get 0
	0x20, 0x01, // local.get 1
	0x20, 0x02, // local.get 2
	0xfc, 0x0a, 0x00, 0x00, // memory.copy 0 0
	0x0b, // end
}

// CopyExport is the name of BytesModule's copy function.
const CopyExport = "copy"
